package server

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"taskflow/internal/common/logging"
)

// Server represents an HTTP server
type Server struct {
	srv     *http.Server
	tlsCert string
	tlsKey  string
	logger  logging.Logger
}

// New creates a new server instance. TLS is used when both files are set.
func New(handler http.Handler, port, tlsCert, tlsKey string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		tlsCert: tlsCert,
		tlsKey:  tlsKey,
		logger:  logging.GetGlobalLogger().WithFields(logging.Component("server")),
	}
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Start listens in the background. The returned channel receives the error
// that stopped the listener and is closed once the listener has returned.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	tlsEnabled := s.tlsCert != "" && s.tlsKey != ""
	if tlsEnabled {
		s.srv.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	s.logger.Info("Server starting",
		logging.String("addr", s.srv.Addr),
		logging.Bool("tls", tlsEnabled),
	)

	go func() {
		defer close(errCh)

		var err error
		if tlsEnabled {
			err = s.srv.ListenAndServeTLS(s.tlsCert, s.tlsKey)
		} else {
			err = s.srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
