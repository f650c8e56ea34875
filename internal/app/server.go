package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"taskflow/internal/handlers"
	"taskflow/internal/middleware"
	"taskflow/internal/server"
)

// Handler builds the full HTTP handler: routes, middleware and CORS.
// CORS wraps the router so preflight requests never reach route matching.
func (app *App) Handler() http.Handler {
	h := handlers.New(app.Services, app.Storage, string(app.CacheBackend))

	router := mux.NewRouter()
	SetupRoutes(router, h, app.Config.UserIDHeader)

	return middleware.CORSMiddleware(app.Config.AllowedOrigins(), app.Config.UserIDHeader)(router)
}

// NewServer returns the HTTP server for the application
func (app *App) NewServer() *server.Server {
	return server.New(app.Handler(), app.Config.Port, app.Config.TLSCertFile, app.Config.TLSKeyFile)
}
