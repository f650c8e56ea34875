package server

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ShutdownClosesErrorChannel(t *testing.T) {
	srv := New(http.NotFoundHandler(), "0", "", "")
	assert.Equal(t, ":0", srv.Addr())

	errs := srv.Start()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err, ok := <-errs:
		assert.False(t, ok, "unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
}

func TestServer_TLSFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	srv := New(http.NotFoundHandler(), "0", filepath.Join(dir, "missing.crt"), filepath.Join(dir, "missing.key"))

	select {
	case err := <-srv.Start():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a startup error")
	}
}
