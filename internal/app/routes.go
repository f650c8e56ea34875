package app

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"taskflow/internal/handlers"
	"taskflow/internal/middleware"
)

// SetupRoutes configures all HTTP routes for the application
func SetupRoutes(router *mux.Router, h *handlers.Handlers, userIDHeader string) {
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.IdentityMiddleware(userIDHeader))
	router.Use(middleware.LoggingMiddleware)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	h.RegisterRoutes(router)
}
