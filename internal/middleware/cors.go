package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSMiddleware allows the given origins; "*" or none allows any origin.
func CORSMiddleware(allowedOrigins []string, userIDHeader string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	if userIDHeader == "" {
		userIDHeader = DefaultUserIDHeader
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", userIDHeader, RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler
}
