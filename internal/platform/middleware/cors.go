package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CORS allows read-only cross-origin access from any origin. The service has
// no credentials or mutating routes, so only safe methods are advertised.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			chimiddleware.RequestIDHeader,
			"traceparent",
		},
		ExposedHeaders: []string{"Link", "Location", chimiddleware.RequestIDHeader},
		MaxAge:         300,
	})
}
