package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows a single front-end origin to call the API with credentials.
func CORS(origin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-Info"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
