package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the configured client origin with credentials, so the session
// cookie survives cross-origin requests.
func CORS(clientURL string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{clientURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler
}
