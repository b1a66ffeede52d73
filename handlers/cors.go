package handlers

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/momo-integration/momo-payments.api/config"
)

// CORS lets a separately hosted form call the API
func CORS(cfg config.Config) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}
