package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows any origin: the analysis API is stateless and carries no
// credentials, so there is nothing to protect from cross-site calls.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
