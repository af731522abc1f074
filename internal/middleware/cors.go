package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets browsers from the allowed origins drive the game API. A nil
// allow function accepts every origin.
func Cors(allowOrigin func(origin string) bool) Middleware {
	if allowOrigin == nil {
		allowOrigin = func(string) bool { return true }
	}
	options := cors.Options{
		AllowOriginFunc: allowOrigin,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	return cors.New(options).Handler
}
