package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows browser front ends served from any origin to drive the game.
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
