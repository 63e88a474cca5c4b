package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// Access-Control values written on every response.
const (
	CORSAllowHeaders = "Content-Type,Authorization,true"
	CORSAllowMethods = "GET,PATCH,POST,DELETE,OPTIONS"
)

// CORS returns the cross-origin middleware for origins. "*" allows any
// origin and an empty list allows none. Preflight requests are answered by
// go-chi/cors; other responses also carry CORSAllowHeaders and
// CORSAllowMethods.
func CORS(origins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: strings.Split(CORSAllowMethods, ","),
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
	if len(origins) == 0 {
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}
	policy := cors.Handler(opts)

	return func(next http.Handler) http.Handler {
		handler := policy(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Headers", CORSAllowHeaders)
			w.Header().Set("Access-Control-Allow-Methods", CORSAllowMethods)
			handler.ServeHTTP(w, r)
		})
	}
}
