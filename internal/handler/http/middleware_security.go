package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"X-XSS-Protection", "1; mode=block"},
}

// withSecurityHeaders sets the static security headers on every response.
func withSecurityHeaders(next http.Handler) http.Handler {
	for i := len(securityHeaders) - 1; i >= 0; i-- {
		next = middleware.SetHeader(securityHeaders[i][0], securityHeaders[i][1])(next)
	}
	return next
}

// withCORS builds the CORS policy. A "*" origin matches any origin and the
// request origin is echoed back, since credentials are allowed.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           h.security.CORSMaxAge,
	}

	if allowsAnyOrigin(h.security.CORSAllowedOrigins) {
		options.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	} else {
		options.AllowedOrigins = h.security.CORSAllowedOrigins
	}

	return cors.Handler(options)
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
