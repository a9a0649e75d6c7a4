package http

import (
	"net/http"

	"github.com/MKhiriev/mission-planner/internal/app"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/utils"
)

// authenticate establishes the request identity from an
// "Authorization: Bearer <token>" header.
//
// It never rejects a request: a missing, malformed, expired or wrongly
// signed token leaves the request anonymous and the route layer decides.
// On success the [models.Identity] is stored with [utils.WithIdentity].
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring authorization header")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("bearer token rejected")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// requireAuthenticated answers 401 to anonymous requests.
func requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireRole answers 401 to anonymous requests and 403 to identities
// lacking role.
func requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if !identity.HasRole(role) {
				logger.FromRequest(r).Warn().
					Str("subject", identity.Subject).
					Str("required_role", role).
					Msg("access denied")
				http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", tokenType)
	http.Error(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
}
