package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/mission-planner/models"
)

const (
	apiPrefix      = "/api/v1"
	actuatorPrefix = "/actuator"
)

// Init builds the router. Middleware order: recoverer, trace id, access log,
// metrics, security headers, compression, timeout, CORS, authentication.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.metrics.withMetrics)
	router.Use(withSecurityHeaders)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withCORS())
	router.Use(h.authenticate)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(actuatorPrefix+"/health", h.health)
		r.Get(actuatorPrefix+"/info", h.info)

		r.Post(apiPrefix+"/auth/register", h.register)
		r.Post(apiPrefix+"/auth/login", h.login)

		r.Get("/api-docs", h.apiDocs)
		r.Get("/swagger-ui", h.redirectSwaggerUI)
		r.Get("/swagger-ui/*", h.swaggerUI)
	})

	router.Group(func(r chi.Router) {
		r.Use(requireRole(models.RoleAdmin))
		r.Get(actuatorPrefix+"/prometheus", h.metrics.handler().ServeHTTP)
	})

	router.Group(func(r chi.Router) {
		r.Use(requireAuthenticated)
		r.Route(apiPrefix, func(r chi.Router) {
			mountEntity[models.Mission](r, h.services.Missions)
			mountEntity[models.MissionAsset](r, h.services.MissionAssets)
			mountEntity[models.MissionPersonnel](r, h.services.MissionPersonnel)
			mountEntity[models.MissionStatus](r, h.services.MissionStatuses)
			mountEntity[models.Intelligence](r, h.services.Intelligence)
			mountEntity[models.RiskAssessment](r, h.services.RiskAssessments)
		})
	})

	// Unknown routes and methods require an identity too: anonymous callers
	// get 401, authenticated ones 404.
	notFound := requireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	router.NotFound(notFound.ServeHTTP)
	router.MethodNotAllowed(notFound.ServeHTTP)

	return router
}
