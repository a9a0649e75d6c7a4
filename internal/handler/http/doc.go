// Package http implements the HTTP transport layer of the mission planning
// service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// metrics, security headers, CORS and bearer-token authentication are handled
// in this package before requests are delegated to the service layer.
//
// Routes fall into three groups:
//   - public: health, build info, register/login and API docs
//   - admin: Prometheus metrics, role ADMIN required
//   - authenticated: the /api/v1 entity resources and every unknown route
package http
