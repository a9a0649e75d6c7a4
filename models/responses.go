package models

import "time"

// AuthResponse is returned by the register and login endpoints. The same
// token is also sent in the "Authorization" response header.
type AuthResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
}

// Health statuses reported by /actuator/health.
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// HealthResponse is the body of /actuator/health.
type HealthResponse struct {
	Status string `json:"status"`
}
