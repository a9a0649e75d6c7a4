package models

import (
	"strings"
	"time"
)

// Well-known role names carried in the "roles" token claim.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents an account able to obtain bearer tokens.
// PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// JoinRoles encodes roles for the users.roles column.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}

// SplitRoles decodes the users.roles column. Empty entries are dropped.
func SplitRoles(s string) []string {
	roles := make([]string, 0, 2)
	for _, role := range strings.Split(s, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}

// Credentials is the request body of the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
