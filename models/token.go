package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued and accepted by the service.
//
// The subject ("sub") carries the username and "roles" carries the list of
// role names granted to it.
type Claims struct {
	jwt.RegisteredClaims

	Roles []string `json:"roles"`
}

// Token is a freshly signed bearer token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity is the request-scoped principal established by a valid bearer
// token.
type Identity struct {
	Subject string   `json:"subject"`
	Roles   []string `json:"roles"`
}

// HasRole reports whether the identity was granted role. The comparison is
// case-insensitive and ignores a "ROLE_" prefix on either side.
func (i Identity) HasRole(role string) bool {
	want := normalizeRole(role)
	for _, r := range i.Roles {
		if normalizeRole(r) == want {
			return true
		}
	}
	return false
}

func normalizeRole(role string) string {
	role = strings.ToUpper(strings.TrimSpace(role))
	return strings.TrimPrefix(role, "ROLE_")
}
