package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by the identity provider session token.
// The subject is the provider's user id.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	SessionID string `json:"sid,omitempty"`
}

// ExternalID returns the provider user id
func (c *SessionClaims) ExternalID() string {
	return c.Subject
}
