package entity

import (
	"slices"
	"time"
)

// Token scopes understood by the API.
const (
	ScopeMe    = "me"
	ScopeItems = "items"
)

// TokenClaims is the decoded, verified content of an access token.
type TokenClaims struct {
	TokenID   string
	UserID    int64
	Username  string
	Scopes    []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasScope reports whether the token was granted the given scope.
func (c *TokenClaims) HasScope(scope string) bool {
	return c != nil && slices.Contains(c.Scopes, scope)
}

// AccessToken is what a successful login hands back to the caller.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}
