package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is the fixed validity window of an access token.
const AccessTokenTTL = 2 * time.Hour

// Claims are the custom claims carried by an access token.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed access tokens.
type TokenService interface {
	// IssueToken signs the claims. Issue time and expiry are set by the service.
	IssueToken(claims Claims) (string, error)

	// ValidateToken parses a token string and verifies signature and expiry.
	ValidateToken(tokenString string) (*Claims, error)
}
