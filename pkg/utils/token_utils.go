package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors the claims the admin backend signs into its tokens. The
// client never holds the signing secret, so tokens are parsed without
// signature verification; only the backend decides whether a token is
// actually valid.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ParseTokenClaims decodes a JWT without verifying its signature and returns
// the embedded claims.
func ParseTokenClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token claims: %w", err)
	}
	return claims, nil
}

// TokenExpiry returns the expiry timestamp of a JWT, or an error if the token
// carries no exp claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims, err := ParseTokenClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no expiry claim")
	}
	return claims.ExpiresAt.Time, nil
}

// TokenExpiresWithin reports whether the token expires within the given
// leeway window (or has already expired, or cannot be parsed).
func TokenExpiresWithin(tokenString string, leeway time.Duration) bool {
	expiry, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return time.Until(expiry) <= leeway
}
