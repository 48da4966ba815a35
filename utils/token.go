package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims reads the claims out of a bearer token without verifying
// the signature. The client never holds the signing secret; the server is
// the authority and the claims are only used for local session checks.
func DecodeClaims(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, errors.New("empty token")
	}

	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenExpired reports whether the token carries an exp claim in the past.
// Tokens without an exp claim are treated as live.
func TokenExpired(claims *TokenClaims) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
