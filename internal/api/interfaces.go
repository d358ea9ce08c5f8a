package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/vital/pkg/entity"
)

// SessionTokenI signs and parses the session cookie value.
type SessionTokenI interface {
	GenerateToken(session *entity.Session) (string, error)
	ParseToken(tokenString string) (*SessionClaims, error)
}

// SessionClaims carry the session id as jti.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
