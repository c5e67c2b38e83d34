// Package auth authenticates console operators.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/roleplay-admin/internal/auth"
	"github.com/heartmarshall/roleplay-admin/internal/config"
)

type jwtManager interface {
	GenerateAccessToken(username, role string) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service implements operator login and token verification.
type Service struct {
	log *slog.Logger
	jwt jwtManager
	cfg config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log: logger.With("service", "auth"),
		jwt: jwt,
		cfg: cfg,
	}
}

// ValidateToken verifies an access token and returns its identity.
// Any failure is reported as domain.ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return auth.Claims{}, errUnauthorized
	}
	return claims, nil
}
