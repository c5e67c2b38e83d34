package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/pkg/ctxutil"
)

var errUnauthorized = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)

// Login checks the operator credentials against the configured admin account
// and issues an access token with the admin role.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	nameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.cfg.AdminUsername)) == 1
	// The hash is always compared so unknown names take as long as wrong passwords.
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(input.Password))
	if !nameOK || passErr != nil {
		s.log.WarnContext(ctx, "login rejected", slog.String("username", input.Username))
		return nil, errUnauthorized
	}

	token, exp, err := s.jwt.GenerateAccessToken(input.Username, ctxutil.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "operator logged in", slog.String("username", input.Username))

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   exp.UTC().Format(time.RFC3339),
		Username:    input.Username,
		Role:        ctxutil.RoleAdmin,
	}, nil
}
