package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// languageUpserter is the slice of the roleplay repo seeding needs.
type languageUpserter interface {
	UpsertLanguage(ctx context.Context, rl domain.RoleplayLanguage) (*domain.RoleplayLanguage, error)
}

// SeedRoleplayLanguage stores a language document for roleID and returns it.
func SeedRoleplayLanguage(t *testing.T, repo languageUpserter, roleID uuid.UUID, language string) domain.RoleplayLanguage {
	t.Helper()

	suffix := uuid.NewString()[:8]
	rl, err := repo.UpsertLanguage(context.Background(), domain.RoleplayLanguage{
		RoleID:         roleID.String(),
		Language:       language,
		Description:    "description " + suffix,
		StudentContext: "context " + suffix,
	})
	if err != nil {
		t.Fatalf("testhelper: SeedRoleplayLanguage: %v", err)
	}
	return *rl
}
