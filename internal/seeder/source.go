package seeder

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/roleplay-admin/internal/adapter/catalog"
	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Agent is one roleplay agent document to store.
type Agent struct {
	ID       string
	Document map[string]any
}

// ReadAgents decodes a JSON array of agent documents. Ids are normalized
// the same way catalog records are; every document needs one.
func ReadAgents(r io.Reader) ([]Agent, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode agents: %w", err)
	}

	agents := make([]Agent, 0, len(records))
	for i, rec := range records {
		doc := catalog.NormalizeRecord(rec)
		id, _ := doc["id"].(string)
		if strings.TrimSpace(id) == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("agents[%d].id", i), "required")
		}
		agents = append(agents, Agent{ID: id, Document: doc})
	}
	return agents, nil
}

// ReadLanguages decodes a JSON array of roleplay language documents.
func ReadLanguages(r io.Reader) ([]domain.RoleplayLanguage, error) {
	var docs []domain.RoleplayLanguage
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode languages: %w", err)
	}

	var errs []domain.FieldError
	for i, d := range docs {
		if _, err := uuid.Parse(d.RoleID); err != nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("languages[%d].roleId", i), Message: "must be a UUID"})
		}
		if strings.TrimSpace(d.Language) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("languages[%d].language", i), Message: "required"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return docs, nil
}
