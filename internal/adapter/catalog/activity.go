package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

const activitiesEndpoint = "activities"

// validRoleplayID rejects the placeholder ids a client produces before a
// roleplay has loaded.
func validRoleplayID(id string) bool {
	switch strings.TrimSpace(id) {
	case "", "undefined", "null":
		return false
	}
	return true
}

// GetRoleplayActivity returns the stored activity of a roleplay, or nil when
// the id is a placeholder, the catalog has none (404) or the call fails.
func (c *Client) GetRoleplayActivity(ctx context.Context, roleplayID string) *domain.RoleplayActivity {
	return c.getActivity(ctx, roleplayID, "")
}

// GetRoleplayActivityByLanguage is GetRoleplayActivity narrowed to one language id.
func (c *Client) GetRoleplayActivityByLanguage(ctx context.Context, roleplayID, languageID string) *domain.RoleplayActivity {
	return c.getActivity(ctx, roleplayID, languageID)
}

// CreateActivity POSTs the full activity payload. The catalog upserts on
// (rolePlayId, language).
func (c *Client) CreateActivity(ctx context.Context, payload domain.ActivityPayload) bool {
	return c.Create(ctx, activitiesEndpoint, withEmptyLists(payload))
}

func (c *Client) getActivity(ctx context.Context, roleplayID, languageID string) *domain.RoleplayActivity {
	if !validRoleplayID(roleplayID) {
		return nil
	}

	reqURL := c.activitiesURL(activitiesEndpoint, "roleplays", roleplayID)
	if languageID != "" {
		reqURL += "?" + url.Values{"language": {languageID}}.Encode()
	}

	status, body, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.ErrorContext(ctx, "catalog get activity failed",
			slog.String("roleplay_id", roleplayID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if status == http.StatusNotFound {
		return nil
	}
	if status != http.StatusOK {
		c.log.ErrorContext(ctx, "catalog get activity: unexpected status",
			slog.String("roleplay_id", roleplayID),
			slog.Int("status", status),
		)
		return nil
	}

	rec, ok := decodeSingleRecord(body, languageID)
	if !ok {
		c.log.ErrorContext(ctx, "catalog get activity: undecodable body", slog.String("roleplay_id", roleplayID))
		return nil
	}

	var activity domain.RoleplayActivity
	if err := remarshal(NormalizeRecord(rec), &activity); err != nil {
		c.log.ErrorContext(ctx, "catalog get activity: decode",
			slog.String("roleplay_id", roleplayID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &activity
}

// decodeSingleRecord accepts a single object or an array of per-language
// records. From an array the record matching languageID wins, else the first.
func decodeSingleRecord(body []byte, languageID string) (map[string]any, bool) {
	var single map[string]any
	if err := json.Unmarshal(body, &single); err == nil && single != nil {
		return single, true
	}

	var many []map[string]any
	if err := json.Unmarshal(body, &many); err != nil || len(many) == 0 {
		return nil, false
	}
	if languageID != "" {
		for _, rec := range many {
			if lang, ok := idString(NormalizeRecord(rec)["language"]); ok && lang == languageID {
				return rec, true
			}
		}
	}
	return many[0], true
}

// withEmptyLists replaces nil lists with empty ones so the catalog receives
// [] instead of null.
func withEmptyLists(p domain.ActivityPayload) domain.ActivityPayload {
	for _, list := range []*[]string{
		&p.Theme, &p.SkillMain, &p.SubSkill, &p.Grammar,
		&p.SubGrammar, &p.Vocabulary, &p.SubVocabulary,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
	return p
}
