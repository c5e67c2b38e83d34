package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Roleplays lists every roleplay agent of the catalog.
func (c *Client) Roleplays(ctx context.Context) []domain.Roleplay {
	records, err := c.listRaw(ctx, c.agentsURL("all"))
	if err != nil {
		c.log.ErrorContext(ctx, "catalog list roleplays failed", slog.String("error", err.Error()))
		return []domain.Roleplay{}
	}
	items, skipped := decodeRecords[domain.Roleplay](records)
	if skipped > 0 {
		c.log.WarnContext(ctx, "catalog roleplays skipped", slog.Int("skipped", skipped))
	}
	return items
}

// Roleplay fetches one public roleplay. Returns nil when absent or on failure.
func (c *Client) Roleplay(ctx context.Context, id string) *domain.Roleplay {
	if !validRoleplayID(id) {
		return nil
	}

	status, body, err := c.do(ctx, http.MethodGet, c.agentsURL("public", id), nil)
	if err != nil {
		c.log.ErrorContext(ctx, "catalog get roleplay failed",
			slog.String("roleplay_id", id),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if status != http.StatusOK {
		if status != http.StatusNotFound {
			c.log.ErrorContext(ctx, "catalog get roleplay: unexpected status",
				slog.String("roleplay_id", id),
				slog.Int("status", status),
			)
		}
		return nil
	}

	rec, ok := decodeSingleRecord(body, "")
	if !ok {
		return nil
	}
	var rp domain.Roleplay
	if err := remarshal(NormalizeRecord(rec), &rp); err != nil {
		c.log.ErrorContext(ctx, "catalog get roleplay: decode", slog.String("error", err.Error()))
		return nil
	}
	return &rp
}
