// Package roleplaylang stores roleplay documents in PostgreSQL: the agents
// collection and the per-language roleplay context.
package roleplaylang

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/roleplay-admin/internal/adapter/catalog"
	"github.com/heartmarshall/roleplay-admin/internal/adapter/postgres"
	"github.com/heartmarshall/roleplay-admin/internal/config"
	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Repo reads and writes roleplay documents.
type Repo struct {
	pool           *pgxpool.Pool
	log            *slog.Logger
	agentsTable    string
	languagesTable string
}

// New creates a Repo over the given tables. Both names must be plain SQL
// identifiers since they are interpolated into queries.
func New(pool *pgxpool.Pool, logger *slog.Logger, agentsTable, languagesTable string) (*Repo, error) {
	if !config.IsIdentifier(agentsTable) {
		return nil, fmt.Errorf("agents table %q: %w", agentsTable, domain.ErrValidation)
	}
	if !config.IsIdentifier(languagesTable) {
		return nil, fmt.Errorf("languages table %q: %w", languagesTable, domain.ErrValidation)
	}
	return &Repo{
		pool:           pool,
		log:            logger.With("adapter", "roleplaylang"),
		agentsTable:    agentsTable,
		languagesTable: languagesTable,
	}, nil
}

// FindByRoleAndLanguage returns the language document of roleID whose
// language equals language, ignoring case. Returns domain.ErrNotFound when
// there is none.
func (r *Repo) FindByRoleAndLanguage(ctx context.Context, roleID uuid.UUID, language string) (*domain.RoleplayLanguage, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, domain.NewValidationError("language", "required")
	}

	query, args, err := postgres.Builder().
		Select("id", "role_id", "language", "document").
		From(r.languagesTable).
		Where(sq.Eq{"role_id": roleID}).
		Where(sq.Expr("lower(language) = lower(?)", language)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build roleplay language query: %w", err)
	}

	var (
		id, role uuid.UUID
		lang     string
		doc      []byte
	)
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	if err := row.Scan(&id, &role, &lang, &doc); err != nil {
		return nil, postgres.MapError(err, "roleplay_language", roleID)
	}

	var rl domain.RoleplayLanguage
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &rl); err != nil {
			return nil, fmt.Errorf("decode roleplay_language %s: %w", id, err)
		}
	}
	rl.ID = id.String()
	rl.RoleID = role.String()
	rl.Language = lang
	return &rl, nil
}

// UpsertLanguage inserts rl, or replaces the document stored for the same
// (role, language) pair. An empty ID is generated.
func (r *Repo) UpsertLanguage(ctx context.Context, rl domain.RoleplayLanguage) (*domain.RoleplayLanguage, error) {
	roleID, err := uuid.Parse(rl.RoleID)
	if err != nil {
		return nil, domain.NewValidationError("roleId", "must be a valid UUID")
	}
	if strings.TrimSpace(rl.Language) == "" {
		return nil, domain.NewValidationError("language", "required")
	}
	id := uuid.New()
	if rl.ID != "" {
		if id, err = uuid.Parse(rl.ID); err != nil {
			return nil, domain.NewValidationError("id", "must be a valid UUID")
		}
	}

	doc, err := json.Marshal(rl)
	if err != nil {
		return nil, fmt.Errorf("encode roleplay_language: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(r.languagesTable).
		Columns("id", "role_id", "language", "document").
		Values(id, roleID, strings.TrimSpace(rl.Language), doc).
		Suffix("ON CONFLICT (role_id, lower(language)) DO UPDATE SET " +
			"language = EXCLUDED.language, document = EXCLUDED.document, updated_at = now() " +
			"RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build roleplay language upsert: %w", err)
	}

	var stored uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&stored); err != nil {
		return nil, postgres.MapError(err, "roleplay_language", roleID)
	}

	out := rl
	out.ID = stored.String()
	out.RoleID = roleID.String()
	out.Language = strings.TrimSpace(rl.Language)
	return &out, nil
}

// ListAgents returns every roleplay agent ordered by id. Documents are
// normalized like catalog records; the row id is authoritative. Documents
// that do not decode are skipped and logged.
func (r *Repo) ListAgents(ctx context.Context) ([]domain.Roleplay, error) {
	query, args, err := postgres.Builder().
		Select("id", "document").
		From(r.agentsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build agents query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.agentsTable, err)
	}
	defer rows.Close()

	agents := make([]domain.Roleplay, 0)
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.agentsTable, err)
		}
		rp, err := decodeAgent(id, doc)
		if err != nil {
			r.log.WarnContext(ctx, "skipping undecodable agent", slog.String("id", id), slog.String("error", err.Error()))
			continue
		}
		agents = append(agents, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.agentsTable, err)
	}
	return agents, nil
}

// UpsertAgent stores doc under id, replacing any previous document.
func (r *Repo) UpsertAgent(ctx context.Context, id string, doc map[string]any) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewValidationError("id", "required")
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode agent %s: %w", id, err)
	}

	query, args, err := postgres.Builder().
		Insert(r.agentsTable).
		Columns("id", "document").
		Values(id, raw).
		Suffix("ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build agent upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "roleplay_agent", id)
	}
	return nil
}

// CheckTables verifies that both tables exist. The migrations only create
// roleplay_agents and role_play_languages; other configured names must
// point at tables created outside them.
func (r *Repo) CheckTables(ctx context.Context) error {
	for _, table := range []string{r.agentsTable, r.languagesTable} {
		var exists bool
		err := postgres.QuerierFromCtx(ctx, r.pool).
			QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", table).
			Scan(&exists)
		if err != nil {
			return fmt.Errorf("check table %s: %w", table, err)
		}
		if !exists {
			return fmt.Errorf("table %s does not exist, run migrations or fix the configured name: %w", table, domain.ErrNotFound)
		}
	}
	return nil
}

// Ping checks the database connection.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func decodeAgent(id string, doc []byte) (domain.Roleplay, error) {
	var rec map[string]any
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &rec); err != nil {
			return domain.Roleplay{}, err
		}
	}
	rec = catalog.NormalizeRecord(rec)
	rec["id"] = id

	raw, err := json.Marshal(rec)
	if err != nil {
		return domain.Roleplay{}, err
	}
	var rp domain.Roleplay
	if err := json.Unmarshal(raw, &rp); err != nil {
		return domain.Roleplay{}, err
	}
	return rp, nil
}
