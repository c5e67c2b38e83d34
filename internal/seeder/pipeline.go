// Package seeder loads roleplay documents from JSON files into the
// document store. It is run offline, not by the server.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Phases in execution order. Agents go first so language documents can be
// checked against them by whoever reads the store.
const (
	PhaseAgents    = "agents"
	PhaseLanguages = "languages"
)

var allPhases = []string{PhaseAgents, PhaseLanguages}

//go:generate moq -out document_repo_mock_test.go -pkg seeder . documentRepo
type documentRepo interface {
	UpsertAgent(ctx context.Context, id string, doc map[string]any) error
	UpsertLanguage(ctx context.Context, rl domain.RoleplayLanguage) (*domain.RoleplayLanguage, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PhaseResult holds the outcome of a single phase.
type PhaseResult struct {
	Written  int
	Duration time.Duration
	Err      error
}

// Pipeline writes each phase's documents in one transaction.
type Pipeline struct {
	log     *slog.Logger
	repo    documentRepo
	tx      txRunner
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(logger *slog.Logger, repo documentRepo, tx txRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:     logger.With("service", "seeder"),
		repo:    repo,
		tx:      tx,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors reports whether any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the phases whose source path is configured. A non-empty
// phases list restricts the run further. A failed phase rolls back on its
// own and does not stop the next one.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return domain.NewValidationError("phase", fmt.Sprintf("unknown phase %q", ph))
		}
	}

	for _, phase := range allPhases {
		if len(phases) > 0 && !slices.Contains(phases, phase) {
			continue
		}
		path := p.sourcePath(phase)
		if path == "" {
			p.log.InfoContext(ctx, "phase skipped: no source", slog.String("phase", phase))
			continue
		}

		start := time.Now()
		written, err := p.runPhase(ctx, phase, path)
		result := PhaseResult{Written: written, Duration: time.Since(start), Err: err}
		p.results[phase] = result

		if err != nil {
			p.log.ErrorContext(ctx, "phase failed", slog.String("phase", phase), slog.String("error", err.Error()))
			continue
		}
		p.log.InfoContext(ctx, "phase completed",
			slog.String("phase", phase),
			slog.Int("written", written),
			slog.Bool("dry_run", p.cfg.DryRun),
			slog.Duration("duration", result.Duration),
		)
	}
	return nil
}

func (p *Pipeline) sourcePath(phase string) string {
	switch phase {
	case PhaseAgents:
		return p.cfg.AgentsPath
	case PhaseLanguages:
		return p.cfg.LanguagesPath
	}
	return ""
}

func (p *Pipeline) runPhase(ctx context.Context, phase, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch phase {
	case PhaseAgents:
		agents, err := ReadAgents(f)
		if err != nil {
			return 0, err
		}
		return p.write(ctx, len(agents), func(ctx context.Context, i int) error {
			return p.repo.UpsertAgent(ctx, agents[i].ID, agents[i].Document)
		})
	default:
		docs, err := ReadLanguages(f)
		if err != nil {
			return 0, err
		}
		return p.write(ctx, len(docs), func(ctx context.Context, i int) error {
			_, err := p.repo.UpsertLanguage(ctx, docs[i])
			return err
		})
	}
}

// write runs fn for every index inside one transaction. In dry-run mode it
// only counts.
func (p *Pipeline) write(ctx context.Context, n int, fn func(ctx context.Context, i int) error) (int, error) {
	if p.cfg.DryRun {
		return n, nil
	}
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		for i := range n {
			if err := fn(ctx, i); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
