package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

const (
	defaultLoaderWait = 2 * time.Millisecond
	maxCollections    = 16
)

// Lister is the catalog surface the Loader needs.
type Lister interface {
	ListRaw(ctx context.Context, endpoint string) []map[string]any
}

// Loader holds one snapshot of the tag collections. Concurrent loads of
// different kinds are batched into a single dispatch whose GETs run in
// parallel; results are cached until Reset.
//
// A Loader is not shared between screens: the admin console and every
// composer own their own instance.
type Loader struct {
	loader *dataloader.Loader[domain.EntityKind, []map[string]any]
	log    *slog.Logger
}

// NewLoader creates a Loader over lister.
func NewLoader(lister Lister, logger *slog.Logger) *Loader {
	log := logger.With("adapter", "catalog_loader")
	batchFn := func(ctx context.Context, kinds []domain.EntityKind) []*dataloader.Result[[]map[string]any] {
		results := make([]*dataloader.Result[[]map[string]any], len(kinds))

		g, gctx := errgroup.WithContext(ctx)
		for i, kind := range kinds {
			g.Go(func() error {
				if !kind.IsValid() {
					results[i] = &dataloader.Result[[]map[string]any]{
						Error: fmt.Errorf("catalog loader: unknown kind %q", kind),
					}
					return nil
				}
				results[i] = &dataloader.Result[[]map[string]any]{Data: lister.ListRaw(gctx, kind.String())}
				return nil
			})
		}
		_ = g.Wait()

		log.DebugContext(ctx, "catalog batch loaded", slog.Int("collections", len(kinds)))
		return results
	}

	return &Loader{
		loader: dataloader.NewBatchedLoader(
			batchFn,
			dataloader.WithWait[domain.EntityKind, []map[string]any](defaultLoaderWait),
			dataloader.WithBatchCapacity[domain.EntityKind, []map[string]any](maxCollections),
		),
		log: log,
	}
}

// Records returns the normalized records of one collection.
func (l *Loader) Records(ctx context.Context, kind domain.EntityKind) []map[string]any {
	records, err := l.loader.Load(ctx, kind)()
	if err != nil {
		l.log.ErrorContext(ctx, "catalog load failed", slog.String("kind", kind.String()), slog.String("error", err.Error()))
		return []map[string]any{}
	}
	return records
}

// Snapshot loads every tag collection in one batch.
func (l *Loader) Snapshot(ctx context.Context) domain.Catalog {
	kinds := domain.AllEntityKinds()
	collections, errs := l.loader.LoadMany(ctx, kinds)()

	byKind := make(map[domain.EntityKind][]map[string]any, len(kinds))
	for i, kind := range kinds {
		if len(errs) > i && errs[i] != nil {
			l.log.ErrorContext(ctx, "catalog load failed", slog.String("kind", kind.String()), slog.String("error", errs[i].Error()))
			continue
		}
		byKind[kind] = collections[i]
	}

	return domain.Catalog{
		Languages:       decodeLogged[domain.Language](ctx, l.log, byKind[domain.EntityKindLanguage]),
		Skills:          decodeLogged[domain.Skill](ctx, l.log, byKind[domain.EntityKindSkill]),
		SubSkills:       decodeLogged[domain.SubSkill](ctx, l.log, byKind[domain.EntityKindSubSkill]),
		GrammarTypes:    decodeLogged[domain.GrammarType](ctx, l.log, byKind[domain.EntityKindGrammarType]),
		SubGrammarTypes: decodeLogged[domain.SubGrammarType](ctx, l.log, byKind[domain.EntityKindSubGrammarType]),
		Vocabularies:    decodeLogged[domain.Vocabulary](ctx, l.log, byKind[domain.EntityKindVocabulary]),
		SubVocabularies: decodeLogged[domain.SubVocabulary](ctx, l.log, byKind[domain.EntityKindSubVocabulary]),
	}
}

// Reset drops every cached collection so the next Snapshot refetches in full.
func (l *Loader) Reset() {
	l.loader.ClearAll()
}

func decodeLogged[T any](ctx context.Context, log *slog.Logger, records []map[string]any) []T {
	items, skipped := decodeRecords[T](records)
	if skipped > 0 {
		log.WarnContext(ctx, "catalog records skipped", slog.Int("skipped", skipped))
	}
	return items
}
