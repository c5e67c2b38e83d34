package hierarchy

import (
	"strings"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Index is a bidirectional id ↔ display value lookup over one collection.
type Index[T domain.Tag] struct {
	kind    domain.EntityKind
	byID    map[string]T
	byValue map[string]string
	byFold  map[string]string
}

// NewIndex builds an Index over items. When two items share a display value
// the first one wins.
func NewIndex[T domain.Tag](kind domain.EntityKind, items []T) *Index[T] {
	ix := &Index[T]{
		kind:    kind,
		byID:    make(map[string]T, len(items)),
		byValue: make(map[string]string, len(items)),
		byFold:  make(map[string]string, len(items)),
	}
	for _, item := range items {
		id := item.TagID()
		if id == "" {
			continue
		}
		ix.byID[id] = item
		if _, ok := ix.byValue[item.TagValue()]; !ok {
			ix.byValue[item.TagValue()] = id
		}
		fold := strings.ToLower(item.TagValue())
		if _, ok := ix.byFold[fold]; !ok {
			ix.byFold[fold] = id
		}
	}
	return ix
}

// ID resolves ref, which may be an id or a display value.
func (ix *Index[T]) ID(ref string) (string, bool) {
	if _, ok := ix.byID[ref]; ok {
		return ref, true
	}
	if id, ok := ix.byValue[ref]; ok {
		return id, true
	}
	id, ok := ix.byFold[strings.ToLower(strings.TrimSpace(ref))]
	return id, ok
}

// Value returns the display value of id.
func (ix *Index[T]) Value(id string) (string, bool) {
	item, ok := ix.byID[id]
	if !ok {
		return "", false
	}
	return item.TagValue(), true
}

// Values maps ids back to display values. Ids that no longer exist are
// returned separately so callers can show them as unresolved.
func (ix *Index[T]) Values(ids []string) (values []string, unresolved []string) {
	values = make([]string, 0, len(ids))
	for _, id := range ids {
		v, ok := ix.Value(id)
		if !ok {
			unresolved = append(unresolved, id)
			continue
		}
		values = append(values, v)
	}
	return values, unresolved
}
