package hierarchy

import (
	"slices"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// View is one dependent option list: the full collection, the part visible
// under the current filter and the current selection.
//
// The selection is held as ids, so two items sharing a display value in
// different languages never resolve to each other. It is always a subset of
// the visible items.
type View[T domain.Tag] struct {
	kind     domain.EntityKind
	all      []T
	filter   Filter
	visible  []T
	selected []string
}

// NewView creates a View showing every item, with nothing selected.
func NewView[T domain.Tag](kind domain.EntityKind, all []T) *View[T] {
	v := &View[T]{kind: kind}
	v.Reload(all)
	return v
}

// Reload replaces the full collection, re-applies the current filter and
// prunes the selection.
func (v *View[T]) Reload(all []T) {
	v.all = slices.Clone(all)
	v.visible = SortByValue(Visible(v.all, v.filter))
	v.selected = keepVisible(v.selected, v.visible)
}

// Apply sets the filter and recomputes the visible set. When the ordered
// visible values are unchanged it returns false and touches nothing;
// otherwise the selection is pruned to the new visible set.
func (v *View[T]) Apply(f Filter) bool {
	v.filter = Filter{
		ParentIDs:         slices.Clone(f.ParentIDs),
		LanguageID:        f.LanguageID,
		DefaultLanguageID: f.DefaultLanguageID,
	}
	next := SortByValue(Visible(v.all, v.filter))
	if slices.Equal(Values(next), Values(v.visible)) {
		return false
	}
	v.visible = next
	v.selected = keepVisible(v.selected, v.visible)
	return true
}

// Select replaces the selection. values may be ids or display values and
// are resolved among the visible items only. Every value must be visible;
// otherwise the selection is left unchanged and an *domain.UnselectableError
// is returned. Duplicates are dropped.
func (v *View[T]) Select(values []string) error {
	ix := NewIndex(v.kind, v.visible)
	var missing []string
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, val := range values {
		id, ok := ix.ID(val)
		if !ok {
			missing = append(missing, val)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	if len(missing) > 0 {
		return &domain.UnselectableError{Kind: v.kind, Values: missing}
	}
	v.selected = result
	return nil
}

// Visible returns the visible items sorted by display value.
func (v *View[T]) Visible() []T { return slices.Clone(v.visible) }

// Options returns the visible display values.
func (v *View[T]) Options() []string { return Values(v.visible) }

// Selected returns the selected display values.
func (v *View[T]) Selected() []string {
	values, _ := NewIndex(v.kind, v.visible).Values(v.selected)
	return values
}

// SelectedIDs returns the ids of the selection.
func (v *View[T]) SelectedIDs() []string { return slices.Clone(v.selected) }

// VisibleIDs returns the ids of the visible items.
func (v *View[T]) VisibleIDs() []string {
	ids := make([]string, len(v.visible))
	for i, item := range v.visible {
		ids[i] = item.TagID()
	}
	return ids
}

func keepVisible[T domain.Tag](ids []string, visible []T) []string {
	keep := make(map[string]struct{}, len(visible))
	for _, item := range visible {
		keep[item.TagID()] = struct{}{}
	}
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := keep[id]; ok {
			result = append(result, id)
		}
	}
	return result
}
