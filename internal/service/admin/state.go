package admin

import (
	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/notify"
	"github.com/heartmarshall/roleplay-admin/internal/service/hierarchy"
)

// RowState is the lifecycle of one console row.
type RowState string

const (
	RowViewing          RowState = "viewing"
	RowEditing          RowState = "editing"
	RowConfirmingDelete RowState = "confirming-delete"
)

// Row is one entry of a console list.
type Row struct {
	ID       string   `json:"id"`
	Value    string   `json:"value"`
	Parent   string   `json:"parent,omitempty"`
	Language string   `json:"language,omitempty"`
	State    RowState `json:"state"`
}

// State is a serializable snapshot of the console.
type State struct {
	Open            bool                  `json:"open"`
	ScrollLocked    bool                  `json:"scrollLocked"`
	Filters         Filters               `json:"filters"`
	Busy            []domain.EntityKind   `json:"busy"`
	Languages       []Row                 `json:"languages"`
	Skills          []Row                 `json:"skills"`
	SubSkills       []Row                 `json:"subSkills"`
	GrammarTypes    []Row                 `json:"grammarTypes"`
	SubGrammarTypes []Row                 `json:"subGrammarTypes"`
	Vocabularies    []Row                 `json:"vocabularies"`
	SubVocabularies []Row                 `json:"subVocabularies"`
	Notifications   []notify.Notification `json:"notifications"`
}

// State returns the console lists under the current filters, sorted by
// display value.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	lang := s.filters.GrammarLanguage
	skillParent := s.parentIDs(domain.EntityKindSubSkill)
	grammarParent := s.parentIDs(domain.EntityKindSubGrammarType)
	vocabParent := s.parentIDs(domain.EntityKindSubVocabulary)

	st := State{
		Open:          s.open,
		ScrollLocked:  s.lock.Locked(),
		Filters:       s.filters.clone(),
		Busy:          []domain.EntityKind{},
		Notifications: s.notify.List(),
	}
	for _, kind := range domain.AllEntityKinds() {
		if s.busy[kind] {
			st.Busy = append(st.Busy, kind)
		}
	}

	st.Languages = rows(s, domain.EntityKindLanguage, s.store.Languages())
	st.Skills = rows(s, domain.EntityKindSkill, s.store.Skills())
	st.SubSkills = rows(s, domain.EntityKindSubSkill, s.store.VisibleSubSkills(skillParent, ""))
	st.GrammarTypes = rows(s, domain.EntityKindGrammarType, s.store.VisibleGrammarTypes(lang))
	st.SubGrammarTypes = rows(s, domain.EntityKindSubGrammarType, s.store.VisibleSubGrammarTypes(grammarParent, lang))
	st.Vocabularies = rows(s, domain.EntityKindVocabulary, s.store.Vocabularies())
	st.SubVocabularies = rows(s, domain.EntityKindSubVocabulary, s.store.VisibleSubVocabularies(vocabParent))
	return st
}

// parentIDs returns the active parent filter of child as a filter list.
// Must be called with mu held.
func (s *Service) parentIDs(child domain.EntityKind) []string {
	if id, ok := s.parentID(child); ok {
		return []string{id}
	}
	return nil
}

// rows applies the search filter of kind to the sorted visible items.
// Must be called with mu held.
func rows[T domain.Tag](s *Service, kind domain.EntityKind, sorted []T) []Row {
	visible := hierarchy.Search(sorted, s.filters.Search[kind])
	out := make([]Row, 0, len(visible))
	for _, item := range visible {
		r := Row{ID: item.TagID(), Value: item.TagValue(), State: RowViewing}
		if c, ok := any(item).(domain.Child); ok {
			r.Parent = c.ParentID()
		}
		if sc, ok := any(item).(domain.Scoped); ok {
			r.Language = sc.ScopeLanguage()
		}
		switch r.ID {
		case s.editing[kind]:
			r.State = RowEditing
		case s.deleting[kind]:
			r.State = RowConfirmingDelete
		}
		out = append(out, r)
	}
	return out
}
