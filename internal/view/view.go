// Package view holds presentation state as an immutable value. Every change
// returns a new State, so a render pass always sees one consistent snapshot.
package view

import (
	"fmt"
	"sort"

	"github.com/sentquant/analytics/internal/series"
	"github.com/sentquant/analytics/internal/store"
)

// Tab 화면 탭
type Tab string

const (
	TabOverview  Tab = "overview"
	TabStrategy  Tab = "strategy"
	TabBenchmark Tab = "benchmark"
	TabRanking   Tab = "ranking"
)

// DefaultLang is the language tag of a fresh state
const DefaultLang = "en"

// ParseTab parses a tab name
func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabOverview, TabStrategy, TabBenchmark, TabRanking:
		return t, nil
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// State is the presentation state: active tab, selected strategy,
// hidden benchmark series and language tag
type State struct {
	tab      Tab
	selected string
	hidden   map[string]struct{}
	lang     string
}

// New returns the initial state
func New() State {
	return State{tab: TabOverview, lang: DefaultLang}
}

// Tab returns the active tab
func (s State) Tab() Tab { return s.tab }

// SelectedID returns the selected strategy id, empty when none
func (s State) SelectedID() string { return s.selected }

// Lang returns the language tag
func (s State) Lang() string { return s.lang }

// IsHidden reports whether id's benchmark series is hidden
func (s State) IsHidden(id string) bool {
	_, ok := s.hidden[id]
	return ok
}

// HiddenIDs returns hidden ids, sorted
func (s State) HiddenIDs() []string {
	out := make([]string, 0, len(s.hidden))
	for id := range s.hidden {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// WithTab returns a copy with tab active
func (s State) WithTab(tab Tab) State {
	s.hidden = s.cloneHidden()
	s.tab = tab
	return s
}

// WithSelected returns a copy with id selected
func (s State) WithSelected(id string) State {
	s.hidden = s.cloneHidden()
	s.selected = id
	return s
}

// WithLang returns a copy using language tag lang
func (s State) WithLang(lang string) State {
	s.hidden = s.cloneHidden()
	s.lang = lang
	return s
}

// WithHidden returns a copy where id is hidden or shown
func (s State) WithHidden(id string, hidden bool) State {
	s.hidden = s.cloneHidden()
	if hidden {
		s.hidden[id] = struct{}{}
	} else {
		delete(s.hidden, id)
	}
	return s
}

// Toggle flips the visibility of id
func (s State) Toggle(id string) State {
	return s.WithHidden(id, !s.IsHidden(id))
}

func (s State) cloneHidden() map[string]struct{} {
	out := make(map[string]struct{}, len(s.hidden))
	for id := range s.hidden {
		out[id] = struct{}{}
	}
	return out
}

// Labeler resolves a display label for a language tag and key.
// Supplied by the localization layer; must be pure.
type Labeler func(tag, key string) string

// Label resolves key in the state's language. A nil labeler echoes the key.
func (s State) Label(l Labeler, key string) string {
	if l == nil {
		return key
	}
	return l(s.lang, key)
}

// Selected resolves the selected record. An empty selection falls back to
// the first strategy in catalog order.
func (s State) Selected(st *store.Store) (store.Record, bool) {
	id := s.selected
	if id == "" {
		ids := st.IDs()
		if len(ids) == 0 {
			return store.Record{}, false
		}
		id = ids[0]
	}
	return st.Record(id)
}

// VisibleIDs filters ids down to the ones not hidden, keeping order
func (s State) VisibleIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !s.IsHidden(id) {
			out = append(out, id)
		}
	}
	return out
}

// VisibleBenchmark returns the benchmark rows restricted to visible strategies
func (s State) VisibleBenchmark(st *store.Store) []series.BenchmarkRow {
	rows := st.Benchmark()
	if len(s.hidden) == 0 {
		return rows
	}
	for _, row := range rows {
		for id := range s.hidden {
			delete(row.Values, id)
		}
	}
	return rows
}
