// Package catalog holds the static strategy identities and their random-walk
// parameters that seed an analytics build.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/sentquant/analytics/internal/series"
)

// Status declared strategy status
type Status string

const (
	StatusLive    Status = "Live"
	StatusOffline Status = "Offline"
)

// Identity is the immutable description of one strategy
type Identity struct {
	ID             string          `json:"id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Color          string          `json:"color"` // presentation hint, opaque here
	Protocol       string          `json:"protocol,omitempty"`
	Status         Status          `json:"status" validate:"oneof=Live Offline"`
	TotalReturnPct float64         `json:"totalReturnPct"`
	MaxDrawdownPct float64         `json:"maxDrawdownPct" validate:"lte=0"`
	Sharpe         float64         `json:"sharpe"`
	AprPct         float64         `json:"aprPct" validate:"gte=0"` // 0 = not declared
	TrackedCapital decimal.Decimal `json:"trackedCapital"`
}

// Entry pairs an identity with its behavior parameters
type Entry struct {
	Identity Identity        `json:"identity"`
	Behavior series.Behavior `json:"behavior"`
}

// Catalog is an ordered, validated, read-only set of entries
// ⭐ SSOT: 전략 목록은 여기서만 정의
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New validates entries and builds a catalog
func New(entries ...Entry) (*Catalog, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}

	c := &Catalog{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		c.index[e.Identity.ID] = i
	}
	return c, nil
}

// Len returns the number of strategies
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in catalog order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IDs returns strategy ids in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.Identity.ID
	}
	return ids
}

// Behaviors returns behavior params in catalog order
func (c *Catalog) Behaviors() []series.Behavior {
	out := make([]series.Behavior, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Behavior
	}
	return out
}

// Lookup finds an entry by id
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Hash returns sha256 over the canonical JSON of the entries
// 동일 카탈로그 → 동일 해시 (빌드 재현성 기록용)
func (c *Catalog) Hash() (string, error) {
	data, err := json.Marshal(c.entries)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
