// Package export renders an analytics store as JSON or as an XLSX workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/sentquant/analytics/internal/ranking"
	"github.com/sentquant/analytics/internal/series"
	"github.com/sentquant/analytics/internal/store"
)

// Document JSON 내보내기 최상위 구조
type Document struct {
	RunID        string                `json:"runId"`
	BuiltAt      time.Time             `json:"builtAt"`
	CatalogHash  string                `json:"catalogHash"`
	DrawdownMode string                `json:"drawdownMode"`
	StatsMode    string                `json:"statsMode"`
	Records      []store.Record        `json:"records"`
	Benchmark    []series.BenchmarkRow `json:"benchmark"`
	Rankings     []ranking.Row         `json:"rankings"`
}

// NewDocument snapshots st
func NewDocument(st *store.Store) Document {
	return Document{
		RunID:        st.RunID(),
		BuiltAt:      st.BuiltAt().UTC(),
		CatalogHash:  st.CatalogHash(),
		DrawdownMode: st.DrawdownMode().String(),
		StatsMode:    st.StatsMode().String(),
		Records:      st.Records(),
		Benchmark:    st.Benchmark(),
		Rankings:     st.Rankings(),
	}
}

// WriteJSON writes st as one indented JSON document
func WriteJSON(w io.Writer, st *store.Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(st)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
