package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sentquant/analytics/internal/store"
)

const (
	SheetSummary   = "Summary"
	SheetRankings  = "Rankings"
	SheetBenchmark = "Benchmark"

	heatmapPrefix = "Heatmap "
	maxSheetName  = 31
)

var months = []interface{}{"Year", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// WriteXLSX writes st as a workbook: summary, rankings, benchmark and one
// heatmap sheet per strategy
func WriteXLSX(w io.Writer, st *store.Store) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeSummary(f, st); err != nil {
		return err
	}
	if err := writeRankings(f, st); err != nil {
		return err
	}
	if err := writeBenchmark(f, st); err != nil {
		return err
	}
	records := st.Records()
	sheets := HeatmapSheets(st.IDs())
	for i, rec := range records {
		if err := writeHeatmap(f, sheets[i], rec); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, st *store.Store) error {
	rows := [][]interface{}{
		{"ID", "Name", "Status", "Protocol", "Tracked Capital", "Total Return %", "Max Drawdown %",
			"Sharpe", "Sortino", "Win Rate %", "CAGR %", "APR %", "Expected Value %", "Volatility %"},
	}
	for _, rec := range st.Records() {
		id, s := rec.Identity, rec.Stats
		rows = append(rows, []interface{}{
			id.ID, id.Name, string(id.Status), id.Protocol, id.TrackedCapital.InexactFloat64(),
			s.TotalReturnPct, s.MaxDrawdownPct, s.Sharpe, s.Sortino, s.WinRatePct,
			s.CAGRPct, s.AprPct, s.ExpectedValuePct, s.VolatilityPct,
		})
	}
	return writeRows(f, SheetSummary, rows)
}

func writeRankings(f *excelize.File, st *store.Store) error {
	if _, err := f.NewSheet(SheetRankings); err != nil {
		return fmt.Errorf("new sheet %s: %w", SheetRankings, err)
	}

	rows := [][]interface{}{
		{"Rank", "ID", "Name", "SRS", "Score", "ROI", "Sortino", "Calmar", "Stability", "Points", "Penalized"},
	}
	for _, r := range st.Rankings() {
		rows = append(rows, []interface{}{
			r.Rank, r.ID, r.Name, r.SRS, r.Score, r.ROI, r.Sortino, r.Calmar, r.Stability, r.Points, r.Penalized,
		})
	}
	return writeRows(f, SheetRankings, rows)
}

func writeBenchmark(f *excelize.File, st *store.Store) error {
	if _, err := f.NewSheet(SheetBenchmark); err != nil {
		return fmt.Errorf("new sheet %s: %w", SheetBenchmark, err)
	}

	ids := st.IDs()
	header := make([]interface{}, 0, len(ids)+1)
	header = append(header, "Date")
	for _, id := range ids {
		header = append(header, id)
	}

	rows := [][]interface{}{header}
	for _, b := range st.Benchmark() {
		row := make([]interface{}, 0, len(ids)+1)
		row = append(row, b.Date)
		for _, id := range ids {
			row = append(row, b.Values[id])
		}
		rows = append(rows, row)
	}
	return writeRows(f, SheetBenchmark, rows)
}

func writeHeatmap(f *excelize.File, name string, rec store.Record) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}

	rows := [][]interface{}{months}
	for _, h := range rec.Heatmap {
		row := make([]interface{}, 0, len(h.Months)+1)
		row = append(row, h.Year)
		for _, m := range h.Months {
			row = append(row, m)
		}
		rows = append(rows, row)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// HeatmapSheets returns one heatmap sheet name per id, in order. Ids that
// clean up to the same name get a "~2", "~3" suffix. Excel compares sheet
// names case-insensitively.
func HeatmapSheets(ids []string) []string {
	used := map[string]bool{
		strings.ToLower(SheetSummary):   true,
		strings.ToLower(SheetRankings):  true,
		strings.ToLower(SheetBenchmark): true,
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		base := HeatmapSheet(id)
		name := base
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = withSuffix(base, "~"+strconv.Itoa(n))
		}
		used[strings.ToLower(name)] = true
		out[i] = name
	}
	return out
}

func withSuffix(name, suffix string) string {
	runes := []rune(name)
	if keep := maxSheetName - len([]rune(suffix)); len(runes) > keep {
		runes = runes[:keep]
	}
	return string(runes) + suffix
}

// HeatmapSheet returns the cleaned sheet name for id's monthly heatmap.
// Excel forbids some characters and caps names at 31 runes.
func HeatmapSheet(id string) string {
	name := heatmapPrefix + strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, id)

	runes := []rune(name)
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	return string(runes)
}
