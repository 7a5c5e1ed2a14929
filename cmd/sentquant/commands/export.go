package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sentquant/analytics/internal/export"
	"github.com/sentquant/analytics/internal/store"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "분석 스토어를 JSON / XLSX 로 내보내기",
	Long: `스토어 전체(레코드, 벤치마크, 랭킹)를 하나의 문서로 내보냅니다.

형식:
- json: 단일 JSON 문서 (기본)
- xlsx: Summary / Rankings / Benchmark / 전략별 Heatmap 시트

Example:
  go run ./cmd/sentquant export --seed 42 > analytics.json
  go run ./cmd/sentquant export --format xlsx --out analytics.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "출력 형식 (json, xlsx)")
	exportCmd.Flags().StringVar(&exportOut, "out", "-", "출력 파일 (-=stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	write, err := exporter(exportFormat)
	if err != nil {
		return err
	}

	cfg, log, err := initDeps(cmd)
	if err != nil {
		return err
	}

	st, err := buildStore(ctxOf(cmd), cfg, log)
	if err != nil {
		return fmt.Errorf("build analytics: %w", err)
	}

	if exportOut == "-" {
		return write(cmd.OutOrStdout(), st)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	if err := write(f, st); err != nil {
		f.Close()
		log.WithError(err).Error("export failed")
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", exportOut, err)
	}

	log.WithFields(map[string]interface{}{
		"format": exportFormat,
		"path":   exportOut,
		"run_id": st.RunID(),
	}).Info("export written")
	return nil
}

func exporter(format string) (func(io.Writer, *store.Store) error, error) {
	switch format {
	case "json":
		return export.WriteJSON, nil
	case "xlsx":
		return export.WriteXLSX, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (json|xlsx)", format)
	}
}
