package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "전략 카탈로그 검증 및 출력",
	Long: `카탈로그를 로드/검증하고 전략 목록과 해시를 출력합니다.
해시는 동일 카탈로그 + 동일 시드 재현성 확인용입니다.

Example:
  go run ./cmd/sentquant catalog
  go run ./cmd/sentquant catalog --catalog strategies.yaml`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, log, err := initDeps(cmd)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}
	hash, err := cat.Hash()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	widths := []int{16, 22, 8, 10, 10, 8, 10, 10}
	PrintTableHeader(out, []string{"ID", "Name", "Status", "Return", "MaxDD", "Sharpe", "Drift", "Vol"}, widths)
	for _, e := range cat.Entries() {
		PrintTableRow(out, []string{
			e.Identity.ID,
			e.Identity.Name,
			string(e.Identity.Status),
			pct(e.Identity.TotalReturnPct),
			pct(e.Identity.MaxDrawdownPct),
			num(e.Identity.Sharpe),
			fmt.Sprintf("%.4f", e.Behavior.Drift),
			fmt.Sprintf("%.4f", e.Behavior.Volatility),
		}, widths)
	}
	PrintSeparator(out)
	PrintKeyValue(out, "Strategies", fmt.Sprint(cat.Len()), 10)
	PrintKeyValue(out, "Hash", hash, 10)
	return nil
}
