package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "SRS 랭킹 출력",
	Long: `live 시계열 실측 지표(ROI, Sortino, Calmar, Stability)로
Sentquant Rating Score (100~1000) 를 계산합니다.

가중치: ROI 30% / Sortino 30% / Calmar 30% / Stability 10%
이력 7 포인트 미만은 신규 진입 패널티 (x0.2)

Example:
  go run ./cmd/sentquant rank --seed 42`,
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, log, err := initDeps(cmd)
	if err != nil {
		return err
	}

	st, err := buildStore(ctxOf(cmd), cfg, log)
	if err != nil {
		return fmt.Errorf("build analytics: %w", err)
	}

	out := cmd.OutOrStdout()
	PrintRunHeader(out, RunHeader{Title: "Sentquant Rating Score", RunID: st.RunID()})

	widths := []int{4, 16, 6, 8, 8, 8, 10}
	PrintTableHeader(out, []string{"#", "ID", "SRS", "ROI", "Sortino", "Calmar", "Stability"}, widths)
	for _, r := range st.Rankings() {
		id := r.ID
		if r.Penalized {
			id += " *"
		}
		PrintTableRow(out, []string{
			strconv.Itoa(r.Rank),
			id,
			strconv.Itoa(r.SRS),
			pct(r.ROI * 100),
			num(r.Sortino),
			num(r.Calmar),
			num(r.Stability),
		}, widths)
	}
	return nil
}
