// Package totals handles the monthly totals command
package totals

import (
	"fjacquet/split-ledger/cmd/common"
	"fjacquet/split-ledger/cmd/root"
	"fjacquet/split-ledger/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the totals command
var Cmd = &cobra.Command{
	Use:   "totals",
	Short: "Show monthly totals and balances",
	Long: `Show, per calendar month, how much each participant paid, their weighted
share of the month's expenses, and the resulting balance.`,
	Run: totalsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", `Limit output to one month bucket, e.g. "MAR 2024"`)
}

func totalsFunc(cmd *cobra.Command, args []string) {
	l, _ := common.LoadLedger(root.DataFile(), root.Log)

	generator := report.NewGenerator()
	reports, err := generator.BuildReports(l, root.Month)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	if len(reports) == 0 {
		cmd.Println("No expenses recorded.")
		return
	}
	for _, r := range reports {
		cmd.Print(report.RenderText(r, root.Currency()))
		cmd.Println()
	}
}
