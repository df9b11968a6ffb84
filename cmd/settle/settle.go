// Package settle handles the settlement command
package settle

import (
	"fjacquet/split-ledger/cmd/common"
	"fjacquet/split-ledger/cmd/root"
	"fjacquet/split-ledger/internal/amountutils"
	"fjacquet/split-ledger/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the settle command
var Cmd = &cobra.Command{
	Use:   "settle",
	Short: "Show the payments that settle each month's balances",
	Long: `Reduce each month's balances to a list of peer-to-peer payments. Applying
every payment brings all balances for that month to zero.`,
	Run: settleFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", `Limit output to one month bucket, e.g. "MAR 2024"`)
}

func settleFunc(cmd *cobra.Command, args []string) {
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
		cmd.Printf("%s\n", r.Month)
		if len(r.Settlements) == 0 {
			cmd.Println("  nothing to settle")
			continue
		}
		for _, s := range r.Settlements {
			cmd.Printf("  %s should pay %s %s\n",
				s.Debtor, s.Creditor, amountutils.FormatAmount(s.Amount, root.Currency()))
		}
	}
}
