// Package export handles report export commands
package export

import (
	"os"
	"path/filepath"

	"fjacquet/split-ledger/cmd/common"
	"fjacquet/split-ledger/cmd/root"
	"fjacquet/split-ledger/internal/fileutils"
	"fjacquet/split-ledger/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export monthly reports to a file",
	Long: `Export monthly totals and settlements as JSON, YAML or CSV. CSV output is
row-oriented; choose between the totals table and the settlement list with
--kind.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.Format, "format", "json", "Output format: json, yaml or csv")
	Cmd.Flags().StringVar(&root.Kind, "kind", "settlements", "CSV row kind: totals or settlements")
	Cmd.Flags().StringVarP(&root.Output, "output", "o", "", "Output file path")
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", `Limit output to one month bucket, e.g. "MAR 2024"`)
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) {
	l, _ := common.LoadLedger(root.DataFile(), root.Log)

	generator := report.NewGenerator()
	reports, err := generator.BuildReports(l, root.Month)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	data, err := generator.Render(reports, root.Format, root.Kind)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(root.Output)); err != nil {
		root.Log.Fatalf("Error creating output directory: %v", err)
	}
	if err := os.WriteFile(root.Output, data, 0644); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Infof("Report written to %s", root.Output)
}
