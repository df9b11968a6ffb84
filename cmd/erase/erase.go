// Package erase handles the erase-all command
package erase

import (
	"fjacquet/split-ledger/cmd/common"
	"fjacquet/split-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the erase command
var Cmd = &cobra.Command{
	Use:   "erase",
	Short: "Erase all participants and expenses",
	Long:  `Erase every participant and all of their expenses. Requires --yes.`,
	Run:   eraseFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&root.Yes, "yes", "y", false, "Confirm erasing all data")
}

func eraseFunc(cmd *cobra.Command, args []string) {
	if !root.Yes {
		root.Log.Fatal("Refusing to erase without --yes")
	}
	l, s := common.LoadLedger(root.DataFile(), root.Log)
	l.EraseAll()
	common.SaveLedger(l, s, root.Log)
	root.Log.Info("All data erased successfully")
}
