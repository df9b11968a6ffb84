// Package participant handles participant management commands
package participant

import (
	"fjacquet/split-ledger/cmd/common"
	"fjacquet/split-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the participant command
var Cmd = &cobra.Command{
	Use:   "participant",
	Short: "Manage participants",
	Long:  `Add, rename, delete and list the participants sharing expenses.`,
}

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a participant",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var renameCmd = &cobra.Command{
	Use:   "rename OLD_NAME NEW_NAME",
	Short: "Rename a participant and set the pays-for-two flag",
	Args:  cobra.ExactArgs(2),
	Run:   renameFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a participant and all of their expenses",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List participants",
	Args:  cobra.NoArgs,
	Run:   listFunc,
}

func init() {
	addCmd.Flags().BoolVar(&root.PaysForTwo, "pays-for-two", false, "Participant pays for two shares")
	renameCmd.Flags().BoolVar(&root.PaysForTwo, "pays-for-two", false, "Participant pays for two shares")
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(renameCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(listCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	name := args[0]
	l, s := common.LoadLedger(root.DataFile(), root.Log)
	if err := l.AddParticipant(name, root.PaysForTwo); err != nil {
		root.Log.Fatalf("%v", err)
	}
	common.SaveLedger(l, s, root.Log)
	root.Log.Infof("Participant %s added successfully", name)
}

func renameFunc(cmd *cobra.Command, args []string) {
	oldName, newName := args[0], args[1]
	l, s := common.LoadLedger(root.DataFile(), root.Log)

	// When the flag is not given, keep the participant's current setting.
	paysForTwo := root.PaysForTwo
	if !cmd.Flags().Changed("pays-for-two") {
		if p, ok := l.Participant(oldName); ok {
			paysForTwo = p.PaysForTwo
		}
	}

	if err := l.UpdateParticipant(oldName, newName, paysForTwo); err != nil {
		root.Log.Fatalf("%v", err)
	}
	common.SaveLedger(l, s, root.Log)
	root.Log.Infof("Participant %s updated successfully", newName)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	name := args[0]
	l, s := common.LoadLedger(root.DataFile(), root.Log)
	if err := l.DeleteParticipant(name); err != nil {
		root.Log.Fatalf("%v", err)
	}
	common.SaveLedger(l, s, root.Log)
	root.Log.Infof("Participant %s deleted successfully", name)
}

func listFunc(cmd *cobra.Command, args []string) {
	l, _ := common.LoadLedger(root.DataFile(), root.Log)
	participants := l.Participants()
	if len(participants) == 0 {
		cmd.Println("No participants available.")
		return
	}
	for _, p := range participants {
		suffix := ""
		if p.PaysForTwo {
			suffix = " (pays for two)"
		}
		cmd.Printf("%s%s - %d expense(s)\n", p.Name, suffix, len(p.Expenses))
	}
}
