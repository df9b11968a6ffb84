// Package expense handles expense management commands
package expense

import (
	"fjacquet/split-ledger/cmd/common"
	"fjacquet/split-ledger/cmd/root"
	"fjacquet/split-ledger/internal/amountutils"
	"fjacquet/split-ledger/internal/dateutils"

	"github.com/spf13/cobra"
)

// Cmd represents the expense command
var Cmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expenses",
	Long:  `Add, edit, remove and list expenses owned by a participant.`,
}

var addCmd = &cobra.Command{
	Use:   "add PARTICIPANT",
	Short: "Record an expense paid by a participant",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var editCmd = &cobra.Command{
	Use:   "edit PARTICIPANT EXPENSE_ID",
	Short: "Edit an expense in place",
	Args:  cobra.ExactArgs(2),
	Run:   editFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove PARTICIPANT EXPENSE_ID",
	Short: "Remove a single expense",
	Args:  cobra.ExactArgs(2),
	Run:   removeFunc,
}

var listCmd = &cobra.Command{
	Use:   "list PARTICIPANT",
	Short: "List a participant's expenses",
	Args:  cobra.ExactArgs(1),
	Run:   listFunc,
}

func init() {
	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().StringVarP(&root.Amount, "amount", "a", "", "Expense amount, e.g. 12.50 (negative for refunds)")
		c.Flags().StringVarP(&root.Date, "date", "d", "", "Expense date in YYYY-MM-DD form")
		c.Flags().StringVarP(&root.InvoiceID, "invoice", "i", "", "Invoice identifier")
		c.Flags().StringVar(&root.Description, "description", "", "Expense description")
	}
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("date")
	listCmd.Flags().StringVarP(&root.Month, "month", "m", "", `Filter by month bucket, e.g. "MAR 2024"`)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(listCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	participantName := args[0]

	value, err := amountutils.ParseAmount(root.Amount)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	date, err := dateutils.ParseExpenseDate(root.Date)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	l, s := common.LoadLedger(root.DataFile(), root.Log)
	e, err := l.AddExpense(participantName, root.InvoiceID, root.Description, value, date)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	common.SaveLedger(l, s, root.Log)
	root.Log.Infof("Expense %s added for %s", e.ID, participantName)
}

func editFunc(cmd *cobra.Command, args []string) {
	participantName, expenseID := args[0], args[1]

	l, s := common.LoadLedger(root.DataFile(), root.Log)
	p, ok := l.Participant(participantName)
	if !ok {
		root.Log.Fatalf("participant '%s' not found", participantName)
	}
	e := p.Expense(expenseID)
	if e == nil {
		root.Log.Fatalf("expense '%s' not found", expenseID)
	}

	// Unchanged flags keep the stored values.
	value := e.Value
	date := e.Date
	invoiceID := e.InvoiceID
	description := e.Description
	var err error
	if cmd.Flags().Changed("amount") {
		if value, err = amountutils.ParseAmount(root.Amount); err != nil {
			root.Log.Fatalf("%v", err)
		}
	}
	if cmd.Flags().Changed("date") {
		if date, err = dateutils.ParseExpenseDate(root.Date); err != nil {
			root.Log.Fatalf("%v", err)
		}
	}
	if cmd.Flags().Changed("invoice") {
		invoiceID = root.InvoiceID
	}
	if cmd.Flags().Changed("description") {
		description = root.Description
	}

	if err := l.UpdateExpense(participantName, expenseID, invoiceID, description, value, date); err != nil {
		root.Log.Fatalf("%v", err)
	}
	common.SaveLedger(l, s, root.Log)
	root.Log.Info("Expense updated successfully")
}

func removeFunc(cmd *cobra.Command, args []string) {
	participantName, expenseID := args[0], args[1]
	l, s := common.LoadLedger(root.DataFile(), root.Log)
	if err := l.RemoveExpense(participantName, expenseID); err != nil {
		root.Log.Fatalf("%v", err)
	}
	common.SaveLedger(l, s, root.Log)
	root.Log.Info("Expense removed successfully")
}

func listFunc(cmd *cobra.Command, args []string) {
	participantName := args[0]
	l, _ := common.LoadLedger(root.DataFile(), root.Log)
	p, ok := l.Participant(participantName)
	if !ok {
		root.Log.Fatalf("participant '%s' not found", participantName)
	}

	expenses := p.Expenses
	if root.Month != "" {
		expenses = p.ExpensesIn(root.Month)
	}
	if len(expenses) == 0 {
		cmd.Println("No expenses found.")
		return
	}
	for _, e := range expenses {
		cmd.Printf("%s  %s  %s  %s  %s\n",
			e.ID,
			dateutils.ToISODate(e.Date),
			amountutils.FormatAmount(e.Value, root.Currency()),
			e.InvoiceID,
			e.Description)
	}
}
