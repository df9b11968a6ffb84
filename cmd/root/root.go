// Package root contains the root command for the application
package root

import (
	"fjacquet/split-ledger/internal/config"
	"fjacquet/split-ledger/internal/ledger"
	"fjacquet/split-ledger/internal/logging"
	"fjacquet/split-ledger/internal/report"
	"fjacquet/split-ledger/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the loaded application configuration, available after
	// PersistentPreRun.
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "split-ledger",
		Short: "Track shared expenses and settle monthly balances between participants.",
		Long: `split-ledger tracks expenses paid by multiple participants, splits each
month's total according to per-participant weighting, and derives the
payments that settle everyone's balance.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to split-ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			AppConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			adapter := logging.NewLogrusAdapterFromLogger(Log)
			ledger.SetLogger(adapter)
			store.SetLogger(adapter)

			report.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// DataFileFlag overrides the configured data file path when non-empty.
	DataFileFlag string

	// Expense command flags
	Amount      string
	Date        string
	InvoiceID   string
	Description string

	// Shared month filter ("MAR 2024" form)
	Month string

	// Participant command flags
	PaysForTwo bool

	// Export command flags
	Format string
	Kind   string
	Output string

	// Erase confirmation
	Yes bool
)

// DataFile resolves the ledger data file path: the --file flag wins over
// configuration.
func DataFile() string {
	if DataFileFlag != "" {
		return DataFileFlag
	}
	return AppConfig.Data.File
}

// Currency returns the configured display currency.
func Currency() string {
	if AppConfig == nil {
		return ""
	}
	return AppConfig.Display.Currency
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataFileFlag, "file", "f", "", "Ledger data file (overrides configuration)")
}
