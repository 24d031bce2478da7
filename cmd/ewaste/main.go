package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ewaste-tracker/internal/cli"
	"ewaste-tracker/internal/config"
	"ewaste-tracker/internal/evidence"
	"ewaste-tracker/internal/intake"
	"ewaste-tracker/internal/report"
)

var dataDir string

// rootCmd launches the interactive destruction-job shell.
var rootCmd = &cobra.Command{
	Use:   "ewaste",
	Short: "E-waste destruction tracker",
	Long: `Menu-driven tracker for secure e-waste destruction jobs.

Logs equipment intake to CSV, lays out photo evidence folders, records
data wipes and destruction against an audit trail, and produces PDF
certificates and compliance reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if dataDir != "" {
			cfg.ResolveDirs(dataDir)
		}
		if err := cfg.EnsureDirs(); err != nil {
			return fmt.Errorf("preparing data directories: %w", err)
		}

		store, err := intake.Open(cfg.Dirs.IntakeLogs)
		if err != nil {
			return fmt.Errorf("opening intake log: %w", err)
		}

		shell := cli.NewShell(
			cfg,
			store,
			evidence.NewOrganizer(cfg.Dirs.PhotoEvidence),
			report.NewRenderer(cfg),
			os.Stdin,
			os.Stdout,
		)
		return shell.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "root directory for logs, photos, certificates and reports")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
