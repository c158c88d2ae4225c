package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tqr-cli/tqr/internal/config"
	"github.com/tqr-cli/tqr/internal/executor"
	"github.com/tqr-cli/tqr/internal/gate"
	"github.com/tqr-cli/tqr/internal/plan"
	"github.com/tqr-cli/tqr/internal/report"
)

var (
	termStart     string
	termEnd       string
	reportFile    string
	autoConfirm   bool
	stopOnFailure bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured report queries in order",
	Long: `Load the configuration, check the report CSV, and run each configured
query against the report tool. Before each query the run pauses for a
keypress; press q to stop early. With --yes the pauses are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigWithOverrides(cmd)
		if err != nil {
			return err
		}

		logger := newLogger(verbose || cfg.Runner.Verbose)

		if err := report.Preflight(cfg.Report); err != nil {
			return err
		}

		commands := plan.Build(cfg)

		var confirmGate gate.Gate
		if autoConfirm || cfg.Runner.AutoConfirm {
			confirmGate = gate.NewAutoGate()
			logger.Debug("auto-confirm enabled, running without pauses")
		} else {
			confirmGate = gate.NewKeypressGate(os.Stdin, os.Stdout)
		}

		seq := executor.NewSequencer(executor.SequencerOptions{
			Gate:          confirmGate,
			Reporter:      executor.NewConsoleReporter(os.Stdout, verbose || cfg.Runner.Verbose),
			Logger:        logger,
			StopOnFailure: stopOnFailure || cfg.Runner.StopOnFailure,
		})

		return seq.Run(cmd.Context(), commands)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&termStart, "term-start", "t", "", "Term start date, MM/DD/YYYY")
	runCmd.Flags().StringVarP(&termEnd, "term-end", "e", "", "Term end date, MM/DD/YYYY")
	runCmd.Flags().StringVarP(&reportFile, "report", "l", "", "Path to the exported UTF-8 CSV report")
	runCmd.Flags().BoolVarP(&autoConfirm, "yes", "y", false, "Skip confirmation pauses between queries")
	runCmd.Flags().BoolVar(&stopOnFailure, "stop-on-failure", false, "Stop the run when a query exits non-zero")
}

// loadConfigWithOverrides loads the config and applies flag overrides on top,
// re-validating afterwards so a bad flag value is caught the same way as a
// bad file value.
func loadConfigWithOverrides(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		// Flag overrides may supply what the file is missing; retry the
		// validation after applying them if loading only failed validation.
		if !hasOverrides(cmd) {
			return nil, err
		}
		cfg, err = config.LoadUnvalidated(configFile)
		if err != nil {
			return nil, err
		}
	}

	applyOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func hasOverrides(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("term-start") ||
		cmd.Flags().Changed("term-end") ||
		cmd.Flags().Changed("report")
}

func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("term-start") {
		cfg.Term.Start = termStart
	}
	if cmd.Flags().Changed("term-end") {
		cfg.Term.End = termEnd
	}
	if cmd.Flags().Changed("report") {
		cfg.Report = reportFile
	}
}
