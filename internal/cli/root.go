// Package cli wires the command-line surface: config loading, flag
// overrides, and construction of the gate and sequencer.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "tqr",
	Short: "Run end-of-term report queries in sequence",
	Long: `tqr automates the end-of-term report ritual: it runs a fixed series of
report queries against the external report CLI, one at a time, pausing for a
keypress before each so the output can be reviewed between queries.

Term dates, the report file, and the query plan come from tqr.yaml, TQR_*
environment variables, or flags. Run 'tqr init' to generate a starter config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with the given context; the context carries signal
// cancellation from main so an interrupt reaches the running subprocess.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "f", "",
		"Path to config file (default: tqr.yaml in . or ./config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output with execution details")
}

// newLogger builds the diagnostic logger. User-facing sequencing output goes
// through the reporter, not here.
func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
