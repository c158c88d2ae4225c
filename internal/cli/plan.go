package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tqr-cli/tqr/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the resolved query commands without running them",
	Long: `Resolve the configuration and print each report tool invocation in the
order it would run. Flag overrides apply the same way they do for 'tqr run',
so this doubles as a dry run for checking dates and the report file name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigWithOverrides(cmd)
		if err != nil {
			return err
		}

		commands := plan.Build(cfg)
		for i, c := range commands {
			fmt.Fprintf(os.Stdout, "[%d] %s\n", i+1, c.CommandLine())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&termStart, "term-start", "t", "", "Term start date, MM/DD/YYYY")
	planCmd.Flags().StringVarP(&termEnd, "term-end", "e", "", "Term end date, MM/DD/YYYY")
	planCmd.Flags().StringVarP(&reportFile, "report", "l", "", "Path to the exported UTF-8 CSV report")
}
