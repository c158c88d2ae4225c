package cli

import (
	"github.com/spf13/cobra"

	"github.com/tqr-cli/tqr/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate an example tqr.yaml configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		generator := config.NewTemplateGenerator()
		return generator.Generate()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
