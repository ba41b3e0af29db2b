package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adsun-ai/adsun/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize adsun configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the LLM provider and database and generates a .adsun.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
