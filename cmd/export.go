package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adsun-ai/adsun/internal/export"
)

var (
	exportOut  string
	exportName string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the knowledge base as a static HTML site",
	Long:  `Renders every documented process as an HTML page with an index grouped by category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		gen := export.NewGenerator(store, exportOut, exportName)
		n, err := gen.Generate(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d processes to %s\n", n, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "site", "output directory")
	exportCmd.Flags().StringVar(&exportName, "name", "ADSUN", "site name")
	rootCmd.AddCommand(exportCmd)
}
