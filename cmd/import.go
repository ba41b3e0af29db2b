package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/adsun-ai/adsun/internal/process"
	"github.com/adsun-ai/adsun/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import [glob]",
	Short: "Bulk-import process records from YAML files",
	Long: `Imports process records from YAML files matching the glob pattern,
e.g. "procesy/**/*.yml". Each file holds either a list of records or a
document with a top-level "processes" key.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	paths, err := doublestar.FilepathGlob(args[0])
	if err != nil {
		return fmt.Errorf("invalid glob %q: %w", args[0], err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files match %q", args[0])
	}

	var records []process.Record
	for _, path := range paths {
		parsed, err := process.ParseImportFile(path)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: %d records\n", path, len(parsed))
		}
		records = append(records, parsed...)
	}

	reporter := progress.NewReporter("Importing processes")
	reporter.Start(len(records))

	imported, err := store.ImportRecords(context.Background(), records, func(done int, name string) {
		reporter.Update(done, name)
	})
	reporter.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d of %d records from %d files.\n", imported, len(records), len(paths))
	return nil
}
