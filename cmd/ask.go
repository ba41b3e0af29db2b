package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adsun-ai/adsun/internal/assistant"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the documented processes",
	Long:  `Answers a free-text question over the knowledge base. Works without an LLM API key for statistics, listings and keyword search.`,
	Args:  cobra.ExactArgs(1),
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

		client := buildClient(cfg)
		engine := assistant.NewEngine(store, client)

		fmt.Println(engine.Answer(context.Background(), args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
