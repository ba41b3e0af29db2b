package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adsun-ai/adsun/internal/assistant"
	mcpserver "github.com/adsun-ai/adsun/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the process knowledge base to AI agents.`,
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

		// Stdout carries MCP protocol messages; everything else goes
		// to stderr.
		mcpserver.Version = Version
		fmt.Fprintf(os.Stderr, "adsun MCP server started on stdio (db=%s)\n", cfg.DBPath)

		srv := mcpserver.NewServer(store, engine)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
