// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-assistant/internal/assistant"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Print a digest of arXiv papers for a topic",
	Long: `Digest fetches papers for --query, summarizes each abstract and extracts
keywords, then prints the result as a table, JSON or YAML.`,
	RunE: runDigest,
}

func init() {
	digestCmd.Flags().String("query", "", "research topic (default ui.default_query)")
	digestCmd.Flags().Int("max-results", 0, "number of papers to fetch (default ui.default_max_results)")
	digestCmd.Flags().String("format", "table", "output format: table, json or yaml")

	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		query = cfg.UI.DefaultQuery
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = cfg.UI.DefaultMaxResults
	}
	if maxResults < cfg.UI.MinResults || maxResults > cfg.UI.MaxResults {
		return fmt.Errorf("--max-results must be between %d and %d, got %d", cfg.UI.MinResults, cfg.UI.MaxResults, maxResults)
	}
	format, _ := cmd.Flags().GetString("format")
	write, err := formatter(format)
	if err != nil {
		return err
	}

	c, err := buildComponents(cfg, os.Stderr)
	if err != nil {
		return err
	}
	d, err := c.assistant.Run(cmd.Context(), query, maxResults)
	if err != nil {
		return err
	}
	return write(d, cmd.OutOrStdout())
}

// formatter returns the writer for an output format name.
func formatter(name string) (func(types.Digest, io.Writer) error, error) {
	switch name {
	case "table", "":
		return func(d types.Digest, w io.Writer) error {
			assistant.FormatTable(d, w)
			return nil
		}, nil
	case "json":
		return assistant.FormatJSON, nil
	case "yaml":
		return assistant.FormatYAML, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want table, json or yaml)", name)
	}
}
