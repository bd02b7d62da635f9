package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// collectCmd fetches the configured list and writes the raw tweet artifact.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch tweets from the configured list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg.Source.APIKey == "" || cfg.Source.ListID == "" {
			return fmt.Errorf("source config missing: set source.api_key and source.list_id in config.yaml")
		}
		st, closeStore, err := newStore(cfg)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		res := newPipeline(cfg, st).Collect(context.Background())
		if res.Err != nil {
			return res.Err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d tweets from list %s\n", res.Count, cfg.Source.ListID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)
}
