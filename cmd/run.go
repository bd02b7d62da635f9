package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// runCmd executes the whole pipeline in-process. Stage failures are logged
// and reported but never abort the run.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: collect, filter, score, notify",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg.Source.APIKey == "" || cfg.Source.ListID == "" {
			return fmt.Errorf("source config missing: set source.api_key and source.list_id in config.yaml")
		}
		if cfg.OpenAI.APIKey == "" {
			return fmt.Errorf("openai config missing: set openai.api_key in config.yaml")
		}
		if cfg.Discord.WebhookURL == "" {
			return fmt.Errorf("discord config missing: set discord.webhook_url in config.yaml")
		}
		st, closeStore, err := newStore(cfg)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		results := newPipeline(cfg, st).Run(context.Background())
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
