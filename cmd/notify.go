package cmd

import (
	"context"
	"fmt"

	"tweetdigest/internal/pipeline"

	"github.com/spf13/cobra"
)

// notifyCmd delivers the digest artifact to the configured webhook.
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Deliver the digest to the Discord webhook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
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
		res := newPipeline(cfg, st).Notify(context.Background())
		if res.Err != nil {
			return res.Err
		}
		if res.Outcome == pipeline.OutcomeSkipped {
			fmt.Fprintln(cmd.OutOrStdout(), "No digest found; run score first.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Digest sent to Discord")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}
