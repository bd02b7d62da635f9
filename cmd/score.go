package cmd

import (
	"context"
	"fmt"

	"tweetdigest/internal/pipeline"

	"github.com/spf13/cobra"
)

// scoreCmd scores the filtered tweets and writes the rendered digest.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score filtered tweets with the LLM and build the digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg.OpenAI.APIKey == "" {
			return fmt.Errorf("openai config missing: set openai.api_key in config.yaml")
		}
		st, closeStore, err := newStore(cfg)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		res := newPipeline(cfg, st).Score(context.Background())
		if res.Err != nil {
			return res.Err
		}
		if res.Outcome == pipeline.OutcomeSkipped {
			fmt.Fprintln(cmd.OutOrStdout(), "No tweets for analysis found; run filter first.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Digest built with %d relevant tweets\n", res.Count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
