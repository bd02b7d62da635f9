package cmd

import (
	"context"
	"fmt"

	"tweetdigest/internal/pipeline"

	"github.com/spf13/cobra"
)

// filterCmd applies the engagement threshold to the fetched artifact.
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter fetched tweets by minimum engagement",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		st, closeStore, err := newStore(cfg)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		res := newPipeline(cfg, st).Filter(context.Background())
		if res.Err != nil {
			return res.Err
		}
		if res.Outcome == pipeline.OutcomeSkipped {
			fmt.Fprintln(cmd.OutOrStdout(), "No fetched tweets found; run collect first.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Filtered to %d tweets with %d+ likes\n", res.Count, cfg.Filter.MinLikes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
