package cmd

import (
	"fmt"
	"strings"

	"tweetdigest/internal/ai"
	"tweetdigest/internal/config"
	"tweetdigest/internal/discord"
	"tweetdigest/internal/pipeline"
	"tweetdigest/internal/redisclient"
	"tweetdigest/internal/socialdata"
	"tweetdigest/internal/store"
)

// newStore builds the artifact store selected by storage.backend.
// The returned closer is non-nil for backends holding a connection.
func newStore(cfg config.Config) (store.Store, func() error, error) {
	switch strings.ToLower(cfg.Storage.Backend) {
	case "", "file":
		return store.NewFileStore(cfg.Storage), nil, nil
	case "redis":
		rdb := redisclient.New(cfg.Redis)
		return store.NewRedisStore(rdb), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// newPipeline wires all stage collaborators from config.
func newPipeline(cfg config.Config, st store.Store) *pipeline.Pipeline {
	src := socialdata.NewClient(cfg.Source.BaseURL, cfg.Source.APIKey)
	var scorer ai.Scorer
	if cfg.OpenAI.APIKey != "" {
		scorer = ai.NewOpenAI(ai.Config{
			APIKey:      cfg.OpenAI.APIKey,
			Model:       cfg.OpenAI.Model,
			BaseURL:     cfg.OpenAI.BaseURL,
			Temperature: cfg.OpenAI.Temperature,
		})
	}
	notifier := discord.New(cfg.Discord.WebhookURL, cfg.Discord.ContentLimit, 0)
	return pipeline.New(cfg, src, scorer, notifier, st)
}
