// Package store persists the pipeline's intermediate artifacts. Every
// artifact is overwritten on each run; nothing survives a run on purpose.
package store

import (
	"context"

	"tweetdigest/internal/model"
)

// Store is the artifact handoff between pipeline stages. Load methods
// report absence (no artifact written yet) separately from errors so the
// caller can treat a missing artifact as "nothing to do".
type Store interface {
	// SaveFetched persists the raw collected tweets.
	SaveFetched(ctx context.Context, tweets []model.Tweet) error
	LoadFetched(ctx context.Context) ([]model.Tweet, bool, error)

	// SaveItems persists the engagement-filtered set for analysis.
	SaveItems(ctx context.Context, tweets []model.Tweet) error
	LoadItems(ctx context.Context) ([]model.Tweet, bool, error)

	// SaveDigest persists the rendered digest document.
	SaveDigest(ctx context.Context, text string) error
	LoadDigest(ctx context.Context) (string, bool, error)
}
