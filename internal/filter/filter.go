package filter

import "tweetdigest/internal/model"

// ByEngagement keeps tweets with at least minLikes likes, preserving input
// order. Pure; the caller decides whether to persist the result.
func ByEngagement(tweets []model.Tweet, minLikes int) []model.Tweet {
	out := make([]model.Tweet, 0, len(tweets))
	for _, t := range tweets {
		if t.Likes >= minLikes {
			out = append(out, t)
		}
	}
	return out
}
