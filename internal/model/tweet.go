package model

import "fmt"

// Tweet represents a single tweet fetched from a list. Immutable once fetched.
type Tweet struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Text     string `json:"text"`
	Likes    int    `json:"likes"`
	Retweets int    `json:"retweets"`
}

// Permalink returns the canonical URL for the tweet.
func (t Tweet) Permalink() string {
	return fmt.Sprintf("https://twitter.com/%s/status/%s", t.Author, t.ID)
}

// ScoredTweet decorates a tweet with an LLM relevance score and rationale.
// Degraded marks scores that defaulted to 0 because the model response
// could not be parsed; the rationale then holds the full raw response.
type ScoredTweet struct {
	Tweet     Tweet  `json:"tweet"`
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
	Degraded  bool   `json:"degraded,omitempty"`
}
