package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetdigest/internal/model"
)

func scoredTweet(id string, score int) model.ScoredTweet {
	return model.ScoredTweet{
		Tweet: model.Tweet{ID: id, Author: "user_" + id, Text: "text " + id},
		Score: score,
	}
}

func TestBuild_CutoffAndOrder(t *testing.T) {
	scored := []model.ScoredTweet{
		scoredTweet("a", 7),
		scoredTweet("b", 6), // below cutoff, excluded
		scoredTweet("c", 9),
		scoredTweet("d", 8),
	}
	relevant := Build(scored, 7)
	require.Len(t, relevant, 3)
	assert.Equal(t, "c", relevant[0].Tweet.ID)
	assert.Equal(t, "d", relevant[1].Tweet.ID)
	assert.Equal(t, "a", relevant[2].Tweet.ID)
}

func TestBuild_StableTies(t *testing.T) {
	scored := []model.ScoredTweet{
		scoredTweet("first", 8),
		scoredTweet("second", 8),
		scoredTweet("third", 8),
	}
	relevant := Build(scored, 7)
	require.Len(t, relevant, 3)
	assert.Equal(t, "first", relevant[0].Tweet.ID)
	assert.Equal(t, "second", relevant[1].Tweet.ID)
	assert.Equal(t, "third", relevant[2].Tweet.ID)
}

func TestBuild_BoundaryExclusion(t *testing.T) {
	relevant := Build([]model.ScoredTweet{scoredTweet("edge", 6)}, 7)
	assert.Empty(t, relevant)

	relevant = Build([]model.ScoredTweet{scoredTweet("edge", 7)}, 7)
	assert.Len(t, relevant, 1)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(nil, 7))
	assert.Empty(t, Build([]model.ScoredTweet{}, 7))
}

func TestRender(t *testing.T) {
	now := time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC)
	relevant := []model.ScoredTweet{
		{
			Tweet: model.Tweet{ID: "123", Author: "gopher", Text: "Generics landed."},
			Score: 8,
		},
	}
	out, err := Render(NewData("Twitter Content Digest {.CurrentDate}", now, relevant))
	require.NoError(t, err)

	assert.Contains(t, out, `title: "Twitter Content Digest 2026-08-23"`)
	assert.Contains(t, out, "## @gopher: 8/10 Relevance")
	assert.Contains(t, out, "Generics landed.")
	assert.Contains(t, out, "[View Tweet](https://twitter.com/gopher/status/123)")
	assert.Contains(t, out, "---")
	assert.NotContains(t, out, Sentinel)
}

func TestRender_Sentinel(t *testing.T) {
	now := time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC)
	out, err := Render(NewData("Digest", now, nil))
	require.NoError(t, err)
	assert.Contains(t, out, Sentinel)
	assert.NotContains(t, out, "## @")
}

func TestExpandVars(t *testing.T) {
	now := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Digest 2026-08-23", ExpandVars("Digest {.CurrentDate}", now))
	assert.Equal(t, "no vars", ExpandVars("no vars", now))
	assert.Equal(t, "", ExpandVars("", now))
}
