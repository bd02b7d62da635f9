package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		score    int
		degraded bool
	}{
		{name: "plain score line", raw: "Score: 8/10\nThis tweet covers AI agents.", score: 8},
		{name: "different label", raw: "Relevance: 3/10\nOff topic.", score: 3},
		{name: "spaces around slash", raw: "Score: 7 / 10", score: 7},
		{name: "lowercase label", raw: "score: 10/10", score: 10},
		{name: "leading whitespace", raw: "  Score: 5/10\nmeh", score: 5},
		{name: "no score line", raw: "This tweet is about cooking, not your work.", degraded: true},
		{name: "score not first", raw: "Let me think.\nScore: 9/10", degraded: true},
		{name: "no denominator", raw: "Score: 8", degraded: true},
		{name: "out of range", raw: "Score: 11/10", degraded: true},
		{name: "empty response", raw: "", degraded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.raw)
			assert.Equal(t, tt.degraded, res.Degraded)
			assert.Equal(t, tt.score, res.Score)
			assert.Equal(t, tt.raw, res.Rationale, "rationale must preserve the raw response verbatim")
		})
	}
}

func TestParse_DegradedKeepsRaw(t *testing.T) {
	raw := "I cannot rate this.\nSome extra context."
	res := Parse(raw)
	assert.True(t, res.Degraded)
	assert.Zero(t, res.Score)
	assert.Equal(t, raw, res.Rationale)
}
