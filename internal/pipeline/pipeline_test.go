package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetdigest/internal/config"
	"tweetdigest/internal/digest"
	"tweetdigest/internal/model"
	"tweetdigest/internal/relevance"
	"tweetdigest/internal/store"
)

type fakeSource struct {
	tweets []model.Tweet
	err    error
}

func (f *fakeSource) ListTweets(context.Context, string) ([]model.Tweet, error) {
	return f.tweets, f.err
}

// fakeScorer returns canned responses per tweet ID.
type fakeScorer struct {
	responses map[string]string
	err       error
}

func (f *fakeScorer) ScoreTweet(_ context.Context, t model.Tweet, _ string) (relevance.Result, error) {
	if f.err != nil {
		return relevance.Result{}, f.err
	}
	return relevance.Parse(f.responses[t.ID]), nil
}

type fakeNotifier struct {
	title string
	body  string
	calls int
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, title, body string) error {
	f.calls++
	f.title, f.body = title, body
	return f.err
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Source.ListID = "42"
	cfg.FillDefaults()
	return cfg
}

func TestPipeline_Run_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	src := &fakeSource{tweets: []model.Tweet{
		{ID: "111", Author: "gopher", Text: "agents everywhere", Likes: 15},
		{ID: "222", Author: "ferris", Text: "low engagement", Likes: 5},
	}}
	scorer := &fakeScorer{responses: map[string]string{
		"111": "Score: 8/10\nHighly relevant to agent work.",
	}}
	notifier := &fakeNotifier{}
	st := store.NewFileStore(cfg.Storage)

	p := New(cfg, src, scorer, notifier, st)
	results := p.Run(context.Background())

	require.Len(t, results, 4)
	assert.Equal(t, OutcomeOK, results[0].Outcome)
	assert.Equal(t, 2, results[0].Count)
	assert.Equal(t, OutcomeOK, results[1].Outcome)
	assert.Equal(t, 1, results[1].Count, "only the high-engagement tweet survives the filter")
	assert.Equal(t, OutcomeOK, results[2].Outcome)
	assert.Equal(t, 1, results[2].Count)
	assert.Equal(t, OutcomeOK, results[3].Outcome)

	assert.Equal(t, 1, notifier.calls)
	assert.Contains(t, notifier.body, "## @gopher: 8/10 Relevance")
	assert.Contains(t, notifier.body, "https://twitter.com/gopher/status/111")
	assert.NotContains(t, notifier.body, "ferris", "filtered-out tweet never reaches the digest")
}

func TestPipeline_Run_FetchFailureSkipsDownstream(t *testing.T) {
	cfg := testConfig(t)
	src := &fakeSource{err: errors.New("status=401 body=bad token")}
	notifier := &fakeNotifier{}
	st := store.NewFileStore(cfg.Storage)

	p := New(cfg, src, &fakeScorer{}, notifier, st)
	results := p.Run(context.Background())

	require.Len(t, results, 4)
	assert.Equal(t, OutcomeFailed, results[0].Outcome)
	assert.Equal(t, OutcomeSkipped, results[1].Outcome, "no fetched artifact after a failed collect")
	assert.Equal(t, OutcomeSkipped, results[2].Outcome)
	assert.Equal(t, OutcomeSkipped, results[3].Outcome)
	assert.Zero(t, notifier.calls)
}

func TestPipeline_Run_NothingRelevantDeliversSentinel(t *testing.T) {
	cfg := testConfig(t)
	src := &fakeSource{tweets: []model.Tweet{{ID: "1", Author: "a", Text: "meh", Likes: 50}}}
	scorer := &fakeScorer{responses: map[string]string{"1": "Score: 3/10\nNot your area."}}
	notifier := &fakeNotifier{}
	st := store.NewFileStore(cfg.Storage)

	p := New(cfg, src, scorer, notifier, st)
	results := p.Run(context.Background())

	assert.Equal(t, OutcomeEmpty, results[2].Outcome)
	assert.Equal(t, OutcomeOK, results[3].Outcome, "the sentinel digest still gets delivered")
	assert.Equal(t, 1, notifier.calls)
	assert.Contains(t, notifier.body, digest.Sentinel)
}

func TestPipeline_Run_ScoringErrorDegradesItem(t *testing.T) {
	cfg := testConfig(t)
	src := &fakeSource{tweets: []model.Tweet{{ID: "1", Author: "a", Text: "t", Likes: 50}}}
	scorer := &fakeScorer{err: errors.New("llm unavailable")}
	notifier := &fakeNotifier{}
	st := store.NewFileStore(cfg.Storage)

	p := New(cfg, src, scorer, notifier, st)
	results := p.Run(context.Background())

	// degraded item scores 0, so nothing clears the cutoff
	assert.Equal(t, OutcomeEmpty, results[2].Outcome)
	assert.Contains(t, notifier.body, digest.Sentinel)
}

func TestPipeline_Notify_DeliveryFailureIsNotFatal(t *testing.T) {
	cfg := testConfig(t)
	src := &fakeSource{tweets: []model.Tweet{{ID: "1", Author: "a", Text: "t", Likes: 50}}}
	scorer := &fakeScorer{responses: map[string]string{"1": "Score: 9/10\nGreat."}}
	notifier := &fakeNotifier{err: errors.New("status=400 body=invalid webhook")}
	st := store.NewFileStore(cfg.Storage)

	p := New(cfg, src, scorer, notifier, st)
	results := p.Run(context.Background())

	require.Len(t, results, 4)
	assert.Equal(t, OutcomeFailed, results[3].Outcome)
	assert.Error(t, results[3].Err)
}

func TestPipeline_Notify_UsesFrontmatterTitle(t *testing.T) {
	cfg := testConfig(t)
	notifier := &fakeNotifier{}
	st := store.NewFileStore(cfg.Storage)
	require.NoError(t, st.SaveDigest(context.Background(),
		"---\ntitle: \"Twitter Content Digest 2026-08-23\"\n---\n\ndigest body\n"))

	p := New(cfg, &fakeSource{}, &fakeScorer{}, notifier, st)
	res := p.Notify(context.Background())

	assert.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, "Twitter Content Digest 2026-08-23", notifier.title)
	assert.Contains(t, notifier.body, "digest body")
}

func TestPipeline_StandaloneStagesSkipOnMissingInput(t *testing.T) {
	cfg := testConfig(t)
	st := store.NewFileStore(cfg.Storage)
	p := New(cfg, &fakeSource{}, &fakeScorer{}, &fakeNotifier{}, st)

	assert.Equal(t, OutcomeSkipped, p.Filter(context.Background()).Outcome)
	assert.Equal(t, OutcomeSkipped, p.Score(context.Background()).Outcome)
	assert.Equal(t, OutcomeSkipped, p.Notify(context.Background()).Outcome)
}

func TestPipeline_Score_EmptyInputRendersSentinel(t *testing.T) {
	cfg := testConfig(t)
	st := store.NewFileStore(cfg.Storage)
	require.NoError(t, st.SaveItems(context.Background(), nil))

	p := New(cfg, &fakeSource{}, &fakeScorer{}, &fakeNotifier{}, st)
	res := p.Score(context.Background())
	assert.Equal(t, OutcomeEmpty, res.Outcome)

	text, ok, err := st.LoadDigest(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, text, digest.Sentinel)
}
