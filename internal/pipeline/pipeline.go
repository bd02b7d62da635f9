// Package pipeline composes the four batch stages in-process. Stages hand
// off through the artifact store and report structured results, so the
// orchestrator decides transitions on stage state instead of probing files.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tweetdigest/internal/ai"
	"tweetdigest/internal/config"
	"tweetdigest/internal/digest"
	"tweetdigest/internal/filter"
	"tweetdigest/internal/markdown"
	"tweetdigest/internal/model"
	"tweetdigest/internal/store"
)

// Outcome classifies how a stage ended.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"      // stage produced its artifact
	OutcomeEmpty   Outcome = "empty"   // stage ran but its result set is empty
	OutcomeSkipped Outcome = "skipped" // input artifact absent, nothing to do
	OutcomeFailed  Outcome = "failed"  // stage error; the run continues
)

// StageResult is the per-stage status the orchestrator acts on.
type StageResult struct {
	Stage   string
	Outcome Outcome
	Count   int
	Err     error
}

func (r StageResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", r.Stage, r.Outcome, r.Err)
	}
	return fmt.Sprintf("%s: %s (%d items)", r.Stage, r.Outcome, r.Count)
}

// Source fetches tweets for a list.
type Source interface {
	ListTweets(ctx context.Context, listID string) ([]model.Tweet, error)
}

// Notifier delivers the rendered digest.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// Pipeline wires the stages to their collaborators.
type Pipeline struct {
	cfg      config.Config
	source   Source
	scorer   ai.Scorer
	notifier Notifier
	store    store.Store
	now      func() time.Time
}

func New(cfg config.Config, src Source, scorer ai.Scorer, notifier Notifier, st store.Store) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		source:   src,
		scorer:   scorer,
		notifier: notifier,
		store:    st,
		now:      time.Now,
	}
}

// Collect fetches the configured list and persists the raw set. A fetch
// failure leaves no artifact, which downstream stages read as "nothing to
// do" -- distinguishable from a successful fetch of zero tweets.
func (p *Pipeline) Collect(ctx context.Context) StageResult {
	res := StageResult{Stage: "collect"}
	tweets, err := p.source.ListTweets(ctx, p.cfg.Source.ListID)
	if err != nil {
		slog.Error("collect: fetch failed", "list", p.cfg.Source.ListID, "err", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	if err := p.store.SaveFetched(ctx, tweets); err != nil {
		slog.Error("collect: save artifact failed", "err", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	res.Count = len(tweets)
	res.Outcome = OutcomeOK
	if len(tweets) == 0 {
		res.Outcome = OutcomeEmpty
	}
	slog.Info("collect: fetched tweets from list", "list", p.cfg.Source.ListID, "count", len(tweets))
	return res
}

// Filter applies the engagement threshold to the fetched set and persists
// the retained tweets for analysis.
func (p *Pipeline) Filter(ctx context.Context) StageResult {
	res := StageResult{Stage: "filter"}
	tweets, ok, err := p.store.LoadFetched(ctx)
	if err != nil {
		slog.Error("filter: load artifact failed", "err", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	if !ok {
		slog.Info("filter: no fetched artifact, nothing to do")
		res.Outcome = OutcomeSkipped
		return res
	}
	kept := filter.ByEngagement(tweets, p.cfg.Filter.MinLikes)
	if err := p.store.SaveItems(ctx, kept); err != nil {
		slog.Error("filter: save artifact failed", "err", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	res.Count = len(kept)
	res.Outcome = OutcomeOK
	if len(kept) == 0 {
		res.Outcome = OutcomeEmpty
	}
	slog.Info("filter: retained tweets", "min_likes", p.cfg.Filter.MinLikes, "in", len(tweets), "kept", len(kept))
	return res
}

// Score rates every retained tweet against the interest profile, builds the
// relevant set, and persists the rendered digest. An empty input set still
// produces the sentinel digest. Per-tweet scoring failures degrade that
// tweet to score 0 instead of aborting the stage.
func (p *Pipeline) Score(ctx context.Context) StageResult {
	res := StageResult{Stage: "score"}
	tweets, ok, err := p.store.LoadItems(ctx)
	if err != nil {
		slog.Error("score: load artifact failed", "err", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	if !ok {
		slog.Info("score: no analysis artifact, nothing to do")
		res.Outcome = OutcomeSkipped
		return res
	}
	scored := make([]model.ScoredTweet, 0, len(tweets))
	for _, t := range tweets {
		r, err := p.scorer.ScoreTweet(ctx, t, p.cfg.Digest.InterestProfile)
		if err != nil {
			slog.Warn("score: scoring failed, degrading to 0", "id", t.ID, "err", err)
			scored = append(scored, model.ScoredTweet{
				Tweet:     t,
				Rationale: fmt.Sprintf("scoring failed: %v", err),
				Degraded:  true,
			})
			continue
		}
		scored = append(scored, model.ScoredTweet{
			Tweet:     t,
			Score:     r.Score,
			Rationale: r.Rationale,
			Degraded:  r.Degraded,
		})
	}
	relevant := digest.Build(scored, p.cfg.Digest.RelevanceCutoff)
	text, err := digest.Render(digest.NewData(p.cfg.Digest.Title, p.now(), relevant))
	if err != nil {
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	if err := p.store.SaveDigest(ctx, text); err != nil {
		slog.Error("score: save digest failed", "err", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	res.Count = len(relevant)
	res.Outcome = OutcomeOK
	if len(relevant) == 0 {
		res.Outcome = OutcomeEmpty
	}
	slog.Info("score: digest built", "scored", len(scored), "relevant", len(relevant),
		"cutoff", p.cfg.Digest.RelevanceCutoff)
	return res
}

// Notify loads the rendered digest and delivers it to the webhook. The
// embed title comes from the digest frontmatter.
func (p *Pipeline) Notify(ctx context.Context) StageResult {
	res := StageResult{Stage: "notify"}
	text, ok, err := p.store.LoadDigest(ctx)
	if err != nil {
		slog.Error("notify: load digest failed", "err", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	if !ok {
		slog.Info("notify: no digest artifact, nothing to do")
		res.Outcome = OutcomeSkipped
		return res
	}
	doc, err := markdown.Parse([]byte(text))
	if err != nil {
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	title := "Twitter Content Digest"
	if t, ok := doc.Frontmatter["title"].(string); ok && t != "" {
		title = t
	}
	if err := p.notifier.Notify(ctx, title, doc.Body); err != nil {
		slog.Error("notify: delivery failed", "err", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	res.Count = 1
	res.Outcome = OutcomeOK
	slog.Info("notify: digest delivered")
	return res
}

// Run executes the stages in order. Failures are logged and the run keeps
// going; delivery only happens when the score stage produced a digest this
// run (the sentinel digest counts). No retry, no rollback.
func (p *Pipeline) Run(ctx context.Context) []StageResult {
	results := make([]StageResult, 0, 4)
	results = append(results, p.Collect(ctx))
	results = append(results, p.Filter(ctx))
	scoreRes := p.Score(ctx)
	results = append(results, scoreRes)

	if scoreRes.Outcome == OutcomeFailed || scoreRes.Outcome == OutcomeSkipped {
		slog.Info("run: no digest produced, skipping delivery")
		results = append(results, StageResult{Stage: "notify", Outcome: OutcomeSkipped})
		return results
	}
	results = append(results, p.Notify(ctx))
	return results
}
