package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tweetdigest/internal/model"
	"tweetdigest/internal/relevance"

	openai "github.com/sashabaranov/go-openai"
)

// Scorer defines the relevance-scoring interface used by the pipeline.
type Scorer interface {
	// ScoreTweet rates one tweet's relevance to the interest profile.
	// The returned result is degraded (score 0) when the model response
	// cannot be parsed; the error is non-nil only for transport failures.
	ScoreTweet(ctx context.Context, t model.Tweet, profile string) (relevance.Result, error)
}

// OpenAIClient implements Scorer using the OpenAI Chat Completions API.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string // optional
	Temperature float32
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIClient{client: c, model: model, temperature: cfg.Temperature}
}

const systemPrompt = "You evaluate content relevance for busy professionals."

func (o *OpenAIClient) ScoreTweet(ctx context.Context, t model.Tweet, profile string) (relevance.Result, error) {
	// per-tweet timeout; one short completion per call
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	user := fmt.Sprintf(`Analyze if the following tweet is highly relevant to my work:

TWEET: %q
By: @%s
Engagement: Likes: %d, Retweets: %d

MY WORK INTERESTS:
%s

Rate this tweet's relevance to my work on a scale of 1-10, where:
1-3: Not relevant
4-6: Somewhat relevant
7-10: Highly relevant

First provide the numerical score as "Score: N/10", then a brief explanation.`,
		t.Text, t.Author, t.Likes, t.Retweets, strings.TrimSpace(profile))

	out, err := o.create(ctx, systemPrompt, user)
	if err != nil {
		slog.Error("openai: score tweet error", "id", t.ID, "err", err)
		return relevance.Result{}, err
	}
	res := relevance.Parse(out)
	if res.Degraded {
		slog.Warn("openai: unparseable score line, degrading to 0", "id", t.ID)
	}
	return res, nil
}

func (o *OpenAIClient) create(ctx context.Context, system, user string) (string, error) {
	// Default timeout guard, if caller didn't set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 300*time.Second)
		defer cancel()
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: o.temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
