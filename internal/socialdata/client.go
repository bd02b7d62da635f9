package socialdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tweetdigest/internal/model"
)

// Client is a minimal socialdata.tools API client.
// Docs: https://docs.socialdata.tools
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new socialdata client. baseURL should be something like
// "https://api.socialdata.tools". If empty, it defaults to the public endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = "https://api.socialdata.tools"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// listTweet mirrors the subset of tweet fields we care about.
type listTweet struct {
	IDStr         string `json:"id_str"`
	FullText      string `json:"full_text"`
	FavoriteCount int    `json:"favorite_count"`
	RetweetCount  int    `json:"retweet_count"`
	User          struct {
		ScreenName string `json:"screen_name"`
	} `json:"user"`
}

type listResponse struct {
	Tweets []listTweet `json:"tweets"`
}

// ListTweets fetches the tweets currently available for a list.
// API: GET /twitter/list/{list_id}/tweets
func (c *Client) ListTweets(ctx context.Context, listID string) ([]model.Tweet, error) {
	endpoint := fmt.Sprintf("%s/twitter/list/%s/tweets", c.baseURL, url.PathEscape(listID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("socialdata: list tweets failed: status=%d body=%s", resp.StatusCode, string(b))
	}
	var raw listResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	tweets := make([]model.Tweet, 0, len(raw.Tweets))
	for _, t := range raw.Tweets {
		tweets = append(tweets, model.Tweet{
			ID:       t.IDStr,
			Author:   t.User.ScreenName,
			Text:     t.FullText,
			Likes:    t.FavoriteCount,
			Retweets: t.RetweetCount,
		})
	}
	return tweets, nil
}
