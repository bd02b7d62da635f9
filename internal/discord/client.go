package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TruncationMarker is appended when a body exceeds the transport limit.
const TruncationMarker = "..."

// embedColor is the blue Discord uses for informational embeds.
const embedColor = 3447003

// Client posts digests to a Discord webhook.
type Client struct {
	webhookURL string
	limit      int
	http       *http.Client
}

// New creates a webhook client. limit is the transport-imposed description
// size in characters (Discord caps embed descriptions well below 4096; the
// original integration used 2000).
func New(webhookURL string, limit int, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if limit <= 0 {
		limit = 2000
	}
	return &Client{
		webhookURL: webhookURL,
		limit:      limit,
		http:       &http.Client{Timeout: timeout},
	}
}

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

type payload struct {
	Content string  `json:"content"`
	Embeds  []embed `json:"embeds"`
}

// Truncate cuts s to limit characters and appends the truncation marker.
// Bodies at or under the limit pass through unchanged.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + TruncationMarker
}

// Notify delivers the digest as an embed. Any 2xx response counts as success
// (Discord answers 204 on plain webhook posts); no retry on failure.
func (c *Client) Notify(ctx context.Context, title, body string) error {
	if c == nil {
		return errors.New("nil discord client")
	}
	b, err := json.Marshal(payload{
		Content: "New Twitter Digest Available!",
		Embeds: []embed{{
			Title:       title,
			Description: Truncate(body, c.limit),
			Color:       embedColor,
		}},
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord notify failed: status=%d body=%s", resp.StatusCode, string(rb))
	}
	return nil
}
