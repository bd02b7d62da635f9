package digest

import (
	"bytes"
	_ "embed"
	"sort"
	"text/template"
	"time"

	"tweetdigest/internal/model"
)

// Sentinel is rendered in place of the item sections when nothing scored
// at or above the cutoff.
const Sentinel = "No highly relevant tweets found in the latest batch."

// Item is one rendered digest section.
type Item struct {
	Author string
	Score  int
	Text   string
	URL    string
}

// Data feeds the digest template.
type Data struct {
	Title    string
	Datetime string
	Items    []Item
	Sentinel string
}

//go:embed digest.tmpl
var digestTpl string

var compiled = template.Must(template.New("digest").Parse(digestTpl))

// Build keeps tweets scoring at or above cutoff, ordered by descending score.
// The sort is stable so equal scores retain their input order.
func Build(scored []model.ScoredTweet, cutoff int) []model.ScoredTweet {
	relevant := make([]model.ScoredTweet, 0, len(scored))
	for _, s := range scored {
		if s.Score >= cutoff {
			relevant = append(relevant, s)
		}
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Score > relevant[j].Score
	})
	return relevant
}

// NewData prepares template data from the relevant set. The title supports
// the {.CurrentDate} placeholder.
func NewData(title string, now time.Time, relevant []model.ScoredTweet) Data {
	d := Data{
		Title:    ExpandVars(title, now),
		Datetime: now.UTC().Format("2006-01-02 15:04"),
		Sentinel: Sentinel,
		Items:    make([]Item, 0, len(relevant)),
	}
	for _, s := range relevant {
		d.Items = append(d.Items, Item{
			Author: s.Tweet.Author,
			Score:  s.Score,
			Text:   s.Tweet.Text,
			URL:    s.Tweet.Permalink(),
		})
	}
	return d
}

func Render(d Data) (string, error) {
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
