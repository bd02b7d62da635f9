// Package relevance parses relevance scores out of free-text model responses.
package relevance

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is the typed outcome of parsing a model response. Degraded is set
// when no score could be extracted; the score is then 0 and Rationale still
// carries the full raw response so nothing is lost.
type Result struct {
	Score     int
	Rationale string
	Degraded  bool
}

// scoreLine matches the expected first-line pattern, e.g. "Score: 8/10" or
// "Relevance: 3 / 10". The label before the colon is free-form.
var scoreLine = regexp.MustCompile(`(?i)^[^:]*:\s*(\d{1,2})\s*/\s*10\b`)

// Parse extracts a 1-10 score from the first line of a model response.
// Anything unparseable yields a degraded zero-score result.
func Parse(raw string) Result {
	res := Result{Rationale: raw}
	first, _, _ := strings.Cut(strings.TrimSpace(raw), "\n")
	m := scoreLine.FindStringSubmatch(strings.TrimSpace(first))
	if m == nil {
		res.Degraded = true
		return res
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 || n > 10 {
		res.Degraded = true
		return res
	}
	res.Score = n
	return res
}
