package markdown

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document represents a Markdown document with YAML frontmatter.
type Document struct {
	Frontmatter map[string]any
	Body        string
}

// Parse extracts YAML frontmatter and body from markdown content.
// Frontmatter is expected at the top between two lines containing only "---".
func Parse(data []byte) (Document, error) {
	d := Document{Frontmatter: map[string]any{}}
	s := string(data)
	first, rest, found := strings.Cut(s, "\n")
	if !found || strings.TrimSpace(first) != "---" {
		d.Body = s
		return d, nil
	}
	fm, body, closed := cutFrontmatter(rest)
	if !closed {
		// no closing delimiter; treat the whole document as body
		d.Body = s
		return d, nil
	}
	if err := yaml.Unmarshal([]byte(fm), &d.Frontmatter); err != nil {
		return Document{}, err
	}
	if d.Frontmatter == nil {
		d.Frontmatter = map[string]any{}
	}
	d.Body = body
	return d, nil
}

// ParseFile reads a Markdown file and extracts frontmatter and body.
func ParseFile(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Parse(b)
}

// cutFrontmatter splits s at the first line containing only "---".
func cutFrontmatter(s string) (fm, body string, closed bool) {
	var b strings.Builder
	for s != "" {
		line, rest, found := strings.Cut(s, "\n")
		if strings.TrimSpace(line) == "---" {
			return b.String(), rest, true
		}
		b.WriteString(line)
		if found {
			b.WriteString("\n")
		}
		s = rest
	}
	return b.String(), "", false
}
