package digest

import (
	"strings"
	"time"
)

// ExpandVars performs simple placeholder substitutions for config-provided
// text fields (e.g., the digest title).
//
// Supported variables:
// - {.CurrentDate} => formatted as YYYY-MM-DD (UTC)
func ExpandVars(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	date := now.UTC().Format("2006-01-02")
	return strings.ReplaceAll(s, "{.CurrentDate}", date)
}
