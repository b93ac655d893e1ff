// Package shared provides common utility functions used across multiple
// packages in the cpe-synth codebase.
package shared

import (
	"fmt"
	"strings"
)

// HTTPStatusError creates a formatted error for unexpected HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// HTTPStatusErrorWithBody creates a formatted error that includes a
// truncated response body for unexpected HTTP responses.
func HTTPStatusErrorWithBody(status int, url string, body string) error {
	return fmt.Errorf("status=%d url=%s response=%s", status, url, Truncate(strings.TrimSpace(body), 200))
}

// Truncate shortens value to at most limit bytes, marking the cut with "...".
func Truncate(value string, limit int) string {
	if limit <= 0 || len(value) <= limit {
		return value
	}
	if limit <= 3 {
		return value[:limit]
	}
	return value[:limit-3] + "..."
}

// CleanStrings trims every value and drops the empty ones, keeping order
// and the first occurrence of duplicates.
func CleanStrings(values []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
