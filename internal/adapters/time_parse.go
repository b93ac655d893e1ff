package adapters

import (
	"fmt"
	"strings"
	"time"
)

const recordDateLayout = "2006-01-02"

// parseRecordDate accepts the plain install date written by the exporters as
// well as full timestamps from hand-edited files, truncated to the UTC day.
func parseRecordDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	layouts := []string{
		recordDateLayout,
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			parsed = parsed.UTC()
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", trimmed)
}
