package services

import (
	"fmt"
	"time"
)

// Layouts accepted for incoming due dates. Clients send RFC3339, but older
// ones send timezone-naive stamps or bare dates, which are read as UTC.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseWhen parses an ISO-8601 timestamp in any accepted layout.
func ParseWhen(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func formatWhen(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
