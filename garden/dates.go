package garden

import (
	"fmt"
	"time"
)

// Textual date formats accepted from clients.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC1123,
}

// ParseDate normalizes a date in any accepted format to YYYY-MM-DD.
func ParseDate(value string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	return "", fmt.Errorf("%w: invalid date format %q", ErrInvalidInput, value)
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}
