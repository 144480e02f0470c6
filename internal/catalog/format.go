package catalog

import (
	"strings"
	"time"
)

// Literal renderings for timestamps that cannot be displayed as dates.
const (
	DateUnknown = "Unknown"
	DateInvalid = "Invalid date"
)

// FormatDate renders a timestamp as a long-form calendar date, such as
// "January 5, 2024". An absent timestamp renders as "Unknown" and a value
// that does not describe a calendar date as "Invalid date".
func FormatDate(ts *Timestamp) string {
	if ts == nil {
		return DateUnknown
	}
	millis, ok := ts.Millis()
	if !ok {
		return DateInvalid
	}
	return time.UnixMilli(millis).UTC().Format("January 2, 2006")
}

// Join concatenates items with sep between consecutive elements and no
// trailing separator. An empty sequence renders as fallback, which may be
// empty when the caller wants a genuinely empty field.
func Join(items []string, sep, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, sep)
}

// ResolveAlbumNames maps album IDs to album names by linear lookup.
// IDs with no matching album are dropped; output order follows the input.
func ResolveAlbumNames(ids []int64, albums []Album) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		for i := range albums {
			if albums[i].ID == id {
				names = append(names, albums[i].Name)
				break
			}
		}
	}
	return names
}
