package catalog

import (
	"encoding/json"
	"strings"

	"shoebox/internal/textutil"
)

// Photo is one record of the photo collection. IDs are assumed unique; when
// they are not, lookups return the first match and nothing repairs the
// duplicate.
type Photo struct {
	ID          int64       `json:"id"`
	Filename    string      `json:"filename"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        *Timestamp  `json:"date,omitempty"`
	Resolution  *Resolution `json:"resolution,omitempty"`
	Albums      []int64     `json:"albums,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
}

// Album is one record of the album collection.
type Album struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HasTag reports whether the photo already carries tag, compared
// case-insensitively. Stored casing is never consulted for equality.
func (p *Photo) HasTag(tag string) bool {
	want := textutil.Fold(tag)
	for _, existing := range p.Tags {
		if textutil.Fold(existing) == want {
			return true
		}
	}
	return false
}

// InAlbum reports whether the photo's album memberships include id.
func (p *Photo) InAlbum(id int64) bool {
	for _, albumID := range p.Albums {
		if albumID == id {
			return true
		}
	}
	return false
}

// AddTag appends the trimmed tag, preserving its entered casing, unless a
// case-insensitive duplicate is already present. It reports whether the tag
// list changed.
func (p *Photo) AddTag(tag string) bool {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" || p.HasTag(trimmed) {
		return false
	}
	p.Tags = append(p.Tags, trimmed)
	return true
}

// maxEpochMillis bounds timestamps to the calendar range the original catalog
// files were written with (the ECMAScript time value range).
const maxEpochMillis = 8.64e15

// Timestamp is a photo capture time persisted as a Unix-millisecond number.
// It keeps the raw document bytes so an untouched value round-trips through a
// save byte for byte.
type Timestamp struct {
	raw    json.RawMessage
	millis int64
	valid  bool
}

// NewTimestamp builds a valid timestamp from Unix milliseconds. Used by
// tests and fixtures; documents normally arrive through UnmarshalJSON.
func NewTimestamp(millis int64) *Timestamp {
	raw, _ := json.Marshal(millis)
	return &Timestamp{raw: raw, millis: millis, valid: true}
}

// UnmarshalJSON accepts any JSON value. Values that are not numbers inside
// the representable calendar range are retained verbatim but marked invalid;
// they render as "Invalid date" rather than failing the document load.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.raw = append(t.raw[:0], data...)
	t.valid = false

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return nil
	}
	f, err := num.Float64()
	if err != nil || f > maxEpochMillis || f < -maxEpochMillis {
		return nil
	}
	t.millis = int64(f)
	t.valid = true
	return nil
}

// MarshalJSON writes back the original document bytes.
func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if len(t.raw) == 0 {
		return []byte("null"), nil
	}
	return t.raw, nil
}

// Millis returns the Unix-millisecond value and whether it is valid.
func (t *Timestamp) Millis() (int64, bool) {
	if t == nil || !t.valid {
		return 0, false
	}
	return t.millis, true
}

// Resolution is a photo resolution persisted either as ready-made "WxH" text
// or as a numeric [width, height] pair. Raw bytes are preserved for saves.
type Resolution struct {
	raw   json.RawMessage
	text  string
	parts []json.Number
}

// UnmarshalJSON accepts a string, a numeric array, or anything else; only the
// first two shapes produce displayable text.
func (r *Resolution) UnmarshalJSON(data []byte) error {
	r.raw = append(r.raw[:0], data...)
	r.text = ""
	r.parts = nil

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.text = s
		return nil
	}
	var nums []json.Number
	if err := json.Unmarshal(data, &nums); err == nil {
		r.parts = nums
	}
	return nil
}

// MarshalJSON writes back the original document bytes.
func (r *Resolution) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// Display renders the resolution for output: pass-through for text values,
// an "x"-joined dimension list for numeric pairs, and empty text for absent
// or degenerate values (fewer than two elements, non-numeric entries).
func (r *Resolution) Display() string {
	if r == nil {
		return ""
	}
	if r.text != "" {
		return r.text
	}
	if len(r.parts) < 2 {
		return ""
	}
	dims := make([]string, len(r.parts))
	for i, n := range r.parts {
		dims[i] = n.String()
	}
	return strings.Join(dims, "x")
}
