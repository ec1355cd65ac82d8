package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// dateLayouts are tried in order when parsing upstream timestamps.
// Upstream data is not guaranteed valid: values may be null, empty,
// truncated or plain garbage, and none of that may break decoding.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsedDate is an explicit valid-or-invalid timestamp. Instead of carrying
// a raw string and re-checking it at every use site, the validity decision
// is made once at decode time and consumers branch on Valid().
type ParsedDate struct {
	raw   string
	t     time.Time
	valid bool
}

// NewParsedDate builds a valid ParsedDate from an instant.
func NewParsedDate(t time.Time) ParsedDate {
	return ParsedDate{raw: t.Format(time.RFC3339Nano), t: t, valid: true}
}

// InvalidDate returns the invalid variant.
func InvalidDate() ParsedDate {
	return ParsedDate{}
}

// ParseDate parses a raw timestamp string. Unparseable input yields the
// invalid variant, never an error.
func ParseDate(raw string) ParsedDate {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return ParsedDate{raw: raw, t: t, valid: true}
		}
	}
	return ParsedDate{raw: raw}
}

// Valid reports whether the date carries a usable instant.
func (d ParsedDate) Valid() bool {
	return d.valid
}

// Time returns the parsed instant. Zero value when invalid.
func (d ParsedDate) Time() time.Time {
	return d.t
}

// Raw returns the original upstream string, empty for null/absent values.
func (d ParsedDate) Raw() string {
	return d.raw
}

// InRange reports whether the instant falls within [from, to], both bounds
// inclusive at instant granularity. A nil bound is unconstrained. The
// invalid variant never satisfies an active bound.
func (d ParsedDate) InRange(from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if !d.valid {
		return false
	}
	if from != nil && d.t.Before(*from) {
		return false
	}
	if to != nil && d.t.After(*to) {
		return false
	}
	return true
}

// Format renders the instant in the given layout and location.
// The invalid variant renders as "Invalid Date".
func (d ParsedDate) Format(layout string, loc *time.Location) string {
	if !d.valid {
		return "Invalid Date"
	}
	return d.t.In(loc).Format(layout)
}

// UnmarshalJSON accepts a timestamp string, null, or any other JSON scalar.
// Decoding never fails; anything that is not a parseable timestamp becomes
// the invalid variant.
func (d *ParsedDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = InvalidDate()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Non-string scalar (number, bool, object). Treat as invalid.
		*d = ParsedDate{raw: string(data)}
		return nil
	}

	*d = ParseDate(s)
	return nil
}

// MarshalJSON round-trips the upstream value: the original string when one
// was present, null otherwise.
func (d ParsedDate) MarshalJSON() ([]byte, error) {
	if d.raw == "" && !d.valid {
		return []byte("null"), nil
	}
	if d.raw != "" {
		return json.Marshal(d.raw)
	}
	return json.Marshal(d.t.Format(time.RFC3339Nano))
}
