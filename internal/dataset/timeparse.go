package dataset

import "time"

// DefaultLayouts are tried in order against a whole column. The set mirrors
// the formats seen across the source exports: ISO-ish with and without
// seconds, then day-first dash and slash variants.
var DefaultLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02-01-2006 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
}

// fallbackLayouts back the generic per-value parse used when no candidate
// layout explains any row.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// ParseTimestamps parses a column of date-time strings. Each layout in turn
// is tried against the entire column; the first layout that parses at least
// one value is chosen for the whole column, and values it cannot parse
// become nil WITHOUT trying later layouts. A mixed-format column where the
// first matching layout only explains a minority of rows therefore comes
// back mostly nil; this matches the source exports' historical behavior and
// is deliberately not corrected here. If no layout parses anything, each
// value gets an independent generic parse. A nil or empty layout list means
// DefaultLayouts.
func ParseTimestamps(values []string, layouts []string) []*time.Time {
	out := make([]*time.Time, len(values))
	if len(values) == 0 {
		return out
	}
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}
	for _, layout := range layouts {
		any := false
		for i, v := range values {
			if v == "" {
				continue
			}
			if t, err := time.Parse(layout, v); err == nil {
				out[i] = &t
				any = true
			}
		}
		if any {
			return out
		}
	}
	for i, v := range values {
		out[i] = parseGeneric(v)
	}
	return out
}

func parseGeneric(v string) *time.Time {
	if v == "" {
		return nil
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
