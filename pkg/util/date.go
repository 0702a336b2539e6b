package util

import "time"

// MonthLabel renders the month `offset` months after base as YYYY-MM.
// Anchored to the first of the month so end-of-month bases cannot skip a
// short month during normalization.
func MonthLabel(base time.Time, offset int) string {
	first := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location())
	return first.AddDate(0, offset, 0).Format("2006-01")
}

// ParseTime accepts RFC3339 timestamps or unix seconds.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	var unix int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
		unix = unix*10 + int64(c-'0')
	}
	return time.Unix(unix, 0).UTC(), true
}

// ParseTimeDefault falls back to def when s does not parse.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}
