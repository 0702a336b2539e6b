package util

import (
	"strconv"
	"testing"
	"time"
)

func TestMonthLabel(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		offset int
		want   string
	}{
		{1, "2026-09"},
		{4, "2026-12"},
		{5, "2027-01"},
		{6, "2027-02"}, // day-30 base must not skip February
	}
	for _, c := range cases {
		if got := MonthLabel(base, c.offset); got != c.want {
			t.Fatalf("MonthLabel(+%d): got %s want %s", c.offset, got, c.want)
		}
	}
}

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got := ParseTimeDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}
