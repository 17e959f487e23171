package utils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for timestamp input. Zone markers and fractional
// seconds are stripped before matching, so everything is interpreted as
// UTC wall time at whole-second precision.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601-like string. A trailing "Z" and any
// fractional-second part are tolerated and truncated.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	s = strings.TrimSuffix(s, "Z")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// CombineDateTime builds a single UTC timestamp from a "2006-01-02" date
// and an optional "15:04" clock. An empty clock means midnight.
func CombineDateTime(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	if clock = strings.TrimSpace(clock); clock == "" {
		return day, nil
	}
	layout := "15:04"
	if strings.Count(clock, ":") == 2 {
		layout = "15:04:05"
	}
	tod, err := time.ParseInLocation(layout, clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", clock)
	}
	return day.Add(time.Duration(tod.Hour())*time.Hour +
		time.Duration(tod.Minute())*time.Minute +
		time.Duration(tod.Second())*time.Second), nil
}

// FormatUTC serializes a timestamp at whole-second UTC precision with an
// explicit trailing Z.
func FormatUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + "Z"
}
