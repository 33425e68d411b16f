package utils

import (
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-1-2",
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
}

// ParseTimestamp converts the timestamp representations found in stored
// applications: time values, BSON datetimes and timestamps, ISO/date strings,
// epoch milliseconds, maps exposing seconds/nanoseconds, and any value with a
// Time() accessor. The bool is false when v is not a usable timestamp.
func ParseTimestamp(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case primitive.DateTime:
		return t.Time().UTC(), true
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC(), true
	case string:
		return parseTimestampString(t)
	case int:
		return fromMillis(float64(t))
	case int32:
		return fromMillis(float64(t))
	case int64:
		return fromMillis(float64(t))
	case float64:
		return fromMillis(t)
	case bson.M:
		return fromSecondsMap(t)
	case map[string]interface{}:
		return fromSecondsMap(t)
	case bson.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = e.Value
		}
		return fromSecondsMap(m)
	case interface{ Time() time.Time }:
		tt := t.Time()
		return tt, !tt.IsZero()
	default:
		return time.Time{}, false
	}
}

func parseTimestampString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fromMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

func fromSecondsMap(m map[string]interface{}) (time.Time, bool) {
	seconds, ok := numberField(m, "seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}
	nanos, _ := numberField(m, "nanoseconds", "_nanoseconds")
	return time.Unix(int64(seconds), int64(nanos)).UTC(), true
}

func numberField(m map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		switch n := m[key].(type) {
		case int:
			return float64(n), true
		case int32:
			return float64(n), true
		case int64:
			return float64(n), true
		case float64:
			return n, true
		}
	}
	return 0, false
}

// ParseDate parses a calendar date entered by an applicant (YYYY-MM-DD or DD/MM/YYYY) in loc
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}
