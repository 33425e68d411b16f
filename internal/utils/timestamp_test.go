package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type timeHolder struct{ t time.Time }

func (h timeHolder) Time() time.Time { return h.t }

func TestParseTimestamp(t *testing.T) {
	ref := time.Date(2026, 5, 10, 13, 30, 0, 0, time.UTC)
	refPtr := ref

	tests := []struct {
		name  string
		in    interface{}
		want  time.Time
		valid bool
	}{
		{"nil", nil, time.Time{}, false},
		{"time", ref, ref, true},
		{"zero time", time.Time{}, time.Time{}, false},
		{"time pointer", &refPtr, ref, true},
		{"nil time pointer", (*time.Time)(nil), time.Time{}, false},
		{"bson datetime", primitive.NewDateTimeFromTime(ref), ref, true},
		{"bson timestamp", primitive.Timestamp{T: uint32(ref.Unix())}, ref, true},
		{"rfc3339", "2026-05-10T13:30:00Z", ref, true},
		{"rfc3339 millis", "2026-05-10T13:30:00.000Z", ref, true},
		{"date only", "2026-05-10", time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), true},
		{"garbage string", "ayer", time.Time{}, false},
		{"empty string", "", time.Time{}, false},
		{"epoch millis int64", ref.UnixMilli(), ref, true},
		{"epoch millis float", float64(ref.UnixMilli()), ref, true},
		{"seconds map", map[string]interface{}{"seconds": ref.Unix(), "nanoseconds": 0}, ref, true},
		{"underscore seconds map", bson.M{"_seconds": int32(ref.Unix()), "_nanoseconds": int32(0)}, ref, true},
		{"bson document", bson.D{{Key: "seconds", Value: ref.Unix()}}, ref, true},
		{"map without seconds", map[string]interface{}{"foo": 1}, time.Time{}, false},
		{"time accessor", timeHolder{t: ref}, ref, true},
		{"unsupported", true, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.in)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		loc = time.FixedZone("ART", -3*3600)
	}

	tests := []struct {
		in    string
		valid bool
	}{
		{"1990-04-15", true},
		{"1990-4-15", true},
		{"15/04/1990", true},
		{"15-04-1990", true},
		{"1990-04-15T00:00:00Z", true},
		{"", false},
		{"15 de abril", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in, loc)
			assert.Equal(t, tt.valid, ok)
			if ok {
				y, m, d := got.Date()
				assert.Equal(t, 1990, y)
				assert.Equal(t, time.April, m)
				assert.Equal(t, 15, d)
				assert.Equal(t, loc, got.Location())
			}
		})
	}
}
