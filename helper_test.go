package health

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// at returns a local time for tests, on 2025-03-01 at the given hour and minute.
func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 1, hour, minute, 0, 0, time.Local)
}

// R is a helper for test to create a reading.
func R(ts time.Time, sys, dia int, temp string, glu, vitd int) Reading {
	return Reading{
		Timestamp:   ts,
		Systolic:    sys,
		Diastolic:   dia,
		Temperature: decimal.RequireFromString(temp),
		Glucose:     glu,
		VitaminD:    vitd,
	}
}

// newStore opens a store in a fresh temporary folder.
func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	return s
}
