package health

import (
	"iter"
	"time"
)

// DefaultTail is the number of recent readings shown and reported by default.
const DefaultTail = 10

// Tail returns the last n readings, in insertion order.
// All readings are returned when n <= 0 or there are fewer than n.
func Tail(readings []Reading, n int) []Reading {
	if n <= 0 || n >= len(readings) {
		return readings
	}
	return readings[len(readings)-n:]
}

// Series iterates over the (timestamp, value) pairs of one field.
// The sequence can be ranged over any number of times.
func Series(readings []Reading, f Field) iter.Seq2[time.Time, float64] {
	return func(yield func(time.Time, float64) bool) {
		for _, r := range readings {
			if !yield(r.Timestamp, r.Float(f)) {
				return
			}
		}
	}
}

// Panel is a chart grouping one or more fields on a shared axis.
type Panel struct {
	Title  string
	Fields []Field
}

// Panels are the charts of a patient history, in display order.
var Panels = []Panel{
	{Title: "Blood Pressure (mmHg)", Fields: []Field{Systolic, Diastolic}},
	{Title: Temperature.Label(), Fields: []Field{Temperature}},
	{Title: Glucose.Label(), Fields: []Field{Glucose}},
	{Title: VitaminD.Label(), Fields: []Field{VitaminD}},
}

// PanelsPerRow is the number of panels laid out side by side.
const PanelsPerRow = 2

// Rows splits items in consecutive rows of at most n items.
func Rows[T any](items []T, n int) [][]T {
	if n <= 0 {
		n = 1
	}
	var rows [][]T
	for i := 0; i < len(items); i += n {
		rows = append(rows, items[i:min(i+n, len(items))])
	}
	return rows
}
