// Package timeline turns sparse month-keyed aggregates into dense,
// gap-free monthly series.
package timeline

import "time"

// Bucket is one calendar-month slot in a series.
type Bucket[V any] struct {
	Month time.Time
	Value V
}

// TruncateToMonth returns the first day of t's month at midnight UTC.
func TruncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthStarts enumerates every month start from start (inclusive) up to
// endExclusive. Both bounds are truncated to their month first. An
// inverted or empty range yields an empty slice.
func MonthStarts(start, endExclusive time.Time) []time.Time {
	cur := TruncateToMonth(start)
	end := TruncateToMonth(endExclusive)

	var months []time.Time
	for cur.Before(end) {
		months = append(months, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// Fill produces one bucket per calendar month between start (inclusive)
// and endExclusive, in ascending order. Months present in sparse keep
// their value; every other month gets missing. Keys outside the range
// are ignored, so the output length depends only on the range.
func Fill[V any](start, endExclusive time.Time, sparse map[time.Time]V, missing V) []Bucket[V] {
	months := MonthStarts(start, endExclusive)
	buckets := make([]Bucket[V], 0, len(months))
	for _, m := range months {
		v, ok := sparse[m]
		if !ok {
			v = missing
		}
		buckets = append(buckets, Bucket[V]{Month: m, Value: v})
	}
	return buckets
}

// DefaultRange derives the 12-month window ending at the anchor's month:
// start is the first day of the month 11 months before the anchor, and
// endExclusive the first day of the month after it. The anchor is the
// latest posting date in the dataset, not the wall clock.
func DefaultRange(anchor time.Time) (start, endExclusive time.Time) {
	m := TruncateToMonth(anchor)
	return m.AddDate(0, -11, 0), m.AddDate(0, 1, 0)
}
