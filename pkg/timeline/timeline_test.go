package timeline

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthStarts(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
		first time.Time
		last  time.Time
	}{
		{
			name:  "full year",
			start: date(2023, time.July, 1),
			end:   date(2024, time.July, 1),
			want:  12,
			first: date(2023, time.July, 1),
			last:  date(2024, time.June, 1),
		},
		{
			name:  "mid-month bounds truncate",
			start: date(2024, time.January, 15),
			end:   date(2024, time.March, 20),
			want:  2,
			first: date(2024, time.January, 1),
			last:  date(2024, time.February, 1),
		},
		{
			name:  "single month",
			start: date(2024, time.May, 1),
			end:   date(2024, time.June, 1),
			want:  1,
			first: date(2024, time.May, 1),
			last:  date(2024, time.May, 1),
		},
		{
			name:  "year boundary",
			start: date(2023, time.November, 1),
			end:   date(2024, time.February, 1),
			want:  3,
			first: date(2023, time.November, 1),
			last:  date(2024, time.January, 1),
		},
		{
			name:  "inverted range is empty",
			start: date(2024, time.March, 1),
			end:   date(2024, time.January, 1),
			want:  0,
		},
		{
			name:  "equal bounds are empty",
			start: date(2024, time.March, 1),
			end:   date(2024, time.March, 1),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthStarts(tt.start, tt.end)
			if len(got) != tt.want {
				t.Fatalf("got %d months, want %d", len(got), tt.want)
			}
			if tt.want == 0 {
				return
			}
			if !got[0].Equal(tt.first) {
				t.Errorf("first month = %v, want %v", got[0], tt.first)
			}
			if !got[len(got)-1].Equal(tt.last) {
				t.Errorf("last month = %v, want %v", got[len(got)-1], tt.last)
			}
			for i := 1; i < len(got); i++ {
				if !got[i].Equal(got[i-1].AddDate(0, 1, 0)) {
					t.Errorf("gap between %v and %v", got[i-1], got[i])
				}
			}
		})
	}
}

func TestFillCounts(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.May, 1)
	sparse := map[time.Time]int64{
		date(2024, time.February, 1): 7,
		date(2024, time.April, 1):    3,
		// outside the range, must be ignored
		date(2023, time.December, 1): 99,
		date(2024, time.May, 1):      99,
	}

	got := Fill(start, end, sparse, int64(0))
	if len(got) != 4 {
		t.Fatalf("got %d buckets, want 4", len(got))
	}
	want := []int64{0, 7, 0, 3}
	for i, b := range got {
		if b.Value != want[i] {
			t.Errorf("bucket %d (%v) = %d, want %d", i, b.Month, b.Value, want[i])
		}
	}
}

func TestFillEmptyInput(t *testing.T) {
	start := date(2023, time.July, 1)
	end := date(2024, time.July, 1)

	got := Fill(start, end, map[time.Time]int64{}, int64(0))
	if len(got) != 12 {
		t.Fatalf("got %d buckets, want 12", len(got))
	}
	for _, b := range got {
		if b.Value != 0 {
			t.Errorf("bucket %v = %d, want 0", b.Month, b.Value)
		}
	}
}

func TestFillAveragesNullNotZero(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.April, 1)
	feb := 85000.5
	sparse := map[time.Time]*float64{
		date(2024, time.February, 1): &feb,
	}

	got := Fill(start, end, sparse, (*float64)(nil))
	if len(got) != 3 {
		t.Fatalf("got %d buckets, want 3", len(got))
	}
	if got[0].Value != nil || got[2].Value != nil {
		t.Errorf("missing months must be nil, got %v and %v", got[0].Value, got[2].Value)
	}
	if got[1].Value == nil || *got[1].Value != feb {
		t.Errorf("february = %v, want %v", got[1].Value, feb)
	}
}

func TestFillIdempotent(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.June, 1)
	sparse := map[time.Time]int64{date(2024, time.March, 1): 5}

	a := Fill(start, end, sparse, int64(0))
	b := Fill(start, end, sparse, int64(0))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Month.Equal(b[i].Month) || a[i].Value != b[i].Value {
			t.Errorf("bucket %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDefaultRange(t *testing.T) {
	start, end := DefaultRange(date(2024, time.June, 15))
	if !start.Equal(date(2023, time.July, 1)) {
		t.Errorf("start = %v, want 2023-07-01", start)
	}
	if !end.Equal(date(2024, time.July, 1)) {
		t.Errorf("end = %v, want 2024-07-01", end)
	}
	if got := MonthStarts(start, end); len(got) != 12 {
		t.Errorf("default range spans %d months, want 12", len(got))
	}
}
