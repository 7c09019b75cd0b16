package dao

import (
	"testing"
	"time"
)

func TestToFilterAllAbsent(t *testing.T) {
	f := (&FilterRequest{}).ToFilter(nil)

	if f.Search != "" || f.Location != "" || f.Schedule != "" {
		t.Errorf("text filters should be empty, got %+v", f)
	}
	if f.DateFrom != nil || f.DateTo != nil {
		t.Errorf("date bounds should be nil, got %v %v", f.DateFrom, f.DateTo)
	}
	if f.MinSalary != nil || f.MaxSalary != nil {
		t.Errorf("salary bounds should be nil, got %v %v", f.MinSalary, f.MaxSalary)
	}
	if cond, _ := f.Predicate().SQL(); cond != "1=1" {
		t.Errorf("all-absent request must compile to the neutral predicate, got %q", cond)
	}
}

func TestToFilterDates(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantFrom *string
		wantTo   *string
	}{
		{
			name:  "both valid",
			start: "2024-01-01", end: "2024-06-30",
			wantFrom: ptr("2024-01-01"), wantTo: ptr("2024-06-30"),
		},
		{
			name:  "start only",
			start: "2024-03-01",
			wantFrom: ptr("2024-03-01"),
		},
		{
			name: "end only",
			end:  "2024-03-01",
			wantTo: ptr("2024-03-01"),
		},
		{
			name:  "invalid start drops the pair",
			start: "not-a-date", end: "2024-01-01",
		},
		{
			name:  "invalid end drops the pair",
			start: "2024-01-01", end: "01/06/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := (&FilterRequest{StartDate: tt.start, EndDate: tt.end}).ToFilter(nil)
			checkDate(t, "DateFrom", f.DateFrom, tt.wantFrom)
			checkDate(t, "DateTo", f.DateTo, tt.wantTo)
		})
	}
}

func TestToFilterSalaryBounds(t *testing.T) {
	f := (&FilterRequest{MinSalary: "80000", MaxSalary: "not-a-number"}).ToFilter(nil)

	if f.MinSalary == nil || *f.MinSalary != 80000 {
		t.Errorf("MinSalary = %v, want 80000", f.MinSalary)
	}
	if f.MaxSalary != nil {
		t.Errorf("non-numeric MaxSalary must be dropped, got %v", *f.MaxSalary)
	}

	// bounds fail open independently of each other
	f = (&FilterRequest{MinSalary: "xx", MaxSalary: "150000.5"}).ToFilter(nil)
	if f.MinSalary != nil {
		t.Errorf("non-numeric MinSalary must be dropped, got %v", *f.MinSalary)
	}
	if f.MaxSalary == nil || *f.MaxSalary != 150000.5 {
		t.Errorf("MaxSalary = %v, want 150000.5", f.MaxSalary)
	}
}

func TestToFilterTrimsSearch(t *testing.T) {
	f := (&FilterRequest{Search: "  data analyst "}).ToFilter(nil)
	if f.Search != "data analyst" {
		t.Errorf("Search = %q", f.Search)
	}
}

func ptr(s string) *string { return &s }

func checkDate(t *testing.T, field string, got *time.Time, want *string) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Errorf("%s = %v, want nil", field, got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s = nil, want %s", field, *want)
		return
	}
	if got.Format(time.DateOnly) != *want {
		t.Errorf("%s = %v, want %s", field, got, *want)
	}
}
