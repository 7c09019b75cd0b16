package model

import (
	"reflect"
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func tptr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestPredicateNeutralWhenEmpty(t *testing.T) {
	for _, f := range []*Filter{nil, {}} {
		cond, args := f.Predicate().SQL()
		if cond != "1=1" {
			t.Errorf("empty filter renders %q, want 1=1", cond)
		}
		if len(args) != 0 {
			t.Errorf("empty filter binds %d values, want 0", len(args))
		}
	}
}

func TestPredicateClauses(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		wantCond string
		wantArgs []any
	}{
		{
			name:     "search matches title or company",
			filter:   Filter{Search: "data analyst"},
			wantCond: "(job_title ILIKE ? OR company_name ILIKE ?)",
			wantArgs: []any{"%data analyst%", "%data analyst%"},
		},
		{
			name:     "date range",
			filter:   Filter{DateFrom: tptr(2024, time.January, 1), DateTo: tptr(2024, time.June, 30)},
			wantCond: "job_posted_date >= ? AND job_posted_date <= ?",
			wantArgs: []any{*tptr(2024, time.January, 1), *tptr(2024, time.June, 30)},
		},
		{
			name:     "one-sided date bound",
			filter:   Filter{DateFrom: tptr(2024, time.March, 1)},
			wantCond: "job_posted_date >= ?",
			wantArgs: []any{*tptr(2024, time.March, 1)},
		},
		{
			name:     "categorical equality",
			filter:   Filter{Location: "New York, NY", Schedule: "Full-time"},
			wantCond: "job_location = ? AND job_schedule_type = ?",
			wantArgs: []any{"New York, NY", "Full-time"},
		},
		{
			name:     "salary bounds",
			filter:   Filter{MinSalary: fptr(80000), MaxSalary: fptr(150000)},
			wantCond: "salary_year_avg >= ? AND salary_year_avg <= ?",
			wantArgs: []any{80000.0, 150000.0},
		},
		{
			name:   "all dimensions conjoin in fixed order",
			filter: Filter{Search: "nurse", DateFrom: tptr(2024, time.January, 1), Location: "Remote", MinSalary: fptr(50000)},
			wantCond: "(job_title ILIKE ? OR company_name ILIKE ?) AND " +
				"job_posted_date >= ? AND job_location = ? AND salary_year_avg >= ?",
			wantArgs: []any{"%nurse%", "%nurse%", *tptr(2024, time.January, 1), "Remote", 50000.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, args := tt.filter.Predicate().SQL()
			if cond != tt.wantCond {
				t.Errorf("cond = %q, want %q", cond, tt.wantCond)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestPredicateAndFixedCondition(t *testing.T) {
	f := Filter{Schedule: "Part-time"}
	cond, args := f.Predicate().And("salary_year_avg IS NOT NULL").SQL()

	want := "job_schedule_type = ? AND salary_year_avg IS NOT NULL"
	if cond != want {
		t.Errorf("cond = %q, want %q", cond, want)
	}
	if !reflect.DeepEqual(args, []any{"Part-time"}) {
		t.Errorf("args = %v", args)
	}

	// fixed conditions also conjoin onto the empty predicate
	cond, args = (&Filter{}).Predicate().And("job_work_from_home = TRUE").SQL()
	if cond != "job_work_from_home = TRUE" || len(args) != 0 {
		t.Errorf("got %q %v", cond, args)
	}
}

func TestPredicateDeterministic(t *testing.T) {
	f := Filter{Search: "engineer", Location: "Austin, TX", MinSalary: fptr(90000)}

	c1, a1 := f.Predicate().SQL()
	c2, a2 := f.Predicate().SQL()
	if c1 != c2 || !reflect.DeepEqual(a1, a2) {
		t.Errorf("repeated compilation differs: %q vs %q", c1, c2)
	}
}

func TestIsSortColumn(t *testing.T) {
	if !IsSortColumn("job_posted_date") {
		t.Error("job_posted_date should be sortable")
	}
	if IsSortColumn("id; DROP TABLE data_jobs") {
		t.Error("arbitrary input must not be sortable")
	}
}
