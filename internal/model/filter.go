package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Filter is the set of optional dashboard criteria. A zero field means
// no constraint from that dimension, never "match null".
type Filter struct {
	Search    string
	DateFrom  *time.Time
	DateTo    *time.Time
	Location  string
	Schedule  string
	MinSalary *float64
	MaxSalary *float64
}

// Predicate accumulates AND-conjoined parameterized clauses. The zero
// value is the always-true predicate, so a query built from an empty
// Filter is equivalent to one with no WHERE clause at all.
type Predicate struct {
	conds []string
	args  []any
}

// And conjoins one more clause. Values go through args, never through
// the clause text.
func (p *Predicate) And(cond string, args ...any) *Predicate {
	p.conds = append(p.conds, cond)
	p.args = append(p.args, args...)
	return p
}

// SQL renders the conjunction and its bound values. An empty predicate
// renders as 1=1 so callers can splice it wherever a condition is
// expected without special-casing the no-filter request.
func (p *Predicate) SQL() (string, []any) {
	if len(p.conds) == 0 {
		return "1=1", nil
	}
	return strings.Join(p.conds, " AND "), p.args
}

// Apply attaches the predicate to a gorm query.
func (p *Predicate) Apply(db *gorm.DB) *gorm.DB {
	cond, args := p.SQL()
	return db.Where(cond, args...)
}

// Predicate compiles the filter. Clauses are appended in a fixed order
// so identical filters always render identical SQL.
func (f *Filter) Predicate() *Predicate {
	p := &Predicate{}
	if f == nil {
		return p
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		p.And("(job_title ILIKE ? OR company_name ILIKE ?)", pattern, pattern)
	}
	if f.DateFrom != nil {
		p.And("job_posted_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		p.And("job_posted_date <= ?", *f.DateTo)
	}
	if f.Location != "" {
		p.And("job_location = ?", f.Location)
	}
	if f.Schedule != "" {
		p.And("job_schedule_type = ?", f.Schedule)
	}
	if f.MinSalary != nil {
		p.And("salary_year_avg >= ?", *f.MinSalary)
	}
	if f.MaxSalary != nil {
		p.And("salary_year_avg <= ?", *f.MaxSalary)
	}
	return p
}
