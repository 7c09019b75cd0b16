package model

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"jobpulse/pkg/timeline"
)

// JobPosting is one row of the analytical table. Rows are ingested
// elsewhere and read-only here. Salary fields stay pointers so a NULL
// salary is never mistaken for zero.
type JobPosting struct {
	Id                 int        `json:"id" gorm:"primaryKey"`
	JobTitleShort      string     `json:"job_title_short" gorm:"index"`
	JobTitle           string     `json:"job_title"`
	JobLocation        string     `json:"job_location" gorm:"index"`
	JobVia             string     `json:"job_via"`
	JobScheduleType    *string    `json:"job_schedule_type"`
	JobWorkFromHome    bool       `json:"job_work_from_home"`
	SearchLocation     string     `json:"search_location"`
	JobPostedDate      time.Time  `json:"job_posted_date" gorm:"type:date;NOT NULL;index"`
	JobNoDegreeMention bool       `json:"job_no_degree_mention"`
	JobHealthInsurance bool       `json:"job_health_insurance"`
	JobCountry         string     `json:"job_country"`
	SalaryRate         *string    `json:"salary_rate"`
	SalaryYearAvg      *float64   `json:"salary_year_avg"`
	SalaryHourAvg      *float64   `json:"salary_hour_avg"`
	CompanyName        string     `json:"company_name" gorm:"index"`
}

func (JobPosting) TableName() string {
	return "data_jobs"
}

// Columns the group-by endpoints may aggregate over. Handlers pass these
// constants, never request input.
const (
	ColScheduleType = "job_schedule_type"
	ColCompanyName  = "company_name"
	ColJobLocation  = "job_location"
	ColTitleShort   = "job_title_short"
	ColSalaryRate   = "salary_rate"

	ColWorkFromHome    = "job_work_from_home"
	ColHealthInsurance = "job_health_insurance"
	ColNoDegreeMention = "job_no_degree_mention"
)

var groupColumns = map[string]bool{
	ColScheduleType: true,
	ColCompanyName:  true,
	ColJobLocation:  true,
	ColTitleShort:   true,
	ColSalaryRate:   true,
}

var flagColumns = map[string]bool{
	ColWorkFromHome:    true,
	ColHealthInsurance: true,
	ColNoDegreeMention: true,
}

var sortColumns = map[string]bool{
	"id":              true,
	"job_title_short": true,
	"job_title":       true,
	"job_location":    true,
	"job_posted_date": true,
	"salary_year_avg": true,
	"company_name":    true,
}

// IsSortColumn reports whether the data table may be ordered by column.
func IsSortColumn(column string) bool {
	return sortColumns[column]
}

func CountJobPostings(p *Predicate) (int64, error) {
	var total int64
	err := p.Apply(DB.Model(&JobPosting{})).Count(&total).Error
	return total, err
}

// AvgYearlySalary returns nil when no row in scope has a known salary.
func AvgYearlySalary(p *Predicate) (*float64, error) {
	var avg sql.NullFloat64
	err := p.Apply(DB.Model(&JobPosting{})).
		Where("salary_year_avg IS NOT NULL").
		Select("AVG(salary_year_avg)").
		Scan(&avg).Error
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

// MaxPostedDate is the dataset's "now": the newest posting date, or nil
// for an empty table.
func MaxPostedDate() (*time.Time, error) {
	var max sql.NullTime
	err := DB.Model(&JobPosting{}).Select("MAX(job_posted_date)").Scan(&max).Error
	if err != nil || !max.Valid {
		return nil, err
	}
	t := max.Time.UTC()
	return &t, nil
}

type monthRow struct {
	Month time.Time
	Value sql.NullFloat64
}

// MonthlyCounts groups postings by calendar month inside [start, endExclusive).
// The result is sparse: months without rows are absent.
func MonthlyCounts(p *Predicate, start, endExclusive time.Time) (map[time.Time]int64, error) {
	var rows []monthRow
	err := p.Apply(DB.Model(&JobPosting{})).
		Select("DATE_TRUNC('month', job_posted_date)::date AS month, COUNT(*) AS value").
		Where("job_posted_date >= ? AND job_posted_date < ?", start, endExclusive).
		Group("DATE_TRUNC('month', job_posted_date)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int64, len(rows))
	for _, r := range rows {
		counts[timeline.TruncateToMonth(r.Month)] = int64(r.Value.Float64)
	}
	return counts, nil
}

// MonthlyAvgSalary groups AVG(salary_year_avg) by calendar month, over
// rows with a known yearly salary only.
func MonthlyAvgSalary(p *Predicate, start, endExclusive time.Time) (map[time.Time]*float64, error) {
	var rows []monthRow
	err := p.Apply(DB.Model(&JobPosting{})).
		Select("DATE_TRUNC('month', job_posted_date)::date AS month, AVG(salary_year_avg) AS value").
		Where("job_posted_date >= ? AND job_posted_date < ?", start, endExclusive).
		Where("salary_year_avg IS NOT NULL").
		Group("DATE_TRUNC('month', job_posted_date)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	avgs := make(map[time.Time]*float64, len(rows))
	for _, r := range rows {
		if r.Value.Valid {
			v := r.Value.Float64
			avgs[timeline.TruncateToMonth(r.Month)] = &v
		}
	}
	return avgs, nil
}

type GroupCount struct {
	Name  string
	Count int64
}

// GroupCounts aggregates posting counts per distinct value of column,
// NULLs excluded, largest groups first. limit <= 0 means no limit.
func GroupCounts(p *Predicate, column string, limit int) ([]GroupCount, error) {
	if !groupColumns[column] {
		return nil, fmt.Errorf("not a groupable column: %s", column)
	}

	q := p.Apply(DB.Model(&JobPosting{})).
		Select(column+" AS name, COUNT(*) AS count").
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Group(column).
		Order("count DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []GroupCount
	err := q.Scan(&rows).Error
	return rows, err
}

// FlagCounts aggregates posting counts per value of a boolean column.
// Absent truth values simply have no key.
func FlagCounts(p *Predicate, column string) (map[bool]int64, error) {
	if !flagColumns[column] {
		return nil, fmt.Errorf("not a flag column: %s", column)
	}

	var rows []struct {
		Flag  bool
		Count int64
	}
	err := p.Apply(DB.Model(&JobPosting{})).
		Select(column + " AS flag, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[bool]int64, len(rows))
	for _, r := range rows {
		counts[r.Flag] += r.Count
	}
	return counts, nil
}

type ScheduleSplit struct {
	ScheduleType string
	Remote       int64
	Office       int64
}

// ScheduleRemoteSplit pivots counts by schedule type and remote flag,
// sorted by total postings per schedule type.
func ScheduleRemoteSplit(p *Predicate) ([]ScheduleSplit, error) {
	var rows []struct {
		ScheduleType string
		Remote       bool
		Count        int64
	}
	err := p.Apply(DB.Model(&JobPosting{})).
		Select("job_schedule_type AS schedule_type, job_work_from_home AS remote, COUNT(*) AS count").
		Where("job_schedule_type IS NOT NULL").
		Group("job_schedule_type, job_work_from_home").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	splits := make([]ScheduleSplit, 0, len(rows))
	for _, r := range rows {
		i, ok := index[r.ScheduleType]
		if !ok {
			i = len(splits)
			index[r.ScheduleType] = i
			splits = append(splits, ScheduleSplit{ScheduleType: r.ScheduleType})
		}
		if r.Remote {
			splits[i].Remote += r.Count
		} else {
			splits[i].Office += r.Count
		}
	}

	sort.SliceStable(splits, func(i, j int) bool {
		return splits[i].Remote+splits[i].Office > splits[j].Remote+splits[j].Office
	})
	return splits, nil
}

// ListJobPostings returns one page of raw rows plus the filtered total.
// sortColumn must pass IsSortColumn; id breaks ties so pages are stable.
func ListJobPostings(p *Predicate, sortColumn string, offset, limit int) ([]JobPosting, int64, error) {
	if sortColumn == "" {
		sortColumn = "id"
	}
	if !IsSortColumn(sortColumn) {
		return nil, 0, fmt.Errorf("not a sortable column: %s", sortColumn)
	}
	order := sortColumn
	if sortColumn != "id" {
		order += ", id"
	}

	var total int64
	if err := p.Apply(DB.Model(&JobPosting{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postings []JobPosting
	err := p.Apply(DB.Model(&JobPosting{})).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&postings).Error
	return postings, total, err
}
