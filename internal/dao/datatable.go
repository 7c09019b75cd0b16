package dao

import (
	"time"

	"jobpulse/internal/model"
)

// JobPostingSpec is the data-grid row shape. Dates go out as plain
// YYYY-MM-DD since the grid has no use for a time component.
type JobPostingSpec struct {
	Id                 int      `json:"id"`
	JobTitleShort      string   `json:"job_title_short"`
	JobTitle           string   `json:"job_title"`
	JobLocation        string   `json:"job_location"`
	JobVia             string   `json:"job_via"`
	JobScheduleType    *string  `json:"job_schedule_type"`
	JobWorkFromHome    bool     `json:"job_work_from_home"`
	JobPostedDate      string   `json:"job_posted_date"`
	JobNoDegreeMention bool     `json:"job_no_degree_mention"`
	JobHealthInsurance bool     `json:"job_health_insurance"`
	JobCountry         string   `json:"job_country"`
	SalaryRate         *string  `json:"salary_rate"`
	SalaryYearAvg      *float64 `json:"salary_year_avg"`
	SalaryHourAvg      *float64 `json:"salary_hour_avg"`
	CompanyName        string   `json:"company_name"`
}

func FromJobPostingModel(p *model.JobPosting) *JobPostingSpec {
	return &JobPostingSpec{
		Id:                 p.Id,
		JobTitleShort:      p.JobTitleShort,
		JobTitle:           p.JobTitle,
		JobLocation:        p.JobLocation,
		JobVia:             p.JobVia,
		JobScheduleType:    p.JobScheduleType,
		JobWorkFromHome:    p.JobWorkFromHome,
		JobPostedDate:      p.JobPostedDate.Format(time.DateOnly),
		JobNoDegreeMention: p.JobNoDegreeMention,
		JobHealthInsurance: p.JobHealthInsurance,
		JobCountry:         p.JobCountry,
		SalaryRate:         p.SalaryRate,
		SalaryYearAvg:      p.SalaryYearAvg,
		SalaryHourAvg:      p.SalaryHourAvg,
		CompanyName:        p.CompanyName,
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int64 `json:"totalPages"`
}

type DataTableResponse struct {
	Data       []JobPostingSpec `json:"data"`
	Pagination Pagination       `json:"pagination"`
}
