package dao

// CardStat is one summary card. Value is either a number or a formatted
// string ("$95,000" or "N/A" for the salary card); RawValue keeps the
// unformatted figure when Value is a string.
type CardStat struct {
	Value       any      `json:"value"`
	RawValue    *float64 `json:"rawValue,omitempty"`
	Trend       *float64 `json:"trend"`
	Description string   `json:"description"`
}

type CardsResponse struct {
	TotalJobs        CardStat `json:"totalJobs"`
	RemoteJobs       CardStat `json:"remoteJobs"`
	AvgYearlySalary  CardStat `json:"avgYearlySalary"`
	NewJobsLast7Days CardStat `json:"newJobsLast7Days"`
}

// ChartPoint is one dense month of the postings time series.
type ChartPoint struct {
	Date string `json:"date"`
	Jobs int64  `json:"jobs"`
}

type ChartRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ChartResponse struct {
	Data  []ChartPoint `json:"data"`
	Range ChartRange   `json:"range"`
}

// SalaryTrendPoint keeps a null average for months without salary data;
// zero would be a valid average and must stay distinguishable.
type SalaryTrendPoint struct {
	Date      string   `json:"date"`
	AvgSalary *float64 `json:"avg_salary"`
}

// PieSlice feeds the pie charts; Fill is the palette slot the frontend
// renders the slice with.
type PieSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Fill  string `json:"fill"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int64  `json:"count"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

type TitleCount struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

type ScheduleWfhRow struct {
	ScheduleType string `json:"schedule_type"`
	Remote       int64  `json:"remote"`
	Office       int64  `json:"office"`
}
