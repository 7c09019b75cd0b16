package server

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"jobpulse/internal/dao"
	"jobpulse/internal/model"
	"jobpulse/pkg/log"
	"jobpulse/pkg/timeline"
)

// bindFilter reads the shared filter query params. Filter values never
// reject a request; malformed ones degrade to "not applied".
func (s *Server) bindFilter(c *gin.Context) *model.Filter {
	var req dao.FilterRequest
	_ = c.ShouldBindQuery(&req)
	return req.ToFilter(log.GetLogger(c))
}

// chartWindow resolves the month window an explicit date range maps to,
// falling back to the 12 months ending at the newest posting date. The
// label is the instant the frontend shows as the window's end.
func chartWindow(f *model.Filter) (start, endExclusive, endLabel time.Time, err error) {
	if f.DateFrom != nil && f.DateTo != nil {
		start = timeline.TruncateToMonth(*f.DateFrom)
		endExclusive = timeline.TruncateToMonth(*f.DateTo).AddDate(0, 1, 0)
		return start, endExclusive, *f.DateTo, nil
	}

	anchor, err := model.MaxPostedDate()
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	now := time.Now().UTC()
	if anchor == nil {
		anchor = &now
	}
	start, endExclusive = timeline.DefaultRange(*anchor)
	return start, endExclusive, *anchor, nil
}

var currencyPrinter = message.NewPrinter(language.English)

// handleCards summary cards
// @Summary Summary cards
// @Description Aggregated totals for the dashboard cards, honoring the shared filters
// @Tags stats
// @Accept json
// @Produce json
// @Param search query string false "substring match on job title or company"
// @Param startDate query string false "posting date lower bound (YYYY-MM-DD)"
// @Param endDate query string false "posting date upper bound (YYYY-MM-DD)"
// @Param location query string false "exact job location"
// @Param schedule query string false "exact schedule type"
// @Param minSalary query number false "yearly salary lower bound"
// @Param maxSalary query number false "yearly salary upper bound"
// @Success 200 {object} dao.CardsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/cards [get]
func (s *Server) handleCards(c *gin.Context) {
	f := s.bindFilter(c)

	var (
		total  int64
		remote int64
		avg    *float64
		recent int64
	)

	g, _ := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		total, err = model.CountJobPostings(f.Predicate())
		return err
	})
	g.Go(func() error {
		var err error
		remote, err = model.CountJobPostings(f.Predicate().And("job_work_from_home = TRUE"))
		return err
	})
	g.Go(func() error {
		var err error
		avg, err = model.AvgYearlySalary(f.Predicate())
		return err
	})
	g.Go(func() error {
		anchor, err := model.MaxPostedDate()
		if err != nil || anchor == nil {
			return err
		}
		recent, err = model.CountJobPostings(
			f.Predicate().And("job_posted_date >= ?", anchor.AddDate(0, 0, -7)))
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeInternalError(c, "failed to fetch card data", err)
		return
	}

	resp := dao.CardsResponse{
		TotalJobs: dao.CardStat{
			Value:       total,
			Description: "Total job postings recorded.",
		},
		RemoteJobs: dao.CardStat{
			Value:       remote,
			Description: "Jobs available for remote work.",
		},
		AvgYearlySalary: dao.CardStat{
			Value:       "N/A",
			RawValue:    avg,
			Description: "Average yearly salary (where available).",
		},
		NewJobsLast7Days: dao.CardStat{
			Value:       recent,
			Description: "Jobs posted in the last 7 days.",
		},
	}
	if avg != nil {
		resp.AvgYearlySalary.Value = currencyPrinter.Sprintf("$%d", int64(math.Round(*avg)))
	}

	c.JSON(http.StatusOK, resp)
}

// handleChart monthly postings trend
// @Summary Monthly postings time series
// @Description Dense monthly posting counts over the requested (or default 12-month) window
// @Tags stats
// @Accept json
// @Produce json
// @Param search query string false "substring match on job title or company"
// @Param startDate query string false "posting date lower bound (YYYY-MM-DD)"
// @Param endDate query string false "posting date upper bound (YYYY-MM-DD)"
// @Param location query string false "exact job location"
// @Param schedule query string false "exact schedule type"
// @Param minSalary query number false "yearly salary lower bound"
// @Param maxSalary query number false "yearly salary upper bound"
// @Success 200 {object} dao.ChartResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/chart [get]
func (s *Server) handleChart(c *gin.Context) {
	f := s.bindFilter(c)

	start, end, endLabel, err := chartWindow(f)
	if err != nil {
		s.writeInternalError(c, "failed to fetch chart data", err)
		return
	}

	sparse, err := model.MonthlyCounts(f.Predicate(), start, end)
	if err != nil {
		s.writeInternalError(c, "failed to fetch chart data", err)
		return
	}

	buckets := timeline.Fill(start, end, sparse, int64(0))
	data := make([]dao.ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		data = append(data, dao.ChartPoint{
			Date: b.Month.Format(time.DateOnly),
			Jobs: b.Value,
		})
	}

	c.JSON(http.StatusOK, dao.ChartResponse{
		Data: data,
		Range: dao.ChartRange{
			Start: start.Format(time.RFC3339),
			End:   endLabel.Format(time.RFC3339),
		},
	})
}

// handleAvgSalaryTrend monthly average salary trend
// @Summary Monthly average salary time series
// @Description Dense monthly AVG(salary_year_avg); months without salary data are null, not zero
// @Tags stats
// @Accept json
// @Produce json
// @Param search query string false "substring match on job title or company"
// @Param startDate query string false "posting date lower bound (YYYY-MM-DD)"
// @Param endDate query string false "posting date upper bound (YYYY-MM-DD)"
// @Param location query string false "exact job location"
// @Param schedule query string false "exact schedule type"
// @Param minSalary query number false "yearly salary lower bound"
// @Param maxSalary query number false "yearly salary upper bound"
// @Success 200 {array} dao.SalaryTrendPoint
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/avg-salary-trend [get]
func (s *Server) handleAvgSalaryTrend(c *gin.Context) {
	f := s.bindFilter(c)

	start, end, _, err := chartWindow(f)
	if err != nil {
		s.writeInternalError(c, "failed to fetch average salary trend data", err)
		return
	}

	sparse, err := model.MonthlyAvgSalary(f.Predicate(), start, end)
	if err != nil {
		s.writeInternalError(c, "failed to fetch average salary trend data", err)
		return
	}

	buckets := timeline.Fill(start, end, sparse, (*float64)(nil))
	data := make([]dao.SalaryTrendPoint, 0, len(buckets))
	for _, b := range buckets {
		data = append(data, dao.SalaryTrendPoint{
			Date:      b.Month.Format(time.DateOnly),
			AvgSalary: b.Value,
		})
	}

	c.JSON(http.StatusOK, data)
}
