package server

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"jobpulse/internal/dao"
	"jobpulse/internal/model"
)

// Palette slots consumed by the frontend pie charts.
var chartPalette = []string{
	"hsl(var(--chart-1))",
	"hsl(var(--chart-2))",
	"hsl(var(--chart-3))",
	"hsl(var(--chart-4))",
	"hsl(var(--chart-5))",
	"hsl(var(--chart-6))",
}

func toPieSlices(rows []model.GroupCount) []dao.PieSlice {
	slices := make([]dao.PieSlice, 0, len(rows))
	for i, r := range rows {
		slices = append(slices, dao.PieSlice{
			Name:  r.Name,
			Value: r.Count,
			Fill:  chartPalette[i%len(chartPalette)],
		})
	}
	return slices
}

// flagPieSlices renders a boolean breakdown with both categories always
// present, even at zero, largest first.
func flagPieSlices(counts map[bool]int64, trueName, falseName string) []dao.PieSlice {
	slices := []dao.PieSlice{
		{Name: trueName, Value: counts[true], Fill: chartPalette[0]},
		{Name: falseName, Value: counts[false], Fill: chartPalette[1]},
	}
	sort.SliceStable(slices, func(i, j int) bool { return slices[i].Value > slices[j].Value })
	return slices
}

// handleScheduleTypes schedule type breakdown
// @Summary Postings per schedule type
// @Tags charts
// @Produce json
// @Success 200 {array} dao.PieSlice
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/schedule-types [get]
func (s *Server) handleScheduleTypes(c *gin.Context) {
	f := s.bindFilter(c)

	rows, err := model.GroupCounts(f.Predicate(), model.ColScheduleType, 0)
	if err != nil {
		s.writeInternalError(c, "failed to fetch schedule type data", err)
		return
	}
	c.JSON(http.StatusOK, toPieSlices(rows))
}

// handleTopCompanies top hiring companies
// @Summary Top 5 companies by posting count
// @Tags charts
// @Produce json
// @Success 200 {array} dao.CompanyCount
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/top-companies [get]
func (s *Server) handleTopCompanies(c *gin.Context) {
	f := s.bindFilter(c)

	rows, err := model.GroupCounts(f.Predicate(), model.ColCompanyName, 5)
	if err != nil {
		s.writeInternalError(c, "failed to fetch top companies data", err)
		return
	}

	resp := make([]dao.CompanyCount, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dao.CompanyCount{Company: r.Name, Count: r.Count})
	}
	c.JSON(http.StatusOK, resp)
}

// handleTopLocations top posting locations
// @Summary Top 10 locations by posting count
// @Tags charts
// @Produce json
// @Success 200 {array} dao.LocationCount
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/top-locations [get]
func (s *Server) handleTopLocations(c *gin.Context) {
	f := s.bindFilter(c)

	rows, err := model.GroupCounts(f.Predicate(), model.ColJobLocation, 10)
	if err != nil {
		s.writeInternalError(c, "failed to fetch top locations data", err)
		return
	}

	resp := make([]dao.LocationCount, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dao.LocationCount{Location: r.Name, Count: r.Count})
	}
	c.JSON(http.StatusOK, resp)
}

// handleTopTitlesShort top normalized titles
// @Summary Top 5 short titles by posting count
// @Tags charts
// @Produce json
// @Success 200 {array} dao.TitleCount
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/top-titles-short [get]
func (s *Server) handleTopTitlesShort(c *gin.Context) {
	f := s.bindFilter(c)

	rows, err := model.GroupCounts(f.Predicate(), model.ColTitleShort, 5)
	if err != nil {
		s.writeInternalError(c, "failed to fetch top titles data", err)
		return
	}

	resp := make([]dao.TitleCount, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dao.TitleCount{Title: r.Name, Count: r.Count})
	}
	c.JSON(http.StatusOK, resp)
}

// handleSalaryRate salary rate breakdown
// @Summary Postings per salary rate unit
// @Tags charts
// @Produce json
// @Success 200 {array} dao.PieSlice
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/salary-rate [get]
func (s *Server) handleSalaryRate(c *gin.Context) {
	f := s.bindFilter(c)

	rows, err := model.GroupCounts(f.Predicate(), model.ColSalaryRate, 0)
	if err != nil {
		s.writeInternalError(c, "failed to fetch salary rate data", err)
		return
	}
	c.JSON(http.StatusOK, toPieSlices(rows))
}

// handleWfhDistribution remote vs office
// @Summary Remote vs office posting counts
// @Tags charts
// @Produce json
// @Success 200 {array} dao.PieSlice
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/wfh-distribution [get]
func (s *Server) handleWfhDistribution(c *gin.Context) {
	f := s.bindFilter(c)

	counts, err := model.FlagCounts(f.Predicate(), model.ColWorkFromHome)
	if err != nil {
		s.writeInternalError(c, "failed to fetch WFH distribution data", err)
		return
	}
	c.JSON(http.StatusOK, flagPieSlices(counts, "Remote", "Office"))
}

// handleHealthInsurance health insurance mentions
// @Summary Postings mentioning health insurance
// @Tags charts
// @Produce json
// @Success 200 {array} dao.PieSlice
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/health-insurance [get]
func (s *Server) handleHealthInsurance(c *gin.Context) {
	f := s.bindFilter(c)

	counts, err := model.FlagCounts(f.Predicate(), model.ColHealthInsurance)
	if err != nil {
		s.writeInternalError(c, "failed to fetch health insurance data", err)
		return
	}
	c.JSON(http.StatusOK, flagPieSlices(counts, "Yes", "No"))
}

// handleNoDegree no-degree mentions
// @Summary Postings not requiring a degree
// @Tags charts
// @Produce json
// @Success 200 {array} dao.PieSlice
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/no-degree [get]
func (s *Server) handleNoDegree(c *gin.Context) {
	f := s.bindFilter(c)

	counts, err := model.FlagCounts(f.Predicate(), model.ColNoDegreeMention)
	if err != nil {
		s.writeInternalError(c, "failed to fetch no degree mention data", err)
		return
	}
	c.JSON(http.StatusOK, flagPieSlices(counts, "Yes", "No"))
}

// handleScheduleWfhSplit remote/office split per schedule type
// @Summary Remote and office counts per schedule type
// @Tags charts
// @Produce json
// @Success 200 {array} dao.ScheduleWfhRow
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/charts/schedule-wfh-split [get]
func (s *Server) handleScheduleWfhSplit(c *gin.Context) {
	f := s.bindFilter(c)

	splits, err := model.ScheduleRemoteSplit(f.Predicate())
	if err != nil {
		s.writeInternalError(c, "failed to fetch schedule/wfh split data", err)
		return
	}

	resp := make([]dao.ScheduleWfhRow, 0, len(splits))
	for _, sp := range splits {
		resp = append(resp, dao.ScheduleWfhRow{
			ScheduleType: sp.ScheduleType,
			Remote:       sp.Remote,
			Office:       sp.Office,
		})
	}
	c.JSON(http.StatusOK, resp)
}
