package dao

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"jobpulse/internal/model"
	"jobpulse/pkg/str"
)

const dateLayout = "2006-01-02"

// FilterRequest carries the dashboard filter query parameters shared by
// every aggregation endpoint. All fields are optional strings; parsing
// happens in ToFilter so a malformed value can degrade to "not applied"
// instead of failing the request.
type FilterRequest struct {
	Search    string `form:"search" json:"search"`
	StartDate string `form:"startDate" json:"startDate"`
	EndDate   string `form:"endDate" json:"endDate"`
	Location  string `form:"location" json:"location"`
	Schedule  string `form:"schedule" json:"schedule"`
	MinSalary string `form:"minSalary" json:"minSalary"`
	MaxSalary string `form:"maxSalary" json:"maxSalary"`
}

// ToFilter converts the raw query values into a model.Filter. It never
// fails: an unparsable date drops the whole date dimension with a
// warning, an unparsable salary bound is dropped silently.
func (req *FilterRequest) ToFilter(logger *logrus.Entry) *model.Filter {
	f := &model.Filter{
		Search:   strings.TrimSpace(req.Search),
		Location: req.Location,
		Schedule: req.Schedule,
	}

	from, fromOk := parseDate(req.StartDate)
	to, toOk := parseDate(req.EndDate)
	if fromOk && toOk {
		f.DateFrom = from
		f.DateTo = to
	} else if logger != nil {
		logger.Warnf("dropping date filter, unparsable bound: startDate=%q endDate=%q",
			req.StartDate, req.EndDate)
	}

	if req.MinSalary != "" {
		if v, err := str.ParseFloat(req.MinSalary); err == nil {
			f.MinSalary = &v
		}
	}
	if req.MaxSalary != "" {
		if v, err := str.ParseFloat(req.MaxSalary); err == nil {
			f.MaxSalary = &v
		}
	}

	return f
}

// parseDate returns (nil, true) for an absent value. ok is false only
// when a value was provided but does not parse, which poisons the pair.
func parseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, false
	}
	t = t.UTC()
	return &t, true
}
