package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobpulse/internal/dao"
	"jobpulse/internal/model"
	"jobpulse/pkg/str"
)

type dataTableQuery struct {
	Sort string `form:"sort" binding:"omitempty,sortcolumn"`
}

// handleDataTable paginated raw rows
// @Summary One page of the raw postings table
// @Description page/limit must be positive integers; sort must be a known column. Filters apply as on the aggregate endpoints.
// @Tags datatable
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "rows per page" default(10)
// @Param sort query string false "sort column" default(id)
// @Success 200 {object} dao.DataTableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/datatable [get]
func (s *Server) handleDataTable(c *gin.Context) {
	page, err := str.ParsePositiveInt(c.DefaultQuery("page", "1"))
	if err != nil {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("invalid page parameter"))
		return
	}
	limit, err := str.ParsePositiveInt(c.DefaultQuery("limit", "10"))
	if err != nil {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("invalid limit parameter"))
		return
	}

	var q dataTableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("invalid sort parameter"))
		return
	}

	f := s.bindFilter(c)
	offset := int(page-1) * int(limit)

	postings, total, err := model.ListJobPostings(f.Predicate(), q.Sort, offset, int(limit))
	if err != nil {
		s.writeInternalError(c, "failed to fetch data", err)
		return
	}

	resp := dao.DataTableResponse{
		Data: make([]dao.JobPostingSpec, 0, len(postings)),
		Pagination: dao.Pagination{
			Page:       int(page),
			Limit:      int(limit),
			TotalCount: total,
			TotalPages: (total + limit - 1) / limit,
		},
	}
	for i := range postings {
		resp.Data = append(resp.Data, *dao.FromJobPostingModel(&postings[i]))
	}

	c.JSON(http.StatusOK, resp)
}
