// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaginationParams struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	return PaginationParams{
		Page:      ClampPage(page),
		Limit:     ClampLimit(limit),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
}

// ClampPage floors the page number at 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit keeps the page size in [1, 100]; zero means "unset" and takes
// the default of 10.
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return 10
	case limit < 1:
		return 1
	case limit > 100:
		return 100
	}
	return limit
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	offset := (params.Page - 1) * params.Limit
	return db.Offset(offset).Limit(params.Limit)
}

// ApplySort orders by the column mapped from params.SortBy. Sort fields
// outside the allow-list silently fall back to newest-first, as does an
// absent SortBy. Ascending unless SortOrder is "desc" in any casing.
func ApplySort(db *gorm.DB, params PaginationParams, allowedSortFields map[string]string) *gorm.DB {
	column, ok := allowedSortFields[params.SortBy]
	if !ok {
		return db.Order("created_at DESC")
	}

	order := "ASC"
	if strings.EqualFold(params.SortOrder, "desc") {
		order = "DESC"
	}
	return db.Order(column + " " + order)
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

func SetPaginationHeaders(c *gin.Context, total int64, params PaginationParams) {
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.Header("X-Page", strconv.Itoa(params.Page))
	c.Header("X-Per-Page", strconv.Itoa(params.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(TotalPages(total, params.Limit)))
}
