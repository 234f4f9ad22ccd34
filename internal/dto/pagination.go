package dto

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/petshop-pix/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// maxPage keeps (page-1)*pageSize well inside the int64 range the
	// database accepts for OFFSET.
	maxPage = 10000

	DateOnlyLayout = "2006-01-02"
)

type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// ParsePagination reads page and page_size, falling back to defaults for
// missing or invalid values and clamping both to their limits.
func ParsePagination(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	page = min(max(page, 1), maxPage)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// ChargeQuery is the parsed query string of the charge listing.
type ChargeQuery struct {
	PaginationParams
	Status   string
	DateFrom string
	DateTo   string
}

func (q ChargeQuery) Filter() model.ChargeFilter {
	return model.ChargeFilter{
		Status:   q.Status,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
		Limit:    q.PageSize,
		Offset:   q.Offset,
	}
}

// ParseChargeQuery reads status, date_from, date_to and pagination. Dates
// are RFC3339 timestamps or plain 2006-01-02 days.
func ParseChargeQuery(c *gin.Context) (ChargeQuery, error) {
	q := ChargeQuery{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	switch q.Status {
	case "", model.ChargeStatusPending, model.ChargeStatusPaid, model.ChargeStatusCancelled:
	default:
		return q, errors.New("invalid status filter")
	}

	var from, to time.Time
	var err error
	if q.DateFrom != "" {
		if from, err = parseDate(q.DateFrom); err != nil {
			return q, errors.New("invalid date_from format")
		}
	}
	if q.DateTo != "" {
		if to, err = parseDate(q.DateTo); err != nil {
			return q, errors.New("invalid date_to format")
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return q, errors.New("date_from must be before date_to")
	}

	q.PaginationParams = ParsePagination(c)
	return q, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(DateOnlyLayout, s)
}

func NewPagination(page, pageSize, totalItems int) Pagination {
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}

	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
