package query

import (
	"errors"
	"fmt"

	"github.com/liforra/ipintel/internal/records"
)

// Page is one page of records. Concatenating all pages in order yields
// every record exactly once.
type Page struct {
	Records    []records.Record `json:"records"`
	PageNumber uint             `json:"page_number"`
	PageSize   uint             `json:"page_size"`
	TotalCount uint             `json:"total_count"`
	TotalPages uint             `json:"total_pages"`
}

var ErrPageNotFound = errors.New("page not found")

// Paginate returns the given 1-indexed page of records, ordered by
// address. An out of range page number returns ErrPageNotFound instead
// of clamping.
func (q *Querier) Paginate(pageNumber uint) (page Page, err error) {
	allRecords := q.sortedRecords()

	totalCount := uint(len(allRecords))
	totalPages := (totalCount + q.pageSize - 1) / q.pageSize

	if pageNumber < 1 || pageNumber > totalPages {
		return page, fmt.Errorf("%w: page %d of %d",
			ErrPageNotFound, pageNumber, totalPages)
	}

	start := (pageNumber - 1) * q.pageSize
	end := start + q.pageSize
	if end > totalCount {
		end = totalCount
	}

	return Page{
		Records:    allRecords[start:end],
		PageNumber: pageNumber,
		PageSize:   q.pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}
