// Package query exposes read-only operations over the record store:
// pagination, substring search and aggregate statistics. All results
// follow one stable ordering so repeated calls against an unchanged
// store return identical output.
package query

import (
	"sort"
	"strings"

	"github.com/liforra/ipintel/internal/records"
)

// DefaultPageSize is the number of records per page.
const DefaultPageSize = 15

type Database interface {
	SelectAll() (allRecords []records.Record)
}

type Querier struct {
	db       Database
	pageSize uint
}

func New(db Database, pageSize uint) *Querier {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	return &Querier{
		db:       db,
		pageSize: pageSize,
	}
}

// sortedRecords returns every record ordered by address, ascending.
func (q *Querier) sortedRecords() (allRecords []records.Record) {
	allRecords = q.db.SelectAll()
	sort.Slice(allRecords, func(i, j int) bool {
		return allRecords[i].Address.Less(allRecords[j].Address)
	})
	return allRecords
}

// Search returns every record with at least one textual field
// containing the given term, case insensitively. An empty term matches
// every record. Results are ordered by address, matching pagination.
func (q *Querier) Search(term string) (matching []records.Record) {
	allRecords := q.sortedRecords()
	if term == "" {
		return allRecords
	}

	lowercaseTerm := strings.ToLower(term)
	matching = make([]records.Record, 0, len(allRecords))
	for _, record := range allRecords {
		for _, field := range record.TextFields() {
			if strings.Contains(strings.ToLower(field), lowercaseTerm) {
				matching = append(matching, record)
				break
			}
		}
	}
	return matching
}
