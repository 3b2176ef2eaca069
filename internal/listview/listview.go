// Package listview implements the generic list-management engine behind every
// management page of the dashboard: free-text search over a record snapshot,
// fixed-size pagination with a range label, single-selection modal state with
// an edit buffer, and update/delete execution with local reconciliation.
package listview

import (
	"fmt"
	"strings"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// DefaultPageSize is the number of rows per page on every management page.
const DefaultPageSize = 10

// Page is the derived, renderable slice of a filtered record set.
type Page struct {
	Visible       []domain.Record `json:"items"`
	Number        int             `json:"page"`
	TotalPages    int             `json:"total_pages"`
	FilteredCount int             `json:"total"`
	RangeStart    int             `json:"range_start"`
	RangeEnd      int             `json:"range_end"`
	RangeLabel    string          `json:"range_label"`
}

// Matches reports whether any of the given string fields of the record
// contains term, case-insensitively. An empty term matches everything.
func Matches(rec domain.Record, fields []string, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(rec.String(field)), needle) {
			return true
		}
	}
	return false
}

// Filter returns the records matching term over the given fields, preserving
// relative order. The input slice is never mutated; an empty term returns a
// copy of the input.
func Filter(records []domain.Record, fields []string, term string) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, fields, term) {
			out = append(out, rec)
		}
	}
	return out
}

// View derives the visible page from a record snapshot, a search term, and a
// 1-based page number. The page is clamped into [1, totalPages], so narrowing
// a search can never leave the caller stranded on an empty out-of-range page.
// pageSize values below 1 fall back to DefaultPageSize.
func View(records []domain.Record, fields []string, term string, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	filtered := Filter(records, fields, term)

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	visible := filtered[start:end]

	rangeStart := 0
	if len(filtered) > 0 {
		rangeStart = start + 1
	}
	rangeEnd := start + len(visible)

	return Page{
		Visible:       visible,
		Number:        page,
		TotalPages:    totalPages,
		FilteredCount: len(filtered),
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		RangeLabel:    fmt.Sprintf("Showing %d to %d of %d entries", rangeStart, rangeEnd, len(filtered)),
	}
}
