package listview

import (
	"fmt"
	"testing"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

func coupons(n int) []domain.Record {
	out := make([]domain.Record, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Record{
			"id":   fmt.Sprintf("c%02d", i),
			"code": fmt.Sprintf("CODE%02d", i),
		})
	}
	return out
}

func TestMatches(t *testing.T) {
	rec := domain.Record{"id": "c1", "code": "ABC123", "note": "unsearched"}
	fields := []string{"id", "code"}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{"empty term matches", "", true},
		{"case-insensitive substring", "abc", true},
		{"full value", "ABC123", true},
		{"id field", "c1", true},
		{"no match", "xyz", false},
		{"unsearched field ignored", "unsearched", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(rec, fields, tt.term); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	records := []domain.Record{
		{"id": "a", "code": "ABC123"},
		{"id": "b", "code": "XYZ999"},
		{"id": "c", "code": "abc456"},
	}

	got := Filter(records, []string{"code"}, "abc")
	if len(got) != 2 || got[0].ID() != "a" || got[1].ID() != "c" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	if len(records) != 3 {
		t.Error("input slice was mutated")
	}
}

func TestView_TwentyFiveRecordsFirstPage(t *testing.T) {
	page := View(coupons(25), []string{"id", "code"}, "", 1, 10)

	if len(page.Visible) != 10 {
		t.Fatalf("expected 10 visible, got %d", len(page.Visible))
	}
	if page.Visible[0].ID() != "c01" || page.Visible[9].ID() != "c10" {
		t.Errorf("expected records 1-10, got %s..%s", page.Visible[0].ID(), page.Visible[9].ID())
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
	if page.RangeLabel != "Showing 1 to 10 of 25 entries" {
		t.Errorf("unexpected range label %q", page.RangeLabel)
	}
}

func TestView_LastPagePartial(t *testing.T) {
	page := View(coupons(25), []string{"id"}, "", 3, 10)

	if len(page.Visible) != 5 {
		t.Fatalf("expected 5 visible on last page, got %d", len(page.Visible))
	}
	if page.RangeLabel != "Showing 21 to 25 of 25 entries" {
		t.Errorf("unexpected range label %q", page.RangeLabel)
	}
}

func TestView_PagesAreDisjointAndCover(t *testing.T) {
	records := coupons(25)
	seen := make(map[string]int)

	page := View(records, []string{"id"}, "", 1, 10)
	for p := 1; p <= page.TotalPages; p++ {
		v := View(records, []string{"id"}, "", p, 10)
		for _, rec := range v.Visible {
			seen[rec.ID()]++
		}
	}

	if len(seen) != 25 {
		t.Fatalf("pages cover %d records, want 25", len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("record %s appeared %d times", id, n)
		}
	}
}

func TestView_ClampsOutOfRangePage(t *testing.T) {
	records := coupons(25)

	page := View(records, []string{"id"}, "", 99, 10)
	if page.Number != 3 {
		t.Errorf("expected clamp to page 3, got %d", page.Number)
	}

	page = View(records, []string{"id"}, "", 0, 10)
	if page.Number != 1 {
		t.Errorf("expected clamp to page 1, got %d", page.Number)
	}
}

func TestView_EmptySet(t *testing.T) {
	page := View(nil, []string{"id"}, "", 1, 10)

	if page.TotalPages != 1 {
		t.Errorf("expected 1 total page for empty set, got %d", page.TotalPages)
	}
	if page.Number != 1 {
		t.Errorf("expected page 1, got %d", page.Number)
	}
	if page.RangeLabel != "Showing 0 to 0 of 0 entries" {
		t.Errorf("unexpected range label %q", page.RangeLabel)
	}
}

func TestView_SearchNarrowsThenClamps(t *testing.T) {
	records := coupons(25)

	// A term matching a single record while on page 3.
	page := View(records, []string{"code"}, "CODE07", 3, 10)
	if page.FilteredCount != 1 {
		t.Fatalf("expected 1 match, got %d", page.FilteredCount)
	}
	if page.Number != 1 {
		t.Errorf("expected clamp to page 1 after narrowing, got %d", page.Number)
	}
	if page.Visible[0].ID() != "c07" {
		t.Errorf("expected c07, got %s", page.Visible[0].ID())
	}
}

func TestView_DefaultPageSizeFallback(t *testing.T) {
	page := View(coupons(25), []string{"id"}, "", 1, 0)
	if len(page.Visible) != DefaultPageSize {
		t.Errorf("expected fallback page size %d, got %d", DefaultPageSize, len(page.Visible))
	}
}
