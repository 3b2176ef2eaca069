package collection

import (
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/listview"
)

// CollectionInfo describes one managed collection for navigation.
type CollectionInfo struct {
	Collection string `json:"collection"`
	Title      string `json:"title"`
}

// ListResult is the payload of a list request: the derived page plus the
// page-identifying metadata the dashboard renders around it.
type ListResult struct {
	Collection string `json:"collection"`
	Title      string `json:"title"`
	Search     string `json:"search"`
	listview.Page
}

// RecordResult is the payload of a single-record request.
type RecordResult struct {
	Collection string        `json:"collection"`
	Record     domain.Record `json:"record"`
}
