package registration

import (
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// SeedMockData loads the static demo jobs into the provider. The dashboard's
// registration screens show these until real submissions arrive.
func SeedMockData(provider *store.MemoryProvider) {
	provider.Memory(jobDescriptor("vehicle")).Seed(
		domain.Record{
			"id":           "veh-001",
			"kind":         "vehicle",
			"status":       StatusApproved,
			"plate":        "KA-01-HJ-4821",
			"applicant":    "Ravi Kumar",
			"submitted_at": "2026-07-02T09:15:00Z",
			"resolved_at":  "2026-07-02T09:15:03Z",
		},
		domain.Record{
			"id":           "veh-002",
			"kind":         "vehicle",
			"status":       StatusRejected,
			"plate":        "",
			"applicant":    "Lena Fischer",
			"reason":       "missing plate",
			"submitted_at": "2026-07-14T16:40:00Z",
			"resolved_at":  "2026-07-14T16:40:03Z",
		},
	)

	provider.Memory(jobDescriptor("permit")).Seed(
		domain.Record{
			"id":           "prm-001",
			"kind":         "permit",
			"status":       StatusApproved,
			"license_no":   "DL-99-2204-117",
			"applicant":    "Omar Haddad",
			"submitted_at": "2026-07-21T11:05:00Z",
			"resolved_at":  "2026-07-21T11:05:03Z",
		},
	)
}
