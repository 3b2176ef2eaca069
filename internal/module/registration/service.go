// Package registration implements the mocked vehicle-registration and permit
// workflows. Jobs live in seeded in-memory stores and resolve to a canned
// outcome after a simulated processing delay; no real registry is contacted.
package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/listview"
	"github.com/fleetdesk/fleetdesk/internal/pkg"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// Job statuses.
const (
	StatusProcessing = "processing"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
)

// kinds maps each workflow kind to the field a submission must carry to be
// approved by the mock processor.
var kinds = map[string]string{
	"vehicle": "plate",
	"permit":  "license_no",
}

// Service exposes the registration job operations.
type Service interface {
	Kinds() []string
	Submit(ctx context.Context, kind string, payload domain.Record) (domain.Record, error)
	Get(ctx context.Context, kind, id string) (domain.Record, error)
	List(ctx context.Context, kind string, q pkg.ListQuery) (*listview.Page, error)
}

type registrationService struct {
	provider store.Provider
	delay    time.Duration
}

// NewService creates a registration Service. Submitted jobs transition from
// processing to their outcome after the given delay.
func NewService(provider store.Provider, delay time.Duration) Service {
	return &registrationService{provider: provider, delay: delay}
}

// Kinds returns the supported workflow kinds in a fixed order.
func (s *registrationService) Kinds() []string {
	return []string{"vehicle", "permit"}
}

// Submit creates a processing job for the payload and schedules its canned
// outcome. The returned record is the job as initially stored.
func (s *registrationService) Submit(ctx context.Context, kind string, payload domain.Record) (domain.Record, error) {
	desc, err := lookupKind(kind)
	if err != nil {
		return nil, err
	}

	job := payload.Clone()
	if job == nil {
		job = domain.Record{}
	}
	delete(job, domain.IDField)
	job["kind"] = kind
	job["status"] = StatusProcessing
	job["submitted_at"] = time.Now().UTC().Format(time.RFC3339)

	st := s.provider.Collection(desc)
	created, err := st.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	s.scheduleOutcome(st, kind, created)
	return created, nil
}

// Get returns one job.
func (s *registrationService) Get(ctx context.Context, kind, id string) (domain.Record, error) {
	desc, err := lookupKind(kind)
	if err != nil {
		return nil, err
	}
	return s.provider.Collection(desc).Get(ctx, id)
}

// List derives a page over the kind's jobs, newest submissions last.
func (s *registrationService) List(ctx context.Context, kind string, q pkg.ListQuery) (*listview.Page, error) {
	desc, err := lookupKind(kind)
	if err != nil {
		return nil, err
	}

	records, err := s.provider.Collection(desc).List(ctx)
	if err != nil {
		return nil, err
	}

	page := listview.View(records, desc.SearchFields, q.Search, q.Page, listview.DefaultPageSize)
	return &page, nil
}

// scheduleOutcome resolves the job after the simulated processing delay. The
// outcome is canned: approved when the kind's required field is present,
// rejected with a reason otherwise.
func (s *registrationService) scheduleOutcome(st store.Store, kind string, job domain.Record) {
	requiredField := kinds[kind]
	outcome := domain.Record{"status": StatusApproved}
	if job.String(requiredField) == "" {
		outcome["status"] = StatusRejected
		outcome["reason"] = fmt.Sprintf("missing %s", requiredField)
	}
	outcome["resolved_at"] = time.Now().Add(s.delay).UTC().Format(time.RFC3339)

	id := job.ID()
	time.AfterFunc(s.delay, func() {
		// The job may have been deleted meanwhile; a failed update is fine.
		_ = st.Update(context.Background(), id, outcome)
	})
}

func lookupKind(kind string) (domain.Descriptor, error) {
	if _, ok := kinds[kind]; !ok {
		return domain.Descriptor{}, domain.NewAppError(domain.CodeNotFound, fmt.Sprintf("unknown registration kind %q", kind), nil)
	}
	return jobDescriptor(kind), nil
}

// jobDescriptor describes the job collection of one workflow kind. Job
// collections are internal to this module; they are not part of the dashboard
// catalog.
func jobDescriptor(kind string) domain.Descriptor {
	return domain.Descriptor{
		Collection:   "registration_" + kind,
		Title:        "Registration Jobs",
		SearchFields: []string{"id", "status", kinds[kind], "applicant"},
		Defaults: domain.Record{
			"status": StatusProcessing,
		},
	}
}
