package collection

import (
	"context"
	"fmt"

	"github.com/fleetdesk/fleetdesk/internal/catalog"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/listview"
	"github.com/fleetdesk/fleetdesk/internal/pkg"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// Service exposes the list-management operations shared by every collection
// page: derived list views, single-record reads, partial updates, and deletes.
type Service interface {
	Collections() []CollectionInfo
	List(ctx context.Context, collection string, q pkg.ListQuery) (*ListResult, error)
	Get(ctx context.Context, collection, id string) (*RecordResult, error)
	Patch(ctx context.Context, collection, id string, partial domain.Record) (*RecordResult, error)
	Delete(ctx context.Context, collection, id string) error
}

type collectionService struct {
	provider store.Provider
}

// NewService creates a collection Service over the given store provider.
func NewService(provider store.Provider) Service {
	return &collectionService{provider: provider}
}

// Collections returns the navigable collections in catalog order. Singleton
// collections are managed by their own endpoints and are not listed here.
func (s *collectionService) Collections() []CollectionInfo {
	descs := catalog.Descriptors()
	out := make([]CollectionInfo, 0, len(descs))
	for _, d := range descs {
		if d.Singleton {
			continue
		}
		out = append(out, CollectionInfo{Collection: d.Collection, Title: d.Title})
	}
	return out
}

// List fetches the collection snapshot and derives the requested page from it.
// Out-of-range pages are clamped rather than rejected.
func (s *collectionService) List(ctx context.Context, collection string, q pkg.ListQuery) (*ListResult, error) {
	desc, err := s.lookup(collection)
	if err != nil {
		return nil, err
	}

	records, err := s.provider.Collection(desc).List(ctx)
	if err != nil {
		return nil, err
	}

	page := listview.View(records, desc.SearchFields, q.Search, q.Page, listview.DefaultPageSize)
	return &ListResult{
		Collection: desc.Collection,
		Title:      desc.Title,
		Search:     q.Search,
		Page:       page,
	}, nil
}

// Get returns a single record.
func (s *collectionService) Get(ctx context.Context, collection, id string) (*RecordResult, error) {
	desc, err := s.lookup(collection)
	if err != nil {
		return nil, err
	}

	rec, err := s.provider.Collection(desc).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RecordResult{Collection: desc.Collection, Record: rec}, nil
}

// Patch validates the partial bag against the collection schema, merges it
// into the stored record, and returns the refreshed record. The id field
// cannot be changed; the merge ignores it.
func (s *collectionService) Patch(ctx context.Context, collection, id string, partial domain.Record) (*RecordResult, error) {
	desc, err := s.lookup(collection)
	if err != nil {
		return nil, err
	}
	if len(partial) == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "empty update", nil)
	}
	if err := pkg.ValidatePartial(partial, desc.Schema); err != nil {
		return nil, err
	}

	st := s.provider.Collection(desc)
	if err := st.Update(ctx, id, partial); err != nil {
		return nil, err
	}

	rec, err := st.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RecordResult{Collection: desc.Collection, Record: rec}, nil
}

// Delete removes a record. Deleting a missing id succeeds; the stale row is
// simply gone either way.
func (s *collectionService) Delete(ctx context.Context, collection, id string) error {
	desc, err := s.lookup(collection)
	if err != nil {
		return err
	}
	return s.provider.Collection(desc).Delete(ctx, id)
}

func (s *collectionService) lookup(collection string) (domain.Descriptor, error) {
	desc, ok := catalog.Lookup(collection)
	if !ok || desc.Singleton {
		return domain.Descriptor{}, domain.NewAppError(domain.CodeNotFound, fmt.Sprintf("unknown collection %q", collection), nil)
	}
	return desc, nil
}
