// Package store provides uniform access to one remote collection of records.
// The dashboard's list engine and HTTP handlers talk only to the Store
// interface; the backing database can be swapped without touching them.
package store

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// Store is the record store adapter for a single collection.
//
// List fetches the entire collection snapshot; there is no paging at the
// data-access layer. Update shallow-merges a partial bag into the identified
// record. Delete removes a record; deleting a missing id is a no-op success,
// so a stale delete button never produces a spurious user-facing error.
type Store interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
	Create(ctx context.Context, rec domain.Record) (domain.Record, error)
	Update(ctx context.Context, id string, partial domain.Record) error
	Delete(ctx context.Context, id string) error
}

// Provider opens stores by collection name.
type Provider interface {
	Collection(desc domain.Descriptor) Store
}
