package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/pkg"
)

// Document is the relational row backing one collection record. All domain
// fields live in the JSON payload; the (collection, doc_id) pair is the
// stable identity.
type Document struct {
	domain.BaseModel
	Collection string `gorm:"size:64;not null;uniqueIndex:idx_documents_collection_doc,priority:1;index"`
	DocID      string `gorm:"size:64;not null;uniqueIndex:idx_documents_collection_doc,priority:2"`
	Data       []byte `gorm:"not null"`
}

// documentStore implements Store over a shared documents table.
type documentStore struct {
	db   *gorm.DB
	desc domain.Descriptor
}

// NewDocumentStore creates a Store for one collection backed by the given
// GORM database.
func NewDocumentStore(db *gorm.DB, desc domain.Descriptor) Store {
	return &documentStore{db: db, desc: desc}
}

// DocumentProvider opens document stores on a shared database.
type DocumentProvider struct {
	db *gorm.DB
}

// NewDocumentProvider creates a Provider over the given database.
func NewDocumentProvider(db *gorm.DB) *DocumentProvider {
	return &DocumentProvider{db: db}
}

// Collection returns the store for one collection descriptor.
func (p *DocumentProvider) Collection(desc domain.Descriptor) Store {
	return NewDocumentStore(p.db, desc)
}

// List returns the full collection snapshot in insertion order.
func (s *documentStore) List(ctx context.Context) ([]domain.Record, error) {
	var rows []Document
	err := s.db.WithContext(ctx).
		Where("collection = ?", s.desc.Collection).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, domain.NewFetchError(s.desc.Collection, err)
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := s.decode(row)
		if err != nil {
			return nil, domain.NewFetchError(s.desc.Collection, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Get returns a single record by document id.
func (s *documentStore) Get(ctx context.Context, id string) (domain.Record, error) {
	var row Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", s.desc.Collection, id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewFetchError(s.desc.Collection, err)
	}
	return s.decode(row)
}

// Create inserts a new record. A missing id is assigned a fresh UUID; a
// caller-supplied id (e.g. the settings singleton) is kept.
func (s *documentStore) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	rec = s.desc.ApplyDefaults(rec.Clone())
	if rec.ID() == "" {
		rec[domain.IDField] = uuid.NewString()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "encode record", err)
	}

	row := Document{
		Collection: s.desc.Collection,
		DocID:      rec.ID(),
		Data:       data,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, fmt.Sprintf("%s %q already exists", s.desc.Collection, rec.ID()), err)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "create record", err)
	}
	return rec, nil
}

// Update shallow-merges partial into the stored record. The merge happens
// inside a transaction so concurrent writers serialize on the row; the remote
// store thereby applies each merge atomically per call.
func (s *documentStore) Update(ctx context.Context, id string, partial domain.Record) error {
	err := pkg.WithTx(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var row Document
		if err := tx.Where("collection = ? AND doc_id = ?", s.desc.Collection, id).First(&row).Error; err != nil {
			return err
		}

		var current domain.Record
		if err := json.Unmarshal(row.Data, &current); err != nil {
			return err
		}

		merged := current.Merge(partial)
		data, err := json.Marshal(merged)
		if err != nil {
			return err
		}

		return tx.Model(&Document{}).
			Where("collection = ? AND doc_id = ?", s.desc.Collection, id).
			Update("data", data).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewUpdateError(s.desc.Collection, id, domain.ErrNotFound)
		}
		return domain.NewUpdateError(s.desc.Collection, id, err)
	}
	return nil
}

// Delete removes a record. A missing id is a no-op success.
func (s *documentStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", s.desc.Collection, id).
		Delete(&Document{})
	if result.Error != nil {
		return domain.NewDeleteError(s.desc.Collection, id, result.Error)
	}
	return nil
}

// decode unmarshals a row into a record, applies the collection defaults, and
// pins the id field to the row's document id.
func (s *documentStore) decode(row Document) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal(row.Data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s %q: %w", s.desc.Collection, row.DocID, err)
	}
	rec = s.desc.ApplyDefaults(rec)
	rec[domain.IDField] = row.DocID
	return rec, nil
}
