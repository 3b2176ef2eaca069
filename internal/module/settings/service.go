// Package settings manages the singleton platform settings document. Unlike
// collection records, settings are read and written wholesale: a read always
// yields every known key, a write replaces all of them.
package settings

import (
	"context"
	"errors"

	"github.com/fleetdesk/fleetdesk/internal/catalog"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/pkg"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// Service exposes the settings operations.
type Service interface {
	Get(ctx context.Context) (domain.Record, error)
	Update(ctx context.Context, values domain.Record) (domain.Record, error)
}

type settingsService struct {
	store store.Store
}

// NewService creates a settings Service over the given store provider.
func NewService(provider store.Provider) Service {
	return &settingsService{store: provider.Collection(catalog.Settings())}
}

// Get returns the settings document. An absent document yields the defaults,
// so the dashboard can render a settings form before anything was ever saved.
func (s *settingsService) Get(ctx context.Context) (domain.Record, error) {
	rec, err := s.store.Get(ctx, catalog.SettingsID)
	if err != nil {
		if domain.IsNotFound(err) {
			defaults := catalog.SettingsDefaults()
			defaults[domain.IDField] = catalog.SettingsID
			return defaults, nil
		}
		return nil, err
	}
	return rec, nil
}

// Update validates the submitted values against the settings schema and writes
// them wholesale. Keys the caller omits are reset to their defaults. The
// document is created on first save.
func (s *settingsService) Update(ctx context.Context, values domain.Record) (domain.Record, error) {
	desc := catalog.Settings()
	if err := pkg.ValidateRecord(values, desc.Schema); err != nil {
		return nil, err
	}

	full := catalog.SettingsDefaults().Merge(values)

	err := s.store.Update(ctx, catalog.SettingsID, full)
	if err != nil {
		if !isMissingDocument(err) {
			return nil, err
		}
		full[domain.IDField] = catalog.SettingsID
		if _, err := s.store.Create(ctx, full); err != nil {
			return nil, err
		}
	}

	return s.store.Get(ctx, catalog.SettingsID)
}

// isMissingDocument detects a missing document, including one reported as the
// cause behind an update-failed error.
func isMissingDocument(err error) bool {
	if domain.IsNotFound(err) {
		return true
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		return domain.IsNotFound(appErr.Err)
	}
	return false
}
