package listview

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// ModalKind identifies which single dialog, if any, a session has open.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalView
	ModalEdit
	ModalDelete
)

// Session is the state machine behind one management page instance: the
// loaded record snapshot, the current search and page, the single active
// selection with its modal, the edit buffer, and the in-flight mutation
// guard.
//
// A session is owned by one page instance and is not safe for concurrent
// use; the store it wraps is the only shared resource.
type Session struct {
	desc     domain.Descriptor
	store    store.Store
	pageSize int

	records []domain.Record
	search  string
	page    int

	modal  ModalKind
	active domain.Record
	buffer domain.Record

	loading bool
	saving  bool
	errMsg  string
}

// NewSession creates a session for one collection. The page size is fixed at
// DefaultPageSize.
func NewSession(desc domain.Descriptor, st store.Store) *Session {
	return &Session{
		desc:     desc,
		store:    st,
		pageSize: DefaultPageSize,
		page:     1,
	}
}

// Load fetches the full collection snapshot. On failure the session is left
// with zero records and the error message set, never with stale rows; the
// previous snapshot is discarded either way.
func (s *Session) Load(ctx context.Context) error {
	s.loading = true
	s.errMsg = ""
	records, err := s.store.List(ctx)
	s.loading = false
	if err != nil {
		s.records = nil
		s.errMsg = err.Error()
		return err
	}
	s.records = records
	return nil
}

// Records returns the current snapshot.
func (s *Session) Records() []domain.Record {
	return s.records
}

// Search sets the free-text term. Changing the term resets the page to 1 so
// a narrowed result set never leaves the user on an out-of-range page.
func (s *Session) Search(term string) {
	if term == s.search {
		return
	}
	s.search = term
	s.page = 1
}

// GoToPage moves to the given 1-based page. Out-of-range values are clamped
// when the view is derived.
func (s *Session) GoToPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

// View derives the visible page from the current snapshot, search, and page.
func (s *Session) View() Page {
	return View(s.records, s.desc.SearchFields, s.search, s.page, s.pageSize)
}

// Modal returns the currently open modal kind.
func (s *Session) Modal() ModalKind { return s.modal }

// Active returns the record the open modal refers to, or nil.
func (s *Session) Active() domain.Record { return s.active }

// Buffer returns the edit buffer, or nil when no edit is in progress.
func (s *Session) Buffer() domain.Record { return s.buffer }

// Loading reports whether a snapshot load is in flight.
func (s *Session) Loading() bool { return s.loading }

// Saving reports whether a mutation is in flight.
func (s *Session) Saving() bool { return s.saving }

// Err returns the last surfaced error message, or "".
func (s *Session) Err() string { return s.errMsg }

// OpenView opens the view dialog for the record with the given id. Any open
// modal is implicitly closed first.
func (s *Session) OpenView(id string) error {
	return s.open(id, ModalView)
}

// OpenEdit opens the edit dialog, initializing a fresh buffer from a clone of
// the record. Discarded edits from a previous dialog never leak in.
func (s *Session) OpenEdit(id string) error {
	return s.open(id, ModalEdit)
}

// OpenDelete opens the delete confirmation dialog.
func (s *Session) OpenDelete(id string) error {
	return s.open(id, ModalDelete)
}

func (s *Session) open(id string, kind ModalKind) error {
	rec := s.find(id)
	if rec == nil {
		return domain.ErrNotFound
	}
	s.Close()
	s.active = rec
	s.modal = kind
	if kind == ModalEdit {
		s.buffer = rec.Clone()
	}
	return nil
}

// Close closes any open modal, clears the selection, and discards the edit
// buffer. Closing an already closed session is a no-op.
func (s *Session) Close() {
	s.modal = ModalNone
	s.active = nil
	s.buffer = nil
	s.errMsg = ""
}

// SetField records one edited field in the buffer. The id field is immutable
// and silently ignored. Calling SetField outside an edit dialog is an error.
func (s *Session) SetField(key string, value any) error {
	if s.modal != ModalEdit || s.buffer == nil {
		return domain.NewAppError(domain.CodeValidation, "no edit in progress", nil)
	}
	if key == domain.IDField {
		return nil
	}
	s.buffer[key] = value
	return nil
}

// SaveEdit commits the edit buffer: the store applies the partial merge
// remotely, and only after it succeeds is the same merge applied to the local
// snapshot and the dialog closed. On failure the dialog stays open with the
// buffer intact and the error message set. A second mutation while one is in
// flight is rejected, not queued.
func (s *Session) SaveEdit(ctx context.Context) error {
	if s.modal != ModalEdit || s.active == nil {
		return domain.NewAppError(domain.CodeValidation, "no edit in progress", nil)
	}
	if s.saving {
		return domain.NewAppError(domain.CodeValidation, "a mutation is already in flight", nil)
	}

	id := s.active.ID()
	buffer := s.buffer

	s.saving = true
	err := s.store.Update(ctx, id, buffer)
	s.saving = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}

	for i, rec := range s.records {
		if rec.ID() == id {
			s.records[i] = rec.Merge(buffer)
			break
		}
	}
	s.Close()
	return nil
}

// ConfirmDelete commits the pending delete: the store delete runs first, and
// only after it succeeds is the record removed from the local snapshot and
// the dialog closed. Failure semantics match SaveEdit.
func (s *Session) ConfirmDelete(ctx context.Context) error {
	if s.modal != ModalDelete || s.active == nil {
		return domain.NewAppError(domain.CodeValidation, "no delete in progress", nil)
	}
	if s.saving {
		return domain.NewAppError(domain.CodeValidation, "a mutation is already in flight", nil)
	}

	id := s.active.ID()

	s.saving = true
	err := s.store.Delete(ctx, id)
	s.saving = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}

	for i, rec := range s.records {
		if rec.ID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	s.Close()
	return nil
}

func (s *Session) find(id string) domain.Record {
	for _, rec := range s.records {
		if rec.ID() == id {
			return rec
		}
	}
	return nil
}
