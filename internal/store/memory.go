package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// Memory is an in-memory Store. It backs the mocked registration workflows,
// whose "collections" are static seed data rather than database state, and
// doubles as the test double for everything that talks to a Store.
//
// Records are cloned on the way in and out, so callers can never alias
// internal state. Insertion order is preserved across updates; deletes close
// the gap, mirroring snapshot semantics of the document store.
type Memory struct {
	desc domain.Descriptor

	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Record
}

// NewMemory creates an empty in-memory store for the given descriptor.
func NewMemory(desc domain.Descriptor) *Memory {
	return &Memory{
		desc: desc,
		byID: make(map[string]domain.Record),
	}
}

// MemoryProvider serves Memory stores, creating one per collection on demand.
// Stores are keyed by collection name, so repeated lookups share state.
type MemoryProvider struct {
	mu     sync.Mutex
	stores map[string]*Memory
}

// NewMemoryProvider creates an empty in-memory Provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{stores: make(map[string]*Memory)}
}

// Collection returns the shared Memory store for the descriptor's collection.
func (p *MemoryProvider) Collection(desc domain.Descriptor) Store {
	return p.Memory(desc)
}

// Memory returns the concrete Memory store for seeding.
func (p *MemoryProvider) Memory(desc domain.Descriptor) *Memory {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, ok := p.stores[desc.Collection]
	if !ok {
		m = NewMemory(desc)
		p.stores[desc.Collection] = m
	}
	return m
}

// Seed inserts records without ids being regenerated, for fixed mock data.
// It panics on a duplicate id; seed data is static and must be well-formed.
func (m *Memory) Seed(records ...domain.Record) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		id := rec.ID()
		if id == "" {
			panic("store: seed record without id")
		}
		if _, exists := m.byID[id]; exists {
			panic(fmt.Sprintf("store: duplicate seed id %q", id))
		}
		m.order = append(m.order, id)
		m.byID[id] = m.desc.ApplyDefaults(rec.Clone())
	}
	return m
}

// List returns a snapshot of all records in insertion order.
func (m *Memory) List(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewFetchError(m.desc.Collection, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id].Clone())
	}
	return out, nil
}

// Get returns one record by id.
func (m *Memory) Get(ctx context.Context, id string) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewFetchError(m.desc.Collection, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec.Clone(), nil
}

// Create inserts a record, assigning a fresh UUID when the id is unset.
func (m *Memory) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "create record", err)
	}

	rec = m.desc.ApplyDefaults(rec.Clone())
	if rec.ID() == "" {
		rec[domain.IDField] = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	id := rec.ID()
	if _, exists := m.byID[id]; exists {
		return nil, domain.NewAppError(domain.CodeAlreadyExists, fmt.Sprintf("%s %q already exists", m.desc.Collection, id), nil)
	}
	m.order = append(m.order, id)
	m.byID[id] = rec
	return rec.Clone(), nil
}

// Update shallow-merges partial into the identified record.
func (m *Memory) Update(ctx context.Context, id string, partial domain.Record) error {
	if err := ctx.Err(); err != nil {
		return domain.NewUpdateError(m.desc.Collection, id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.byID[id]
	if !ok {
		return domain.NewUpdateError(m.desc.Collection, id, domain.ErrNotFound)
	}
	m.byID[id] = current.Merge(partial)
	return nil
}

// Delete removes the record; deleting a missing id is a no-op success.
func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return domain.NewDeleteError(m.desc.Collection, id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return nil
	}
	delete(m.byID, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
