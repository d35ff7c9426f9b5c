// Package model provides a framework-agnostic UI model for the directory
// browser so the Bubble Tea code can stay presentation-focused.
package model

import (
	"context"
	"errors"
	"sync"

	"github.com/VoxDroid/rolo/internal/record"
)

// ErrNotFound is returned when a requested record is not in the cache.
var ErrNotFound = errors.New("not found")

// Store is the persistence the browser needs; *registry.Repository
// satisfies it.
type Store interface {
	List(ctx context.Context) ([]record.Record, error)
	Delete(ctx context.Context, id int64) error
}

// UIModel caches the directory and applies the live filter to it.
type UIModel struct {
	store Store

	mu    sync.Mutex
	cache []record.Record
}

// New constructs a UIModel backed by store.
func New(store Store) *UIModel {
	return &UIModel{store: store}
}

// RefreshList re-reads the directory into the cache.
func (m *UIModel) RefreshList(ctx context.Context) error {
	recs, err := m.store.List(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.cache = recs
	m.mu.Unlock()
	return nil
}

// ListCached returns the cached records.
func (m *UIModel) ListCached() []record.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache
}

// Filter applies the live filter to the cache.
func (m *UIModel) Filter(query string) []record.Record {
	return record.Filter(m.ListCached(), query)
}

// Find looks a record up in the cache by id.
func (m *UIModel) Find(id int64) (record.Record, error) {
	for _, r := range m.ListCached() {
		if r.ID == id {
			return r, nil
		}
	}
	return record.Record{}, ErrNotFound
}

// Delete removes a record and refreshes the cache.
func (m *UIModel) Delete(ctx context.Context, id int64) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	return m.RefreshList(ctx)
}
