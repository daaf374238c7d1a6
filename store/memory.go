package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"profile-service/models"
)

// ErrProfileNotFound is returned when an identifier has no record.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore is the record set behind the API. The mock service never
// creates or deletes records at runtime; Put replaces an existing record
// whole, last write wins.
type ProfileStore interface {
	Get(ctx context.Context, id string) (models.UserProfile, error)
	Put(ctx context.Context, profile models.UserProfile) error
	IDs(ctx context.Context) ([]string, error)
}

// MemoryStore holds the profiles in a mutex-guarded map. Get hands out
// copies and Put swaps the full record under the write lock, so a reader
// always observes exactly one submitted payload, never a blend of two.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
}

func NewMemoryStore(seed []models.UserProfile) *MemoryStore {
	profiles := make(map[string]models.UserProfile, len(seed))
	for _, profile := range seed {
		profiles[profile.ID] = profile
	}
	return &MemoryStore{profiles: profiles}
}

func (m *MemoryStore) Get(_ context.Context, id string) (models.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, ok := m.profiles[id]
	if !ok {
		return models.UserProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return profile, nil
}

func (m *MemoryStore) Put(_ context.Context, profile models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[profile.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, profile.ID)
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MemoryStore) IDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.profiles))
	for id := range m.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
