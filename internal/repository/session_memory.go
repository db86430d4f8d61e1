package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

type memorySession struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemorySessionRepository - in-process store used when no Redis is configured.
// Values are copied through JSON so callers never share a *entity.Session with the store.
func NewMemorySessionRepository() SessionRepository {
	return &memorySession{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = that.now().Add(ttl)
	}

	that.mu.Lock()
	that.entries[session.ID] = entry
	that.mu.Unlock()

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	entry, ok := that.lookup(id)
	that.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	var existingSession entity.Session
	if err := json.Unmarshal(entry.payload, &existingSession); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &existingSession, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return ErrSessionNotFound
	}

	delete(that.entries, id)

	return nil
}

// lookup - caller holds mu; expired entries are evicted on access.
func (that *memorySession) lookup(id string) (memoryEntry, bool) {
	entry, ok := that.entries[id]
	if !ok {
		return memoryEntry{}, false
	}

	if !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt) {
		delete(that.entries, id)
		return memoryEntry{}, false
	}

	return entry, true
}
