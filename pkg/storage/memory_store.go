package storage

import (
	"sync"
	"time"

	"github.com/ShaojieDai/SCRO/pkg/models"
)

// MemoryStore is a thread-safe in-memory ResultStore with a fixed
// time-to-live per entry. Expired entries are evicted lazily on read.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]entry
	ttl   time.Duration
	ready bool

	// now is swappable for tests.
	now func() time.Time
}

type entry struct {
	assessment *models.SupplyChainAssessment
	expiresAt  time.Time
}

// NewMemoryStore creates a store whose entries expire after ttl. A zero
// or negative ttl means entries never expire.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the live entry for key, evicting it first if expired.
func (m *MemoryStore) Get(key string) (*models.SupplyChainAssessment, bool) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.assessment, true
}

// Put stores the assessment, stamping its expiry from the store TTL.
func (m *MemoryStore) Put(key string, assessment *models.SupplyChainAssessment) {
	if assessment == nil {
		return
	}

	var expiresAt time.Time
	if m.ttl > 0 {
		expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.data[key] = entry{assessment: assessment, expiresAt: expiresAt}
	m.mu.Unlock()
}

// Ready reports whether MarkReady has been called.
func (m *MemoryStore) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// MarkReady flags the store as warmed.
func (m *MemoryStore) MarkReady() {
	m.mu.Lock()
	m.ready = true
	m.mu.Unlock()
}

// Len returns the number of entries, including any not yet evicted.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
