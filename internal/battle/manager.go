package battle

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"creaturebattle/internal/entity"
)

// ErrTooManyOpenBattles is returned by Manager.Create once the configured
// ceiling on concurrently tracked battles is reached.
var ErrTooManyOpenBattles = errors.New("battle: too many open battles")

// ErrBattleNotFound is returned by Manager.Get/Manager.Delete for an unknown
// or already-removed battle id.
var ErrBattleNotFound = errors.New("battle: unknown battle id")

// Manager tracks every in-flight Battle by id, the registry an HTTP or
// shell frontend drives instead of holding *Battle pointers itself. One
// Manager instance is shared across all connections to a server process.
type Manager struct {
	mu      sync.RWMutex
	battles map[string]*Battle
	maxOpen int
}

// NewManager returns a Manager that rejects new battles once maxOpen are
// tracked simultaneously. maxOpen <= 0 means unbounded.
func NewManager(maxOpen int) *Manager {
	return &Manager{
		battles: make(map[string]*Battle),
		maxOpen: maxOpen,
	}
}

// Create starts a new battle between t1 and t2, assigning it a fresh uuid,
// and tracks it for later lookup by id.
func (m *Manager) Create(t1, t2 *entity.Trainer, kind BattleKind, seed int64) (*Battle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxOpen > 0 && len(m.battles) >= m.maxOpen {
		return nil, ErrTooManyOpenBattles
	}

	id := uuid.NewString()
	b := New(id, t1, t2, kind, seed)
	m.battles[id] = b
	return b, nil
}

// Get returns the tracked battle for id, or ErrBattleNotFound.
func (m *Manager) Get(id string) (*Battle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.battles[id]
	if !ok {
		return nil, ErrBattleNotFound
	}
	return b, nil
}

// Delete stops tracking a battle, typically called once BattleEnded() is
// true and the caller has consumed its final events.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.battles, id)
}

// Count returns the number of battles currently tracked.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.battles)
}
