// internal/store/memory.go
//
// In-memory implementation of the round Store.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the callback under the write lock, so submissions to the
//     same round never interleave.
//   - Each round expires ttl after it was saved, matching the round token.
//     Expired rounds are invisible to Get/Update and are swept on Save and Len.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned for unknown or expired round IDs.
var ErrNotFound = errors.New("store: round not found")

// Store defines the persistence interface for rounds.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get returns a copy of the round with the given ID.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Delete removes a round. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Update calls fn with the stored round while holding it exclusively.
	Update(ctx context.Context, id string, fn func(r *game.Round) error) error

	// Len reports how many rounds are live.
	Len() int
}

// Option configures the in-memory store.
type Option func(*memory)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *memory) { m.now = now }
}

type entry struct {
	round   *game.Round
	expires time.Time // zero = never
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex     // guards rounds
	rounds map[string]entry // keyed by Round.ID
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStore constructs a new in-memory Store whose rounds live for ttl.
// A ttl <= 0 keeps rounds until they are deleted.
func NewMemoryStore(ttl time.Duration, opts ...Option) Store {
	m := &memory{rounds: make(map[string]entry), ttl: ttl, now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	e := entry{round: r}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	m.rounds[r.ID] = e
	return nil
}

// Get returns a snapshot so callers can read it without holding the lock.
func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.rounds[id]
	if !ok || e.expired(m.now()) {
		return nil, ErrNotFound
	}
	return clone(e.round), nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(r *game.Round) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	if e.expired(m.now()) {
		delete(m.rounds, id)
		return ErrNotFound
	}
	return fn(e.round)
}

func (m *memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep(m.now())
	return len(m.rounds)
}

// sweep drops expired rounds. Caller holds the write lock.
func (m *memory) sweep(now time.Time) {
	for id, e := range m.rounds {
		if e.expired(now) {
			delete(m.rounds, id)
		}
	}
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func clone(r *game.Round) *game.Round {
	c := *r
	c.UsedWords = append([]string(nil), r.UsedWords...)
	return &c
}
