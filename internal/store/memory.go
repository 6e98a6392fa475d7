// internal/store/memory.go
//
// In-memory session store for games served over HTTP.
//
// Characteristics:
//   - Sessions keyed by a random UUID.
//   - A Game is not safe for concurrent use, so callers never get a bare
//     pointer out of the store: reads go through View (shared lock) and
//     mutations through Update (exclusive lock).
//   - Idle sessions are dropped by Sweep. State is lost on restart.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/internal/game"
)

// ErrNotFound is returned for unknown or swept session IDs.
var ErrNotFound = errors.New("not found")

// Session wraps a Game with the metadata the API needs.
type Session struct {
	ID        string
	Game      *game.Game
	Daily     bool   // secret is the word of the day
	Date      string // daily date key, empty otherwise
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store defines the session persistence interface.
type Store interface {
	// Create registers g under a fresh ID.
	Create(ctx context.Context, g *game.Game, daily bool, date string) (*Session, error)

	// View runs fn with read access to the session.
	View(ctx context.Context, id string, fn func(*Session) error) error

	// Update runs fn with exclusive access to the session. UpdatedAt is
	// bumped when fn succeeds.
	Update(ctx context.Context, id string, fn func(*Session) error) error

	// Sweep drops sessions not updated since cutoff and returns how many.
	Sweep(ctx context.Context, cutoff time.Time) int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions and every Game inside them
	sessions map[string]*Session // keyed by Session.ID
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session), now: time.Now}
}

func (m *memory) Create(ctx context.Context, g *game.Game, daily bool, date string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		Game:      g,
		Daily:     daily,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memory) View(ctx context.Context, id string, fn func(*Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory) Update(ctx context.Context, id string, fn func(*Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if err := fn(s); err != nil {
		return err
	}
	s.UpdatedAt = m.now()
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
