package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/game"
)

func newGame(t *testing.T, secret string) *game.Game {
	t.Helper()
	g, err := game.New(secret)
	require.NoError(t, err)
	return g
}

func TestCreateAndView(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	s, err := st.Create(ctx, newGame(t, "crane"), true, "2024-03-01")
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	err = st.View(ctx, s.ID, func(got *Session) error {
		assert.Equal(t, "crane", got.Game.Secret())
		assert.True(t, got.Daily)
		assert.Equal(t, "2024-03-01", got.Date)
		return nil
	})
	require.NoError(t, err)

	other, err := st.Create(ctx, newGame(t, "crane"), false, "")
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestUnknownID(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	noop := func(*Session) error { return nil }

	assert.ErrorIs(t, st.View(ctx, "missing", noop), ErrNotFound)
	assert.ErrorIs(t, st.Update(ctx, "missing", noop), ErrNotFound)
}

func TestUpdatePropagatesError(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s, err := st.Create(ctx, newGame(t, "crane"), false, "")
	require.NoError(t, err)

	boom := errors.New("boom")
	assert.ErrorIs(t, st.Update(ctx, s.ID, func(*Session) error { return boom }), boom)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewMemoryStore()
	_, err := st.Create(ctx, newGame(t, "crane"), false, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdateSerializesPlay(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s, err := st.Create(ctx, newGame(t, "crane"), false, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Update(ctx, s.ID, func(s *Session) error {
				_, err := s.Game.Play("xxxxx")
				return err
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, game.MaxAttempts, accepted)
	require.NoError(t, st.View(ctx, s.ID, func(s *Session) error {
		assert.Equal(t, game.Lost, s.Game.State())
		assert.Len(t, s.Game.History(), game.MaxAttempts)
		return nil
	}))
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	st := &memory{sessions: map[string]*Session{}, now: func() time.Time { return clock }}

	old, err := st.Create(ctx, newGame(t, "crane"), false, "")
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	fresh, err := st.Create(ctx, newGame(t, "crane"), false, "")
	require.NoError(t, err)

	assert.Equal(t, 1, st.Sweep(ctx, clock.Add(-30*time.Minute)))
	assert.ErrorIs(t, st.View(ctx, old.ID, func(*Session) error { return nil }), ErrNotFound)
	assert.NoError(t, st.View(ctx, fresh.ID, func(*Session) error { return nil }))
}
