// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - State: lifecycle of a game (playing → won | lost).
//   - Guess: a word paired with its per-letter result.
//   - Game:  state for a single in-progress or finished game.

package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/internal/correctness"
	"github.com/robalobadob/wordle/internal/words"
)

// MaxAttempts is the number of guesses a player gets.
const MaxAttempts = 6

// State is the lifecycle position of a Game. Won and Lost are terminal.
type State uint8

const (
	Playing State = iota
	Won
	Lost
)

// String returns "playing", "won" or "lost".
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == Won || s == Lost }

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	switch s {
	case Playing, Won, Lost:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("game: invalid state %d", uint8(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = Playing
	case "won":
		*s = Won
	case "lost":
		*s = Lost
	default:
		return fmt.Errorf("game: unknown state %q", b)
	}
	return nil
}

// Guess is a scored attempt. It is a value; copies never alias game history.
type Guess struct {
	Word   string             `json:"word"`
	Result correctness.Result `json:"marks"`
}

// IsWin reports whether every letter of the guess is correct.
func (g Guess) IsWin() bool { return g.Result.IsWin() }

var (
	ErrGameLost     = errors.New("you've lost this game, start a new one to keep playing")
	ErrGameWon      = errors.New("you've already won this game, start a new one to play again")
	ErrInvalidInput = errors.New("invalid input")
)

// Describe returns the most specific human-readable message for an error
// returned by New or Play: the validation reason rather than the generic
// ErrInvalidInput prefix.
func Describe(err error) string {
	for _, v := range []error{words.ErrTooShort, words.ErrTooLong, words.ErrInvalidCharacters} {
		if errors.Is(err, v) {
			return v.Error()
		}
	}
	return err.Error()
}

// Game holds the state of a single session. It is not safe for concurrent
// use; callers sharing a Game must serialize calls to Play.
type Game struct {
	secret  string  // lowercase, validated, never mutated
	state   State   // current lifecycle state
	history []Guess // append-only, len <= MaxAttempts
}
