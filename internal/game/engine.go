// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create new games from a validated secret.
//   - Validate and apply guesses.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Scoring lives in the correctness package.
//   - Every failure leaves state and history untouched.

package game

import (
	"fmt"

	"github.com/robalobadob/wordle/internal/correctness"
	"github.com/robalobadob/wordle/internal/words"
)

// New constructs a game for secret. The secret goes through the same
// validation as guesses.
func New(secret string) (*Game, error) {
	if err := words.Validate(secret); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return &Game{
		secret:  secret,
		state:   Playing,
		history: make([]Guess, 0, MaxAttempts),
	}, nil
}

// Play scores word against the secret and records it.
//
// Errors:
//   - ErrGameLost / ErrGameWon when the game is already over.
//   - ErrInvalidInput wrapping the words validation error for a malformed word.
//
// State transitions:
//   - all letters Correct → Won.
//   - else MaxAttempts guesses made → Lost.
func (g *Game) Play(word string) (Guess, error) {
	switch g.state {
	case Lost:
		return Guess{}, ErrGameLost
	case Won:
		return Guess{}, ErrGameWon
	case Playing:
	default:
		panic(fmt.Sprintf("game: unknown state %d", g.state))
	}

	res, err := correctness.Evaluate(g.secret, word)
	if err != nil {
		return Guess{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	guess := Guess{Word: word, Result: res}
	g.history = append(g.history, guess)

	if guess.IsWin() {
		g.state = Won
	} else if len(g.history) >= MaxAttempts {
		g.state = Lost
	}
	return guess, nil
}

// State reports the current lifecycle state.
func (g *Game) State() State { return g.state }

// Secret returns the word being guessed, for the post-game reveal.
func (g *Game) Secret() string { return g.secret }

// Attempts returns how many guesses have been recorded.
func (g *Game) Attempts() int { return len(g.history) }

// Remaining returns how many guesses are left.
func (g *Game) Remaining() int { return MaxAttempts - len(g.history) }

// History returns a copy of the guesses in the order they were played.
func (g *Game) History() []Guess {
	return append([]Guess(nil), g.history...)
}
