// Package terminal runs an interactive game over a line-oriented reader and
// writer, normally stdin and stdout.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/render"
	"github.com/robalobadob/wordle/internal/words"
)

// Options tunes a session.
type Options struct {
	// Words, when set, rejects guesses that are not in its allowed list.
	Words *words.List
	// NoShare skips the emoji grid at the end.
	NoShare bool
}

// Run prompts for guesses until g reaches a terminal state and returns it.
// Invalid input is reported and re-prompted without touching the game.
// Input ending early yields an error wrapping io.ErrUnexpectedEOF.
func Run(ctx context.Context, in io.Reader, out io.Writer, g *game.Game, opts Options) (game.State, error) {
	sc := bufio.NewScanner(in)
	fmt.Fprintf(out, "Guess the %d letter word. You have %d attempts.\n", words.Length, g.Remaining())

	for !g.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return g.State(), err
		}

		fmt.Fprintf(out, "[%d/%d] > ", g.Attempts()+1, game.MaxAttempts)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return g.State(), fmt.Errorf("terminal: read guess: %w", err)
			}
			return g.State(), fmt.Errorf("terminal: input closed: %w", io.ErrUnexpectedEOF)
		}

		word := strings.ToLower(strings.TrimSpace(sc.Text()))
		if word == "" {
			continue
		}
		if opts.Words != nil && words.Validate(word) == nil && !opts.Words.IsAllowed(word) {
			fmt.Fprintf(out, "%s: %s\n", word, words.ErrNotInWordList)
			continue
		}

		guess, err := g.Play(word)
		if err != nil {
			fmt.Fprintln(out, game.Describe(err))
			continue
		}
		log.Debug().Str("state", g.State().String()).Int("remaining", g.Remaining()).Msg("guess applied")
		fmt.Fprintln(out, render.Guess(guess))
	}

	switch g.State() {
	case game.Won:
		fmt.Fprintf(out, "You won in %d/%d!\n", g.Attempts(), game.MaxAttempts)
	case game.Lost:
		fmt.Fprintf(out, "Out of guesses. The word was %q.\n", g.Secret())
	}
	if !opts.NoShare {
		fmt.Fprint(out, "\n"+render.Share(g.History(), g.State()))
	}
	return g.State(), nil
}
