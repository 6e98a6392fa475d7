package render

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/game"
)

func playAll(t *testing.T, secret string, guesses ...string) *game.Game {
	t.Helper()
	g, err := game.New(secret)
	require.NoError(t, err)
	for _, w := range guesses {
		_, err := g.Play(w)
		require.NoError(t, err)
	}
	return g
}

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestGuessPlain(t *testing.T) {
	withColor(t, false)
	g := playAll(t, "guess", "xuxxg")
	assert.Equal(t, "xuxxg", Guess(g.History()[0]))
}

func TestGuessColored(t *testing.T) {
	withColor(t, true)
	g := playAll(t, "guess", "xuxxg")
	out := Guess(g.History()[0])

	assert.Contains(t, out, "\x1b[32;1mu", "correct letter is green")
	assert.Contains(t, out, "\x1b[33;1mg", "misplaced letter is yellow")
	assert.Contains(t, out, "\x1b[9mx", "wrong letter is struck through")
}

func TestBoard(t *testing.T) {
	withColor(t, false)
	g := playAll(t, "world", "crane", "world")
	assert.Equal(t, "crane\nworld\n", Board(g.History()))
}

func TestShareWon(t *testing.T) {
	g := playAll(t, "abcde", "xbxde", "abcde")
	assert.Equal(t, "Wordle 2/6\n⬛🟩⬛🟩🟩\n🟩🟩🟩🟩🟩\n", Share(g.History(), g.State()))
}

func TestShareLost(t *testing.T) {
	g := playAll(t, "guess", "xxxxx", "xxxxx", "xxxxx", "xxxxx", "xxxxx", "xuxxg")
	out := Share(g.History(), g.State())
	assert.Contains(t, out, "Wordle X/6\n")
	assert.Contains(t, out, "⬛🟩⬛⬛🟨\n")
}
