// Package render turns scored guesses into terminal text.
//
// Correct letters are green, misplaced letters yellow and wrong letters
// struck through. Colors follow fatih/color's global NoColor switch, so
// output to a pipe or a dumb terminal stays plain.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordle/internal/correctness"
	"github.com/robalobadob/wordle/internal/game"
)

var (
	correctStyle   = color.New(color.FgGreen, color.Bold)
	misplacedStyle = color.New(color.FgYellow, color.Bold)
	wrongStyle     = color.New(color.CrossedOut)
)

func style(c correctness.Correctness) *color.Color {
	switch c {
	case correctness.Correct:
		return correctStyle
	case correctness.Misplaced:
		return misplacedStyle
	default:
		return wrongStyle
	}
}

// Guess renders one guess as its colored letters.
func Guess(g game.Guess) string {
	var b strings.Builder
	for i, c := range g.Result {
		b.WriteString(style(c).Sprint(g.Word[i : i+1]))
	}
	return b.String()
}

// Board renders every guess on its own line.
func Board(history []game.Guess) string {
	var b strings.Builder
	for _, g := range history {
		b.WriteString(Guess(g))
		b.WriteByte('\n')
	}
	return b.String()
}

var emoji = map[correctness.Correctness]string{
	correctness.Correct:   "🟩",
	correctness.Misplaced: "🟨",
	correctness.Wrong:     "⬛",
}

// Share renders the spoiler-free emoji grid players paste elsewhere.
// The header reads "N/6" for a win and "X/6" otherwise.
func Share(history []game.Guess, state game.State) string {
	score := "X"
	if state == game.Won {
		score = fmt.Sprint(len(history))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Wordle %s/%d\n", score, game.MaxAttempts)
	for _, g := range history {
		for _, c := range g.Result {
			b.WriteString(emoji[c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
