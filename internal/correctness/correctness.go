// internal/correctness/correctness.go
//
// Per-letter scoring of a guess against the secret.
//
// Scoring is the classic two-pass algorithm:
//   Pass 1: exact matches become Correct; every other secret letter is counted
//           as unaccounted.
//   Pass 2: remaining guess letters claim an unaccounted occurrence (Misplaced)
//           or get nothing (Wrong).
//
// Correct matches must be resolved before any Misplaced claim, otherwise a
// repeated letter can be credited twice.

package correctness

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/internal/words"
)

// Correctness is the evaluation of a single letter in a guess.
type Correctness uint8

const (
	Wrong     Correctness = iota // letter does not contribute
	Misplaced                    // letter is in the secret at another position
	Correct                      // letter is at the right position
)

// Result holds one Correctness per position.
type Result [words.Length]Correctness

// Evaluate scores candidate against secret. Both must pass words.Validate;
// the validation error is returned unchanged otherwise.
func Evaluate(secret, candidate string) (Result, error) {
	if err := words.Validate(secret); err != nil {
		return Result{}, err
	}
	if err := words.Validate(candidate); err != nil {
		return Result{}, err
	}
	return score(secret, candidate), nil
}

// score assumes both inputs are validated.
func score(secret, candidate string) Result {
	if len(secret) != words.Length || len(candidate) != words.Length {
		panic(fmt.Sprintf("correctness: score called with unvalidated input (len %d, %d)", len(secret), len(candidate)))
	}

	var res Result // zero value is all Wrong
	var unaccounted [26]int

	for i := 0; i < words.Length; i++ {
		if candidate[i] == secret[i] {
			res[i] = Correct
		} else {
			unaccounted[secret[i]-'a']++
		}
	}

	for i := 0; i < words.Length; i++ {
		if res[i] == Correct {
			continue
		}
		if j := candidate[i] - 'a'; unaccounted[j] > 0 {
			res[i] = Misplaced
			unaccounted[j]--
		}
	}
	return res
}

// IsWin reports whether every position is Correct.
func (r Result) IsWin() bool {
	for _, c := range r {
		if c != Correct {
			return false
		}
	}
	return true
}

// Count returns how many positions carry c.
func (r Result) Count(c Correctness) int {
	n := 0
	for _, x := range r {
		if x == c {
			n++
		}
	}
	return n
}

// String renders the result as letters, e.g. "CWMWW".
func (r Result) String() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteByte(c.letter())
	}
	return b.String()
}

// ParseResult reads the letter form produced by String. Spaces are ignored,
// so "C W M W W" and "CWMWW" are equivalent.
func ParseResult(s string) (Result, error) {
	s = strings.ReplaceAll(s, " ", "")
	var r Result
	if len(s) != len(r) {
		return r, fmt.Errorf("correctness: want %d tags, got %d in %q", len(r), len(s), s)
	}
	for i := range r {
		switch s[i] {
		case 'C':
			r[i] = Correct
		case 'M':
			r[i] = Misplaced
		case 'W':
			r[i] = Wrong
		default:
			return r, fmt.Errorf("correctness: unknown tag %q in %q", s[i], s)
		}
	}
	return r, nil
}

func (c Correctness) letter() byte {
	switch c {
	case Correct:
		return 'C'
	case Misplaced:
		return 'M'
	default:
		return 'W'
	}
}

// String returns the JSON/text name of c.
func (c Correctness) String() string {
	switch c {
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	case Wrong:
		return "wrong"
	}
	return fmt.Sprintf("Correctness(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Correctness) MarshalText() ([]byte, error) {
	switch c {
	case Correct, Misplaced, Wrong:
		return []byte(c.String()), nil
	}
	return nil, fmt.Errorf("correctness: invalid value %d", uint8(c))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Correctness) UnmarshalText(b []byte) error {
	switch string(b) {
	case "correct":
		*c = Correct
	case "misplaced":
		*c = Misplaced
	case "wrong":
		*c = Wrong
	default:
		return fmt.Errorf("correctness: unknown value %q", b)
	}
	return nil
}
