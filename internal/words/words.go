// internal/words/words.go
//
// Word list management for the game engine.
//
// Word lists:
//   - "answers": words that may be picked as the secret.
//   - "allowed": words accepted as guesses (always includes answers).
//
// Load behavior:
//   1. answersPath and allowedPath both set → read both files.
//   2. only allowedPath set → that file serves as both lists.
//   3. neither set → fall back to the lists embedded in the assets package.
//   4. only answersPath set → answers double as the allowed list.
//
// Every entry is trimmed, lowercased and must pass Validate; anything else is
// dropped silently so a stray line cannot poison the secret pool.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/assets"
)

// ErrNotInWordList is returned by callers that enforce the dictionary.
var ErrNotInWordList = errors.New("not in word list")

// List holds a loaded answer pool and allowed-guess set. Safe for concurrent
// reads once returned from Load.
type List struct {
	answers    []string            // canonical answers
	allowedSet map[string]struct{} // answers ∪ guesses
	answersSet map[string]struct{} // answers only
}

// Load builds a List from the given files, or from the embedded defaults when
// both paths are empty.
func Load(answersPath, allowedPath string) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	case answersPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("words: embedded allowed: %w", err)
		}
	}

	return FromLists(ansList, allowList)
}

// FromLists builds a List from in-memory slices. Invalid entries are dropped.
func FromLists(answers, allowed []string) (*List, error) {
	ans := keepValid(answers)
	if len(ans) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	l := &List{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
	}
	for _, w := range keepValid(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	return l, nil
}

// readWordFile loads one word per line from a file. Filtering happens in FromLists.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// keepValid normalizes entries and keeps the ones that pass Validate, in order,
// without duplicates. Blank lines and '#' comments are skipped.
func keepValid(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") || Validate(w) != nil {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Random returns a cryptographically random answer.
func (l *List) Random() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[nBig.Int64()]
}

// Answers returns a copy of the answer list.
func (l *List) Answers() []string {
	return append([]string(nil), l.answers...)
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
