// Package daily picks the word of the day deterministically from a date and salt.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// blake2b-256(salt ":" YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	sum := blake2b.Sum256([]byte(salt + ":" + DateKey(date)))
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Answer returns the word of the day for date from l.
func Answer(l *words.List, date time.Time, salt string) string {
	answers := l.Answers()
	return answers[WordIndex(date, salt, len(answers))]
}
