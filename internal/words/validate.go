// internal/words/validate.go
//
// The single gate between external input and the game engine. Secrets and
// guesses both pass through Validate before anything scores them.

package words

import (
	"errors"
	"unicode/utf8"
)

// Length is the fixed number of letters in every word.
const Length = 5

var (
	ErrTooShort          = errors.New("input too short, please supply a 5 letter word")
	ErrTooLong           = errors.New("input too long, please supply a 5 letter word")
	ErrInvalidCharacters = errors.New("input contains invalid characters, please only use a-z")
)

// Validate reports whether word is exactly Length characters, all in a–z.
// Length is counted in characters, so "café!!" is too long rather than invalid.
func Validate(word string) error {
	n := utf8.RuneCountInString(word)
	if n < Length {
		return ErrTooShort
	}
	if n > Length {
		return ErrTooLong
	}
	if !isAlpha(word) {
		return ErrInvalidCharacters
	}
	return nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
