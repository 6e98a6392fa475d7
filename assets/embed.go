// Package assets bundles the default word lists so the binaries run without
// any external files configured. Lines are returned as stored; the words
// package owns trimming, comments and validation.
package assets

import (
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

const (
	answersFile = "answers.txt"
	allowedFile = "allowed.txt"
)

func lines(name string) ([]string, error) {
	b, err := FS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(b), "\n"), nil
}

// AnswersList returns the raw lines of the embedded answer list.
func AnswersList() ([]string, error) { return lines(answersFile) }

// AllowedList returns the raw lines of the embedded extra guesses (answers
// not included).
func AllowedList() ([]string, error) { return lines(allowedFile) }
