package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPlayWin(t *testing.T) {
	out, err := execute(t, "crane\nworld\n", "play", "--answer", "world", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "You won in 2/6!")
	assert.Contains(t, out, "Wordle 2/6")
}

func TestPlayNormalizesAnswer(t *testing.T) {
	out, err := execute(t, "world\n", "play", "--answer", " WORLD ", "--no-color", "--no-share")
	require.NoError(t, err)
	assert.Contains(t, out, "You won in 1/6!")
}

func TestPlayRejectsUnknownWordsUnlessNoDict(t *testing.T) {
	out, err := execute(t, "qqqqq\nworld\n", "play", "--answer", "world", "--no-color", "--no-share")
	require.NoError(t, err)
	assert.Contains(t, out, "qqqqq: not in word list")
	assert.Contains(t, out, "You won in 1/6!")

	out, err = execute(t, "qqqqq\nworld\n", "play", "--answer", "world", "--no-color", "--no-dict")
	require.NoError(t, err)
	assert.NotContains(t, out, "not in word list")
	assert.Contains(t, out, "You won in 2/6!")
}

func TestPlayInvalidAnswer(t *testing.T) {
	_, err := execute(t, "", "play", "--answer", "toolong")
	assert.ErrorContains(t, err, "invalid input")
}

func TestPlayInputClosed(t *testing.T) {
	_, err := execute(t, "crane\n", "play", "--answer", "world", "--no-color")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWords(t *testing.T) {
	out, err := execute(t, "", "words", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "answers: ")
	assert.Contains(t, out, "\ncrane\n")
}

func TestBadLogLevel(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"--log-level", "loud", "words"})
	assert.ErrorContains(t, root.Execute(), "log level")
}
