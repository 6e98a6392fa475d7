package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/words"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	at := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(at))
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 100)
	assert.Equal(t, a, WordIndex(later, "salt", 100), "same day, same word")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 100)
	assert.Zero(t, WordIndex(day, "salt", 0))
}

func TestWordIndexVariesAcrossDaysAndSalts(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(start.AddDate(0, 0, d), "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 20)

	diff := 0
	for d := 0; d < 30; d++ {
		day := start.AddDate(0, 0, d)
		if WordIndex(day, "one", 1000) != WordIndex(day, "two", 1000) {
			diff++
		}
	}
	assert.Greater(t, diff, 20)
}

func TestAnswerComesFromList(t *testing.T) {
	l, err := words.FromLists([]string{"apple", "mango", "lemon"}, nil)
	require.NoError(t, err)
	got := Answer(l, time.Now(), "salt")
	assert.True(t, l.IsAnswer(got))
}
