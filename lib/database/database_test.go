package database

import (
	"strings"
	"testing"

	"github.com/axelroques/ditto/lib/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromRows tests that symbols are tagged with their sequence index
func TestFromRows(t *testing.T) {
	d, err := FromRows([]string{"abab", "cdcd"})
	require.NoError(t, err)

	assert.Equal(t, 2, d.Sequences())
	assert.Equal(t, 4, d.Steps())
	assert.Equal(t, 8, d.Size())
	assert.Equal(t, pattern.Token{Symbol: 'b', Seq: 0}, d.At(0, 1))
	assert.Equal(t, pattern.Token{Symbol: 'c', Seq: 1}, d.At(1, 2))
	assert.Equal(t, "a0b0a0b0", pattern.JoinTokens(d.Row(0)))
	assert.Equal(t, "abab\ncdcd\n", d.String())
}

// TestInvalidShapes tests that malformed inputs fail fast
func TestInvalidShapes(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		err  error
	}{
		{"no sequences", nil, ErrEmpty},
		{"empty sequence", []string{""}, ErrEmpty},
		{"ragged", []string{"abc", "ab"}, ErrRagged},
		{"too many sequences", repeatRow("ab", MaxSequences+1), ErrTooManySequences},
		{"multi-byte symbol", []string{"éaéa"}, ErrSymbol},
		{"digit symbol", []string{"ab", "a1"}, ErrSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func repeatRow(row string, n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

// TestFromMatrix tests the matrix adapter and its shape assertion
func TestFromMatrix(t *testing.T) {
	d, err := FromMatrix([][]string{{"a", "b", "c"}, {"x", "y", "z"}})
	require.NoError(t, err)
	assert.Equal(t, pattern.Token{Symbol: 'z', Seq: 1}, d.At(1, 2))

	_, err = FromMatrix([][]string{{"a", "b"}, {"c", "d"}})
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromMatrix([][]string{{"ab", "c", "d"}})
	assert.ErrorIs(t, err, ErrSymbol)

	_, err = FromMatrix([][]string{{"a", "7", "c"}})
	assert.ErrorIs(t, err, ErrSymbol)
}

// TestFromColumns tests that the time column is skipped
func TestFromColumns(t *testing.T) {
	d, err := FromColumns(
		[]string{"t", "s0", "s1"},
		[][]string{{"0", "1", "2"}, {"a", "b", "a"}, {"c", "c", "d"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Sequences())
	assert.Equal(t, "aba\nccd\n", d.String())

	_, err = FromColumns([]string{"t"}, [][]string{{"0"}})
	assert.ErrorIs(t, err, ErrEmpty)
}

// TestReaders tests the line and csv readers
func TestReaders(t *testing.T) {
	d, err := ReadRows(strings.NewReader("abab\n\n cdcd \n"))
	require.NoError(t, err)
	assert.Equal(t, "abab\ncdcd\n", d.String())

	d, err = ReadCSV(strings.NewReader("t,first,second\n0,a,c\n1,b,d\n2,a,c\n"))
	require.NoError(t, err)
	assert.Equal(t, "aba\ncdc\n", d.String())

	_, err = ReadCSV(strings.NewReader("t,first\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}
