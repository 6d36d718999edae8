package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/axelroques/ditto/lib/cover"
	"github.com/axelroques/ditto/lib/database"
	"github.com/axelroques/ditto/lib/index"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/axelroques/ditto/lib/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var escapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) []string {
	return strings.Split(escapes.ReplaceAllString(s, ""), "\n")
}

func coveredTable(t *testing.T, rows ...string) (*cover.Matrix, *table.CodeTable) {
	t.Helper()
	d, err := database.FromRows(rows)
	require.NoError(t, err)
	engine := cover.NewEngine(d.Sequences(), d.Steps(), index.New(d))
	st := table.NewSingletonTable(d)
	engine.Cover(st)
	st.Freeze()
	ct := table.NewCodeTable(st)
	tokens, _ := pattern.ParseName("a0b0")
	ct.Add(pattern.New(tokens...))
	return engine.Cover(ct), ct
}

// TestGrid tests the highlighted cells for several ranks
func TestGrid(t *testing.T) {
	m, ct := coveredTable(t, "abacbab")

	tests := []struct {
		name    string
		rank    int
		letters bool
		line    string
		legend  string
	}{
		{"longest pattern", 0, false, "S_0 ###.###", "a0b0  usage 3  gap 1"},
		{"singleton", 3, false, "S_0 ...#...", "c0  usage 1  gap 0"},
		{"letters", 0, true, "S_0 abacbab", "a0b0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Grid(m, ct, tt.rank, tt.letters)
			require.NoError(t, err)
			lines := plain(out)
			assert.Equal(t, tt.line, lines[0])
			assert.Contains(t, lines[len(lines)-1], tt.legend)
		})
	}
}

// TestGridRows tests one labelled line per sequence
func TestGridRows(t *testing.T) {
	m, ct := coveredTable(t, "ab", "cd")
	out, err := Grid(m, ct, 0, true)
	require.NoError(t, err)
	lines := plain(out)
	assert.Equal(t, "S_0 ab", lines[0])
	assert.Equal(t, "S_1 cd", lines[1])
}

// TestGridRank tests the error for ranks outside the table
func TestGridRank(t *testing.T) {
	m, ct := coveredTable(t, "abacbab")
	for _, rank := range []int{-1, ct.Len()} {
		_, err := Grid(m, ct, rank, false)
		assert.ErrorIs(t, err, ErrRank)
	}
}
