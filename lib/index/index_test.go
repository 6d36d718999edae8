package index

import (
	"testing"

	"github.com/axelroques/ditto/lib/database"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind tests that positions are sorted character offsets of the token's sequence
func TestFind(t *testing.T) {
	d, err := database.FromRows([]string{"abab", "cdcd"})
	require.NoError(t, err)
	idx := New(d)

	assert.Equal(t, []int{0, 4}, idx.Find(pattern.Token{Symbol: 'a', Seq: 0}))
	assert.Equal(t, []int{2, 6}, idx.Find(pattern.Token{Symbol: 'b', Seq: 0}))
	assert.Equal(t, []int{2, 6}, idx.Find(pattern.Token{Symbol: 'd', Seq: 1}))
	assert.Empty(t, idx.Find(pattern.Token{Symbol: 'a', Seq: 1}))
	assert.Empty(t, idx.Find(pattern.Token{Symbol: 'a', Seq: 5}))
}

// TestFindAlignment tests that matches spanning two tokens are not reported
func TestFindAlignment(t *testing.T) {
	// in sequence 1 the symbol byte 0x01 equals the sequence byte, so its code
	// also matches at the odd offset 1
	d, err := database.FromRows([]string{"aaa", "a\x01a"})
	require.NoError(t, err)
	idx := New(d)

	assert.Equal(t, []int{0, 2, 4}, idx.Find(pattern.Token{Symbol: 'a', Seq: 0}))
	assert.Equal(t, []int{0, 4}, idx.Find(pattern.Token{Symbol: 'a', Seq: 1}))
	assert.Equal(t, []int{2}, idx.Find(pattern.Token{Symbol: 1, Seq: 1}))
}

// TestFindMemoised tests that repeated lookups return the same slice
func TestFindMemoised(t *testing.T) {
	d, err := database.FromRows([]string{"abcabc"})
	require.NoError(t, err)
	idx := New(d)

	tok := pattern.Token{Symbol: 'c', Seq: 0}
	first := idx.Find(tok)
	second := idx.Find(tok)
	require.Len(t, first, 2)
	assert.Same(t, &first[0], &second[0])
}
