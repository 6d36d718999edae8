package index

import (
	"index/suffixarray"
	"sort"

	"github.com/axelroques/ditto/lib/database"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

// TokenWidth is the number of characters a token code occupies in a sequence string
const TokenWidth = 2

var log = logger.GetLogger("index")

// Index answers token position queries over one database
type Index struct {
	sequences []*suffixarray.Index
	steps     int
	cache     *xsync.MapOf[pattern.Token, []int]
}

// New builds the index of a database
func New(d *database.Database) *Index {
	idx := &Index{
		sequences: make([]*suffixarray.Index, d.Sequences()),
		steps:     d.Steps(),
		cache:     xsync.NewMapOf[pattern.Token, []int](),
	}

	buf := make([]byte, 0, d.Steps()*TokenWidth)
	for seq := 0; seq < d.Sequences(); seq++ {
		buf = buf[:0]
		for step := 0; step < d.Steps(); step++ {
			buf = append(buf, d.At(seq, step).Code()...)
		}
		// suffixarray keeps a reference to its input
		data := make([]byte, len(buf))
		copy(data, buf)
		idx.sequences[seq] = suffixarray.New(data)
	}

	log.Debugf("built index over %d sequences of %d steps", d.Sequences(), d.Steps())
	return idx
}

// Sequences returns the number of indexed sequences
func (idx *Index) Sequences() int {
	return len(idx.sequences)
}

// Steps returns the number of time steps of every indexed sequence
func (idx *Index) Steps() int {
	return idx.steps
}

// Find returns the ascending character positions of tok in its sequence string.
// The returned slice is shared and must not be modified.
func (idx *Index) Find(tok pattern.Token) []int {
	positions, _ := idx.cache.LoadOrCompute(tok, func() []int {
		return idx.lookup(tok)
	})
	return positions
}

// lookup searches the suffix array of the token's sequence
func (idx *Index) lookup(tok pattern.Token) []int {
	if tok.Seq < 0 || tok.Seq >= len(idx.sequences) {
		return nil
	}

	matches := idx.sequences[tok.Seq].Lookup([]byte(tok.Code()), -1)

	// a match may straddle two tokens, only aligned offsets are real occurrences
	positions := make([]int, 0, len(matches))
	for _, m := range matches {
		if m%TokenWidth == 0 {
			positions = append(positions, m)
		}
	}
	sort.Ints(positions)
	return positions
}
