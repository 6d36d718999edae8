package table

import (
	"math"

	"github.com/axelroques/ditto/lib/database"
	"github.com/axelroques/ditto/lib/pattern"
)

// SingletonTable holds one pattern per distinct token of a database
type SingletonTable struct {
	patterns []*pattern.Pattern
	byToken  map[pattern.Token]int
	usage    map[pattern.Token]int
	total    int
	frozen   bool
}

// NewSingletonTable collects the distinct tokens of d in order of first appearance
// (sequence by sequence, in time order). Ids are the positions in that order.
func NewSingletonTable(d *database.Database) *SingletonTable {
	st := &SingletonTable{
		byToken: make(map[pattern.Token]int),
		usage:   make(map[pattern.Token]int),
	}
	for seq := 0; seq < d.Sequences(); seq++ {
		for step := 0; step < d.Steps(); step++ {
			tok := d.At(seq, step)
			if _, ok := st.byToken[tok]; ok {
				continue
			}
			p := pattern.New(tok)
			p.ID = len(st.patterns)
			st.byToken[tok] = p.ID
			st.patterns = append(st.patterns, p)
		}
	}
	return st
}

// --------------------------------------------------------------------------
// Cover table methods
// --------------------------------------------------------------------------

// Patterns returns the singleton patterns. The slice must not be modified.
func (st *SingletonTable) Patterns() []*pattern.Pattern {
	return st.patterns
}

// CoverOrder returns the slot order, singletons never compete for cells
func (st *SingletonTable) CoverOrder() []int {
	order := make([]int, len(st.patterns))
	for i := range order {
		order[i] = i
	}
	return order
}

// --------------------------------------------------------------------------
// Frequency prior
// --------------------------------------------------------------------------

// Freeze copies the usage of the most recent cover pass into the frequency prior.
// Only the first call has an effect, later calls keep the frozen values.
func (st *SingletonTable) Freeze() {
	if st.frozen {
		return
	}
	for _, p := range st.patterns {
		st.usage[p.Tokens[0]] = p.Usage()
		st.total += p.Usage()
	}
	st.frozen = true
}

// Frozen reports whether the frequency prior has been set
func (st *SingletonTable) Frozen() bool {
	return st.frozen
}

// Len returns the number of singletons
func (st *SingletonTable) Len() int {
	return len(st.patterns)
}

// UsageOf returns the frozen usage of a token (0 for unknown tokens)
func (st *SingletonTable) UsageOf(tok pattern.Token) int {
	return st.usage[tok]
}

// TotalUsage returns the sum of all frozen singleton usages
func (st *SingletonTable) TotalUsage() int {
	return st.total
}

// TokenCost returns -log10(usage(tok)/total), the cost of spelling out tok in a code table.
// Unknown tokens cost +Inf.
func (st *SingletonTable) TokenCost(tok pattern.Token) float64 {
	u := st.usage[tok]
	if u == 0 || st.total == 0 {
		return math.Inf(1)
	}
	return -math.Log10(float64(u) / float64(st.total))
}

// PatternCost returns the sum of TokenCost over the tokens of p
func (st *SingletonTable) PatternCost(p *pattern.Pattern) float64 {
	var cost float64
	for _, tok := range p.Tokens {
		cost += st.TokenCost(tok)
	}
	return cost
}
