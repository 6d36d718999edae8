package cover

import (
	"github.com/axelroques/ditto/lib/index"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/lni/dragonboat/v4/logger"
)

var log = logger.GetLogger("cover")

// Table is the view of a pattern table the cover engine needs
type Table interface {
	// Patterns returns the patterns indexed by id
	Patterns() []*pattern.Pattern
	// CoverOrder returns the ids in the order in which patterns claim cells
	CoverOrder() []int
}

// Finder returns the character positions of a token in its sequence string
type Finder interface {
	Find(tok pattern.Token) []int
}

// Engine covers one database with the patterns of a table
type Engine struct {
	rows   int
	cols   int
	finder Finder
}

// NewEngine creates a cover engine for a database of rows sequences and cols steps
func NewEngine(rows, cols int, finder Finder) *Engine {
	return &Engine{rows: rows, cols: cols, finder: finder}
}

// Cover builds a new cover matrix for t and updates the statistics of every pattern of t.
// It never marks the table clean, that is left to the caller.
func (e *Engine) Cover(t Table) *Matrix {
	m := NewMatrix(e.rows, e.cols)
	patterns := t.Patterns()
	for _, id := range t.CoverOrder() {
		p := patterns[id]
		usage, gap := e.place(m, p)
		p.SetStats(usage, gap)
	}
	return m
}

// place claims every valid occurrence of p in m and returns usage and raw gap
func (e *Engine) place(m *Matrix, p *pattern.Pattern) (usage, gap int) {
	steps := e.positions(m, p)
	for _, s := range steps {
		if len(s) == 0 {
			return 0, 0
		}
	}

	enumerate(m, p, steps, func(cells []Position) {
		if !commit(m, p, cells, usage) {
			return
		}
		if len(cells) > 1 {
			gap += cells[len(cells)-1].Step - cells[0].Step - (p.Span - 1)
		}
		usage++
	})
	return usage, gap
}

// positions returns, per token of p, the unclaimed time steps holding that token
func (e *Engine) positions(m *Matrix, p *pattern.Pattern) [][]int {
	steps := make([][]int, len(p.Tokens))
	for k, tok := range p.Tokens {
		found := e.finder.Find(tok)
		s := make([]int, 0, len(found))
		for _, pos := range found {
			step := pos / index.TokenWidth
			if step >= e.cols || tok.Seq >= e.rows {
				continue
			}
			if Unclaimed(m, Position{Seq: tok.Seq, Step: step}) {
				s = append(s, step)
			}
		}
		steps[k] = s
	}
	return steps
}

// commit writes one occurrence into m unless it conflicts with the cover or with itself
func commit(m *Matrix, p *pattern.Pattern, cells []Position, ordinal int) bool {
	for i, c := range cells {
		if m.claimed(c.Seq, c.Step) {
			return false
		}
		for _, prev := range cells[:i] {
			if prev == c {
				log.Debugf("discarding degenerate occurrence of %s: cell (%d,%d) referenced twice", p.Name, c.Seq, c.Step)
				return false
			}
		}
	}
	for k, c := range cells {
		m.set(c.Seq, c.Step, Cell{
			Pattern:    p.ID,
			Index:      k,
			Occurrence: ordinal,
			Symbol:     p.Tokens[k].Symbol,
		})
	}
	return true
}
