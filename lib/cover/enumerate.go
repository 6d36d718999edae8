package cover

import "github.com/axelroques/ditto/lib/pattern"

// Position is one cell of the database
type Position struct {
	Seq  int
	Step int
}

// --------------------------------------------------------------------------
// Extension rules
// --------------------------------------------------------------------------

// Unclaimed reports whether the cell of next is still free in m
func Unclaimed(m *Matrix, next Position) bool {
	return !m.claimed(next.Seq, next.Step)
}

// Directed reports whether next does not lie before last
func Directed(last, next Position) bool {
	return next.Step-last.Step >= 0
}

// WithinGap reports whether next stays inside the gap bound of a pattern with the given span,
// measured from the first position of the occurrence
func WithinGap(first, next Position, span int) bool {
	return next.Step-first.Step+1 < 2*span
}

// DistinctCell reports whether next does not reuse the cell of last
func DistinctCell(last, next Position) bool {
	return last.Seq != next.Seq || last.Step != next.Step
}

// Extends reports whether next may follow the partial occurrence prefix
func Extends(m *Matrix, prefix []Position, next Position, span int) bool {
	if !Unclaimed(m, next) {
		return false
	}
	if len(prefix) == 0 {
		return true
	}
	last := prefix[len(prefix)-1]
	return Directed(last, next) && WithinGap(prefix[0], next, span) && DistinctCell(last, next)
}

// --------------------------------------------------------------------------
// Enumeration
// --------------------------------------------------------------------------

// enumerate calls emit for every full combination of one step per token of p that
// satisfies the extension rules, in lexicographic order of the chosen steps.
// It uses an explicit stack of partial occurrences instead of recursion. The rules
// are evaluated against the live matrix, so cells committed by emit prune later
// extensions. emit must not retain the slice it is passed.
func enumerate(m *Matrix, p *pattern.Pattern, steps [][]int, emit func([]Position)) {
	n := len(p.Tokens)
	if n == 0 {
		return
	}

	// stack holds partial occurrences, the children of a node are pushed in
	// reverse so they pop in ascending order
	stack := make([][]Position, 0, len(steps[0]))
	for i := len(steps[0]) - 1; i >= 0; i-- {
		stack = append(stack, []Position{{Seq: p.Tokens[0].Seq, Step: steps[0][i]}})
	}

	for len(stack) > 0 {
		prefix := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// cells of the prefix may have been claimed since it was pushed
		if !unclaimedAll(m, prefix) {
			continue
		}

		k := len(prefix)
		if k == n {
			emit(prefix)
			continue
		}

		seq := p.Tokens[k].Seq
		for i := len(steps[k]) - 1; i >= 0; i-- {
			next := Position{Seq: seq, Step: steps[k][i]}
			if !Extends(m, prefix, next, p.Span) {
				continue
			}
			child := make([]Position, k+1)
			copy(child, prefix)
			child[k] = next
			stack = append(stack, child)
		}
	}
}

func unclaimedAll(m *Matrix, cells []Position) bool {
	for _, c := range cells {
		if m.claimed(c.Seq, c.Step) {
			return false
		}
	}
	return true
}
