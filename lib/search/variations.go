package search

import (
	"sort"

	"github.com/axelroques/ditto/lib/cover"
	"github.com/axelroques/ditto/lib/pattern"
)

// variant is a pattern proposed from the gaps of an accepted pattern
type variant struct {
	pattern *pattern.Pattern
	count   int // number of occurrences that proposed the variant
}

// variations proposes variants of the accepted pattern p from the tokens that fill the
// gaps of its occurrences, and tests them together with the pending variants of its parent.
// An accepted variant is pruned around and explored recursively with the variants
// that were still untested.
func (s *Searcher) variations(p *pattern.Pattern, pending []variant) {
	if p.Span > 1 && p.Len() < s.opts.MaxCandidateSize {
		m := s.ev.Cover(s.ct)
		pending = merge(pending, discover(m, p))
	}
	if len(pending) == 0 {
		return
	}

	sort.SliceStable(pending, func(i, j int) bool { return pending[i].count > pending[j].count })

	for i, v := range pending {
		if s.ct.Contains(v.pattern.Name) {
			continue
		}
		d := s.ev.Compare(s.ct, v.pattern)
		s.metrics.variations.Inc()
		s.emit(Event{Kind: VariationTested, Candidate: v.pattern.Name, Pattern: p.Name, Accepted: d.Accepted, BaseLength: d.Base, NewLength: d.New})
		if !d.Accepted {
			continue
		}

		s.accept(v.pattern, p.Name, d)
		s.prune()
		s.variations(v.pattern, pending[i+1:])
		return
	}
}

// merge adds the counts of found to pending, appending the variants not seen before
func merge(pending []variant, found []variant) []variant {
	out := make([]variant, 0, len(pending)+len(found))
	at := make(map[string]int, len(pending)+len(found))
	for _, group := range [][]variant{pending, found} {
		for _, v := range group {
			if i, ok := at[v.pattern.Name]; ok {
				out[i].count += v.count
				continue
			}
			at[v.pattern.Name] = len(out)
			out = append(out, v)
		}
	}
	return out
}

// discover returns the variants of p observed in cover m, in order of discovery.
// Every gapped occurrence of p whose gap is a single time step proposes one variant
// per sequence it touches: p with the token found in the gap cell inserted.
func discover(m *cover.Matrix, p *pattern.Pattern) []variant {
	var found []variant
	at := make(map[string]int)
	for _, occ := range m.Occurrences(p.ID) {
		for _, tok := range gapTokens(m, p, occ) {
			v := p.Insert(tok.at, tok.token)
			if i, ok := at[v.Name]; ok {
				found[i].count++
				continue
			}
			at[v.Name] = len(found)
			found = append(found, variant{pattern: v, count: 1})
		}
	}
	return found
}

type gapToken struct {
	at    int // insertion index in the pattern
	token pattern.Token
}

// gapTokens returns the tokens in the single-step gaps of one occurrence
func gapTokens(m *cover.Matrix, p *pattern.Pattern, occ []cover.Placement) []gapToken {
	if len(occ) < 2 || gapFree(occ, p.Span) {
		return nil
	}

	cells := make([]cover.Placement, len(occ))
	copy(cells, occ)
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].Step < cells[j].Step })

	minRow, maxRow := cells[0].Seq, cells[0].Seq
	for _, c := range cells {
		minRow = min(minRow, c.Seq)
		maxRow = max(maxRow, c.Seq)
	}

	var tokens []gapToken
	for k := 1; k < len(cells); k++ {
		prev, next := cells[k-1], cells[k]
		if next.Step-prev.Step != 2 {
			continue
		}
		col := prev.Step + 1
		for row := minRow; row <= maxRow; row++ {
			c := m.At(row, col)
			if c.IsEmpty() {
				continue
			}
			tokens = append(tokens, gapToken{
				at:    prev.Index + 1,
				token: pattern.Token{Symbol: c.Symbol, Seq: row},
			})
		}
	}
	return tokens
}

// gapFree reports whether the columns of an occurrence form a contiguous range, or a range as wide as span
func gapFree(occ []cover.Placement, span int) bool {
	cols := make(map[int]struct{}, len(occ))
	lo, hi := occ[0].Step, occ[0].Step
	for _, pl := range occ {
		cols[pl.Step] = struct{}{}
		lo = min(lo, pl.Step)
		hi = max(hi, pl.Step)
	}
	width := hi - lo + 1
	return width == len(cols) || width == span
}
