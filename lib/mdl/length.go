package mdl

import (
	"math"

	"github.com/axelroques/ditto/lib/cover"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/axelroques/ditto/lib/table"
)

// Length is the two-part description length of a code table
type Length struct {
	Data  float64 // L(D|CT)
	Table float64 // L(CT|D)
}

// Infinite is the length of a table that cannot cover the data
var Infinite = Length{Data: math.Inf(1), Table: math.Inf(1)}

// Total returns L(D|CT) + L(CT|D)
func (l Length) Total() float64 {
	return l.Data + l.Table
}

// IsInf reports whether the length is the uncoverable marker
func (l Length) IsInf() bool {
	return math.IsInf(l.Total(), 1)
}

// Measure computes the length of ct given the cover m it produced
func Measure(st *table.SingletonTable, ct *table.CodeTable, m *cover.Matrix) Length {
	if !m.Filled() {
		return Infinite
	}
	return Length{
		Data:  DataLength(ct.Patterns()),
		Table: TableLength(st, ct.Patterns()),
	}
}

// DataLength computes L(D|CT), the occurrence stream plus the gap stream
func DataLength(patterns []*pattern.Pattern) float64 {
	return streamLength(patterns, true) + gapLength(patterns)
}

// TableLength computes L(CT|D), the pattern codes plus every used pattern spelled out in singleton codes
func TableLength(st *table.SingletonTable, patterns []*pattern.Pattern) float64 {
	l := streamLength(patterns, false)
	for _, p := range patterns {
		if p.Usage() > 0 {
			l += st.PatternCost(p)
		}
	}
	return l
}

// streamLength sums the code lengths of used patterns, weighted by usage if weighted is set
func streamLength(patterns []*pattern.Pattern, weighted bool) float64 {
	total := 0
	for _, p := range patterns {
		total += p.Usage()
	}
	if total == 0 {
		return 0
	}

	l := 0.0
	for _, p := range patterns {
		u := p.Usage()
		if u == 0 {
			continue
		}
		code := -math.Log10(float64(u) / float64(total))
		if weighted {
			code *= float64(u)
		}
		l += code
	}
	return l
}

func gapLength(patterns []*pattern.Pattern) float64 {
	l := 0.0
	for _, p := range patterns {
		gap := p.Stats.Gap
		if gap == 0 {
			continue
		}
		if gap < 0 {
			log.Warningf("pattern %s has negative raw gap %d, clamping to zero", p.Name, gap)
			continue
		}
		g, fill := float64(gap), float64(p.Stats.Fill)
		l += g * -math.Log10(g/(g+fill))
	}
	return l
}
