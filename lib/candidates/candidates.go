package candidates

import (
	"math"
	"sort"

	"github.com/axelroques/ditto/lib/pattern"
	"github.com/axelroques/ditto/lib/table"
)

// DefaultMaxSize is the largest number of tokens a candidate may have
const DefaultMaxSize = 5

// Candidate is a pattern built from two parents of the code table
type Candidate struct {
	Pattern  *pattern.Pattern
	Left     *pattern.Pattern
	Right    *pattern.Pattern
	Estimate float64
}

// Generate builds, estimates and ranks every pairwise candidate of ct.
// Candidates already present in ct are skipped and duplicate names keep their best estimate.
// maxSize <= 0 selects DefaultMaxSize.
func Generate(st *table.SingletonTable, ct *table.CodeTable, maxSize int) []Candidate {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	patterns := ct.Patterns()
	total := ct.TotalUsage()

	all := make([]Candidate, 0, len(patterns)*len(patterns))
	for _, left := range patterns {
		for _, right := range patterns {
			p := pattern.Concat(left, right)
			if ct.Contains(p.Name) {
				continue
			}
			estimate := math.Inf(1)
			if p.Len() <= maxSize {
				estimate = Estimate(st, p, left.Usage(), right.Usage(), total)
			}
			all = append(all, Candidate{Pattern: p, Left: left, Right: right, Estimate: estimate})
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Estimate < all[j].Estimate })

	ranked := all[:0]
	seen := make(map[string]struct{}, len(all))
	for _, c := range all {
		if math.IsInf(c.Estimate, 1) {
			break
		}
		if _, ok := seen[c.Pattern.Name]; ok {
			continue
		}
		seen[c.Pattern.Name] = struct{}{}
		ranked = append(ranked, c)
	}
	return ranked
}

// Estimate returns the estimated length delta of adding p, the concatenation of two
// parents with usages x and y, to a table of total usage s
func Estimate(st *table.SingletonTable, p *pattern.Pattern, x, y, s int) float64 {
	if x == 0 || y == 0 || s == 0 {
		return math.Inf(1)
	}
	fx, fy, fs := float64(x), float64(y), float64(s)

	var data, code float64
	if x == y {
		z := fx / 2
		rest := fs - fx + z
		data = fx*math.Log10(fx/fs) + fy*math.Log10(fy/fs) - z*math.Log10(z/rest)
		code = math.Log10(fx/fs) + math.Log10(fy/fs) - math.Log10(z/rest)
	} else {
		z := math.Min(fx, fy)
		d := math.Max(fx, fy) - z
		rest := fs - z
		data = fx*math.Log10(fx/fs) + fy*math.Log10(fy/fs) - d*math.Log10(d/rest) - z*math.Log10(z/rest)
		code = math.Log10(fx/fs) + math.Log10(fy/fs) - math.Log10(d/rest) - math.Log10(z/rest)
	}
	return data + code + st.PatternCost(p)
}
