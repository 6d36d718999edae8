package mdl

import (
	"math"
	"testing"

	"github.com/axelroques/ditto/lib/cover"
	"github.com/axelroques/ditto/lib/database"
	"github.com/axelroques/ditto/lib/index"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/axelroques/ditto/lib/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

type fixture struct {
	st *table.SingletonTable
	ct *table.CodeTable
	ev *Evaluator
}

// newFixture covers the database with its singletons and freezes the prior
func newFixture(t *testing.T, rows ...string) *fixture {
	t.Helper()
	d, err := database.FromRows(rows)
	require.NoError(t, err)
	engine := cover.NewEngine(d.Sequences(), d.Steps(), index.New(d))
	st := table.NewSingletonTable(d)
	engine.Cover(st)
	st.Freeze()
	return &fixture{
		st: st,
		ct: table.NewCodeTable(st),
		ev: NewEvaluator(st, engine, DefaultMinImprovement),
	}
}

func parse(t *testing.T, name string) *pattern.Pattern {
	t.Helper()
	tokens, ok := pattern.ParseName(name)
	require.True(t, ok, "invalid pattern name %q", name)
	return pattern.New(tokens...)
}

// entropy returns -u*log10(u/s) summed over usages, the weighted code length
func entropy(s float64, usages ...float64) float64 {
	var l float64
	for _, u := range usages {
		l += -u * math.Log10(u/s)
	}
	return l
}

// TestSingletonLength tests that a singleton-only table has pure singleton entropy
func TestSingletonLength(t *testing.T) {
	f := newFixture(t, "abab", "cdcd")
	l := f.ev.Length(f.ct)

	// four singletons, each used twice out of eight
	code := -math.Log10(2.0 / 8.0)
	assert.InDelta(t, 8*code, l.Data, delta)
	assert.InDelta(t, 4*code+4*code, l.Table, delta)
	assert.InDelta(t, 16*code, l.Total(), delta)
	assert.False(t, l.IsInf())
}

// TestGapLength tests the gap stream term and the clamping of negative gaps
func TestGapLength(t *testing.T) {
	p := pattern.New(pattern.Token{Symbol: 'a'}, pattern.Token{Symbol: 'b'})
	p.SetStats(3, 1)
	withGap := DataLength([]*pattern.Pattern{p})
	assert.InDelta(t, 0.0+1*-math.Log10(1.0/4.0), withGap, delta)

	p.Stats.Gap = -2
	assert.InDelta(t, 0.0, DataLength([]*pattern.Pattern{p}), delta)

	unused := pattern.New(pattern.Token{Symbol: 'c'})
	unused.SetStats(0, 0)
	assert.InDelta(t, 0.0, DataLength([]*pattern.Pattern{unused}), delta)
}

// TestUnfilledLength tests that a table missing a singleton has infinite length
func TestUnfilledLength(t *testing.T) {
	f := newFixture(t, "abab")
	_, err := f.ct.Remove(f.ct.At(1))
	require.NoError(t, err)

	l := f.ev.Length(f.ct)
	assert.True(t, l.IsInf())
	assert.True(t, math.IsInf(l.Data, 1))
	assert.True(t, math.IsInf(l.Table, 1))
}

// TestCompareAccept tests accepting a planted pattern with one gapped occurrence
func TestCompareAccept(t *testing.T) {
	f := newFixture(t, "abacbab")
	ab := parse(t, "a0b0")

	d := f.ev.Compare(f.ct, ab)
	require.True(t, d.Accepted)
	assert.Less(t, d.New, DefaultMinImprovement*d.Base)
	assert.True(t, f.ct.Dirty())
	assert.Equal(t, 3, ab.ID)
	assert.Equal(t, 3, ab.Usage())
	assert.Equal(t, 1, ab.Stats.Gap)

	// singleton usage before the candidate was added
	assert.Equal(t, []int{3, 3, 1}, f.ev.BaseUsage())

	// a0 3, b0 3, c0 1 out of 7: usage-weighted stream, pattern codes, singleton spelling
	s := 7.0
	codeAB, codeC := -math.Log10(3/s), -math.Log10(1/s)
	wantBase := entropy(s, 3, 3, 1) + (codeAB + codeAB + codeC) + (codeAB + codeAB + codeC)
	assert.InDelta(t, wantBase, d.Base, delta)
}

// TestCompareReject tests that a rejected candidate leaves the table as it was
func TestCompareReject(t *testing.T) {
	f := newFixture(t, "abacbab")
	aa := parse(t, "a0a0")

	d := f.ev.Compare(f.ct, aa)
	require.False(t, d.Accepted)
	assert.False(t, f.ct.Contains("a0a0"))
	assert.Equal(t, -1, aa.ID)
	assert.Equal(t, 3, f.ct.Len())
	assert.False(t, f.ct.Dirty(), "a rejected test keeps the cached base length")
	assert.Equal(t, []int{3, 3, 1}, f.ct.Usages())

	// the cached base is reused for the next test
	again := f.ev.Compare(f.ct, parse(t, "a0b0"))
	assert.InDelta(t, d.Base, again.Base, delta)
	assert.True(t, again.Accepted)
}

// TestPruneAccept tests removing a pattern whose role is taken over by a better one
func TestPruneAccept(t *testing.T) {
	f := newFixture(t, "abacbab")
	aa := parse(t, "a0a0")
	ab := parse(t, "a0b0")
	f.ct.Add(aa)
	f.ct.Add(ab)
	f.ct.MarkDirty()

	state := &PruneState{Decrease: []int{0, 0, 0, 2, 1}, Order: []int{3, 4}}
	d, err := f.ev.PruneTest(f.ct, aa, state)
	require.NoError(t, err)
	require.True(t, d.Accepted)

	assert.False(t, f.ct.Contains("a0a0"))
	assert.Equal(t, 3, ab.ID)
	assert.True(t, f.ct.Dirty())
	assert.Equal(t, []int{0, 0, 0, 1}, state.Decrease)
	assert.Equal(t, []int{3, 3}, state.Order)
	assert.Equal(t, 3, ab.Usage())
}

// TestPruneReject tests restoring a pattern whose removal does not pay off
func TestPruneReject(t *testing.T) {
	f := newFixture(t, "abacbab")
	ab := parse(t, "a0b0")
	f.ct.Add(ab)
	f.ct.MarkDirty()

	state := &PruneState{Decrease: []int{1, 1, 0, 0}, Order: []int{0, 1}}
	d, err := f.ev.PruneTest(f.ct, ab, state)
	require.NoError(t, err)
	require.False(t, d.Accepted)

	assert.Equal(t, 3, ab.ID)
	assert.True(t, f.ct.Contains("a0b0"))
	assert.False(t, f.ct.Dirty())
	assert.Equal(t, []int{0, 0, 1, 3}, f.ct.Usages())
	assert.Equal(t, []int{1, 1, 0, 0}, state.Decrease)
	assert.Equal(t, []int{0, 1}, state.Order)

	_, err = f.ev.PruneTest(f.ct, parse(t, "c0c0"), state)
	assert.Error(t, err)
}

// TestCoverTimer tests that every cover pass is timed
func TestCoverTimer(t *testing.T) {
	f := newFixture(t, "abab")
	f.ev.Length(f.ct)
	f.ev.Compare(f.ct, parse(t, "a0b0"))
	assert.Equal(t, int64(3), f.ev.CoverTimer().Count())
}
