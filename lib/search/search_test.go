package search

import (
	"bytes"
	"testing"

	"github.com/axelroques/ditto/lib/cover"
	"github.com/axelroques/ditto/lib/database"
	"github.com/axelroques/ditto/lib/index"
	"github.com/axelroques/ditto/lib/mdl"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/axelroques/ditto/lib/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every event of a search
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds(kind EventKind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func newSearcher(t *testing.T, maxRounds int, rows ...string) (*Searcher, *table.CodeTable, *recorder) {
	t.Helper()
	d, err := database.FromRows(rows)
	require.NoError(t, err)
	engine := cover.NewEngine(d.Sequences(), d.Steps(), index.New(d))
	st := table.NewSingletonTable(d)
	engine.Cover(st)
	st.Freeze()
	ct := table.NewCodeTable(st)

	rec := &recorder{}
	opts := DefaultOptions()
	opts.MaxRounds = maxRounds
	opts.Observer = rec
	return NewSearcher(st, ct, mdl.NewEvaluator(st, engine, mdl.DefaultMinImprovement), opts), ct, rec
}

func find(ct *table.CodeTable, name string) *pattern.Pattern {
	for _, p := range ct.Patterns() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// requireDecreasing checks that every structural change shortened the total length
func requireDecreasing(t *testing.T, lengths []float64) {
	t.Helper()
	for i := 1; i < len(lengths); i++ {
		require.Less(t, lengths[i], mdl.DefaultMinImprovement*lengths[i-1], "change %d", i)
	}
}

// TestPlantedPattern tests that a repeated pair with one gapped occurrence is found
func TestPlantedPattern(t *testing.T) {
	s, ct, rec := newSearcher(t, 0, "abacbab")
	assert.Same(t, ct, s.Process())

	assert.Equal(t, StateConverged, s.State())
	assert.Equal(t, 2, s.Rounds())
	assert.False(t, s.Capped())
	assert.Equal(t, []string{"a0", "b0", "c0", "a0b0"}, ct.Names())

	ab := find(ct, "a0b0")
	require.NotNil(t, ab)
	assert.Equal(t, 3, ab.Usage())
	assert.Equal(t, 1, ab.Stats.Gap)

	accepted := rec.kinds(CandidateAccepted)
	require.Len(t, accepted, 1)
	assert.Equal(t, "a0b0", accepted[0].Candidate)
	assert.Equal(t, 1, accepted[0].Round)

	// the gap of the third occurrence proposes a0c0b0, which does not pay off
	variations := rec.kinds(VariationTested)
	require.Len(t, variations, 1)
	assert.Equal(t, "a0c0b0", variations[0].Candidate)
	assert.Equal(t, "a0b0", variations[0].Pattern)
	assert.False(t, variations[0].Accepted)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, Converged, last.Kind)
	assert.Equal(t, 2, last.Round)

	lengths := s.Lengths()
	require.Len(t, lengths, 2)
	requireDecreasing(t, lengths)
	assert.InDelta(t, lengths[1], s.Length(), 1e-12)
}

// TestPruneDuringSearch tests that a pattern superseded by a later acceptance is removed
func TestPruneDuringSearch(t *testing.T) {
	s, ct, rec := newSearcher(t, 0, "cadadcbab")
	s.Process()

	pruned := rec.kinds(PatternPruned)
	require.Len(t, pruned, 1)
	assert.Equal(t, "c0a0", pruned[0].Candidate)
	assert.Equal(t, 2, pruned[0].Round)

	assert.Equal(t, []string{"c0", "a0", "d0", "b0", "a0d0"}, ct.Names())
	assert.Equal(t, 3, s.Rounds())
	for i, p := range ct.Patterns() {
		assert.Equal(t, i, p.ID)
	}

	lengths := s.Lengths()
	require.Len(t, lengths, 4)
	requireDecreasing(t, lengths)
}

// TestAcceptedVariation tests a variation accepted right after its parent
func TestAcceptedVariation(t *testing.T) {
	s, ct, rec := newSearcher(t, 0, "bdaddc")
	s.Process()

	accepted := rec.kinds(CandidateAccepted)
	require.Len(t, accepted, 4)
	assert.Equal(t, "b0a0", accepted[0].Candidate)
	assert.Equal(t, "b0d0a0", accepted[1].Candidate)
	assert.Equal(t, "b0a0", accepted[1].Pattern)
	assert.Equal(t, "d0d0", accepted[2].Candidate)
	assert.Equal(t, "d0d0c0", accepted[3].Candidate)

	assert.Equal(t, 4, s.Rounds())
	assert.Equal(t, []string{"b0", "d0", "a0", "c0", "b0a0", "b0d0a0", "d0d0", "d0d0c0"}, ct.Names())
	requireDecreasing(t, s.Lengths())
}

// TestRoundCap tests stopping after a fixed number of rounds
func TestRoundCap(t *testing.T) {
	s, ct, rec := newSearcher(t, 1, "bdaddc")
	s.Process()

	assert.True(t, s.Capped())
	assert.Equal(t, 1, s.Rounds())
	assert.True(t, ct.Contains("b0d0a0"))
	assert.False(t, ct.Contains("d0d0"))

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, RoundCapReached, last.Kind)
}

// TestWriteMetrics tests the Prometheus counters of a finished search
func TestWriteMetrics(t *testing.T) {
	s, _, rec := newSearcher(t, 0, "abacbab")
	s.Process()

	var buf bytes.Buffer
	s.WriteMetrics(&buf)
	out := buf.String()
	assert.Contains(t, out, "ditto_rounds_total 2\n")
	assert.Contains(t, out, "ditto_candidates_accepted_total 1\n")
	assert.Contains(t, out, "ditto_variations_tested_total 1\n")
	assert.Contains(t, out, "ditto_patterns_pruned_total 0\n")
	assert.Contains(t, out, "ditto_accepted_length_bucket")

	tested := len(rec.kinds(CandidateTested))
	assert.Equal(t, 6, tested)
}

// TestDiscoverVariants tests gap tokens found in a cover
func TestDiscoverVariants(t *testing.T) {
	d, err := database.FromRows([]string{"abacbabadb"})
	require.NoError(t, err)
	engine := cover.NewEngine(d.Sequences(), d.Steps(), index.New(d))
	ct := table.NewCodeTable(table.NewSingletonTable(d))
	tokens, _ := pattern.ParseName("a0b0")
	ab := pattern.New(tokens...)
	ct.Add(ab)
	m := engine.Cover(ct)
	require.Equal(t, 4, ab.Usage())

	found := discover(m, ab)
	require.Len(t, found, 2)
	assert.Equal(t, "a0c0b0", found[0].pattern.Name)
	assert.Equal(t, "a0d0b0", found[1].pattern.Name)
	assert.Equal(t, 1, found[0].count)

	merged := merge(found[1:], found)
	require.Len(t, merged, 2)
	assert.Equal(t, "a0d0b0", merged[0].pattern.Name)
	assert.Equal(t, 2, merged[0].count)
	assert.Equal(t, 1, merged[1].count)
}

// TestGapFree tests the detection of occurrences without gaps
func TestGapFree(t *testing.T) {
	tests := []struct {
		name string
		occ  []cover.Placement
		span int
		want bool
	}{
		{"contiguous", []cover.Placement{{Seq: 0, Step: 0}, {Seq: 0, Step: 1}}, 2, true},
		{"gapped", []cover.Placement{{Seq: 0, Step: 0}, {Seq: 0, Step: 2}}, 2, false},
		{"parallel", []cover.Placement{{Seq: 0, Step: 3}, {Seq: 1, Step: 3}}, 1, true},
		{"parallel gapped", []cover.Placement{{Seq: 0, Step: 1}, {Seq: 1, Step: 3}}, 1, false},
		{"width equals span", []cover.Placement{{Seq: 0, Step: 0}, {Seq: 1, Step: 1}, {Seq: 0, Step: 2}, {Seq: 1, Step: 3}}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gapFree(tt.occ, tt.span))
		})
	}
}

// TestNewStats tests the summary of a length history
func TestNewStats(t *testing.T) {
	stats := NewStats([]float64{8, 6, 4, 2})
	assert.Equal(t, 2.0, stats.Min)
	assert.Equal(t, 8.0, stats.Max)
	assert.Equal(t, 5.0, stats.Mean)
	assert.InDelta(t, 2.2360679775, stats.StdDeviation, 1e-9)
	assert.Equal(t, 0.25, stats.MinMaxRatio)

	assert.Equal(t, Stats{}, NewStats(nil))
}

// TestObserverFunc tests adapting a function to an observer
func TestObserverFunc(t *testing.T) {
	var got []EventKind
	var o Observer = ObserverFunc(func(e Event) { got = append(got, e.Kind) })
	o.OnEvent(Event{Kind: RoundStart})
	o.OnEvent(Event{Kind: Converged})
	assert.Equal(t, []EventKind{RoundStart, Converged}, got)

	// the log observer accepts every kind
	for _, k := range []EventKind{RoundStart, CandidateTested, CandidateAccepted, PatternPruned, VariationTested, Converged, RoundCapReached} {
		LogObserver{}.OnEvent(Event{Kind: k, Pattern: "a0b0"})
	}
}
