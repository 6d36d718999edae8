package mdl

import (
	"fmt"

	"github.com/axelroques/ditto/lib/cover"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/axelroques/ditto/lib/table"
	"github.com/lni/dragonboat/v4/logger"
	gometrics "github.com/rcrowley/go-metrics"
)

var log = logger.GetLogger("mdl")

// DefaultMinImprovement is the factor the new length must stay below, relative to the base length
const DefaultMinImprovement = 0.99

// Decision is the outcome of one acceptance test
type Decision struct {
	Accepted bool
	Base     float64 // total length before the change
	New      float64 // total length after the change
}

// Evaluator runs cover passes and acceptance tests against one singleton table.
// It caches the length of the code table while the table is not dirty.
type Evaluator struct {
	st             *table.SingletonTable
	engine         *cover.Engine
	minImprovement float64
	timer          gometrics.Timer

	base      Length
	baseStats []pattern.Stats
}

// NewEvaluator creates an evaluator. A minImprovement outside (0, 1] falls back to DefaultMinImprovement.
func NewEvaluator(st *table.SingletonTable, engine *cover.Engine, minImprovement float64) *Evaluator {
	if minImprovement <= 0 || minImprovement > 1 {
		minImprovement = DefaultMinImprovement
	}
	return &Evaluator{
		st:             st,
		engine:         engine,
		minImprovement: minImprovement,
		timer:          gometrics.NewTimer(),
		base:           Infinite,
	}
}

// CoverTimer returns the timer recording the duration of every cover pass
func (e *Evaluator) CoverTimer() gometrics.Timer {
	return e.timer
}

// Cover runs one timed cover pass over ct
func (e *Evaluator) Cover(ct *table.CodeTable) *cover.Matrix {
	var m *cover.Matrix
	e.timer.Time(func() {
		m = e.engine.Cover(ct)
	})
	return m
}

// Length covers ct and returns its length
func (e *Evaluator) Length(ct *table.CodeTable) Length {
	return Measure(e.st, ct, e.Cover(ct))
}

// BaseLength returns the cached length of the table as it was before the most recent test
func (e *Evaluator) BaseLength() Length {
	return e.base
}

// BaseUsage returns the usage of every pattern as it was before the most recent test, indexed by id
func (e *Evaluator) BaseUsage() []int {
	usage := make([]int, len(e.baseStats))
	for i, s := range e.baseStats {
		usage[i] = s.Usage
	}
	return usage
}

// refresh recomputes the base length if the table changed since it was cached
func (e *Evaluator) refresh(ct *table.CodeTable) {
	if !ct.Dirty() {
		return
	}
	e.base = e.Length(ct)
	e.baseStats = ct.Stats()
	ct.MarkClean()
	log.Debugf("base length of %d patterns is %.4f", ct.Len(), e.base.Total())
}

// accepts reports whether a length of next is a sufficient improvement over the base
func (e *Evaluator) accepts(next Length) bool {
	return next.Total() < e.minImprovement*e.base.Total()
}

// restore undoes the statistics of a rejected test and keeps the cached base length
func (e *Evaluator) restore(ct *table.CodeTable) {
	ct.SetStats(e.baseStats)
	ct.MarkClean()
}

// Compare adds candidate to ct and keeps it if the total length improves enough.
// On acceptance ct is left dirty with the candidate appended, on rejection ct is
// restored and marked clean so the next test reuses the cached base length.
func (e *Evaluator) Compare(ct *table.CodeTable, candidate *pattern.Pattern) Decision {
	e.refresh(ct)

	ct.Add(candidate)
	next := e.Length(ct)
	d := Decision{Base: e.base.Total(), New: next.Total()}

	if e.accepts(next) {
		d.Accepted = true
		ct.MarkDirty()
		log.Debugf("accepted %s: %.4f -> %.4f", candidate.Name, d.Base, d.New)
		return d
	}

	if _, err := ct.Remove(candidate); err != nil {
		// the candidate was appended above, so it is always present
		panic(err)
	}
	e.restore(ct)
	return d
}

// --------------------------------------------------------------------------
// Pruning
// --------------------------------------------------------------------------

// PruneState is the bookkeeping of one pruning pass
type PruneState struct {
	Decrease []int // usage decrease of every pattern, indexed by id
	Order    []int // pattern ids in pruning order
}

// compact drops the entry of the removed id and shifts every id above it down by one
func (s *PruneState) compact(id int) {
	if id >= 0 && id < len(s.Decrease) {
		s.Decrease = append(s.Decrease[:id], s.Decrease[id+1:]...)
	}
	for i, o := range s.Order {
		if o > id {
			s.Order[i] = o - 1
		}
	}
}

// PruneTest removes p from ct and keeps the removal if the total length improves enough.
// On acceptance state is compacted to the new ids, on rejection p is restored at its old id.
func (e *Evaluator) PruneTest(ct *table.CodeTable, p *pattern.Pattern, state *PruneState) (Decision, error) {
	e.refresh(ct)

	at, err := ct.Remove(p)
	if err != nil {
		return Decision{}, fmt.Errorf("prune %s: %w", p.Name, err)
	}
	next := e.Length(ct)
	d := Decision{Base: e.base.Total(), New: next.Total()}

	if e.accepts(next) {
		d.Accepted = true
		ct.MarkDirty()
		if state != nil {
			state.compact(at)
		}
		log.Debugf("pruned %s: %.4f -> %.4f", p.Name, d.Base, d.New)
		return d, nil
	}

	ct.Restore(p, at)
	e.restore(ct)
	return d, nil
}
