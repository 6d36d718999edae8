package search

import (
	"github.com/axelroques/ditto/lib/candidates"
	"github.com/axelroques/ditto/lib/mdl"
	"github.com/axelroques/ditto/lib/pattern"
	"github.com/axelroques/ditto/lib/table"
	"github.com/lni/dragonboat/v4/logger"
)

var log = logger.GetLogger("search")

// State is the state of the search driver
type State int

const (
	StateGenerating State = iota
	StateTesting
	StateConverged
)

func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateTesting:
		return "testing"
	case StateConverged:
		return "converged"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Searcher
// --------------------------------------------------------------------------

// Searcher owns a code table for the duration of one search
type Searcher struct {
	st      *table.SingletonTable
	ct      *table.CodeTable
	ev      *mdl.Evaluator
	opts    Options
	metrics *searchMetrics
	state   State
	round   int
	list    []candidates.Candidate
	lengths []float64 // total length after every structural change
	capped  bool
}

// NewSearcher creates a searcher over ct with the specified options (optional)
func NewSearcher(st *table.SingletonTable, ct *table.CodeTable, ev *mdl.Evaluator, opts *Options) *Searcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	o.normalize()
	return &Searcher{
		st:      st,
		ct:      ct,
		ev:      ev,
		opts:    o,
		metrics: newSearchMetrics(),
		state:   StateGenerating,
	}
}

// Process runs the search until no candidate is accepted anymore or the round cap is reached.
// It mutates the code table in place and returns it.
func (s *Searcher) Process() *table.CodeTable {
	for s.state != StateConverged {
		switch s.state {
		case StateGenerating:
			s.generate()
		case StateTesting:
			s.test()
		}
	}
	return s.ct
}

// generate builds a fresh candidate list, or stops at the round cap
func (s *Searcher) generate() {
	if s.opts.MaxRounds > 0 && s.round >= s.opts.MaxRounds {
		s.capped = true
		s.transition(StateConverged)
		s.emit(Event{Kind: RoundCapReached, NewLength: s.Length()})
		return
	}

	// usage of the current table drives the estimates
	if len(s.lengths) == 0 {
		s.lengths = append(s.lengths, s.ev.Length(s.ct).Total())
	} else {
		s.ev.Cover(s.ct)
	}

	s.round++
	s.metrics.rounds.Inc()
	s.list = candidates.Generate(s.st, s.ct, s.opts.MaxCandidateSize)
	s.emit(Event{Kind: RoundStart, Candidates: len(s.list)})
	s.transition(StateTesting)
}

// test walks the candidate list until the first acceptance
func (s *Searcher) test() {
	for _, c := range s.list {
		d := s.ev.Compare(s.ct, c.Pattern)
		s.metrics.tested.Inc()
		s.emit(Event{Kind: CandidateTested, Candidate: c.Pattern.Name, Accepted: d.Accepted, BaseLength: d.Base, NewLength: d.New})
		if !d.Accepted {
			continue
		}

		s.accept(c.Pattern, "", d)
		s.prune()
		s.variations(c.Pattern, nil)
		s.ct.MarkDirty()
		s.transition(StateGenerating)
		return
	}

	s.list = nil
	s.transition(StateConverged)
	s.emit(Event{Kind: Converged, NewLength: s.Length()})
}

// accept records an accepted candidate or variation of parent
func (s *Searcher) accept(p *pattern.Pattern, parent string, d mdl.Decision) {
	s.metrics.accepted.Inc()
	s.metrics.lengths.Update(d.New)
	s.lengths = append(s.lengths, d.New)
	s.emit(Event{Kind: CandidateAccepted, Candidate: p.Name, Pattern: parent, Accepted: true, BaseLength: d.Base, NewLength: d.New})
}

func (s *Searcher) transition(next State) {
	log.Infof("round %d: %s -> %s", s.round, s.state, next)
	s.state = next
}

func (s *Searcher) emit(e Event) {
	e.Round = s.round
	s.opts.Observer.OnEvent(e)
}

// --------------------------------------------------------------------------
// Results
// --------------------------------------------------------------------------

// State returns the current state of the driver
func (s *Searcher) State() State {
	return s.state
}

// Rounds returns the number of Generating rounds run so far
func (s *Searcher) Rounds() int {
	return s.round
}

// Capped reports whether the search stopped at the round cap
func (s *Searcher) Capped() bool {
	return s.capped
}

// Lengths returns the initial total length followed by the length after every acceptance
func (s *Searcher) Lengths() []float64 {
	out := make([]float64, len(s.lengths))
	copy(out, s.lengths)
	return out
}

// LengthStats summarises the length history of the search
func (s *Searcher) LengthStats() Stats {
	return NewStats(s.lengths)
}

// Length returns the most recent recorded total length
func (s *Searcher) Length() float64 {
	if len(s.lengths) == 0 {
		return s.ev.Length(s.ct).Total()
	}
	return s.lengths[len(s.lengths)-1]
}
