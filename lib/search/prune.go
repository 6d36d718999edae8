package search

import (
	"sort"

	"github.com/axelroques/ditto/lib/mdl"
)

// prune tries to remove every non-singleton whose usage dropped with the most recent acceptance.
// Patterns are tried in order of decreasing usage loss, ties by higher id first.
func (s *Searcher) prune() {
	before := s.ev.BaseUsage()
	state := &mdl.PruneState{Decrease: make([]int, len(before))}
	for id, usage := range before {
		if id >= s.ct.Len() {
			break
		}
		p := s.ct.At(id)
		if decrease := usage - p.Usage(); decrease > 0 && !p.IsSingleton() {
			state.Decrease[id] = decrease
			state.Order = append(state.Order, id)
		}
	}
	if len(state.Order) == 0 {
		return
	}

	sort.SliceStable(state.Order, func(i, j int) bool {
		a, b := state.Order[i], state.Order[j]
		if state.Decrease[a] != state.Decrease[b] {
			return state.Decrease[a] > state.Decrease[b]
		}
		return a > b
	})
	log.Debugf("round %d: %d patterns lost usage", s.round, len(state.Order))

	// ids in state.Order are compacted by every accepted removal
	for i := 0; i < len(state.Order); i++ {
		p := s.ct.At(state.Order[i])
		if p.Usage() == 0 {
			continue
		}
		d, err := s.ev.PruneTest(s.ct, p, state)
		if err != nil {
			log.Errorf("round %d: %v", s.round, err)
			continue
		}
		if d.Accepted {
			s.metrics.pruned.Inc()
			s.lengths = append(s.lengths, d.New)
			s.emit(Event{Kind: PatternPruned, Candidate: p.Name, Accepted: true, BaseLength: d.Base, NewLength: d.New})
		}
	}
}
