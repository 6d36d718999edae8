package search

// EventKind identifies a step of the search
type EventKind string

const (
	RoundStart        EventKind = "round-start"
	CandidateTested   EventKind = "candidate-tested"
	CandidateAccepted EventKind = "candidate-accepted"
	PatternPruned     EventKind = "pattern-pruned"
	VariationTested   EventKind = "variation-tested"
	Converged         EventKind = "converged"
	RoundCapReached   EventKind = "round-cap-reached"
)

// Event is one step of the search
type Event struct {
	Kind       EventKind
	Round      int
	Candidate  string  // name of the tested, accepted or pruned pattern
	Accepted   bool    // outcome of a test
	BaseLength float64 // total length before the change
	NewLength  float64 // total length after the change
	Pattern    string  // parent pattern of a variation
	Candidates int     // size of the candidate list of a round
}

// Observer receives search events synchronously, in the order they happen
type Observer interface {
	OnEvent(e Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(e Event)

// OnEvent calls f(e)
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}

// LogObserver writes events to the search logger
type LogObserver struct{}

// OnEvent logs e. Tests of single candidates are logged at debug level.
func (LogObserver) OnEvent(e Event) {
	switch e.Kind {
	case RoundStart:
		log.Infof("round %d: %d candidates", e.Round, e.Candidates)
	case CandidateTested, VariationTested:
		log.Debugf("round %d: tested %s (accepted=%t, %.4f -> %.4f)", e.Round, e.Candidate, e.Accepted, e.BaseLength, e.NewLength)
	case CandidateAccepted:
		if e.Pattern != "" {
			log.Infof("round %d: accepted variation %s of %s (%.4f -> %.4f)", e.Round, e.Candidate, e.Pattern, e.BaseLength, e.NewLength)
			return
		}
		log.Infof("round %d: accepted %s (%.4f -> %.4f)", e.Round, e.Candidate, e.BaseLength, e.NewLength)
	case PatternPruned:
		log.Infof("round %d: pruned %s (%.4f -> %.4f)", e.Round, e.Candidate, e.BaseLength, e.NewLength)
	case Converged:
		log.Infof("converged after %d rounds at length %.4f", e.Round, e.NewLength)
	case RoundCapReached:
		log.Warningf("stopped at the round cap of %d, length %.4f", e.Round, e.NewLength)
	}
}
