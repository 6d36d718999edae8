package search

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// searchMetrics holds the counters of one searcher in its own set
type searchMetrics struct {
	set        *metrics.Set
	rounds     *metrics.Counter
	tested     *metrics.Counter
	accepted   *metrics.Counter
	pruned     *metrics.Counter
	variations *metrics.Counter
	lengths    *metrics.Histogram
}

func newSearchMetrics() *searchMetrics {
	set := metrics.NewSet()
	return &searchMetrics{
		set:        set,
		rounds:     set.NewCounter("ditto_rounds_total"),
		tested:     set.NewCounter("ditto_candidates_tested_total"),
		accepted:   set.NewCounter("ditto_candidates_accepted_total"),
		pruned:     set.NewCounter("ditto_patterns_pruned_total"),
		variations: set.NewCounter("ditto_variations_tested_total"),
		lengths:    set.NewHistogram("ditto_accepted_length"),
	}
}

// WriteMetrics writes the counters of the search in Prometheus text format
func (s *Searcher) WriteMetrics(w io.Writer) {
	s.metrics.set.WritePrometheus(w)
}
