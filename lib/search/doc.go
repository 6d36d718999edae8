/*
Package search drives the pattern search to a fixed point.

The Searcher is a small state machine:

	Generating -> Testing -> Generating -> ... -> Converged

In Generating a fresh ranked candidate list is built from the code table. In Testing
the candidates are tried in order. The first accepted candidate triggers a pruning
pass and variation discovery, and the searcher returns to Generating. A candidate list
that is exhausted without an acceptance ends the search.

Every step is reported to an Observer. LogObserver writes the events to the search
logger. Counters of the search are kept in a metrics set that can be written in
Prometheus text format with WriteMetrics.

Usage:

	s := search.NewSearcher(st, ct, evaluator, search.DefaultOptions())
	ct = s.Process()
*/
package search
