package search

import "github.com/axelroques/ditto/lib/candidates"

// Options configures a Searcher
type Options struct {
	MaxRounds        int      // Cap on Generating rounds (0 = unlimited)
	MaxCandidateSize int      // Largest candidate and variant size in tokens (0 = default)
	Observer         Observer // Receives every search event (nil = LogObserver)
}

// DefaultOptions returns the default search options
func DefaultOptions() *Options {
	return &Options{
		MaxRounds:        0,
		MaxCandidateSize: candidates.DefaultMaxSize,
		Observer:         LogObserver{},
	}
}

// normalize fills unset fields with their defaults
func (o *Options) normalize() {
	if o.MaxRounds < 0 {
		o.MaxRounds = 0
	}
	if o.MaxCandidateSize <= 0 {
		o.MaxCandidateSize = candidates.DefaultMaxSize
	}
	if o.Observer == nil {
		o.Observer = LogObserver{}
	}
}
