package ditto

import (
	"github.com/axelroques/ditto/lib/cover"
	"github.com/axelroques/ditto/lib/database"
	"github.com/axelroques/ditto/lib/index"
	"github.com/axelroques/ditto/lib/mdl"
	"github.com/axelroques/ditto/lib/search"
	"github.com/axelroques/ditto/lib/table"
	"github.com/lni/dragonboat/v4/logger"
)

var log = logger.GetLogger("ditto")

// Options configures an Engine
type Options struct {
	MinImprovement float64         // Acceptance factor of the evaluator (0 = default)
	Search         *search.Options // Search options (nil = default)
}

// DefaultOptions returns the default engine options
func DefaultOptions() *Options {
	return &Options{
		MinImprovement: mdl.DefaultMinImprovement,
		Search:         search.DefaultOptions(),
	}
}

// Row is one pattern of the results table
type Row struct {
	Name  string `json:"name" yaml:"name"`
	Usage int    `json:"usage" yaml:"usage"`
	Gap   int    `json:"gap" yaml:"gap"`
}

// Engine holds everything needed to mine one database
type Engine struct {
	db        *database.Database
	st        *table.SingletonTable
	ct        *table.CodeTable
	idx       *index.Index
	evaluator *mdl.Evaluator
	searcher  *search.Searcher
	opts      Options
}

// Build covers d with its singletons, freezes the singleton prior and returns the
// singleton table, a fresh code table and the occurrence index
func Build(d *database.Database) (*table.SingletonTable, *table.CodeTable, *index.Index) {
	idx := index.New(d)
	st := table.NewSingletonTable(d)
	engineFor(idx).Cover(st)
	st.Freeze()
	return st, table.NewCodeTable(st), idx
}

// Process runs a search over ct and returns it
func Process(st *table.SingletonTable, ct *table.CodeTable, idx *index.Index, opts *Options) *table.CodeTable {
	_, s := newSearcher(st, ct, idx, opts)
	return s.Process()
}

func engineFor(idx *index.Index) *cover.Engine {
	return cover.NewEngine(idx.Sequences(), idx.Steps(), idx)
}

func newSearcher(st *table.SingletonTable, ct *table.CodeTable, idx *index.Index, opts *Options) (*mdl.Evaluator, *search.Searcher) {
	if opts == nil {
		opts = DefaultOptions()
	}
	ev := mdl.NewEvaluator(st, engineFor(idx), opts.MinImprovement)
	return ev, search.NewSearcher(st, ct, ev, opts.Search)
}

// --------------------------------------------------------------------------
// Engine
// --------------------------------------------------------------------------

// New builds an engine for d. It fails if d has no cells.
func New(d *database.Database, opts *Options) (*Engine, error) {
	if d == nil || d.Size() == 0 {
		return nil, database.ErrEmpty
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	st, ct, idx := Build(d)
	ev, s := newSearcher(st, ct, idx, opts)
	log.Infof("built engine over %d sequences of %d steps with %d singletons", d.Sequences(), d.Steps(), st.Len())
	return &Engine{
		db:        d,
		st:        st,
		ct:        ct,
		idx:       idx,
		evaluator: ev,
		searcher:  s,
		opts:      *opts,
	}, nil
}

// Database returns the mined database
func (e *Engine) Database() *database.Database {
	return e.db
}

// SingletonTable returns the singleton table
func (e *Engine) SingletonTable() *table.SingletonTable {
	return e.st
}

// CodeTable returns the code table owned by the engine
func (e *Engine) CodeTable() *table.CodeTable {
	return e.ct
}

// Searcher returns the search driver, for its length history and metrics
func (e *Engine) Searcher() *search.Searcher {
	return e.searcher
}

// Evaluator returns the length evaluator, for its cover timer
func (e *Engine) Evaluator() *mdl.Evaluator {
	return e.evaluator
}

// Process runs the search to convergence and returns the code table
func (e *Engine) Process() *table.CodeTable {
	return e.searcher.Process()
}

// GetCover re-covers the database with ct. Only the pattern statistics of ct change.
func (e *Engine) GetCover(ct *table.CodeTable) *cover.Matrix {
	return e.evaluator.Cover(ct)
}

// GetResults re-covers the database with ct and returns the cover together with
// one row per pattern, in cover order
func (e *Engine) GetResults(ct *table.CodeTable) (*cover.Matrix, []Row) {
	m := e.GetCover(ct)
	patterns := ct.Patterns()
	order := ct.CoverOrder()
	rows := make([]Row, 0, len(order))
	for _, id := range order {
		p := patterns[id]
		rows = append(rows, Row{Name: p.Name, Usage: p.Usage(), Gap: p.Stats.Gap})
	}
	return m, rows
}

// Length returns the total length of ct
func (e *Engine) Length(ct *table.CodeTable) mdl.Length {
	return e.evaluator.Length(ct)
}
