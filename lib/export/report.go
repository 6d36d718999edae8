package export

import (
	"math"

	"github.com/axelroques/ditto/lib/ditto"
	"github.com/axelroques/ditto/lib/table"
	"github.com/google/uuid"
)

// Report is the exported result of one run
type Report struct {
	RunID       string      `json:"run_id" yaml:"run_id"`
	Sequences   int         `json:"sequences" yaml:"sequences"`
	Steps       int         `json:"steps" yaml:"steps"`
	Filled      bool        `json:"filled" yaml:"filled"`
	TotalLength float64     `json:"total_length" yaml:"total_length"` // 0 if the cover is not filled
	Patterns    []ditto.Row `json:"patterns" yaml:"patterns"`
	Cover       [][]string  `json:"cover" yaml:"cover"`
}

// NewReport re-covers the database of eng with ct and collects the results under a new run id
func NewReport(eng *ditto.Engine, ct *table.CodeTable) Report {
	m, rows := eng.GetResults(ct)
	r := Report{
		RunID:     uuid.NewString(),
		Sequences: m.Rows(),
		Steps:     m.Cols(),
		Filled:    m.Filled(),
		Patterns:  rows,
		Cover:     m.Labels(),
	}
	if total := eng.Length(ct).Total(); !math.IsInf(total, 0) {
		r.TotalLength = total
	}
	return r
}
