package cover

import (
	"sort"
	"strconv"
)

// Empty is the pattern id of an uncovered cell
const Empty = -1

// Cell is one entry of a cover matrix
type Cell struct {
	Pattern    int // id of the covering pattern, Empty if uncovered
	Index      int // position of the placed token within the pattern
	Occurrence int // ordinal of the occurrence among the pattern's occurrences
	Symbol     byte
}

// IsEmpty reports whether no pattern covers the cell
func (c Cell) IsEmpty() bool {
	return c.Pattern == Empty
}

// Placement locates one token of an occurrence in the matrix
type Placement struct {
	Seq   int
	Step  int
	Index int
}

// Matrix is a cover: one cell per database cell
type Matrix struct {
	rows  int
	cols  int
	cells []Cell
}

// NewMatrix creates an uncovered matrix of the given shape
func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range m.cells {
		m.cells[i].Pattern = Empty
	}
	return m
}

// Rows returns the number of sequences
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of time steps
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the cell of sequence seq at time step step
func (m *Matrix) At(seq, step int) Cell {
	return m.cells[seq*m.cols+step]
}

// claimed reports whether the cell is covered
func (m *Matrix) claimed(seq, step int) bool {
	return m.cells[seq*m.cols+step].Pattern != Empty
}

func (m *Matrix) set(seq, step int, c Cell) {
	m.cells[seq*m.cols+step] = c
}

// Unfilled returns the number of uncovered cells
func (m *Matrix) Unfilled() int {
	n := 0
	for _, c := range m.cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// Filled reports whether every cell is covered
func (m *Matrix) Filled() bool {
	for _, c := range m.cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Label returns "<id>_<symbol>" for a covered cell and "" otherwise
func (m *Matrix) Label(seq, step int) string {
	c := m.At(seq, step)
	if c.IsEmpty() {
		return ""
	}
	return strconv.Itoa(c.Pattern) + "_" + string(c.Symbol)
}

// Labels returns the labels of all cells, row by row
func (m *Matrix) Labels() [][]string {
	labels := make([][]string, m.rows)
	for seq := range labels {
		labels[seq] = make([]string, m.cols)
		for step := range labels[seq] {
			labels[seq][step] = m.Label(seq, step)
		}
	}
	return labels
}

// Occurrences groups the cells covered by pattern id into its physical occurrences.
// Occurrences are ordered by ordinal, placements by their index in the pattern.
func (m *Matrix) Occurrences(id int) [][]Placement {
	byOrdinal := make(map[int][]Placement)
	for seq := 0; seq < m.rows; seq++ {
		for step := 0; step < m.cols; step++ {
			c := m.At(seq, step)
			if c.Pattern != id {
				continue
			}
			byOrdinal[c.Occurrence] = append(byOrdinal[c.Occurrence], Placement{Seq: seq, Step: step, Index: c.Index})
		}
	}

	ordinals := make([]int, 0, len(byOrdinal))
	for o := range byOrdinal {
		ordinals = append(ordinals, o)
	}
	sort.Ints(ordinals)

	occurrences := make([][]Placement, 0, len(ordinals))
	for _, o := range ordinals {
		placements := byOrdinal[o]
		sort.Slice(placements, func(i, j int) bool { return placements[i].Index < placements[j].Index })
		occurrences = append(occurrences, placements)
	}
	return occurrences
}
