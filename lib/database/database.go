package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/axelroques/ditto/lib/pattern"
)

// MaxSequences is the number of sequences a token code can address
const MaxSequences = 256

var (
	ErrEmpty            = errors.New("database: empty database")
	ErrRagged           = errors.New("database: sequences differ in length")
	ErrTooManySequences = fmt.Errorf("database: more than %d sequences", MaxSequences)
	ErrSymbol           = errors.New("database: symbols must be one non-digit ASCII byte")
	ErrShape            = errors.New("database: expected a sequences x time steps matrix")
)

// Database is an immutable N x L matrix of tokens
type Database struct {
	n     int
	l     int
	cells []pattern.Token
}

// Sequences returns the number of sequences (N)
func (d *Database) Sequences() int {
	return d.n
}

// Steps returns the number of time steps of every sequence (L)
func (d *Database) Steps() int {
	return d.l
}

// Size returns the number of cells
func (d *Database) Size() int {
	return d.n * d.l
}

// At returns the token of sequence seq at time step step
func (d *Database) At(seq, step int) pattern.Token {
	return d.cells[seq*d.l+step]
}

// Row returns a copy of the tokens of one sequence
func (d *Database) Row(seq int) []pattern.Token {
	row := make([]pattern.Token, d.l)
	copy(row, d.cells[seq*d.l:(seq+1)*d.l])
	return row
}

// String returns the sequences as rows of symbols
func (d *Database) String() string {
	var sb strings.Builder
	for seq := 0; seq < d.n; seq++ {
		for step := 0; step < d.l; step++ {
			sb.WriteByte(d.At(seq, step).Symbol)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --------------------------------------------------------------------------
// Constructors
// --------------------------------------------------------------------------

// FromRows builds a database from one string per sequence, each byte being one symbol
func FromRows(rows []string) (*Database, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	if len(rows) > MaxSequences {
		return nil, ErrTooManySequences
	}

	l := len(rows[0])
	d := &Database{n: len(rows), l: l, cells: make([]pattern.Token, 0, len(rows)*l)}
	for seq, row := range rows {
		if len(row) != l {
			return nil, fmt.Errorf("%w: sequence %d has %d steps, expected %d", ErrRagged, seq, len(row), l)
		}
		for i := 0; i < len(row); i++ {
			if !validSymbol(row[i]) {
				return nil, fmt.Errorf("%w: sequence %d step %d holds byte 0x%02x", ErrSymbol, seq, i, row[i])
			}
			d.cells = append(d.cells, pattern.Token{Symbol: row[i], Seq: seq})
		}
	}
	return d, nil
}

// FromMatrix builds a database from an N x L matrix of single-symbol strings.
// The matrix must have fewer sequences than time steps.
func FromMatrix(matrix [][]string) (*Database, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmpty
	}
	if len(matrix) >= len(matrix[0]) {
		return nil, fmt.Errorf("%w: got %d x %d", ErrShape, len(matrix), len(matrix[0]))
	}
	rows, err := joinSymbols(matrix)
	if err != nil {
		return nil, err
	}
	return FromRows(rows)
}

// FromColumns builds a database from a column table: every column is one sequence,
// except a column named "t" which holds timestamps and is skipped.
func FromColumns(header []string, columns [][]string) (*Database, error) {
	if len(header) != len(columns) {
		return nil, fmt.Errorf("%w: %d column names for %d columns", ErrShape, len(header), len(columns))
	}
	kept := make([][]string, 0, len(columns))
	for i, name := range header {
		if strings.TrimSpace(name) == "t" {
			continue
		}
		kept = append(kept, columns[i])
	}
	if len(kept) == 0 {
		return nil, ErrEmpty
	}
	rows, err := joinSymbols(kept)
	if err != nil {
		return nil, err
	}
	return FromRows(rows)
}

// validSymbol reports whether b can be a symbol. Digits would make pattern names
// ambiguous, since the sequence index follows the symbol in decimal.
func validSymbol(b byte) bool {
	return b < 0x80 && (b < '0' || b > '9')
}

// joinSymbols turns rows of single-symbol strings into rows of bytes
func joinSymbols(matrix [][]string) ([]string, error) {
	rows := make([]string, len(matrix))
	for seq, cells := range matrix {
		var sb strings.Builder
		for step, cell := range cells {
			if len(cell) != 1 {
				return nil, fmt.Errorf("%w: sequence %d step %d holds %q", ErrSymbol, seq, step, cell)
			}
			sb.WriteString(cell)
		}
		rows[seq] = sb.String()
	}
	return rows, nil
}
