package database

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadRows reads one sequence per non-empty line
func ReadRows(r io.Reader) (*Database, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("database: reading rows: %w", err)
	}
	return FromRows(rows)
}

// ReadCSV reads a column table with a header row.
// Every column is a sequence, a column named "t" is skipped.
func ReadCSV(r io.Reader) (*Database, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("database: reading csv: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmpty
	}

	header := records[0]
	columns := make([][]string, len(header))
	for _, record := range records[1:] {
		for i, value := range record {
			columns[i] = append(columns[i], strings.TrimSpace(value))
		}
	}
	return FromColumns(header, columns)
}
