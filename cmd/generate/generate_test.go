package generate

import (
	"bytes"
	"testing"

	"github.com/axelroques/ditto/lib/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteFormats tests that both output formats read back into the same database
func TestWriteFormats(t *testing.T) {
	rows := []string{"abacb", "ccbad"}

	var rowsBuf, csvBuf bytes.Buffer
	require.NoError(t, WriteRows(&rowsBuf, rows))
	require.NoError(t, WriteCSV(&csvBuf, rows))
	assert.Equal(t, "abacb\nccbad\n", rowsBuf.String())
	assert.Contains(t, csvBuf.String(), "t,S_0,S_1\n0,a,c\n")

	fromRows, err := database.ReadRows(&rowsBuf)
	require.NoError(t, err)
	fromCSV, err := database.ReadCSV(&csvBuf)
	require.NoError(t, err)
	assert.Equal(t, fromRows.String(), fromCSV.String())
	assert.Equal(t, 2, fromCSV.Sequences())
	assert.Equal(t, 5, fromCSV.Steps())
}
