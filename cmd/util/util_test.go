package util

import (
	"strings"
	"testing"

	"github.com/axelroques/ditto/lib/common"
	"github.com/axelroques/ditto/lib/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrapString tests wrapping help texts
func TestWrapString(t *testing.T) {
	text := "Candidates with more tokens than this are never tested by the search"
	wrapped := WrapString(text)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(wrapped))
	assert.Equal(t, "", WrapString("   "))
}

// TestReadDatabase tests both input formats
func TestReadDatabase(t *testing.T) {
	rows, err := ReadDatabase(strings.NewReader("abab\ncdcd\n"), "rows")
	require.NoError(t, err)
	cols, err := ReadDatabase(strings.NewReader("t,x,y\n0,a,c\n1,b,d\n2,a,c\n3,b,d\n"), "csv")
	require.NoError(t, err)
	assert.Equal(t, rows.String(), cols.String())

	_, err = ReadDatabase(strings.NewReader(""), "rows")
	assert.ErrorIs(t, err, database.ErrEmpty)
	_, err = ReadDatabase(strings.NewReader("ab"), "parquet")
	assert.Error(t, err)
}

// TestGetSerializer tests resolving the configured serializer
func TestGetSerializer(t *testing.T) {
	conf := common.DefaultConfig()
	for _, name := range []string{"json", "yaml", "gob", "binary"} {
		conf.Serializer = name
		s, err := GetSerializer(&conf)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
}
