package dsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	records, err := ReadAll(strings.NewReader("a,b\n\"c,d\",e\n"))

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c,d", "e"}}, records)
}

func TestReadAll_EmptySource(t *testing.T) {
	records, err := ReadAll(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadAll_StopsAtFirstError(t *testing.T) {
	_, err := ReadAll(strings.NewReader("ok,row\nbad\"row\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBareQuote)
}

func TestReadAllWithOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Comma = '|'

	records, err := ReadAllWithOptions(strings.NewReader("a|b\nc|d"), opts)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, records)
}

func TestReadAllWithOptions_InvalidOptions(t *testing.T) {
	_, err := ReadAllWithOptions(strings.NewReader("a,b"), Options{})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("a,b,c\n\"quoted,field\",2\n"))
	assert.ErrorIs(t, Validate(`test,invalid"value`), ErrBareQuote)
}
