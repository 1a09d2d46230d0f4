package dsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader([]string{"a", "b", "c"})

	assert.Equal(t, 3, header.Width())
	for i, name := range []string{"a", "b", "c"} {
		pos, ok := header.Position(name)
		require.True(t, ok, "Position(%q)", name)
		assert.Equal(t, i, pos)
	}

	_, ok := header.Position("missing")
	assert.False(t, ok)
}

func TestNewHeader_DuplicatesOverwrite(t *testing.T) {
	header := NewHeader([]string{"x", "y", "x"})

	assert.Equal(t, 2, header.Width())
	pos, ok := header.Position("x")
	require.True(t, ok)
	assert.Equal(t, 2, pos, "the later position wins")
}

func TestHeader_Names(t *testing.T) {
	header := NewHeader([]string{"one", "two", "three"})
	assert.ElementsMatch(t, []string{"one", "two", "three"}, header.Names())
}

func TestHeader_ZeroValue(t *testing.T) {
	var header Header

	assert.Equal(t, 0, header.Width())
	assert.Empty(t, header.Names())
	_, ok := header.Position("anything")
	assert.False(t, ok)
}

func TestNewHeader_Empty(t *testing.T) {
	header := NewHeader(nil)
	assert.Equal(t, 0, header.Width())
	assert.Empty(t, header.Names())
}
