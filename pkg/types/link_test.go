package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLinks(t *testing.T) {
	links := DefaultLinks()
	require.Len(t, links, 3)
	assert.Equal(t, []string{"1", "2", "3"}, links.IDs())
	assert.Equal(t, "Sam", links[0].Name)
	assert.Equal(t, "https://www.nytimes.com/crosswords", links[1].URL)
	assert.Equal(t, "Puzzmo", links[2].Name)

	t.Run("returns independent copies", func(t *testing.T) {
		a := DefaultLinks()
		a[0].Name = "changed"
		assert.Equal(t, "Sam", DefaultLinks()[0].Name)
	})
}

func TestCollectionClone(t *testing.T) {
	orig := DefaultLinks()
	cp := orig.Clone()
	cp[1].Name = "other"
	assert.Equal(t, "NYT", orig[1].Name)

	var empty Collection
	assert.Nil(t, empty.Clone())
}

func TestCollectionIndexOf(t *testing.T) {
	c := DefaultLinks()
	assert.Equal(t, 0, c.IndexOf("1"))
	assert.Equal(t, 2, c.IndexOf("3"))
	assert.Equal(t, -1, c.IndexOf("missing"))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(fmt.Errorf("decode: %w", ErrParse)))
	assert.True(t, IsValidation(ErrShape))
	assert.True(t, IsValidation(fmt.Errorf("record 2: %w", ErrRecord)))
	assert.False(t, IsValidation(ErrInvalidInput))
	assert.False(t, IsValidation(nil))
}
