package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsePalette(t *testing.T) {
	t.Cleanup(func() { UsePalette(Garden) })

	UsePalette(For(true))
	assert.Equal(t, HighContrast.Primary, Primary)
	assert.Equal(t, HighContrast.Border, Border)

	UsePalette(For(false))
	assert.Equal(t, Garden.Primary, Primary)
	assert.Equal(t, Garden.Leaf, Leaf)
}
