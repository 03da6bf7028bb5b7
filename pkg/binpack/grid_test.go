package binpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_SetGetClear(t *testing.T) {
	g := newGrid(4, 3)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.False(t, g.get(x, y))
		}
	}

	g.set(2, 1, true)
	assert.True(t, g.get(2, 1))
	assert.False(t, g.get(1, 2), "row-major indexing must not alias (2,1) and (1,2)")

	g.set(2, 1, false)
	assert.False(t, g.get(2, 1))

	g.set(0, 0, true)
	g.set(3, 2, true)
	g.clear()
	assert.False(t, g.get(0, 0))
	assert.False(t, g.get(3, 2))
}

func TestGrid_InvalidDimensionsPanic(t *testing.T) {
	assert.Panics(t, func() { newGrid(0, 1) })
	assert.Panics(t, func() { newGrid(1, -1) })
}
