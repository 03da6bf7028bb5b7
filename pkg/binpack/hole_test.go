package binpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fill marks the rectangle [x0,x1) x [y0,y1) as occupied.
func fill(g *grid, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.set(x, y, true)
		}
	}
}

func TestCalculateLargestHole_EmptyGrid(t *testing.T) {
	bin := New[int](10, 10)
	assert.Equal(t, Hole{Width: 10, Height: 10}, bin.calculateLargestHole())
}

func TestCalculateLargestHole_FullGrid(t *testing.T) {
	bin := New[int](6, 4)
	fill(bin.grid, 0, 0, 6, 4)
	assert.Equal(t, Hole{}, bin.calculateLargestHole())
}

func TestCalculateLargestHole_InteriorPocket(t *testing.T) {
	// Occupy everything except a 4x3 pocket at (2,3).
	bin := New[int](10, 10)
	fill(bin.grid, 0, 0, 10, 10)
	for y := 3; y < 6; y++ {
		for x := 2; x < 6; x++ {
			bin.grid.set(x, y, false)
		}
	}
	assert.Equal(t, Hole{Width: 4, Height: 3}, bin.calculateLargestHole())
}

func TestCalculateLargestHole_BottomStrip(t *testing.T) {
	bin := New[int](10, 10)
	fill(bin.grid, 0, 0, 10, 8)
	assert.Equal(t, Hole{Width: 10, Height: 2}, bin.calculateLargestHole())
}

func TestCalculateLargestHole_WidthMetricPrefersWideRect(t *testing.T) {
	// Two pockets: a tall 2x6 and a wide 5x2. Area favors the tall one,
	// width favors the wide one.
	build := func() *Bin[int] {
		bin := New[int](12, 12)
		fill(bin.grid, 0, 0, 12, 12)
		for y := 2; y < 8; y++ {
			for x := 1; x < 3; x++ {
				bin.grid.set(x, y, false)
			}
		}
		for y := 9; y < 11; y++ {
			for x := 5; x < 10; x++ {
				bin.grid.set(x, y, false)
			}
		}
		return bin
	}

	byArea := build()
	assert.Equal(t, Hole{Width: 2, Height: 6}, byArea.calculateLargestHole())

	byWidth := build()
	byWidth.SetMetric(func(h Hole) int { return h.Width })
	assert.Equal(t, Hole{Width: 5, Height: 2}, byWidth.calculateLargestHole())
}

func TestCalculateLargestHole_SingleFreeCell(t *testing.T) {
	bin := New[int](5, 5)
	fill(bin.grid, 0, 0, 5, 5)
	bin.grid.set(2, 2, false)
	assert.Equal(t, Hole{Width: 1, Height: 1}, bin.calculateLargestHole())
}
