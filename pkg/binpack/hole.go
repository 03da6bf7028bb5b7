package binpack

import "math"

// calculateLargestHole finds the largest free rectangle remaining in the
// grid under the configured metric. It runs a chessboard distance
// transform seeded from occupied cells and from outside the grid, seeds a
// 1x1 rectangle at every maximum-distance cell, and greedily grows each
// seed towards unobstructed strips, preferring the axis the metric scores
// higher. The result is an approximation: a different growth order from
// the same seeds could reach a larger rectangle.
func (b *Bin[ID]) calculateLargestHole() Hole {
	g := b.grid
	const unset = math.MaxInt

	dist := make([]int, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.get(x, y) {
				dist[y*g.width+x] = 0
			} else {
				dist[y*g.width+x] = unset
			}
		}
	}

	// Out-of-grid neighbors count as occupied, so free cells at the rim
	// pick up distance 1 on the first wave.
	at := func(x, y int) int {
		if x < 0 || y < 0 || x >= g.width || y >= g.height {
			return 0
		}
		return dist[y*g.width+x]
	}

	d := 0
	for {
		progress := false
		next := d + 1
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if dist[y*g.width+x] != unset {
					continue
				}
			neighbors:
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if at(x+dx, y+dy) == d {
							dist[y*g.width+x] = next
							progress = true
							break neighbors
						}
					}
				}
			}
		}
		if !progress {
			break
		}
		d = next
	}

	if d == 0 {
		// Every cell is occupied (or the wavefront never moved).
		return Hole{}
	}

	var seeds []region
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if dist[y*g.width+x] == d {
				seeds = append(seeds, region{x0: x, y0: y, x1: x, y1: y})
			}
		}
	}

	var best Hole
	bestScore := 0
	for _, seed := range seeds {
		r := b.growRegion(seed)
		if score := b.metric(r.hole()); score > bestScore {
			bestScore = score
			best = r.hole()
		}
	}
	return best
}

// growRegion expands a seed rectangle until no side of either axis can
// extend without hitting an occupied cell or the grid boundary. On each
// step the metric decides which axis to try first; within an axis, the
// two sides are probed in a fixed order.
func (b *Bin[ID]) growRegion(r region) region {
	g := b.grid
	for {
		grown := false
		horizFirst := b.metric(r.growRight().hole()) > b.metric(r.growDown().hole())
		for attempt := 0; attempt < 2 && !grown; attempt++ {
			horiz := horizFirst == (attempt == 0)
			if horiz {
				if n, ok := r.leftNeighbors(); ok && !n.obstructed(g) {
					r = r.growLeft()
					grown = true
				} else if n, ok := r.rightNeighbors(g.width); ok && !n.obstructed(g) {
					r = r.growRight()
					grown = true
				}
			} else {
				if n, ok := r.topNeighbors(); ok && !n.obstructed(g) {
					r = r.growUp()
					grown = true
				} else if n, ok := r.bottomNeighbors(g.height); ok && !n.obstructed(g) {
					r = r.growDown()
					grown = true
				}
			}
		}
		if !grown {
			return r
		}
	}
}
