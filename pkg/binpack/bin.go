// Package binpack packs rectangular items into a single fixed-size bin on
// a discrete grid, using a first-fit-decreasing heuristic with a best-fit
// position score and a three-pass rotation fallback. It does not produce
// optimal solutions (2D bin packing is NP-hard); it aims for fast,
// deterministic, near-optimal layouts.
//
// Typical usage:
//
//	bin := binpack.New[string](10, 10)
//	fit := bin.PlaceAll([]binpack.Item[string]{
//		{W: 10, H: 3, AllowRotate: true, ID: "shelf"},
//		{W: 1, H: 10, AllowRotate: true, ID: "strip"},
//	}, func() bool { return false })
//	for _, p := range bin.Solution() {
//		fmt.Println(p.ID, p.X0, p.Y0, p.X1, p.Y1, p.Rotated)
//	}
//	_ = fit
package binpack

import (
	"math"
	"sort"
)

// strategy selects which orientations a packing pass considers.
type strategy int

const (
	// doNotRotate evaluates every item only in its original orientation.
	doNotRotate strategy = iota
	// rotate evaluates rotatable items only rotated, others unrotated.
	rotate
	// rotateIfSuitable evaluates both orientations and keeps the better.
	rotateIfSuitable
)

// Bin is a fixed-size container that items are packed into. The zero value
// is not usable; create bins with New. A Bin is owned by a single caller
// and is not safe for concurrent use.
type Bin[ID comparable] struct {
	grid        *grid
	items       []PlacedItem[ID]
	largestHole Hole
	metric      Metric
}

// New creates an empty bin of width x height cells. It panics if either
// dimension is smaller than 1.
func New[ID comparable](width, height int) *Bin[ID] {
	return &Bin[ID]{
		grid:        newGrid(width, height),
		largestHole: Hole{Width: width, Height: height},
		metric:      Hole.Area,
	}
}

// Width returns the bin width passed to New.
func (b *Bin[ID]) Width() int {
	return b.grid.width
}

// Height returns the bin height passed to New.
func (b *Bin[ID]) Height() int {
	return b.grid.height
}

// Solution returns the placed items in placement order. When some items
// did not fit, the slice is shorter than the input. The slice is owned by
// the bin; callers must not modify it.
func (b *Bin[ID]) Solution() []PlacedItem[ID] {
	return b.items
}

// TakeSolution returns the placed items and detaches them from the bin,
// which must not be used afterwards.
func (b *Bin[ID]) TakeSolution() []PlacedItem[ID] {
	items := b.items
	b.items = nil
	return items
}

// SetMetric replaces the hole-scoring function used by LargestHole.
// The default is Hole.Area. SetMetric must be called before PlaceAll to
// have any effect, since the hole is computed during PlaceAll.
func (b *Bin[ID]) SetMetric(metric Metric) {
	b.metric = metric
}

// LargestHole returns the largest free rectangle found during the most
// recent PlaceAll call, successful or not. Before PlaceAll it reports the
// whole bin.
func (b *Bin[ID]) LargestHole() Hole {
	return b.largestHole
}

// PlaceAll packs every item and returns true only if all of them were
// placed. Items are sorted by their larger dimension, descending (stable,
// so equal-size items keep their input order), then packed in up to three
// passes: unrotated, all-rotated, and per-item best orientation. A pass
// that places everything ends the call; each retry pass starts from an
// empty grid.
//
// cancel is polled once per scanned row, after each item, and before each
// rotated pass. Once it returns true, PlaceAll stops and returns false,
// leaving the grid and solution in whatever partial state the aborted pass
// reached. PlaceAll is meant to be called once per bin; calling it again
// without a fresh bin would pack on top of the previous solution.
func (b *Bin[ID]) PlaceAll(items []Item[ID], cancel func() bool) bool {
	sorted := make([]Item[ID], len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].size() > sorted[j].size()
	})

	anyRotatable := false
	for _, it := range sorted {
		if it.AllowRotate {
			anyRotatable = true
			break
		}
	}

	if b.placePass(sorted, doNotRotate, cancel) {
		b.largestHole = b.calculateLargestHole()
		return true
	}
	b.largestHole = b.calculateLargestHole()
	if !anyRotatable {
		// No rotation pass can change the outcome.
		return false
	}
	if cancel() {
		return false
	}

	b.reset()
	if b.placePass(sorted, rotate, cancel) {
		b.largestHole = b.calculateLargestHole()
		return true
	}
	if h := b.calculateLargestHole(); b.metric(h) > b.metric(b.largestHole) {
		b.largestHole = h
	}
	if cancel() {
		return false
	}

	b.reset()
	placed := b.placePass(sorted, rotateIfSuitable, cancel)
	if h := b.calculateLargestHole(); b.metric(h) > b.metric(b.largestHole) {
		b.largestHole = h
	}
	return placed
}

// reset clears the grid and solution between rotation passes. Earlier
// passes are discarded wholesale: a different rotation policy can change
// which of the earlier placements were worth making.
func (b *Bin[ID]) reset() {
	b.items = b.items[:0]
	b.grid.clear()
}

func (b *Bin[ID]) placePass(items []Item[ID], strat strategy, cancel func() bool) bool {
	allFit := true
	for i := range items {
		if !b.addToBestFit(&items[i], strat, cancel) {
			allFit = false
		}
		if cancel() {
			return false
		}
	}
	return allFit
}

// addToBestFit scans every anchor position for the item, keeps the
// lowest-scoring feasible placement and commits it. Returns false when
// nothing fits or the scan was canceled.
func (b *Bin[ID]) addToBestFit(item *Item[ID], strat strategy, cancel func() bool) bool {
	if item.W <= 0 || item.H <= 0 {
		panic("binpack: item dimensions must both be > 0")
	}
	g := b.grid
	if item.W > g.width && item.H > g.height {
		// Rotation only swaps W and H, so this can never fit.
		return false
	}

	smallest := item.W
	if item.H < smallest {
		smallest = item.H
	}

	bestScore := math.MaxInt
	var bestX, bestY int
	var bestRotated, found bool

	for y := 0; y+smallest <= g.height; y++ {
		hadBusy := false
		if cancel() {
			return false
		}
		for x := 0; x+smallest <= g.width; x++ {
			if g.get(x, y) {
				hadBusy = true
			}
			if strat == doNotRotate || strat == rotateIfSuitable {
				if score, ok := b.evaluateFit(x, y, item.W, item.H); ok && score < bestScore {
					bestScore = score
					bestX, bestY, bestRotated = x, y, false
					found = true
				}
			}
			if item.AllowRotate && (strat == rotate || strat == rotateIfSuitable) {
				if score, ok := b.evaluateFit(x, y, item.H, item.W); ok && score < bestScore {
					bestScore = score
					bestX, bestY, bestRotated = x, y, true
					found = true
				}
			}
		}
		// A fully empty row cannot beat a candidate already found next to
		// occupied cells, so stop scanning further down.
		if !hadBusy && found {
			break
		}
	}

	if !found {
		return false
	}
	b.place(bestX, bestY, item, bestRotated)
	return true
}

// evaluateFit scores placing a w x h rectangle with its top-left cell at
// (x0, y0). It returns ok=false when the rectangle leaves the grid or
// overlaps an occupied cell. The score counts empty cells adjacent to the
// rectangle boundary: lower means the placement hugs more occupied cells
// or bin walls.
func (b *Bin[ID]) evaluateFit(x0, y0, w, h int) (score int, ok bool) {
	g := b.grid
	if x0+w > g.width || y0+h > g.height {
		return 0, false
	}
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if g.get(x, y) {
				return 0, false
			}
		}
	}

	points := 0
	for y := y0; y < y0+h; y++ {
		if x0 > 0 && !g.get(x0-1, y) {
			points++
		}
		if x0+w < g.width && !g.get(x0+w, y) {
			points++
		}
	}
	for x := x0; x < x0+w; x++ {
		if y0 > 0 && !g.get(x, y0-1) {
			points++
		}
		if y0+h < g.height && !g.get(x, y0+h) {
			points++
		}
	}
	return points, true
}

// place stamps the item into the grid and appends it to the solution.
func (b *Bin[ID]) place(x0, y0 int, item *Item[ID], rotated bool) {
	w, h := item.W, item.H
	if rotated {
		w, h = h, w
	}
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			b.grid.set(x, y, true)
		}
	}
	b.items = append(b.items, PlacedItem[ID]{
		X0:      x0,
		Y0:      y0,
		X1:      x0 + w,
		Y1:      y0 + h,
		Rotated: rotated,
		ID:      item.ID,
	})
}
