// Package layout drives the grid packer over mm-domain parts: it
// discretizes parts onto a cell grid, runs the packer under a caller
// context, and maps the cell placements back to sheet coordinates.
package layout

import (
	"context"
	"fmt"
	"math"

	"github.com/piwi3910/GridCut/internal/model"
	"github.com/piwi3910/GridCut/pkg/binpack"
)

// Engine runs the 2D packing algorithm with a fixed configuration.
type Engine struct {
	Settings model.Settings
}

func New(settings model.Settings) *Engine {
	return &Engine{Settings: settings}
}

// Run packs the parts onto the sheet. Unplaced parts and cancellation are
// expected outcomes reported in the result; errors are reserved for
// invalid settings, invalid part dimensions, or a sheet whose usable area
// is smaller than one grid cell. Cancel the context (deadline or manual)
// to stop a long-running pack early.
func (e *Engine) Run(ctx context.Context, parts []model.Part, sheet model.Sheet) (model.LayoutResult, error) {
	res := e.Settings.Resolution
	if res <= 0 {
		return model.LayoutResult{}, fmt.Errorf("layout: resolution must be positive, got %g", res)
	}

	usableW := sheet.Width - 2*e.Settings.EdgeTrim
	usableH := sheet.Height - 2*e.Settings.EdgeTrim
	gridW := int(usableW / res)
	gridH := int(usableH / res)
	if gridW < 1 || gridH < 1 {
		return model.LayoutResult{}, fmt.Errorf(
			"layout: sheet %.0fx%.0f mm has no usable area at %.1f mm/cell with %.1f mm edge trim",
			sheet.Width, sheet.Height, res, e.Settings.EdgeTrim)
	}

	// Expand quantities into individual placement candidates. The packer
	// does its own size sorting; the item ID is the index into expanded.
	var expanded []model.Part
	for _, p := range parts {
		if p.Width <= 0 || p.Height <= 0 {
			return model.LayoutResult{}, fmt.Errorf("layout: part %q has non-positive dimensions", p.Label)
		}
		for i := 0; i < p.Quantity; i++ {
			cp := p
			cp.Quantity = 1
			expanded = append(expanded, cp)
		}
	}

	items := make([]binpack.Item[int], len(expanded))
	for i, p := range expanded {
		items[i] = binpack.Item[int]{
			W:           e.cells(p.Width),
			H:           e.cells(p.Height),
			AllowRotate: p.Rotatable,
			ID:          i,
		}
	}

	bin := binpack.New[int](gridW, gridH)
	bin.SetMetric(metricFor(e.Settings.HoleMetric))

	cancel := func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}

	fitted := bin.PlaceAll(items, cancel)

	result := model.LayoutResult{
		Sheet:    sheet,
		Fitted:   fitted,
		Canceled: ctx.Err() != nil,
	}

	placed := make([]bool, len(expanded))
	for _, pi := range bin.Solution() {
		part := expanded[pi.ID]
		placed[pi.ID] = true
		result.Placements = append(result.Placements, model.Placement{
			Part:    part,
			X:       e.Settings.EdgeTrim + float64(pi.X0)*res,
			Y:       e.Settings.EdgeTrim + float64(pi.Y0)*res,
			Rotated: pi.Rotated,
		})
	}
	for i, p := range expanded {
		if !placed[i] {
			result.UnplacedParts = append(result.UnplacedParts, p)
		}
	}

	hole := bin.LargestHole()
	result.LargestFree = model.FreeArea{
		Width:  float64(hole.Width) * res,
		Height: float64(hole.Height) * res,
	}
	return result, nil
}

// cells converts a part dimension in mm to grid cells, padding for kerf
// and rounding up so discretization never understates a part.
func (e *Engine) cells(mm float64) int {
	c := int(math.Ceil((mm + e.Settings.KerfWidth) / e.Settings.Resolution))
	if c < 1 {
		c = 1
	}
	return c
}

func metricFor(m model.HoleMetric) binpack.Metric {
	switch m {
	case model.MetricWidth:
		return func(h binpack.Hole) int { return h.Width }
	case model.MetricHeight:
		return func(h binpack.Hole) int { return h.Height }
	default:
		return binpack.Hole.Area
	}
}
