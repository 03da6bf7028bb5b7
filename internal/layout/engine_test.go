package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GridCut/internal/model"
)

func testSettings() model.Settings {
	return model.Settings{
		Resolution: 10.0,
		KerfWidth:  0,
		EdgeTrim:   0,
		HoleMetric: model.MetricArea,
	}
}

func TestRun_SinglePartFits(t *testing.T) {
	e := New(testSettings())
	parts := []model.Part{
		{ID: "p1", Label: "Panel", Width: 400, Height: 300, Quantity: 1, Rotatable: true},
	}
	sheet := model.NewSheet("Test", 1000, 500)

	res, err := e.Run(context.Background(), parts, sheet)
	require.NoError(t, err)

	assert.True(t, res.Fitted)
	assert.False(t, res.Canceled)
	require.Len(t, res.Placements, 1)
	assert.Empty(t, res.UnplacedParts)

	p := res.Placements[0]
	assert.Equal(t, "Panel", p.Part.Label)
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.False(t, p.Rotated)
}

func TestRun_QuantityExpansion(t *testing.T) {
	e := New(testSettings())
	parts := []model.Part{
		{ID: "p1", Label: "Strip", Width: 500, Height: 100, Quantity: 3, Rotatable: false},
	}
	sheet := model.NewSheet("Test", 500, 300)

	res, err := e.Run(context.Background(), parts, sheet)
	require.NoError(t, err)

	assert.True(t, res.Fitted)
	assert.Len(t, res.Placements, 3)
	for _, p := range res.Placements {
		assert.Equal(t, 1, p.Part.Quantity, "expanded copies carry quantity 1")
	}
}

func TestRun_OverflowReportsUnplaced(t *testing.T) {
	e := New(testSettings())
	parts := []model.Part{
		{ID: "big", Label: "Big", Width: 900, Height: 900, Quantity: 2, Rotatable: false},
	}
	sheet := model.NewSheet("Test", 1000, 1000)

	res, err := e.Run(context.Background(), parts, sheet)
	require.NoError(t, err)

	assert.False(t, res.Fitted)
	assert.Len(t, res.Placements, 1)
	require.Len(t, res.UnplacedParts, 1)
	assert.Equal(t, "Big", res.UnplacedParts[0].Label)
}

func TestRun_EdgeTrimOffsetsPlacements(t *testing.T) {
	s := testSettings()
	s.EdgeTrim = 20
	e := New(s)
	parts := []model.Part{
		{ID: "p1", Label: "Panel", Width: 200, Height: 200, Quantity: 1, Rotatable: false},
	}
	sheet := model.NewSheet("Test", 1000, 500)

	res, err := e.Run(context.Background(), parts, sheet)
	require.NoError(t, err)
	require.Len(t, res.Placements, 1)

	assert.Equal(t, 20.0, res.Placements[0].X, "placements start inside the trim margin")
	assert.Equal(t, 20.0, res.Placements[0].Y)
}

func TestRun_KerfPadding(t *testing.T) {
	s := testSettings()
	s.KerfWidth = 5
	e := New(s)
	// 100mm + 5mm kerf = 105mm -> 11 cells of 10mm. Two of them need 22
	// cells, so they overflow a 200mm (20 cell) row and stack instead.
	parts := []model.Part{
		{ID: "a", Label: "A", Width: 100, Height: 100, Quantity: 2, Rotatable: false},
	}
	sheet := model.NewSheet("Test", 200, 400)

	res, err := e.Run(context.Background(), parts, sheet)
	require.NoError(t, err)
	require.Len(t, res.Placements, 2)

	assert.True(t, res.Fitted)
	xs := []float64{res.Placements[0].X, res.Placements[1].X}
	assert.Equal(t, xs[0], xs[1], "kerf padding forces vertical stacking")
	assert.NotEqual(t, res.Placements[0].Y, res.Placements[1].Y)
}

func TestRun_RotationUsedWhenNeeded(t *testing.T) {
	e := New(testSettings())
	// A 500x100 part only fits a 100x500 usable area when rotated.
	parts := []model.Part{
		{ID: "p1", Label: "Rail", Width: 500, Height: 100, Quantity: 1, Rotatable: true},
	}
	sheet := model.NewSheet("Test", 100, 500)

	res, err := e.Run(context.Background(), parts, sheet)
	require.NoError(t, err)

	assert.True(t, res.Fitted)
	require.Len(t, res.Placements, 1)
	assert.True(t, res.Placements[0].Rotated)
	assert.Equal(t, 100.0, res.Placements[0].PlacedWidth())
	assert.Equal(t, 500.0, res.Placements[0].PlacedHeight())
}

func TestRun_LargestFreeInMM(t *testing.T) {
	e := New(testSettings())
	parts := []model.Part{
		{ID: "p1", Label: "Half", Width: 1000, Height: 300, Quantity: 1, Rotatable: false},
	}
	sheet := model.NewSheet("Test", 1000, 500)

	res, err := e.Run(context.Background(), parts, sheet)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, res.LargestFree.Width)
	assert.Equal(t, 200.0, res.LargestFree.Height)
	assert.Equal(t, 200000.0, res.LargestFree.Area())
}

func TestRun_CanceledContext(t *testing.T) {
	e := New(testSettings())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var parts []model.Part
	for i := 0; i < 20; i++ {
		parts = append(parts, model.Part{
			ID: "p", Label: "P", Width: 100, Height: 100, Quantity: 1, Rotatable: true,
		})
	}
	sheet := model.NewSheet("Test", 1000, 1000)

	res, err := e.Run(ctx, parts, sheet)
	require.NoError(t, err)

	assert.True(t, res.Canceled)
	assert.False(t, res.Fitted)
}

func TestRun_InvalidInputs(t *testing.T) {
	sheet := model.NewSheet("Test", 1000, 500)

	t.Run("zero resolution", func(t *testing.T) {
		e := New(model.Settings{Resolution: 0})
		_, err := e.Run(context.Background(), nil, sheet)
		assert.Error(t, err)
	})

	t.Run("negative part dimension", func(t *testing.T) {
		e := New(testSettings())
		parts := []model.Part{{Label: "Bad", Width: -5, Height: 100, Quantity: 1}}
		_, err := e.Run(context.Background(), parts, sheet)
		assert.Error(t, err)
	})

	t.Run("trim consumes the sheet", func(t *testing.T) {
		s := testSettings()
		s.EdgeTrim = 600
		e := New(s)
		_, err := e.Run(context.Background(), nil, sheet)
		assert.Error(t, err)
	})
}

func TestRun_NoOverlappingPlacements(t *testing.T) {
	e := New(testSettings())
	parts := []model.Part{
		{ID: "a", Label: "A", Width: 400, Height: 300, Quantity: 2, Rotatable: true},
		{ID: "b", Label: "B", Width: 600, Height: 200, Quantity: 2, Rotatable: true},
		{ID: "c", Label: "C", Width: 150, Height: 150, Quantity: 4, Rotatable: true},
	}
	sheet := model.NewSheet("Test", 1220, 610)

	res, err := e.Run(context.Background(), parts, sheet)
	require.NoError(t, err)

	for i := 0; i < len(res.Placements); i++ {
		for j := i + 1; j < len(res.Placements); j++ {
			a, b := res.Placements[i], res.Placements[j]
			overlapX := a.X < b.X+b.PlacedWidth() && b.X < a.X+a.PlacedWidth()
			overlapY := a.Y < b.Y+b.PlacedHeight() && b.Y < a.Y+a.PlacedHeight()
			assert.False(t, overlapX && overlapY, "placements %d and %d overlap", i, j)
		}
	}
	for _, p := range res.Placements {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.X+p.PlacedWidth(), sheet.Width)
		assert.LessOrEqual(t, p.Y+p.PlacedHeight(), sheet.Height)
	}
}
