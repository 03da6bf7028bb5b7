// Package widgets contains custom fyne widgets for displaying packed
// sheet layouts.
package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridCut/internal/model"
)

// Part colors — cycle through these for visual distinction.
var partColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// LayoutCanvas renders a visual representation of a packed sheet.
type LayoutCanvas struct {
	widget.BaseWidget
	result    model.LayoutResult
	settings  model.Settings
	maxWidth  float32
	maxHeight float32
}

func NewLayoutCanvas(result model.LayoutResult, settings model.Settings, maxW, maxH float32) *LayoutCanvas {
	lc := &LayoutCanvas{
		result:    result,
		settings:  settings,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	lc.ExtendBaseWidget(lc)
	return lc
}

func (lc *LayoutCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newLayoutCanvasRenderer(lc)
}

type layoutCanvasRenderer struct {
	lc      *LayoutCanvas
	objects []fyne.CanvasObject
}

func newLayoutCanvasRenderer(lc *LayoutCanvas) *layoutCanvasRenderer {
	r := &layoutCanvasRenderer{lc: lc}
	r.rebuild()
	return r
}

func (r *layoutCanvasRenderer) scale() float32 {
	sheetW := float32(r.lc.result.Sheet.Width)
	sheetH := float32(r.lc.result.Sheet.Height)
	scale := r.lc.maxWidth / sheetW
	if s := r.lc.maxHeight / sheetH; s < scale {
		scale = s
	}
	return scale
}

func (r *layoutCanvasRenderer) rebuild() {
	r.objects = nil

	sheet := r.lc.result.Sheet
	scale := r.scale()
	canvasW := float32(sheet.Width) * scale
	canvasH := float32(sheet.Height) * scale

	// Sheet background
	bg := canvas.NewRectangle(color.NRGBA{R: 210, G: 180, B: 140, A: 255}) // wood color
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Sheet border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	r.drawTrimZones(scale)

	// Placed parts
	for i, p := range r.lc.result.Placements {
		col := partColors[i%len(partColors)]
		pw := float32(p.PlacedWidth()) * scale
		ph := float32(p.PlacedHeight()) * scale
		px := float32(p.X) * scale
		py := float32(p.Y) * scale

		partRect := canvas.NewRectangle(col)
		partRect.Resize(fyne.NewSize(pw, ph))
		partRect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, partRect)

		partBorder := canvas.NewRectangle(color.Transparent)
		partBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		partBorder.StrokeWidth = 1
		partBorder.Resize(fyne.NewSize(pw, ph))
		partBorder.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, partBorder)

		// Label (only if big enough)
		if pw > 30 && ph > 16 {
			label := canvas.NewText(
				fmt.Sprintf("%s\n%.0fx%.0f", p.Part.Label, p.Part.Width, p.Part.Height),
				color.Black,
			)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}
}

// drawTrimZones visualizes the unusable edge trim margin.
func (r *layoutCanvasRenderer) drawTrimZones(scale float32) {
	trim := r.lc.settings.EdgeTrim
	if trim <= 0 {
		return
	}

	sheet := r.lc.result.Sheet
	type zone struct{ x, y, w, h float64 }
	zones := []zone{
		{0, 0, sheet.Width, trim},
		{0, sheet.Height - trim, sheet.Width, trim},
		{0, 0, trim, sheet.Height},
		{sheet.Width - trim, 0, trim, sheet.Height},
	}

	for _, z := range zones {
		zoneRect := canvas.NewRectangle(color.NRGBA{R: 255, G: 50, B: 50, A: 80})
		zoneRect.Resize(fyne.NewSize(float32(z.w)*scale, float32(z.h)*scale))
		zoneRect.Move(fyne.NewPos(float32(z.x)*scale, float32(z.y)*scale))
		r.objects = append(r.objects, zoneRect)
	}
}

func (r *layoutCanvasRenderer) Layout(size fyne.Size)        {}
func (r *layoutCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *layoutCanvasRenderer) Destroy()                     {}
func (r *layoutCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *layoutCanvasRenderer) MinSize() fyne.Size {
	scale := r.scale()
	return fyne.NewSize(
		float32(r.lc.result.Sheet.Width)*scale,
		float32(r.lc.result.Sheet.Height)*scale,
	)
}

// RenderLayout creates a scrollable view of a layout result with header,
// canvas, and summary lines.
func RenderLayout(result *model.LayoutResult, settings model.Settings) fyne.CanvasObject {
	if result == nil {
		return widget.NewLabel("No layout yet. Add parts, then run the packer.")
	}

	header := widget.NewLabel(fmt.Sprintf(
		"%s (%.0f × %.0f) — %d parts, %.1f%% efficiency",
		result.Sheet.Label, result.Sheet.Width, result.Sheet.Height,
		len(result.Placements), result.Efficiency(),
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	layoutCanvas := NewLayoutCanvas(*result, settings, 600, 400)

	items := []fyne.CanvasObject{header, layoutCanvas, widget.NewSeparator()}

	if result.Canceled {
		note := widget.NewLabel("Packing was canceled before completion; the layout is partial.")
		note.Importance = widget.WarningImportance
		items = append(items, note)
	}

	if len(result.UnplacedParts) > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d parts could not be placed! Use a larger sheet or a finer grid.",
			len(result.UnplacedParts),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)

		for _, p := range result.UnplacedParts {
			items = append(items, widget.NewLabel(fmt.Sprintf(
				"  %s: %.0f x %.0f mm", p.Label, p.Width, p.Height,
			)))
		}
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Largest free rectangle: %.0f x %.0f mm (%.0f mm²)",
		result.LargestFree.Width, result.LargestFree.Height, result.LargestFree.Area(),
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
