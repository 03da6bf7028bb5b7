package model

import "github.com/google/uuid"

// Part represents a required piece to be cut, in mm.
type Part struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Width     float64 `json:"width"`  // mm
	Height    float64 `json:"height"` // mm
	Quantity  int     `json:"quantity"`
	Rotatable bool    `json:"rotatable"` // part may be rotated 90 degrees
}

func NewPart(label string, w, h float64, qty int) Part {
	return Part{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Width:     w,
		Height:    h,
		Quantity:  qty,
		Rotatable: true,
	}
}

// Sheet represents the stock sheet parts are packed onto.
type Sheet struct {
	Label  string  `json:"label"`
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

func NewSheet(label string, w, h float64) Sheet {
	return Sheet{Label: label, Width: w, Height: h}
}

// Placement represents a single part placed on the sheet.
type Placement struct {
	Part    Part    `json:"part"`
	X       float64 `json:"x"`       // mm from left edge
	Y       float64 `json:"y"`       // mm from top edge
	Rotated bool    `json:"rotated"` // part was rotated 90 degrees
}

// PlacedWidth returns the effective width considering rotation.
func (p Placement) PlacedWidth() float64 {
	if p.Rotated {
		return p.Part.Height
	}
	return p.Part.Width
}

// PlacedHeight returns the effective height considering rotation.
func (p Placement) PlacedHeight() float64 {
	if p.Rotated {
		return p.Part.Width
	}
	return p.Part.Height
}

// FreeArea describes the largest contiguous unused rectangle on the sheet
// after packing. Size only; the packer does not report its position.
type FreeArea struct {
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// Area returns the free area in mm².
func (f FreeArea) Area() float64 {
	return f.Width * f.Height
}

// HoleMetric names the measure used to rank free rectangles.
type HoleMetric string

const (
	MetricArea   HoleMetric = "area"
	MetricWidth  HoleMetric = "width"
	MetricHeight HoleMetric = "height"
)

// Settings holds layout engine configuration.
type Settings struct {
	Resolution float64    `json:"resolution"`  // mm per grid cell
	KerfWidth  float64    `json:"kerf_width"`  // blade/bit width in mm, padded around each part
	EdgeTrim   float64    `json:"edge_trim"`   // unusable margin around the sheet in mm
	HoleMetric HoleMetric `json:"hole_metric"` // how free rectangles are ranked
}

func DefaultSettings() Settings {
	return Settings{
		Resolution: 10.0,
		KerfWidth:  3.2,
		EdgeTrim:   10.0,
		HoleMetric: MetricArea,
	}
}

// LayoutResult holds the outcome of one packing run.
type LayoutResult struct {
	Sheet         Sheet       `json:"sheet"`
	Placements    []Placement `json:"placements"`
	UnplacedParts []Part      `json:"unplaced_parts,omitempty"`
	LargestFree   FreeArea    `json:"largest_free"`
	Fitted        bool        `json:"fitted"`             // every part was placed
	Canceled      bool        `json:"canceled,omitempty"` // run stopped early on the caller's deadline
}

// UsedArea returns the total area covered by placed parts in mm².
func (r LayoutResult) UsedArea() float64 {
	var total float64
	for _, p := range r.Placements {
		total += p.PlacedWidth() * p.PlacedHeight()
	}
	return total
}

// TotalArea returns the sheet area in mm².
func (r LayoutResult) TotalArea() float64 {
	return r.Sheet.Width * r.Sheet.Height
}

// Efficiency returns the material usage percentage.
func (r LayoutResult) Efficiency() float64 {
	ta := r.TotalArea()
	if ta == 0 {
		return 0
	}
	return (r.UsedArea() / ta) * 100.0
}

// Project ties everything together for save/load.
type Project struct {
	Name     string        `json:"name"`
	Parts    []Part        `json:"parts"`
	Sheet    Sheet         `json:"sheet"`
	Settings Settings      `json:"settings"`
	Result   *LayoutResult `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Parts:    []Part{},
		Sheet:    NewSheet("Plywood 2440x1220", 2440, 1220),
		Settings: DefaultSettings(),
	}
}
