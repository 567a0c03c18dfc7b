package viewer

import (
	"image/color"
	"math"

	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/geometry"
)

// Measurement is the overlay state set by the interaction layer.
// All points are in document coordinates, usually snapped vertices.
type Measurement struct {
	Start *geometry.Point
	End   *geometry.Point
	Hover *geometry.Point
}

// RenderOptions controls a single draw call
type RenderOptions struct {
	LineColor       string // 3- or 6-digit hex
	BackgroundColor string // 3- or 6-digit hex
	Padding         float64
	ShowGrid        bool
	GridStep        float64 // base grid step in document units
	Viewport        Viewport
	Measurement     *Measurement
}

// DefaultRenderOptions returns the standard dark theme
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		LineColor:       "#e8e8e8",
		BackgroundColor: "#1e1e1e",
		Padding:         24,
		ShowGrid:        true,
		GridStep:        10,
		Viewport:        NewViewport(),
	}
}

const (
	entityStrokeWidth  = 1.5
	handleRadius       = 4.0
	hoverRingRadius    = 8.0
	arcSegmentAngleRad = math.Pi / 18 // one segment per 10 degrees
	minArcSegments     = 12
)

var (
	fallbackLineColor       = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
	fallbackBackgroundColor = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	measurementColor        = color.RGBA{R: 0xff, G: 0x8c, B: 0x1a, A: 0xff}
	measurementHoverFill    = color.RGBA{R: 0xff, G: 0x8c, B: 0x1a, A: 0x50}
)

// Render draws the whole document onto the surface: background, the
// optional grid, every entity and the measurement overlay. The call is
// idempotent; each invocation clears and fully repaints the surface.
func Render(surface Surface, doc *dxf.Document, opts RenderOptions) {
	surface.Clear(parseColorOr(opts.BackgroundColor, fallbackBackgroundColor))

	bounds := doc.BoundingBox()
	if bounds.IsEmpty() {
		return
	}

	width, height := surface.Size()
	transform := NewTransform(bounds, width, height, opts.Padding, opts.Viewport)

	if opts.ShowGrid {
		drawGrid(surface, transform, opts.GridStep)
	}

	lineColor := parseColorOr(opts.LineColor, fallbackLineColor)
	for _, entity := range doc.Entities {
		strokeEntity(surface, transform, entity, lineColor)
	}

	if opts.Measurement != nil {
		drawMeasurement(surface, transform, opts.Measurement)
	}
}

// strokeEntity outlines a single entity through the transform
func strokeEntity(surface Surface, transform Transform, entity dxf.Entity, col color.Color) {
	surface.Begin()

	switch e := entity.(type) {
	case dxf.Line:
		moveTo(surface, transform, e.Start)
		lineTo(surface, transform, e.End)

	case dxf.Polyline:
		moveTo(surface, transform, e.Points[0])
		for _, point := range e.Points[1:] {
			lineTo(surface, transform, point)
		}
		if e.Closed {
			surface.Close()
		}

	case dxf.Circle:
		cx, cy := transform.ToScreen(e.Center)
		surface.Circle(cx, cy, e.Radius*transform.Scale())

	case dxf.Arc:
		strokeArc(surface, transform, e)
	}

	surface.Stroke(col, entityStrokeWidth, nil)
}

// strokeArc tessellates an arc into straight segments, sweeping
// counter-clockwise from the start angle to the end angle
func strokeArc(surface Surface, transform Transform, arc dxf.Arc) {
	sweep := arc.Sweep()
	sweepRad := sweep * math.Pi / 180.0

	segments := int(math.Ceil(sweepRad / arcSegmentAngleRad))
	if segments < minArcSegments {
		segments = minArcSegments
	}

	moveTo(surface, transform, arc.StartPoint())
	for i := 1; i <= segments; i++ {
		angle := arc.StartAngle + sweep*float64(i)/float64(segments)
		lineTo(surface, transform, arc.PointAt(angle))
	}
}

// drawMeasurement draws the dashed measurement line, filled handles at
// the defined endpoints and a ring at the hover position
func drawMeasurement(surface Surface, transform Transform, m *Measurement) {
	if m.Start == nil && m.End == nil {
		return
	}

	if m.Start != nil && m.End != nil {
		surface.Begin()
		moveTo(surface, transform, *m.Start)
		lineTo(surface, transform, *m.End)
		surface.Stroke(measurementColor, entityStrokeWidth, []float64{6, 4})
	}

	for _, point := range []*geometry.Point{m.Start, m.End} {
		if point == nil {
			continue
		}
		x, y := transform.ToScreen(*point)
		surface.Begin()
		surface.Circle(x, y, handleRadius)
		surface.Fill(measurementColor)
	}

	if m.Hover != nil {
		x, y := transform.ToScreen(*m.Hover)
		surface.Begin()
		surface.Circle(x, y, hoverRingRadius)
		surface.Fill(measurementHoverFill)
		surface.Begin()
		surface.Circle(x, y, hoverRingRadius)
		surface.Stroke(measurementColor, entityStrokeWidth, nil)
	}
}

func moveTo(surface Surface, transform Transform, p geometry.Point) {
	x, y := transform.ToScreen(p)
	surface.MoveTo(x, y)
}

func lineTo(surface Surface, transform Transform, p geometry.Point) {
	x, y := transform.ToScreen(p)
	surface.LineTo(x, y)
}
