package viewer

import (
	"image/color"
	"math"

	"github.com/philipparndt/godxf/pkg/geometry"
)

// maxGridLines caps how many grid lines one axis may produce, bounding
// the rendering cost at extreme zoom-out
const maxGridLines = 5000

var (
	gridMinorColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x30}
	gridAxisColor  = color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0x90}
)

// VisibleWorldBounds returns the document-space rectangle currently
// covered by the canvas, computed by inverse-transforming the four
// canvas corners. Taking the bounding box of all four corners stays
// correct even if the transform ever gains a rotation stage.
func VisibleWorldBounds(transform Transform) geometry.Bounds {
	width, height := transform.CanvasSize()

	bounds := geometry.NewBounds()
	bounds.Extend(transform.ToWorld(0, 0))
	bounds.Extend(transform.ToWorld(width, 0))
	bounds.Extend(transform.ToWorld(0, height))
	bounds.Extend(transform.ToWorld(width, height))
	return bounds
}

// GridStep doubles the base step until the visible span needs at most
// maxGridLines lines. Zooming in is never coarsened, only zooming out.
func GridStep(base, span float64) float64 {
	if base <= 0 {
		base = 1
	}
	step := base
	for span/step > maxGridLines {
		step *= 2
	}
	return step
}

// drawGrid draws minor grid lines at the chosen step for each axis and
// emphasized lines at world X=0 and Y=0 when they are in view
func drawGrid(surface Surface, transform Transform, baseStep float64) {
	visible := VisibleWorldBounds(transform)
	span := visible.Size()
	stepX := GridStep(baseStep, span.X)
	stepY := GridStep(baseStep, span.Y)

	surface.Begin()
	for x := math.Ceil(visible.Min.X/stepX) * stepX; x <= visible.Max.X; x += stepX {
		moveTo(surface, transform, geometry.NewPoint(x, visible.Min.Y))
		lineTo(surface, transform, geometry.NewPoint(x, visible.Max.Y))
	}
	for y := math.Ceil(visible.Min.Y/stepY) * stepY; y <= visible.Max.Y; y += stepY {
		moveTo(surface, transform, geometry.NewPoint(visible.Min.X, y))
		lineTo(surface, transform, geometry.NewPoint(visible.Max.X, y))
	}
	surface.Stroke(gridMinorColor, 1, nil)

	surface.Begin()
	axes := false
	if visible.Min.X <= 0 && visible.Max.X >= 0 {
		moveTo(surface, transform, geometry.NewPoint(0, visible.Min.Y))
		lineTo(surface, transform, geometry.NewPoint(0, visible.Max.Y))
		axes = true
	}
	if visible.Min.Y <= 0 && visible.Max.Y >= 0 {
		moveTo(surface, transform, geometry.NewPoint(visible.Min.X, 0))
		lineTo(surface, transform, geometry.NewPoint(visible.Max.X, 0))
		axes = true
	}
	if axes {
		surface.Stroke(gridAxisColor, 1, nil)
	}
}
