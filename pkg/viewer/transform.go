package viewer

import (
	"math"

	"github.com/philipparndt/godxf/pkg/geometry"
)

// Zoom limits for the interactive viewport
const (
	MinZoom = 0.02
	MaxZoom = 200.0
)

// spanEpsilon floors degenerate bounds extents so a single-point drawing
// still produces a usable fit scale
const spanEpsilon = 1e-9

// Viewport is the interactive zoom/pan state layered on top of the
// content-fit transform. Pan values are in screen pixels.
type Viewport struct {
	Zoom float64
	PanX float64
	PanY float64
}

// NewViewport returns the neutral viewport (no zoom, no pan)
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ClampZoom limits a zoom factor to the supported range.
// Non-finite values reset to 1.
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return 1
	}
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// Transform maps between document coordinates (Y up) and screen pixels
// (Y down). It composes a content-fit scale with centering offsets, the
// axis flip, and the interactive zoom/pan anchored at the canvas center.
// A Transform is rebuilt from scratch on every draw call and holds no
// mutable state.
type Transform struct {
	scale   float64
	offsetX float64
	offsetY float64
	width   float64
	height  float64
	zoom    float64
	panX    float64
	panY    float64
	origin  geometry.Point
}

// NewTransform builds the mapping for the given drawing bounds, canvas
// pixel size, padding and viewport. Padding is clamped to at most half
// the smaller canvas dimension.
func NewTransform(bounds geometry.Bounds, width, height, padding float64, viewport Viewport) Transform {
	padding = math.Max(0, math.Min(padding, math.Min(width, height)/2))

	size := bounds.Size()
	spanX := math.Max(size.X, spanEpsilon)
	spanY := math.Max(size.Y, spanEpsilon)

	innerW := width - 2*padding
	innerH := height - 2*padding
	scale := math.Max(1e-6, math.Min(innerW/spanX, innerH/spanY))

	panX := viewport.PanX
	panY := viewport.PanY
	if math.IsNaN(panX) || math.IsInf(panX, 0) {
		panX = 0
	}
	if math.IsNaN(panY) || math.IsInf(panY, 0) {
		panY = 0
	}

	return Transform{
		scale:   scale,
		offsetX: padding + (innerW-spanX*scale)/2,
		offsetY: padding + (innerH-spanY*scale)/2,
		width:   width,
		height:  height,
		zoom:    ClampZoom(viewport.Zoom),
		panX:    panX,
		panY:    panY,
		origin:  bounds.Min,
	}
}

// ToScreen maps a document point to screen pixels
func (t Transform) ToScreen(p geometry.Point) (float64, float64) {
	baseX := (p.X-t.origin.X)*t.scale + t.offsetX
	baseY := t.height - ((p.Y-t.origin.Y)*t.scale + t.offsetY)

	cx := t.width / 2
	cy := t.height / 2
	return cx + (baseX-cx)*t.zoom + t.panX, cy + (baseY-cy)*t.zoom + t.panY
}

// ToWorld maps screen pixels back to a document point.
// It is the exact algebraic inverse of ToScreen.
func (t Transform) ToWorld(screenX, screenY float64) geometry.Point {
	cx := t.width / 2
	cy := t.height / 2
	baseX := cx + (screenX-t.panX-cx)/t.zoom
	baseY := cy + (screenY-t.panY-cy)/t.zoom

	return geometry.Point{
		X: (baseX-t.offsetX)/t.scale + t.origin.X,
		Y: (t.height-baseY-t.offsetY)/t.scale + t.origin.Y,
	}
}

// Scale returns the combined document-to-screen length scale.
// Lengths (radii) scale by this factor; they carry no pan or offset.
func (t Transform) Scale() float64 {
	return t.scale * t.zoom
}

// CanvasSize returns the canvas pixel dimensions the transform was built for
func (t Transform) CanvasSize() (float64, float64) {
	return t.width, t.height
}
