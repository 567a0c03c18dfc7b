package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/godxf/pkg/geometry"
)

func testBounds(minX, minY, maxX, maxY float64) geometry.Bounds {
	bounds := geometry.NewBounds()
	bounds.Extend(geometry.NewPoint(minX, minY))
	bounds.Extend(geometry.NewPoint(maxX, maxY))
	return bounds
}

func TestTransformFitAndFlip(t *testing.T) {
	bounds := testBounds(0, 0, 10, 10)
	transform := NewTransform(bounds, 100, 100, 10, NewViewport())

	// scale = (100-20)/10 = 8, drawing centered in the padded canvas
	x, y := transform.ToScreen(geometry.NewPoint(0, 0))
	if math.Abs(x-10) > 1e-9 || math.Abs(y-90) > 1e-9 {
		t.Errorf("expected (0,0) -> (10, 90), got (%v, %v)", x, y)
	}

	// Y is up in document space, down on screen
	x, y = transform.ToScreen(geometry.NewPoint(10, 10))
	if math.Abs(x-90) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("expected (10,10) -> (90, 10), got (%v, %v)", x, y)
	}
}

func TestTransformZoomAnchoredAtCanvasCenter(t *testing.T) {
	bounds := testBounds(0, 0, 10, 10)
	center := bounds.Center()

	for _, zoom := range []float64{0.5, 1, 4, 25} {
		transform := NewTransform(bounds, 200, 200, 0, Viewport{Zoom: zoom})
		x, y := transform.ToScreen(center)
		if math.Abs(x-100) > 1e-9 || math.Abs(y-100) > 1e-9 {
			t.Errorf("zoom %v: expected bounds center at canvas center, got (%v, %v)", zoom, x, y)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	boundsCases := []geometry.Bounds{
		testBounds(0, 0, 10, 10),
		testBounds(-250, 100, 40, 101),
		testBounds(3, 3, 3, 3), // degenerate single point
	}
	viewports := []Viewport{
		NewViewport(),
		{Zoom: 0.02},
		{Zoom: 200},
		{Zoom: 3.7, PanX: -120, PanY: 45.5},
		{Zoom: 0.4, PanX: 9999, PanY: -9999},
	}
	points := []geometry.Point{
		{X: 0, Y: 0},
		{X: 5, Y: 5},
		{X: -100, Y: 250},
		{X: 0.001, Y: -0.001},
	}

	for _, bounds := range boundsCases {
		for _, viewport := range viewports {
			transform := NewTransform(bounds, 800, 600, 16, viewport)
			for _, point := range points {
				x, y := transform.ToScreen(point)
				back := transform.ToWorld(x, y)
				if math.Abs(back.X-point.X) > 1e-6 || math.Abs(back.Y-point.Y) > 1e-6 {
					t.Errorf("round trip failed for %v (viewport %+v): got %v", point, viewport, back)
				}
			}
		}
	}
}

func TestTransformZoomClamped(t *testing.T) {
	bounds := testBounds(0, 0, 10, 10)

	huge := NewTransform(bounds, 100, 100, 0, Viewport{Zoom: 1e6})
	clamped := NewTransform(bounds, 100, 100, 0, Viewport{Zoom: MaxZoom})
	x1, y1 := huge.ToScreen(geometry.NewPoint(1, 1))
	x2, y2 := clamped.ToScreen(geometry.NewPoint(1, 1))
	if x1 != x2 || y1 != y2 {
		t.Errorf("expected zoom clamp to %v, got (%v,%v) vs (%v,%v)", MaxZoom, x1, y1, x2, y2)
	}

	tiny := NewTransform(bounds, 100, 100, 0, Viewport{Zoom: 1e-9})
	if tiny.Scale() != NewTransform(bounds, 100, 100, 0, Viewport{Zoom: MinZoom}).Scale() {
		t.Error("expected zoom clamp to minimum")
	}
}

func TestTransformNonFinitePanTreatedAsZero(t *testing.T) {
	bounds := testBounds(0, 0, 10, 10)

	bad := NewTransform(bounds, 100, 100, 0, Viewport{Zoom: 1, PanX: math.NaN(), PanY: math.Inf(1)})
	good := NewTransform(bounds, 100, 100, 0, Viewport{Zoom: 1})

	x1, y1 := bad.ToScreen(geometry.NewPoint(5, 5))
	x2, y2 := good.ToScreen(geometry.NewPoint(5, 5))
	if x1 != x2 || y1 != y2 {
		t.Errorf("expected non-finite pan to act as zero, got (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
}

func TestTransformPaddingClamped(t *testing.T) {
	bounds := testBounds(0, 0, 10, 10)

	// Padding beyond half the canvas would invert the fit; it is clamped
	transform := NewTransform(bounds, 100, 100, 500, NewViewport())
	if transform.Scale() <= 0 {
		t.Errorf("expected positive scale with oversized padding, got %v", transform.Scale())
	}

	negative := NewTransform(bounds, 100, 100, -20, NewViewport())
	zero := NewTransform(bounds, 100, 100, 0, NewViewport())
	if negative.Scale() != zero.Scale() {
		t.Error("expected negative padding to act as zero")
	}
}

func TestTransformDegenerateBoundsStayFinite(t *testing.T) {
	bounds := testBounds(5, 5, 5, 5)
	transform := NewTransform(bounds, 400, 300, 20, NewViewport())

	x, y := transform.ToScreen(geometry.NewPoint(5, 5))
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		t.Errorf("expected finite screen coordinates, got (%v, %v)", x, y)
	}
}

func TestTransformScaleIsFitTimesZoom(t *testing.T) {
	bounds := testBounds(0, 0, 10, 10)
	transform := NewTransform(bounds, 100, 100, 10, Viewport{Zoom: 2})

	// fit scale 8, zoom 2
	if math.Abs(transform.Scale()-16) > 1e-9 {
		t.Errorf("expected combined scale 16, got %v", transform.Scale())
	}
}

func TestClampZoom(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1, 1},
		{0.001, MinZoom},
		{1e9, MaxZoom},
		{math.NaN(), 1},
		{math.Inf(-1), 1},
	}
	for _, tc := range cases {
		if got := ClampZoom(tc.in); got != tc.want {
			t.Errorf("ClampZoom(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
