package viewer

import (
	"image/color"
	"testing"

	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/geometry"
)

func TestRasterSurfaceClear(t *testing.T) {
	surface := NewRasterSurface(10, 10)
	surface.Clear(color.RGBA{R: 1, G: 2, B: 3, A: 255})

	if got := surface.Image().RGBAAt(5, 5); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("expected cleared pixel, got %+v", got)
	}
}

func TestRasterSurfaceStrokesPixels(t *testing.T) {
	line := dxf.Line{Start: geometry.NewPoint(0, 0), End: geometry.NewPoint(10, 0)}
	doc := dxf.NewDocument()
	doc.AddEntity(line)

	surface := NewRasterSurface(100, 100)
	opts := DefaultRenderOptions()
	opts.ShowGrid = false
	opts.LineColor = "#ffffff"
	opts.BackgroundColor = "#000000"
	Render(surface, doc, opts)

	// The horizontal line runs through the canvas center
	background := color.RGBA{A: 255}
	if got := surface.Image().RGBAAt(50, 50); got == background {
		t.Error("expected the line to paint the canvas center")
	}
	if got := surface.Image().RGBAAt(50, 10); got != background {
		t.Errorf("expected background far from the line, got %+v", got)
	}
}

func TestRasterSurfaceSize(t *testing.T) {
	surface := NewRasterSurface(320, 240)
	w, h := surface.Size()
	if w != 320 || h != 240 {
		t.Errorf("expected 320x240, got %vx%v", w, h)
	}
}
