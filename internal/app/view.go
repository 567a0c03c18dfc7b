package app

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/philipparndt/godxf/pkg/viewer"
)

// snapRadius is the pixel tolerance for vertex selection
const snapRadius = 20.0

// DrawingView renders a DXF document and handles pan, zoom and
// measurement interaction. All drawing goes through the raster surface;
// the widget itself only owns the viewport and measurement state.
type DrawingView struct {
	widget.BaseWidget
	doc         *dxf.Document
	viewport    viewer.Viewport
	measurement viewer.Measurement
	raster      *canvas.Raster
	dragStart   *fyne.Position
	isDragging  bool
	onMeasure   func(m viewer.Measurement)
}

// NewDrawingView creates a view for the given document
func NewDrawingView(doc *dxf.Document) *DrawingView {
	v := &DrawingView{
		doc:      doc,
		viewport: viewer.NewViewport(),
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// SetDocument replaces the displayed document, keeping the viewport
func (v *DrawingView) SetDocument(doc *dxf.Document) {
	v.doc = doc
	v.measurement = viewer.Measurement{}
	v.notifyMeasure()
	v.Refresh()
}

// SetOnMeasure sets the callback invoked when the measurement changes
func (v *DrawingView) SetOnMeasure(callback func(m viewer.Measurement)) {
	v.onMeasure = callback
}

// ResetView restores the fitted, unzoomed view
func (v *DrawingView) ResetView() {
	v.viewport = viewer.NewViewport()
	v.Refresh()
}

// ClearMeasurement removes the selected measurement points
func (v *DrawingView) ClearMeasurement() {
	v.measurement = viewer.Measurement{}
	v.notifyMeasure()
	v.Refresh()
}

// draw rasterizes the current document state at the requested pixel size
func (v *DrawingView) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	surface := viewer.NewRasterSurface(w, h)
	opts := viewer.DefaultRenderOptions()
	opts.Viewport = v.viewport
	opts.Measurement = &v.measurement
	viewer.Render(surface, v.doc, opts)
	return surface.Image()
}

// transform rebuilds the view transform for the widget's current size
func (v *DrawingView) transform() viewer.Transform {
	size := v.Size()
	opts := viewer.DefaultRenderOptions()
	return viewer.NewTransform(
		v.doc.BoundingBox(),
		float64(size.Width), float64(size.Height),
		opts.Padding, v.viewport,
	)
}

// CreateRenderer creates the renderer for the widget
func (v *DrawingView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// Dragged pans the view
func (v *DrawingView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		v.viewport.PanX += float64(event.Position.X - v.dragStart.X)
		v.viewport.PanY += float64(event.Position.Y - v.dragStart.Y)
		v.Refresh()
	}
	v.dragStart = &event.Position
	v.isDragging = true
}

// DragEnd completes a pan gesture
func (v *DrawingView) DragEnd() {
	v.dragStart = nil
	v.isDragging = false
}

// Scrolled zooms the view, anchored at the canvas center
func (v *DrawingView) Scrolled(event *fyne.ScrollEvent) {
	factor := 1 + float64(event.Scrolled.DY)*0.005
	v.viewport.Zoom = viewer.ClampZoom(v.viewport.Zoom * factor)
	v.Refresh()
}

// Tapped snaps the tap position to the nearest vertex and records it as
// a measurement endpoint
func (v *DrawingView) Tapped(event *fyne.PointEvent) {
	if v.isDragging || v.doc.EntityCount() == 0 {
		return
	}

	vertex, ok := viewer.NearestVertex(
		v.doc, v.transform(),
		float64(event.Position.X), float64(event.Position.Y),
		snapRadius,
	)
	if !ok {
		return
	}

	v.addMeasurePoint(vertex)
	v.Refresh()
}

// addMeasurePoint fills the start point first, then the end point, then
// starts over
func (v *DrawingView) addMeasurePoint(point geometry.Point) {
	switch {
	case v.measurement.Start == nil:
		v.measurement.Start = &point
	case v.measurement.End == nil:
		v.measurement.End = &point
	default:
		v.measurement = viewer.Measurement{Start: &point}
	}
	v.notifyMeasure()
}

func (v *DrawingView) notifyMeasure() {
	if v.onMeasure != nil {
		v.onMeasure(v.measurement)
	}
}
