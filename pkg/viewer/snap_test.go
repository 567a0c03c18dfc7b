package viewer

import (
	"testing"

	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/geometry"
)

func snapDoc(entities ...dxf.Entity) *dxf.Document {
	doc := dxf.NewDocument()
	for _, entity := range entities {
		doc.AddEntity(entity)
	}
	return doc
}

func TestNearestVertexFindsClosest(t *testing.T) {
	doc := snapDoc(dxf.Line{Start: geometry.NewPoint(0, 0), End: geometry.NewPoint(10, 0)})
	transform := NewTransform(doc.BoundingBox(), 100, 100, 10, NewViewport())

	// Query right at the screen position of the line start
	x, y := transform.ToScreen(geometry.NewPoint(0, 0))
	vertex, ok := NearestVertex(doc, transform, x+1, y+1, 20)

	if !ok {
		t.Fatal("expected a vertex within range")
	}
	if vertex != geometry.NewPoint(0, 0) {
		t.Errorf("expected start vertex, got %v", vertex)
	}
}

func TestNearestVertexRespectsMaxDistance(t *testing.T) {
	doc := snapDoc(dxf.Line{Start: geometry.NewPoint(0, 0), End: geometry.NewPoint(10, 0)})
	transform := NewTransform(doc.BoundingBox(), 100, 100, 10, NewViewport())

	x, y := transform.ToScreen(geometry.NewPoint(0, 0))
	if _, ok := NearestVertex(doc, transform, x+30, y+30, 20); ok {
		t.Error("expected no vertex beyond the pixel radius")
	}
}

func TestNearestVertexTieGoesToLaterEntity(t *testing.T) {
	first := dxf.Line{Start: geometry.NewPoint(0, 0), End: geometry.NewPoint(0, 10)}
	second := dxf.Line{Start: geometry.NewPoint(10, 0), End: geometry.NewPoint(10, 10)}
	doc := snapDoc(first, second)
	transform := NewTransform(doc.BoundingBox(), 100, 100, 10, NewViewport())

	// Query exactly between (0,0) and (10,0): both candidates tie, the
	// one enumerated later (the second line's vertex) must win
	x, y := transform.ToScreen(geometry.NewPoint(5, 0))
	vertex, ok := NearestVertex(doc, transform, x, y, 100)
	if !ok {
		t.Fatal("expected a vertex within range")
	}
	if vertex != geometry.NewPoint(10, 0) {
		t.Errorf("expected the later entity's vertex (10, 0), got %v", vertex)
	}
}

func TestNearestVertexCircleHasNoCandidates(t *testing.T) {
	doc := snapDoc(dxf.Circle{Center: geometry.NewPoint(5, 5), Radius: 2})
	transform := NewTransform(doc.BoundingBox(), 100, 100, 10, NewViewport())

	x, y := transform.ToScreen(geometry.NewPoint(5, 5))
	if _, ok := NearestVertex(doc, transform, x, y, 1000); ok {
		t.Error("expected no snap candidates on a circle")
	}
}

func TestNearestVertexArcEndpoints(t *testing.T) {
	arc := dxf.Arc{Center: geometry.NewPoint(0, 0), Radius: 5, StartAngle: 0, EndAngle: 90}
	doc := snapDoc(arc)
	transform := NewTransform(doc.BoundingBox(), 100, 100, 10, NewViewport())

	x, y := transform.ToScreen(geometry.NewPoint(0, 5))
	vertex, ok := NearestVertex(doc, transform, x, y, 5)
	if !ok {
		t.Fatal("expected the arc end point to be snappable")
	}
	if vertex.Distance(geometry.NewPoint(0, 5)) > 1e-9 {
		t.Errorf("expected arc end point (0, 5), got %v", vertex)
	}
}
