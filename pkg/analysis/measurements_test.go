package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/geometry"
)

func sampleDocument() *dxf.Document {
	doc := dxf.NewDocument()
	doc.AddEntity(dxf.Line{Start: geometry.NewPoint(0, 0), End: geometry.NewPoint(3, 4)})
	doc.AddEntity(dxf.Circle{Center: geometry.NewPoint(10, 10), Radius: 1})
	doc.AddEntity(dxf.Polyline{
		Points: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		Closed: false,
	})
	return doc
}

func TestAnalyzeDocumentCounts(t *testing.T) {
	result := AnalyzeDocument(sampleDocument())

	if result.EntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", result.EntityCount)
	}
	if result.LineCount != 1 || result.CircleCount != 1 || result.PolylineCount != 1 || result.ArcCount != 0 {
		t.Errorf("unexpected per-kind counts: %+v", result)
	}
	if result.VertexCount != 5 {
		t.Errorf("expected 5 snap vertices, got %d", result.VertexCount)
	}
	if result.SegmentCount != 2 {
		t.Errorf("expected 2 polyline segments, got %d", result.SegmentCount)
	}
}

func TestAnalyzeDocumentClosedPolylineSegments(t *testing.T) {
	doc := dxf.NewDocument()
	doc.AddEntity(dxf.Polyline{
		Points: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		Closed: true,
	})

	result := AnalyzeDocument(doc)
	if result.SegmentCount != 3 {
		t.Errorf("expected 3 segments for closed triangle, got %d", result.SegmentCount)
	}
}

func TestAnalyzeDocumentTotalLength(t *testing.T) {
	result := AnalyzeDocument(sampleDocument())

	expected := 5.0 + 2*math.Pi + 2.0
	if math.Abs(result.TotalLength-expected) > 1e-10 {
		t.Errorf("expected total length %v, got %v", expected, result.TotalLength)
	}
}

func TestAnalyzeDocumentDimensions(t *testing.T) {
	result := AnalyzeDocument(sampleDocument())

	// X from 0 to 11 (circle right edge), Y from 0 to 11
	expected := geometry.NewPoint(11, 11)
	if result.Dimensions != expected {
		t.Errorf("expected dimensions %v, got %v", expected, result.Dimensions)
	}
}

func TestFindNearestVertex(t *testing.T) {
	doc := sampleDocument()

	vertex, distance := FindNearestVertex(doc, geometry.NewPoint(3.1, 4.1))
	if vertex != geometry.NewPoint(3, 4) {
		t.Errorf("expected vertex (3, 4), got %v", vertex)
	}
	if distance > 0.2 {
		t.Errorf("unexpected distance %v", distance)
	}
}

func TestFindNearestVertexEmptyDocument(t *testing.T) {
	doc := dxf.NewDocument()
	doc.AddEntity(dxf.Circle{Center: geometry.NewPoint(0, 0), Radius: 1})

	if _, distance := FindNearestVertex(doc, geometry.NewPoint(0, 0)); distance >= 0 {
		t.Error("expected negative distance when only circles are present")
	}
}
