package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/geometry"
)

// MeasurementResult contains various measurements of a DXF drawing
type MeasurementResult struct {
	BoundingBox   geometry.Bounds
	Dimensions    geometry.Point
	EntityCount   int
	LineCount     int
	CircleCount   int
	ArcCount      int
	PolylineCount int
	SegmentCount  int
	VertexCount   int
	TotalLength   float64
}

// AnalyzeDocument performs comprehensive analysis on a parsed drawing
func AnalyzeDocument(doc *dxf.Document) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: doc.BoundingBox(),
		EntityCount: doc.EntityCount(),
	}
	if !result.BoundingBox.IsEmpty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	for _, entity := range doc.Entities {
		result.VertexCount += len(entity.Vertices())

		switch e := entity.(type) {
		case dxf.Line:
			result.LineCount++
			result.TotalLength += e.Length()
		case dxf.Circle:
			result.CircleCount++
			result.TotalLength += e.Circumference()
		case dxf.Arc:
			result.ArcCount++
			result.TotalLength += e.ArcLength()
		case dxf.Polyline:
			result.PolylineCount++
			result.SegmentCount += len(e.Points) - 1
			if e.Closed {
				result.SegmentCount++
			}
			result.TotalLength += e.Length()
		}
	}

	return result
}

// DistanceBetweenPoints calculates the distance between two arbitrary points
func DistanceBetweenPoints(p1, p2 geometry.Point) float64 {
	return p1.Distance(p2)
}

// FindNearestVertex finds the document vertex nearest to a given point
// in drawing coordinates. Returns a negative distance when the document
// has no snappable vertices.
func FindNearestVertex(doc *dxf.Document, point geometry.Point) (geometry.Point, float64) {
	var nearestVertex geometry.Point
	minDistance := math.MaxFloat64
	found := false

	for _, entity := range doc.Entities {
		for _, vertex := range entity.Vertices() {
			distance := point.Distance(vertex)
			if distance < minDistance {
				minDistance = distance
				nearestVertex = vertex
				found = true
			}
		}
	}

	if !found {
		return geometry.Point{}, -1
	}
	return nearestVertex, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}
