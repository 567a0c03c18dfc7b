package dxf

import (
	"math"

	"github.com/philipparndt/godxf/pkg/geometry"
)

// Entity is one drawable primitive extracted from a DXF file.
// The concrete types are Line, Circle, Arc and Polyline.
type Entity interface {
	// Type returns the DXF entity name (LINE, CIRCLE, ARC, POLYLINE)
	Type() string
	// BBox returns the axis-aligned bounding box of the entity
	BBox() geometry.Bounds
	// Vertices returns the snap candidates of the entity
	Vertices() []geometry.Point
}

// Line is a straight segment between two points
type Line struct {
	Start geometry.Point
	End   geometry.Point
}

func (l Line) Type() string { return "LINE" }

func (l Line) BBox() geometry.Bounds {
	bounds := geometry.NewBounds()
	bounds.Extend(l.Start)
	bounds.Extend(l.End)
	return bounds
}

func (l Line) Vertices() []geometry.Point {
	return []geometry.Point{l.Start, l.End}
}

// Length returns the length of the segment
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Circle is a full circle with a strictly positive radius
type Circle struct {
	Center geometry.Point
	Radius float64
}

func (c Circle) Type() string { return "CIRCLE" }

// BBox returns the inscribed square center±radius. The circle touches
// all four sides, so this is exact for full circles.
func (c Circle) BBox() geometry.Bounds {
	bounds := geometry.NewBounds()
	bounds.Extend(geometry.NewPoint(c.Center.X-c.Radius, c.Center.Y-c.Radius))
	bounds.Extend(geometry.NewPoint(c.Center.X+c.Radius, c.Center.Y+c.Radius))
	return bounds
}

// Vertices returns nil: a circle has no distinguished vertex to snap to
func (c Circle) Vertices() []geometry.Point {
	return nil
}

// Circumference returns the perimeter of the circle
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Arc is a circular arc swept counter-clockwise from StartAngle to
// EndAngle. Angles are in degrees, any finite value is accepted.
type Arc struct {
	Center     geometry.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (a Arc) Type() string { return "ARC" }

// BBox returns the full center±radius square. This is a superset of the
// tight arc box; the fit-to-canvas scale depends on it, so it stays as is.
func (a Arc) BBox() geometry.Bounds {
	bounds := geometry.NewBounds()
	bounds.Extend(geometry.NewPoint(a.Center.X-a.Radius, a.Center.Y-a.Radius))
	bounds.Extend(geometry.NewPoint(a.Center.X+a.Radius, a.Center.Y+a.Radius))
	return bounds
}

func (a Arc) Vertices() []geometry.Point {
	return []geometry.Point{a.StartPoint(), a.EndPoint()}
}

// PointAt returns the position on the arc at the given angle in degrees
func (a Arc) PointAt(angleDeg float64) geometry.Point {
	rad := angleDeg * math.Pi / 180.0
	return geometry.NewPoint(
		a.Center.X+a.Radius*math.Cos(rad),
		a.Center.Y+a.Radius*math.Sin(rad),
	)
}

// StartPoint returns the position at the start angle
func (a Arc) StartPoint() geometry.Point {
	return a.PointAt(a.StartAngle)
}

// EndPoint returns the position at the end angle
func (a Arc) EndPoint() geometry.Point {
	return a.PointAt(a.EndAngle)
}

// Sweep returns the counter-clockwise angular span in degrees, in (0, 360].
// Equal start and end angles count as a full circle.
func (a Arc) Sweep() float64 {
	start := normalizeAngle(a.StartAngle)
	end := normalizeAngle(a.EndAngle)
	sweep := math.Mod(end-start+360, 360)
	if sweep == 0 {
		sweep = 360
	}
	return sweep
}

// ArcLength returns the length of the arc
func (a Arc) ArcLength() float64 {
	return a.Radius * a.Sweep() * math.Pi / 180.0
}

// normalizeAngle maps an angle in degrees into [0, 360)
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Polyline is a connected sequence of at least two points,
// optionally closed back to the first point
type Polyline struct {
	Points []geometry.Point
	Closed bool
}

func (p Polyline) Type() string { return "POLYLINE" }

func (p Polyline) BBox() geometry.Bounds {
	bounds := geometry.NewBounds()
	for _, point := range p.Points {
		bounds.Extend(point)
	}
	return bounds
}

func (p Polyline) Vertices() []geometry.Point {
	return p.Points
}

// Length returns the total length of all segments,
// including the closing segment for closed polylines
func (p Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i-1].Distance(p.Points[i])
	}
	if p.Closed && len(p.Points) > 2 {
		total += p.Points[len(p.Points)-1].Distance(p.Points[0])
	}
	return total
}

// Document represents a parsed DXF drawing
type Document struct {
	Entities []Entity
	Warnings []string
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		Entities: make([]Entity, 0),
		Warnings: make([]string, 0),
	}
}

// AddEntity appends an entity to the document
func (d *Document) AddEntity(entity Entity) {
	d.Entities = append(d.Entities, entity)
}

// EntityCount returns the number of entities in the document
func (d *Document) EntityCount() int {
	return len(d.Entities)
}

// BoundingBox calculates the bounding box of the entire drawing.
// The result is empty when the document has no entities.
func (d *Document) BoundingBox() geometry.Bounds {
	bounds := geometry.NewBounds()
	for _, entity := range d.Entities {
		bounds.Union(entity.BBox())
	}
	return bounds
}
