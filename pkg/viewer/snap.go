package viewer

import (
	"math"

	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/geometry"
)

// NearestVertex finds the snap candidate closest to a screen point,
// comparing squared screen distances. Lines contribute their endpoints,
// polylines every point, arcs their two endpoint positions and circles
// nothing. On an exact tie the candidate enumerated later wins.
// Returns false when no candidate lies within maxDistance pixels.
func NearestVertex(doc *dxf.Document, transform Transform, screenX, screenY, maxDistance float64) (geometry.Point, bool) {
	var best geometry.Point
	bestDistSq := math.MaxFloat64
	found := false

	for _, entity := range doc.Entities {
		for _, vertex := range entity.Vertices() {
			x, y := transform.ToScreen(vertex)
			dx := x - screenX
			dy := y - screenY
			distSq := dx*dx + dy*dy
			if distSq <= bestDistSq {
				bestDistSq = distSq
				best = vertex
				found = true
			}
		}
	}

	if !found || bestDistSq > maxDistance*maxDistance {
		return geometry.Point{}, false
	}
	return best, true
}
