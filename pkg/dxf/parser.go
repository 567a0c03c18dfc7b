package dxf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/godxf/pkg/geometry"
)

// WarningBinaryFile is appended to Document.Warnings when the input
// contains NUL bytes, the telltale of a binary-encoded DXF file.
const WarningBinaryFile = "input contains NUL bytes: binary DXF is not supported, attempting text parse"

// Parse reads a DXF file and returns a Document.
// Malformed entities are dropped silently; the only error returned
// is a failure to read the file itself.
func Parse(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseBytes(data), nil
}

// ParseBytes parses raw DXF data. It never fails: entities that cannot
// be extracted are omitted and parsing continues with the rest of the
// tag stream.
func ParseBytes(data []byte) *Document {
	doc := NewDocument()
	if bytes.IndexByte(data, 0) >= 0 {
		doc.Warnings = append(doc.Warnings, WarningBinaryFile)
	}
	extractEntities(doc, ScanTags(string(data)))
	return doc
}

// ParseString parses DXF text. See ParseBytes.
func ParseString(text string) *Document {
	doc := NewDocument()
	if strings.ContainsRune(text, 0) {
		doc.Warnings = append(doc.Warnings, WarningBinaryFile)
	}
	extractEntities(doc, ScanTags(text))
	return doc
}

// extractEntities walks the tag stream with an explicit cursor, tracking
// whether it is inside the ENTITIES section, and dispatches entity
// extraction on every entity start marker found there.
func extractEntities(doc *Document, tags []Tag) {
	inEntities := false

	i := 0
	for i < len(tags) {
		tag := tags[i]

		if tag.Code == 0 && tag.Value == "SECTION" {
			inEntities = false
			if i+1 < len(tags) && tags[i+1].Code == 2 {
				inEntities = tags[i+1].Value == "ENTITIES"
				i += 2
			} else {
				i++
			}
			continue
		}

		if tag.Code == 0 && tag.Value == "ENDSEC" {
			inEntities = false
			i++
			continue
		}

		if !inEntities || tag.Code != 0 {
			i++
			continue
		}

		// Entity start marker inside the ENTITIES section
		if tag.Value == "POLYLINE" {
			entity, next := extractNestedPolyline(tags, i)
			if entity != nil {
				doc.AddEntity(entity)
			}
			i = next
		} else {
			body, next := entityBody(tags, i+1)
			if entity := extractSimple(tag.Value, body); entity != nil {
				doc.AddEntity(entity)
			}
			i = next
		}
	}
}

// entityBody collects the tags from start up to (not including) the next
// code-0 tag. It returns the body and the index of that code-0 tag.
func entityBody(tags []Tag, start int) ([]Tag, int) {
	end := start
	for end < len(tags) && tags[end].Code != 0 {
		end++
	}
	return tags[start:end], end
}

// extractSimple builds an entity from a flat tag body. Unknown entity
// types and bodies that fail validation yield nil.
func extractSimple(entityType string, body []Tag) Entity {
	switch entityType {
	case "LINE":
		return extractLine(body)
	case "CIRCLE":
		return extractCircle(body)
	case "ARC":
		return extractArc(body)
	case "LWPOLYLINE":
		return extractLWPolyline(body)
	}
	return nil
}

func extractLine(body []Tag) Entity {
	start, ok1 := fieldPoint(body, 10, 20)
	end, ok2 := fieldPoint(body, 11, 21)
	if !ok1 || !ok2 {
		return nil
	}
	return Line{Start: start, End: end}
}

func extractCircle(body []Tag) Entity {
	center, ok := fieldPoint(body, 10, 20)
	if !ok {
		return nil
	}
	radius, ok := fieldFloat(body, 40)
	if !ok || radius <= 0 {
		return nil
	}
	return Circle{Center: center, Radius: radius}
}

func extractArc(body []Tag) Entity {
	center, ok := fieldPoint(body, 10, 20)
	if !ok {
		return nil
	}
	radius, ok := fieldFloat(body, 40)
	if !ok || radius <= 0 {
		return nil
	}
	start, ok := fieldFloat(body, 50)
	if !ok {
		return nil
	}
	end, ok := fieldFloat(body, 51)
	if !ok {
		return nil
	}
	return Arc{Center: center, Radius: radius, StartAngle: start, EndAngle: end}
}

// extractLWPolyline parses the compact polyline form: a flags field at
// code 70 and interleaved 10/20 coordinate pairs.
func extractLWPolyline(body []Tag) Entity {
	points := make([]geometry.Point, 0)
	pendingX := 0.0
	havePending := false

	for _, tag := range body {
		switch tag.Code {
		case 10:
			// A 10 with no following 20 contributes no vertex
			if x, ok := tag.Float(); ok {
				pendingX = x
				havePending = true
			} else {
				havePending = false
			}
		case 20:
			if !havePending {
				continue
			}
			if y, ok := tag.Float(); ok {
				points = append(points, geometry.NewPoint(pendingX, y))
			}
			havePending = false
		}
	}

	flags, _ := fieldInt(body, 70)
	return buildPolyline(points, flags)
}

// extractNestedPolyline parses the legacy multi-record form: a POLYLINE
// header, repeated VERTEX sub-records and a SEQEND terminator. It starts
// at the POLYLINE marker and returns the entity (or nil) together with
// the index of the first unconsumed tag.
func extractNestedPolyline(tags []Tag, start int) (Entity, int) {
	header, i := entityBody(tags, start+1)
	flags, _ := fieldInt(header, 70)

	points := make([]geometry.Point, 0)
	for i < len(tags) {
		switch tags[i].Value {
		case "VERTEX":
			body, next := entityBody(tags, i+1)
			if point, ok := fieldPoint(body, 10, 20); ok {
				points = append(points, point)
			}
			i = next
		case "SEQEND":
			return buildPolyline(points, flags), i + 1
		default:
			// Some other entity begins here; leave it for the walker
			return buildPolyline(points, flags), i
		}
	}
	return buildPolyline(points, flags), i
}

// buildPolyline applies the closed flag and the minimum vertex count
// shared by both polyline front ends
func buildPolyline(points []geometry.Point, flags int) Entity {
	if len(points) < 2 {
		return nil
	}
	return Polyline{Points: points, Closed: flags&1 != 0}
}

// fieldFloat returns the first finite float value at the given group code
func fieldFloat(body []Tag, code int) (float64, bool) {
	for _, tag := range body {
		if tag.Code == code {
			return tag.Float()
		}
	}
	return 0, false
}

// fieldInt returns the first integer value at the given group code
func fieldInt(body []Tag, code int) (int, bool) {
	for _, tag := range body {
		if tag.Code == code {
			return tag.Int()
		}
	}
	return 0, false
}

// fieldPoint returns the point assembled from the given X/Y group codes
func fieldPoint(body []Tag, xCode, yCode int) (geometry.Point, bool) {
	x, ok1 := fieldFloat(body, xCode)
	y, ok2 := fieldFloat(body, yCode)
	if !ok1 || !ok2 {
		return geometry.Point{}, false
	}
	return geometry.NewPoint(x, y), true
}
