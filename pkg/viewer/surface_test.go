package viewer

import "image/color"

// testSurface records draw calls so rendering logic can be verified
// without a rasterizer
type testSurface struct {
	width   float64
	height  float64
	clears  []color.Color
	path    []recordOp
	strokes []strokeCall
	fills   []fillCall
}

type recordOp struct {
	kind    string
	x, y    float64
	radius  float64
}

type strokeCall struct {
	path  []recordOp
	col   color.Color
	width float64
	dash  []float64
}

type fillCall struct {
	path []recordOp
	col  color.Color
}

func newTestSurface(width, height float64) *testSurface {
	return &testSurface{width: width, height: height}
}

func (s *testSurface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *testSurface) Clear(background color.Color) {
	s.clears = append(s.clears, background)
}

func (s *testSurface) Begin() {
	s.path = nil
}

func (s *testSurface) MoveTo(x, y float64) {
	s.path = append(s.path, recordOp{kind: "move", x: x, y: y})
}

func (s *testSurface) LineTo(x, y float64) {
	s.path = append(s.path, recordOp{kind: "line", x: x, y: y})
}

func (s *testSurface) Close() {
	s.path = append(s.path, recordOp{kind: "close"})
}

func (s *testSurface) Circle(cx, cy, radius float64) {
	s.path = append(s.path, recordOp{kind: "circle", x: cx, y: cy, radius: radius})
}

func (s *testSurface) Stroke(col color.Color, width float64, dash []float64) {
	path := make([]recordOp, len(s.path))
	copy(path, s.path)
	s.strokes = append(s.strokes, strokeCall{path: path, col: col, width: width, dash: dash})
}

func (s *testSurface) Fill(col color.Color) {
	path := make([]recordOp, len(s.path))
	copy(path, s.path)
	s.fills = append(s.fills, fillCall{path: path, col: col})
}
