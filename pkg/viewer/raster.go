package viewer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ Surface = (*RasterSurface)(nil) // assert interface conformance

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opClose
	opCircle
)

type pathOp struct {
	kind   opKind
	x, y   float64
	radius float64
}

// RasterSurface is a Surface that rasterizes onto an in-memory RGBA
// image, wrapping rasterx. Separate filler and dasher instances share
// one scanner, so fills and (dashed) strokes don't interfere.
type RasterSurface struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
	ops     []pathOp
}

// NewRasterSurface creates a raster surface with the given pixel size
func NewRasterSurface(width, height int) *RasterSurface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &RasterSurface{
		img:     img,
		scanner: scanner,
		filler:  rasterx.NewFiller(width, height, scanner),
		dasher:  rasterx.NewDasher(width, height, scanner),
	}
}

// Image returns the underlying image
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

func (s *RasterSurface) Size() (float64, float64) {
	bounds := s.img.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

func (s *RasterSurface) Clear(background color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
}

func (s *RasterSurface) Begin() {
	s.ops = s.ops[:0]
}

func (s *RasterSurface) MoveTo(x, y float64) {
	s.ops = append(s.ops, pathOp{kind: opMove, x: x, y: y})
}

func (s *RasterSurface) LineTo(x, y float64) {
	s.ops = append(s.ops, pathOp{kind: opLine, x: x, y: y})
}

func (s *RasterSurface) Close() {
	s.ops = append(s.ops, pathOp{kind: opClose})
}

func (s *RasterSurface) Circle(cx, cy, radius float64) {
	s.ops = append(s.ops, pathOp{kind: opCircle, x: cx, y: cy, radius: radius})
}

func (s *RasterSurface) Stroke(col color.Color, width float64, dash []float64) {
	s.dasher.Clear()
	s.scanner.SetColor(col)
	s.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round,
		dash, 0,
	)
	s.replay(s.dasher)
	s.dasher.Draw()
	s.dasher.Clear()
}

func (s *RasterSurface) Fill(col color.Color) {
	s.filler.Clear()
	s.scanner.SetColor(col)
	s.replay(s.filler)
	s.filler.Draw()
	s.filler.Clear()
}

// replay feeds the accumulated path into a rasterx path adder
func (s *RasterSurface) replay(adder rasterx.Adder) {
	open := false
	for _, op := range s.ops {
		switch op.kind {
		case opMove:
			if open {
				adder.Stop(false)
			}
			adder.Start(toFixedPoint(op.x, op.y))
			open = true
		case opLine:
			if open {
				adder.Line(toFixedPoint(op.x, op.y))
			}
		case opClose:
			if open {
				adder.Stop(true)
				open = false
			}
		case opCircle:
			if open {
				adder.Stop(false)
				open = false
			}
			rasterx.AddCircle(op.x, op.y, op.radius, adder)
		}
	}
	if open {
		adder.Stop(false)
	}
}

func toFixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
