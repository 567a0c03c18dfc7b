package viewer

import "image/color"

// Surface is the minimal drawing capability the renderer needs.
// Begin/MoveTo/LineTo/Close/Circle accumulate a path in screen pixels;
// Stroke and Fill consume it. Abstracting the surface keeps entity
// dispatch and the view transform testable without a graphics context.
type Surface interface {
	// Size returns the canvas dimensions in pixels
	Size() (width, height float64)

	// Clear fills the whole canvas with the background color
	Clear(background color.Color)

	// Begin discards any accumulated path
	Begin()

	// MoveTo starts a new subpath at the given point
	MoveTo(x, y float64)

	// LineTo extends the current subpath with a straight segment
	LineTo(x, y float64)

	// Close connects the current subpath back to its first point
	Close()

	// Circle adds a full circle subpath
	Circle(cx, cy, radius float64)

	// Stroke outlines the accumulated path. A non-empty dash slice
	// gives pixel lengths of alternating on/off runs.
	Stroke(col color.Color, width float64, dash []float64)

	// Fill paints the interior of the accumulated path
	Fill(col color.Color)
}
