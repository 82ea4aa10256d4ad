// Package screen provides the drawing surfaces the renderers paint on: a
// pixel Buffer backed by an image, and a Recorder that logs every primitive
// call.
package screen

import "image/color"

// Surface is the set of primitives a host offers to the renderers.
// Coordinates are in pixels; segment and arc widths are stroke widths.
// FilledRect corners are inclusive.
type Surface interface {
	Pixel(x, y int, c color.Color)
	Segment(x0, y0, x1, y1 float64, c color.Color, width float64)
	Arc(cx, cy, r, start, sweep float64, c color.Color, width float64)
	FilledRect(x0, y0, x1, y1 int, c color.Color)
}

// Wrapper is implemented by surfaces that can either clip or wrap pixels
// falling outside their bounds.
type Wrapper interface {
	Wrapping(wrap bool) Surface
}
