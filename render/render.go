// Package render turns shape.Objects into primitive calls on a
// screen.Surface.
//
// Lines are drawn by their border kind. Circles and rectangles are filled
// first and then bordered, so the border is never covered by the fill.
// Rasters are decoded bit by bit. Every call runs to completion before it
// returns and keeps no state between calls.
//
// Out-of-range style kinds, a missing colour, or an entry point called with
// the wrong shape type are programming errors and panic.
package render

import (
	"github.com/32bitkid/dashline/screen"
	"github.com/32bitkid/dashline/shape"
	"github.com/32bitkid/dashline/style"
)

// Draw renders o with the renderers selected by its type and style. Only
// rasters can fail.
func Draw(s screen.Surface, o shape.Object) error {
	switch o.Type() {
	case shape.TypeLine:
		DrawLine(s, o)
	case shape.TypeCircle:
		DrawCircle(s, o)
	case shape.TypeRect:
		DrawRect(s, o)
	case shape.TypeRaster:
		return DrawRaster(s, o)
	default:
		panic("render: unhandled " + o.Type().String())
	}
	return nil
}

func DrawLine(s screen.Surface, o shape.Object) {
	l, ok := o.Geometry().(shape.Line)
	if !ok {
		panic("render: DrawLine on " + o.Type().String())
	}
	s, cp := prepare(s, o)
	lineBorder(s, l, o.Style, cp)
}

// DrawCircle fills and then borders a circle.
func DrawCircle(s screen.Surface, o shape.Object) {
	CircleFill(s, o)
	CircleBorder(s, o)
}

func CircleBorder(s screen.Surface, o shape.Object) {
	c := mustCircle(o)
	s, cp := prepare(s, o)
	circleBorder(s, c, o.Style, cp)
}

func CircleFill(s screen.Surface, o shape.Object) {
	c := mustCircle(o)
	s, cp := prepare(s, o)
	circleFill(s, c, o.Style, cp)
}

// DrawRect fills and then borders a rectangle.
func DrawRect(s screen.Surface, o shape.Object) {
	RectFill(s, o)
	RectBorder(s, o)
}

func RectBorder(s screen.Surface, o shape.Object) {
	r := mustRect(o)
	s, cp := prepare(s, o)
	rectBorder(s, r, o.Style, cp)
}

func RectFill(s screen.Surface, o shape.Object) {
	r := mustRect(o)
	s, cp := prepare(s, o)
	rectFill(s, r, o.Style, cp)
}

// DrawRaster decodes the raster source of o. It returns ErrNoSource,
// ErrEmptySource or ErrNoWidth without drawing anything when the raster
// cannot be decoded.
func DrawRaster(s screen.Surface, o shape.Object) error {
	r, ok := o.Geometry().(shape.Raster)
	if !ok {
		panic("render: DrawRaster on " + o.Type().String())
	}
	s, cp := prepare(s, o)
	return raster(s, r, cp)
}

func mustCircle(o shape.Object) shape.Circle {
	c, ok := o.Geometry().(shape.Circle)
	if !ok {
		panic("render: circle renderer on " + o.Type().String())
	}
	return c
}

func mustRect(o shape.Object) shape.Rect {
	r, ok := o.Geometry().(shape.Rect)
	if !ok {
		panic("render: rect renderer on " + o.Type().String())
	}
	return r
}

// prepare applies the clip or wrap mode of o to surfaces that support it
// and checks the colour pair.
func prepare(s screen.Surface, o shape.Object) (screen.Surface, style.ColorPair) {
	cp := o.Colors
	if cp.Foreground == nil || cp.Background == nil {
		panic("render: object has no colors")
	}
	if w, ok := s.(screen.Wrapper); ok {
		s = w.Wrapping(o.Style.Wrap)
	}
	return s, cp
}
