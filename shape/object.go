package shape

import (
	"fmt"
	"image/color"

	"github.com/32bitkid/dashline/style"
)

// Object is one drawable: a geometry plus the style and colours it is
// painted with. It is a plain value; a renderer works on its own copy, so
// reconfiguring an Object after a draw never affects that draw.
//
// The zero Object is an invisible line at the origin.
type Object struct {
	geometry Geometry
	Style    style.Style
	Colors   style.ColorPair
}

// New returns an Object for g with the given style and colours. It panics
// when the style holds an out-of-range kind.
func New(g Geometry, s style.Style, cp style.ColorPair) Object {
	var o Object
	o.SetGeometry(g)
	o.SetStyle(s.Border, s.Fill, s.Pattern)
	o.Style.Wrap = s.Wrap
	o.Style.Width = s.Width
	o.SetColors(cp)
	return o
}

// Type is always the type of the current geometry.
func (o Object) Type() Type {
	return o.Geometry().Type()
}

func (o Object) Geometry() Geometry {
	if o.geometry == nil {
		return Line{}
	}
	return o.geometry
}

// SetType switches the object to another shape type. The geometry is reset
// to the zero value of that type unless it already has the type.
func (o *Object) SetType(t Type) {
	if o.geometry != nil && o.geometry.Type() == t {
		return
	}
	o.geometry = zeroGeometry(t)
}

func (o *Object) SetGeometry(g Geometry) {
	if g == nil {
		panic("shape: nil geometry")
	}
	o.geometry = g
}

func (o *Object) SetLine(x0, y0, x1, y1 float64) {
	o.geometry = Line{x0, y0, x1, y1}
}

func (o *Object) SetCircle(x, y, r float64) {
	if r < 0 {
		panic(fmt.Sprintf("shape: negative circle radius %v", r))
	}
	o.geometry = Circle{x, y, r}
}

func (o *Object) SetRect(x0, y0, x1, y1 int) {
	o.geometry = Rect{x0, y0, x1, y1}
}

// SetRaster attaches src as the raster drawn at (x, y) with rows of width
// pixels. src is borrowed.
func (o *Object) SetRaster(x, y, width int, src *Source) {
	if src == nil {
		panic("shape: nil raster source")
	}
	o.geometry = Raster{X: x, Y: y, Width: width, Source: src}
}

// SetStyle sets the border and fill kinds and the texture pattern. Kinds
// outside their enumerations are a programming error and panic.
func (o *Object) SetStyle(border style.BorderKind, fill style.FillKind, pattern style.Pattern) {
	if !border.Valid() {
		panic("shape: invalid " + border.String())
	}
	if !fill.Valid() {
		panic("shape: invalid " + fill.String())
	}
	o.Style.Border = border
	o.Style.Fill = fill
	o.Style.Pattern = pattern
}

func (o *Object) SetPattern(p style.Pattern) {
	o.Style.Pattern = p
}

func (o *Object) SetWidth(w float64) {
	o.Style.Width = w
}

// SetWrap selects wrapping (true) or clipping (false) of pixels that fall
// outside the surface.
func (o *Object) SetWrap(wrap bool) {
	o.Style.Wrap = wrap
}

// SetColors sets the colour pair. It panics on an unknown write mode or a
// missing colour.
func (o *Object) SetColors(cp style.ColorPair) {
	if !cp.Mode.Valid() {
		panic("shape: invalid " + cp.Mode.String())
	}
	if cp.Foreground == nil || cp.Background == nil {
		panic("shape: color pair needs both colors")
	}
	o.Colors = cp
}

// SetColorPair is SetColors for the common case.
func (o *Object) SetColorPair(fg, bg color.Color, invert bool, mode style.WriteMode) {
	o.SetColors(style.ColorPair{Foreground: fg, Background: bg, Invert: invert, Mode: mode})
}
