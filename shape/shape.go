// Package shape describes the geometry of the drawable objects and the
// Object that combines a geometry with its style and colours.
package shape

type Type uint8

const (
	TypeLine Type = iota
	TypeCircle
	TypeRect
	TypeRaster
)

func (t Type) String() string {
	switch t {
	case TypeLine:
		return "Type(Line)"
	case TypeCircle:
		return "Type(Circle)"
	case TypeRect:
		return "Type(Rect)"
	case TypeRaster:
		return "Type(Raster)"
	}
	return "Type(UNKNOWN)"
}

// Geometry is implemented by Line, Circle, Rect and Raster only.
type Geometry interface {
	Type() Type
	geometry()
}

// Line runs from (X0, Y0) to (X1, Y1).
type Line struct {
	X0, Y0, X1, Y1 float64
}

func (Line) Type() Type { return TypeLine }
func (Line) geometry()  {}

// Circle is centred on (X, Y) with radius R >= 0.
type Circle struct {
	X, Y, R float64
}

func (Circle) Type() Type { return TypeCircle }
func (Circle) geometry()  {}

// Rect spans the corners (X0, Y0) and (X1, Y1) inclusively. Callers must
// pass X1 >= X0 and Y1 >= Y0.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (Rect) Type() Type { return TypeRect }
func (Rect) geometry()  {}

func (r Rect) Width() int  { return r.X1 - r.X0 }
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Edges returns the top, right, left and bottom edges, in that order.
func (r Rect) Edges() [4]Line {
	x0, y0, x1, y1 := float64(r.X0), float64(r.Y0), float64(r.X1), float64(r.Y1)
	return [4]Line{
		{x0, y0, x1, y0},
		{x1, y0, x1, y1},
		{x0, y0, x0, y1},
		{x0, y1, x1, y1},
	}
}

// Raster is a packed 1-bit bitmap whose rows are Width pixels long, drawn
// with its first pixel at (X, Y). Source is borrowed, never owned.
type Raster struct {
	X, Y   int
	Width  int
	Source *Source
}

func (Raster) Type() Type { return TypeRaster }
func (Raster) geometry()  {}

// Rows is the number of rows the raster covers.
func (r Raster) Rows() int {
	if r.Width <= 0 || r.Source == nil {
		return 0
	}
	bits := r.Source.Len() * 8
	return (bits + r.Width - 1) / r.Width
}

func zeroGeometry(t Type) Geometry {
	switch t {
	case TypeLine:
		return Line{}
	case TypeCircle:
		return Circle{}
	case TypeRect:
		return Rect{}
	case TypeRaster:
		return Raster{}
	}
	panic("shape: invalid " + t.String())
}
