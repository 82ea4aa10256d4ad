package screen

import "image/color"

type OpKind uint8

const (
	OpPixel OpKind = iota
	OpSegment
	OpArc
	OpFilledRect
)

func (k OpKind) String() string {
	switch k {
	case OpPixel:
		return "Op(Pixel)"
	case OpSegment:
		return "Op(Segment)"
	case OpArc:
		return "Op(Arc)"
	case OpFilledRect:
		return "Op(FilledRect)"
	}
	return "Op(UNKNOWN)"
}

// Op is one recorded primitive call. Pixels and rectangles use X0..Y1,
// arcs use X0, Y0 as the centre together with R, Start and Sweep.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	R, Start       float64
	Sweep          float64
	Width          float64
	Color          color.Color
}

// Recorder is a Surface that appends every call to Ops instead of drawing.
type Recorder struct {
	Ops []Op
}

func (rec *Recorder) Pixel(x, y int, c color.Color) {
	rec.Ops = append(rec.Ops, Op{Kind: OpPixel, X0: float64(x), Y0: float64(y), Color: c})
}

func (rec *Recorder) Segment(x0, y0, x1, y1 float64, c color.Color, width float64) {
	rec.Ops = append(rec.Ops, Op{Kind: OpSegment, X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c, Width: width})
}

func (rec *Recorder) Arc(cx, cy, r, start, sweep float64, c color.Color, width float64) {
	rec.Ops = append(rec.Ops, Op{Kind: OpArc, X0: cx, Y0: cy, R: r, Start: start, Sweep: sweep, Color: c, Width: width})
}

func (rec *Recorder) FilledRect(x0, y0, x1, y1 int, c color.Color) {
	rec.Ops = append(rec.Ops, Op{
		Kind: OpFilledRect,
		X0:   float64(x0), Y0: float64(y0),
		X1: float64(x1), Y1: float64(y1),
		Color: c,
	})
}

// Filter returns the recorded ops of the given kind.
func (rec *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range rec.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

func (rec *Recorder) Reset() {
	rec.Ops = rec.Ops[:0]
}
