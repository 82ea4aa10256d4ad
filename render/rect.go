package render

import (
	"github.com/32bitkid/dashline/screen"
	"github.com/32bitkid/dashline/shape"
	"github.com/32bitkid/dashline/style"
)

// rectBorder draws the four edges with the line renderer of the border
// kind. Corners are shared by two edges and drawn twice.
func rectBorder(s screen.Surface, r shape.Rect, st style.Style, cp style.ColorPair) {
	for _, e := range r.Edges() {
		lineBorder(s, e, st, cp)
	}
}

func fillRectSolid(s screen.Surface, r shape.Rect, cp style.ColorPair) {
	if c, ok := cp.Resolve(true); ok {
		s.FilledRect(r.X0, r.Y0, r.X1, r.Y1, c)
	}
}

func fillRectBars(s screen.Surface, r shape.Rect, st style.Style, cp style.ColorPair) {
	for x := r.X0; x <= r.X1; x++ {
		c, ok := cp.Resolve(bar(st.Pattern, x-r.X0))
		if !ok {
			continue
		}
		for y := r.Y0; y <= r.Y1; y++ {
			s.Pixel(x, y, c)
		}
	}
}

func fillRectPattern(s screen.Surface, r shape.Rect, st style.Style, cp style.ColorPair) {
	for y := r.Y0; y <= r.Y1; y++ {
		for x := r.X0; x <= r.X1; x++ {
			if c, ok := cp.Resolve(texel(st.Pattern, x, y)); ok {
				s.Pixel(x, y, c)
			}
		}
	}
}

func rectFill(s screen.Surface, r shape.Rect, st style.Style, cp style.ColorPair) {
	switch st.Fill {
	case style.FillNone:
	case style.FillSolid:
		fillRectSolid(s, r, cp)
	case style.FillBars:
		fillRectBars(s, r, st, cp)
	case style.FillPattern:
		fillRectPattern(s, r, st, cp)
	default:
		panic("render: unhandled " + st.Fill.String())
	}
}
