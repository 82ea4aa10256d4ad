package render

import (
	"math"

	"github.com/32bitkid/dashline/screen"
	"github.com/32bitkid/dashline/shape"
	"github.com/32bitkid/dashline/style"
)

// DashPerCircle is the number of arcs a dashed circle border is split into.
const DashPerCircle = 24

// columns calls fn for every integer column across the circle, left to
// right, with the column index and the top and bottom of the circle in that
// column from y = cy ± sqrt(r² - (x-cx)²).
func columns(c shape.Circle, fn func(i, x int, top, bottom float64)) {
	left := int(math.Ceil(c.X - c.R))
	right := int(math.Floor(c.X + c.R))
	for x := left; x <= right; x++ {
		dx := float64(x) - c.X
		h := c.R*c.R - dx*dx
		if h < 0 {
			h = 0
		}
		dy := math.Sqrt(h)
		fn(x-left, x, c.Y-dy, c.Y+dy)
	}
}

func span(top, bottom float64) (int, int) {
	return int(math.Ceil(top)), int(math.Floor(bottom))
}

func solidCircle(s screen.Surface, c shape.Circle, st style.Style, cp style.ColorPair) {
	if col, ok := cp.Resolve(true); ok {
		s.Arc(c.X, c.Y, c.R, 0, 2*math.Pi, col, st.StrokeWidth())
	}
}

// dashCircle alternates arcs starting with the background, the reverse of
// dashLine.
func dashCircle(s screen.Surface, c shape.Circle, st style.Style, cp style.ColorPair) {
	dd := 2 * math.Pi / DashPerCircle
	w := st.StrokeWidth()
	for i := 0; i < DashPerCircle; i++ {
		if col, ok := cp.Resolve(i%2 == 1); ok {
			s.Arc(c.X, c.Y, c.R, float64(i)*dd, dd, col, w)
		}
	}
}

func patternCircle(s screen.Surface, c shape.Circle, st style.Style, cp style.ColorPair) {
	columns(c, func(_, x int, top, bottom float64) {
		for _, y := range [2]int{round(top), round(bottom)} {
			if col, ok := cp.Resolve(texel(st.Pattern, x, y)); ok {
				s.Pixel(x, y, col)
			}
		}
	})
}

func fillCircleSolid(s screen.Surface, c shape.Circle, cp style.ColorPair) {
	col, ok := cp.Resolve(true)
	if !ok {
		return
	}
	columns(c, func(_, x int, top, bottom float64) {
		y0, y1 := span(top, bottom)
		for y := y0; y <= y1; y++ {
			s.Pixel(x, y, col)
		}
	})
}

// fillCircleBars skips the one-pixel columns at the horizontal extremes,
// where top and bottom meet.
func fillCircleBars(s screen.Surface, c shape.Circle, st style.Style, cp style.ColorPair) {
	columns(c, func(i, x int, top, bottom float64) {
		if top >= bottom {
			return
		}
		col, ok := cp.Resolve(bar(st.Pattern, i))
		if !ok {
			return
		}
		y0, y1 := span(top, bottom)
		for y := y0; y <= y1; y++ {
			s.Pixel(x, y, col)
		}
	})
}

func fillCirclePattern(s screen.Surface, c shape.Circle, st style.Style, cp style.ColorPair) {
	columns(c, func(_, x int, top, bottom float64) {
		y0, y1 := span(top, bottom)
		for y := y0; y <= y1; y++ {
			if col, ok := cp.Resolve(texel(st.Pattern, x, y)); ok {
				s.Pixel(x, y, col)
			}
		}
	})
}

func circleBorder(s screen.Surface, c shape.Circle, st style.Style, cp style.ColorPair) {
	switch st.Border {
	case style.BorderNone:
	case style.BorderSolid:
		solidCircle(s, c, st, cp)
	case style.BorderDash:
		dashCircle(s, c, st, cp)
	case style.BorderPattern:
		patternCircle(s, c, st, cp)
	default:
		panic("render: unhandled " + st.Border.String())
	}
}

func circleFill(s screen.Surface, c shape.Circle, st style.Style, cp style.ColorPair) {
	switch st.Fill {
	case style.FillNone:
	case style.FillSolid:
		fillCircleSolid(s, c, cp)
	case style.FillBars:
		fillCircleBars(s, c, st, cp)
	case style.FillPattern:
		fillCirclePattern(s, c, st, cp)
	default:
		panic("render: unhandled " + st.Fill.String())
	}
}
