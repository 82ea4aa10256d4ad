package render

import (
	"context"
	"log/slog"
	"math"

	"github.com/32bitkid/dashline/screen"
	"github.com/32bitkid/dashline/shape"
	"github.com/32bitkid/dashline/style"
)

// PixPerDash is the nominal dash length of a dashed line.
const PixPerDash = 10

// MaxDashes caps the dash count of very long lines. Past it the dashes
// grow longer instead of more numerous.
const MaxDashes = 1<<16 - 1

// maxPatternSteps caps the points walked by a pattern line.
const maxPatternSteps = 1 << 20

// DashCount returns the number of dashes for a line of the given length and
// the length of each. The count is always odd so a line starts and ends on
// a foreground dash; a zero or non-finite length yields no dashes.
func DashCount(length float64) (n int, per float64) {
	if !(length > 0) || math.IsInf(length, 0) {
		return 0, 0
	}
	if f := math.Floor(length / PixPerDash); f < MaxDashes {
		n = int(f)
	} else {
		n = MaxDashes
	}
	if n%2 == 0 {
		n++
	}
	return n, length / float64(n)
}

// eachDash calls fn with every dash sub-segment of l in order.
func eachDash(l shape.Line, fn func(i int, d shape.Line)) {
	dx, dy := l.X1-l.X0, l.Y1-l.Y0
	n, per := DashCount(math.Hypot(dx, dy))
	if n == 0 {
		return
	}

	var xn, yn float64
	switch {
	case dy == 0:
		// slope is zero
		xn = per
		if l.X1 < l.X0 {
			xn = -per
		}
	case dx == 0:
		// slope is infinite
		yn = per
		if l.Y1 < l.Y0 {
			yn = -per
		}
	default:
		m := dy / dx
		xn = per / math.Sqrt(1+m*m)
		yn = math.Abs(m) * xn
		if l.X1 < l.X0 {
			xn = -xn
		}
		if l.Y1 < l.Y0 {
			yn = -yn
		}
	}

	xs, ys := l.X0, l.Y0
	for i := 0; i < n; i++ {
		xe, ye := xs+xn, ys+yn
		fn(i, shape.Line{X0: xs, Y0: ys, X1: xe, Y1: ye})
		xs, ys = xe, ye
	}
}

// Dashes splits l into its dash sub-segments. Even indexes are drawn in the
// foreground, odd ones in the background.
func Dashes(l shape.Line) []shape.Line {
	n, _ := DashCount(math.Hypot(l.X1-l.X0, l.Y1-l.Y0))
	if n == 0 {
		return nil
	}
	dashes := make([]shape.Line, 0, n)
	eachDash(l, func(_ int, d shape.Line) {
		dashes = append(dashes, d)
	})
	return dashes
}

func solidLine(s screen.Surface, l shape.Line, st style.Style, cp style.ColorPair) {
	if c, ok := cp.Resolve(true); ok {
		s.Segment(l.X0, l.Y0, l.X1, l.Y1, c, st.StrokeWidth())
	}
}

func dashLine(s screen.Surface, l shape.Line, st style.Style, cp style.ColorPair) {
	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		length := math.Hypot(l.X1-l.X0, l.Y1-l.Y0)
		n, per := DashCount(length)
		log.Debug("dash line",
			slog.Float64("length", length),
			slog.Int("dashes", n),
			slog.Float64("per_dash", per))
	}

	w := st.StrokeWidth()
	eachDash(l, func(i int, d shape.Line) {
		if c, ok := cp.Resolve(i%2 == 0); ok {
			s.Segment(d.X0, d.Y0, d.X1, d.Y1, c, w)
		}
	})
}

// patternLine walks l one pixel at a time and textures every point. Lines
// longer than maxPatternSteps stop after that many points.
func patternLine(s screen.Surface, l shape.Line, st style.Style, cp style.ColorPair) {
	dx, dy := l.X1-l.X0, l.Y1-l.Y0
	length := math.Hypot(dx, dy)
	if !(length > 0) || math.IsInf(length, 0) {
		return
	}

	ux, uy := dx/length, dy/length
	steps := maxPatternSteps
	if f := math.Floor(length); f < maxPatternSteps {
		steps = int(f)
	}
	for i := 0; i <= steps; i++ {
		x := round(l.X0 + ux*float64(i))
		y := round(l.Y0 + uy*float64(i))
		if c, ok := cp.Resolve(texel(st.Pattern, x, y)); ok {
			s.Pixel(x, y, c)
		}
	}
}

func lineBorder(s screen.Surface, l shape.Line, st style.Style, cp style.ColorPair) {
	switch st.Border {
	case style.BorderNone:
	case style.BorderSolid:
		solidLine(s, l, st, cp)
	case style.BorderDash:
		dashLine(s, l, st, cp)
	case style.BorderPattern:
		patternLine(s, l, st, cp)
	default:
		panic("render: unhandled " + st.Border.String())
	}
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
