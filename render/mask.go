package render

import (
	"math"

	"github.com/32bitkid/dashline/style"
)

// Texture reports whether pattern p is set at (x, y). The bit index is
// floor(x+y) mod 16, most significant bit first, so a pattern paints
// diagonal stripes tied to the surface and not to the shape.
func Texture(p style.Pattern, x, y float64) bool {
	return p.Bit(int(math.Floor(x + y)))
}

func texel(p style.Pattern, x, y int) bool {
	return p.Bit(x + y)
}

// bar reports whether column i of a vertical-bar fill is set. Columns are
// counted from the left edge of the shape.
func bar(p style.Pattern, i int) bool {
	return p.Bit(i % style.PatternPeriod)
}
