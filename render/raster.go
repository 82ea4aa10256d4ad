package render

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"

	"github.com/32bitkid/bitreader"

	"github.com/32bitkid/dashline/screen"
	"github.com/32bitkid/dashline/shape"
	"github.com/32bitkid/dashline/style"
)

var (
	ErrNoSource    = errors.New("raster has no source")
	ErrEmptySource = errors.New("raster source is empty")
	ErrNoWidth     = errors.New("raster width must be positive")
)

// raster decodes the packed bits of r, most significant bit first, and
// paints them row by row, wrapping every r.Width pixels back to r.X on the
// next row. Rows need not start on a byte boundary.
func raster(s screen.Surface, r shape.Raster, cp style.ColorPair) error {
	switch {
	case r.Source == nil:
		return ErrNoSource
	case r.Source.Len() == 0:
		return ErrEmptySource
	case r.Width <= 0:
		return ErrNoWidth
	}

	bits := bitreader.NewReader(bufio.NewReader(r.Source.Reader()))
	total := r.Source.Len() * 8

	x, y := r.X, r.Y
	for i := 0; i < total; i++ {
		on, err := bits.Read1()
		if err != nil {
			return fmt.Errorf("raster bit %d: %w", i, err)
		}
		if c, ok := cp.Resolve(on); ok {
			s.Pixel(x, y, c)
		}

		x++
		// rows are Width pixels long measured from the origin, not from column 0
		if x-r.X >= r.Width {
			x = r.X
			y++
		}
	}

	Logger().Debug("raster",
		slog.Int("bytes", r.Source.Len()),
		slog.Int("width", r.Width),
		slog.Int("rows", r.Rows()))
	return nil
}
