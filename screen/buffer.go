package screen

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Buffer is a Surface over an in-memory image. Pixels outside the bounds
// are dropped, or wrapped around when the buffer was obtained through
// Wrapping(true).
type Buffer struct {
	draw.Image
	wrap bool
}

// NewBuffer allocates a buffer. With a palette the pixels are stored as an
// *image.Paletted and every colour is mapped to its nearest palette entry;
// without one they are stored as *image.RGBA.
func NewBuffer(bounds image.Rectangle, palette color.Palette) *Buffer {
	if palette != nil {
		return &Buffer{Image: image.NewPaletted(bounds, palette)}
	}
	return &Buffer{Image: image.NewRGBA(bounds)}
}

// Clear sets every pixel to c.
func (buf *Buffer) Clear(c color.Color) {
	draw.Draw(buf.Image, buf.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Wrapping returns a view of the same pixels with the given out-of-bounds
// behaviour.
func (buf *Buffer) Wrapping(wrap bool) Surface {
	if wrap == buf.wrap {
		return buf
	}
	return &Buffer{Image: buf.Image, wrap: wrap}
}

func (buf *Buffer) Pixel(x, y int, c color.Color) {
	r := buf.Bounds()
	if !(image.Point{x, y}).In(r) {
		if !buf.wrap || r.Empty() {
			return
		}
		x = r.Min.X + mod(x-r.Min.X, r.Dx())
		y = r.Min.Y + mod(y-r.Min.Y, r.Dy())
	}
	buf.Set(x, y, c)
}

// Segment draws a Bresenham line between the rounded endpoints.
func (buf *Buffer) Segment(x0, y0, x1, y1 float64, c color.Color, width float64) {
	left, top, right, bottom := round(x0), round(y0), round(x1), round(y1)
	size := brushSize(width)

	switch {
	case left == right:
		swapIf(&top, &bottom, top > bottom)
		for y := top; y <= bottom; y++ {
			buf.plot(left, y, c, size)
		}
	case top == bottom:
		swapIf(&left, &right, left > right)
		for x := left; x <= right; x++ {
			buf.plot(x, top, c, size)
		}
	default:
		dx, dy := absInt(right-left), absInt(bottom-top)
		stepX, stepY := sign(right-left), sign(bottom-top)
		dx, dy = dx<<1, dy<<1

		buf.plot(left, top, c, size)
		if dx > dy {
			fraction := dy - (dx >> 1)
			for left != right {
				if fraction >= 0 {
					top += stepY
					fraction -= dx
				}
				left += stepX
				fraction += dy
				buf.plot(left, top, c, size)
			}
		} else {
			fraction := dx - (dy >> 1)
			for top != bottom {
				if fraction >= 0 {
					left += stepX
					fraction -= dy
				}
				top += stepY
				fraction += dx
				buf.plot(left, top, c, size)
			}
		}
	}
}

// Arc approximates the arc with chords about one pixel long. Angles are in
// radians, clockwise in screen space from the positive x axis.
func (buf *Buffer) Arc(cx, cy, r, start, sweep float64, c color.Color, width float64) {
	if r <= 0 {
		buf.plot(round(cx), round(cy), c, brushSize(width))
		return
	}

	steps := int(math.Ceil(math.Abs(sweep) * r))
	if steps < 1 {
		steps = 1
	}

	px, py := cx+r*math.Cos(start), cy+r*math.Sin(start)
	for i := 1; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		nx, ny := cx+r*math.Cos(a), cy+r*math.Sin(a)
		buf.Segment(px, py, nx, ny, c, width)
		px, py = nx, ny
	}
}

func (buf *Buffer) FilledRect(x0, y0, x1, y1 int, c color.Color) {
	swapIf(&x0, &x1, x0 > x1)
	swapIf(&y0, &y1, y0 > y1)

	if !buf.wrap {
		r := image.Rect(x0, y0, x1+1, y1+1).Intersect(buf.Bounds())
		draw.Draw(buf.Image, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
		return
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			buf.Pixel(x, y, c)
		}
	}
}

func (buf *Buffer) plot(x, y int, c color.Color, size int) {
	if size <= 1 {
		buf.Pixel(x, y, c)
		return
	}
	off := (size - 1) / 2
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			buf.Pixel(x-off+dx, y-off+dy, c)
		}
	}
}

func brushSize(width float64) int {
	if width <= 1 {
		return 1
	}
	return round(width)
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}
