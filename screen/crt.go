package screen

import (
	"image"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Shadow mask triads. Each stripe passes its own primary at full strength
// and the other two at 60%.
var triad = [3]clr.Color{
	{R: 1, G: 0.6, B: 0.6},
	{R: 0.6, G: 1, B: 0.6},
	{R: 0.6, G: 0.6, B: 1},
}

// scanline darkens the rows at the top and bottom edge of a cell.
func scanline(iy, n int) float64 {
	switch iy {
	case 0:
		return 0.7
	case 1:
		return 0.2
	case n - 2:
		return 0.1
	case n - 1:
		return 0.4
	}
	return 0
}

// CRT imitates an old terminal tube: every source pixel becomes a
// Factor x Factor cell with horizontal bleed into its neighbours, darkened
// scan-line edges, and either an RGB shadow mask or, when Phosphor is set, a
// single-phosphor tint.
type CRT struct {
	Factor   int
	Phosphor color.Color
}

func (crt CRT) Scale(src image.Image) image.Image {
	n := crt.Factor
	if n < 3 {
		n = 3
	}

	var phosphor *clr.Color
	if crt.Phosphor != nil {
		p, _ := clr.MakeColor(crt.Phosphor)
		phosphor = &p
	}

	r := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*n, r.Dy()*n))
	for sy, dy := r.Min.Y, 0; sy < r.Max.Y; sy, dy = sy+1, dy+n {
		for sx, dx := r.Min.X, 0; sx < r.Max.X; sx, dx = sx+1, dx+n {
			c := tube{
				left:  colorAt(src, max(sx-1, r.Min.X), sy),
				mid:   colorAt(src, sx, sy),
				right: colorAt(src, min(sx+1, r.Max.X-1), sy),
			}
			for iy := 0; iy < n; iy++ {
				for ix := 0; ix < n; ix++ {
					dst.Set(dx+ix, dy+iy, c.glow(ix, iy, n, phosphor))
				}
			}
		}
	}
	return dst
}

func colorAt(img image.Image, x, y int) clr.Color {
	c, _ := clr.MakeColor(img.At(x, y))
	return c
}

// tube is one source pixel with its horizontal neighbours.
type tube struct {
	left, mid, right clr.Color
}

func grey(c clr.Color) bool {
	return c.R == c.G && c.G == c.B
}

// blend mixes in Lab space unless one side is grey, where Lab drifts the hue.
func blend(a, b clr.Color, t float64) clr.Color {
	if grey(a) || grey(b) {
		return a.BlendRgb(b, t)
	}
	return a.BlendLab(b, t)
}

func (c tube) glow(ix, iy, n int, phosphor *clr.Color) color.Color {
	co := c.mid

	// the left half of a cell leans towards the left neighbour, the right
	// half towards the right one
	t := (float64(ix) + 0.5) / float64(n)
	switch {
	case t < 0.5:
		co = blend(c.left, c.mid, 0.5+t).Clamped()
	case t > 0.5:
		co = blend(c.mid, c.right, t-0.5).Clamped()
	}

	if p := scanline(iy, n); p > 0 {
		h, ch, l := co.Hcl()
		co = clr.Hcl(h, ch, l-p*l).Clamped()
	}

	mask := phosphor
	if mask == nil {
		third := ix * 3 / n
		if iy%2 == 1 {
			third = (third + 1) % 3
		}
		mask = &triad[third]
	}

	r, g, b := clr.Color{R: co.R * mask.R, G: co.G * mask.G, B: co.B * mask.B}.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
