package screen

import (
	"image"

	"golang.org/x/image/draw"
)

// Scaler turns a rendered buffer into its presentation image.
type Scaler interface {
	Scale(src image.Image) image.Image
}

// Nearest enlarges every pixel to an n x n block. Values below 2 return the
// source unchanged.
type Nearest int

func (n Nearest) Scale(src image.Image) image.Image {
	if n < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*int(n), b.Dy()*int(n)))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
