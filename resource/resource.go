// Package resource reads and writes raster resources: packed raster bits
// stored together with the row width they are meant to be drawn at.
package resource

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"

	"github.com/32bitkid/dashline/decompression"
	"github.com/32bitkid/dashline/shape"
)

// Header precedes the payload. All fields are little endian.
type Header struct {
	Width            uint16
	Method           decompression.Method
	CompressedSize   uint16
	DecompressedSize uint16
}

var ErrNoWidth = errors.New("raster resource has no width")

// Raster is a decoded raster resource.
type Raster struct {
	Width int
	Bits  []byte
}

// Source returns the bits as a raster source.
func (r Raster) Source() *shape.Source {
	return shape.BytesSource(r.Bits)
}

// At returns a raster geometry placed at (x, y).
func (r Raster) At(x, y int) shape.Raster {
	return shape.Raster{X: x, Y: y, Width: r.Width, Source: r.Source()}
}

// ParseRaster reads a header and its payload from r, inflating the payload
// with the decompressor of the header's method.
func ParseRaster(r io.Reader, lut decompression.LUT) (Raster, error) {
	src := bufio.NewReader(r)

	var header Header
	if err := binary.Read(src, binary.LittleEndian, &header); err != nil {
		return Raster{}, fmt.Errorf("raster header: %w", err)
	}
	if header.Width == 0 {
		return Raster{}, ErrNoWidth
	}

	bits := make([]byte, header.DecompressedSize)
	if err := lut.Decompress(header.Method, src, bits, header.CompressedSize); err != nil {
		return Raster{}, fmt.Errorf("raster payload (%s): %w", header.Method, err)
	}
	return Raster{Width: int(header.Width), Bits: bits}, nil
}

// ReadRaster memory maps the resource file at path and parses it with the
// raster decompressors.
func ReadRaster(path string) (Raster, error) {
	ra, err := mmap.Open(path)
	if err != nil {
		return Raster{}, err
	}
	defer ra.Close()

	return ParseRaster(io.NewSectionReader(ra, 0, int64(ra.Len())), decompression.Decompressors.Raster)
}

// WriteRaster writes bits as an uncompressed resource.
func WriteRaster(w io.Writer, width int, bits []byte) error {
	if width <= 0 || width > 0xffff {
		return fmt.Errorf("raster width %d out of range", width)
	}
	if len(bits) > 0xffff {
		return fmt.Errorf("raster payload of %d bytes is too large", len(bits))
	}

	header := Header{
		Width:            uint16(width),
		Method:           decompression.MethodNone,
		CompressedSize:   uint16(len(bits)),
		DecompressedSize: uint16(len(bits)),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	_, err := w.Write(bits)
	return err
}
