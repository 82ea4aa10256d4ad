// Package decompression inflates the payloads of raster resources.
package decompression

import (
	"compress/lzw"
	"fmt"
	"io"
)

// Method identifies the compression of a payload.
type Method uint16

const (
	MethodNone Method = iota
	MethodLZW
	MethodHuffman
	MethodLZW1
)

func (m Method) String() string {
	switch m {
	case MethodNone:
		return "Method(None)"
	case MethodLZW:
		return "Method(LZW)"
	case MethodHuffman:
		return "Method(Huffman)"
	case MethodLZW1:
		return "Method(LZW1)"
	}
	return "Method(UNKNOWN)"
}

// Decompressor reads at most compressedSize bytes from src and fills dst,
// which is sized to the decompressed length.
type Decompressor = func(src io.Reader, dst []byte, compressedSize uint16) error

type LUT map[Method]Decompressor

// Decompress fills dst using the decompressor registered for m.
func (lut LUT) Decompress(m Method, src io.Reader, dst []byte, compressedSize uint16) error {
	fn, ok := lut[m]
	if !ok {
		return fmt.Errorf("unhandled compression method: %d", uint16(m))
	}
	return fn(src, dst, compressedSize)
}

func DecompressNone(src io.Reader, dst []byte, compressedSize uint16) error {
	if int(compressedSize) < len(dst) {
		return fmt.Errorf("stored payload of %d bytes cannot fill %d bytes", compressedSize, len(dst))
	}
	_, err := io.ReadFull(io.LimitReader(src, int64(compressedSize)), dst)
	return err
}

func DecompressLZW(src io.Reader, dst []byte, compressedSize uint16) error {
	lzwr := lzw.NewReader(io.LimitReader(src, int64(compressedSize)), lzw.LSB, 8)
	defer lzwr.Close()
	_, err := io.ReadFull(lzwr, dst)
	return err
}

func DecompressHuffman(src io.Reader, dst []byte, compressedSize uint16) error {
	return huffman(dst, io.LimitReader(src, int64(compressedSize)))
}

func DecompressLZW1(src io.Reader, dst []byte, compressedSize uint16) error {
	return lzw1(dst, io.LimitReader(src, int64(compressedSize)))
}

var Decompressors = struct {
	Raster LUT
}{
	Raster: LUT{
		MethodNone:    DecompressNone,
		MethodLZW:     DecompressLZW,
		MethodHuffman: DecompressHuffman,
		MethodLZW1:    DecompressLZW1,
	},
}

func short(want, got int) error {
	return fmt.Errorf("read aborted early. expected(%d) != actual(%d)", want, got)
}
