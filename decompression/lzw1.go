package decompression

import (
	"io"

	"github.com/32bitkid/bitreader"
)

const (
	lzwReset    uint16 = 0x100
	lzwEnd      uint16 = 0x101
	lzwFirst    uint16 = 0x102
	lzwLimit    uint16 = 0x1ff
	lzwMaxBits         = 12
	lzwTableLen        = 0x1014
)

type lzwEntry struct {
	suffix uint8
	prefix uint16
}

// lzwDecoder holds the dictionary of a variable width LZW stream. Codes
// start at 9 bits and widen up to 12 as the table fills; a reset code
// restarts the dictionary.
type lzwDecoder struct {
	bits  bitreader.BitReader
	table [lzwTableLen]lzwEntry
	stack []uint8

	width uint
	next  uint16
	limit uint16

	prev     uint16
	lastByte uint8
}

func (d *lzwDecoder) reset() {
	d.width = 9
	d.next = lzwFirst
	d.limit = lzwLimit
}

// expand pushes the bytes of code onto the stack in reverse order.
func (d *lzwDecoder) expand(code uint16) {
	if code >= d.next {
		d.stack = append(d.stack, d.lastByte)
		code = d.prev
	}
	for code > 0xff && code < 0x1004 {
		d.stack = append(d.stack, d.table[code].suffix)
		code = d.table[code].prefix
	}
	d.lastByte = uint8(code)
	d.stack = append(d.stack, d.lastByte)
}

func (d *lzwDecoder) learn(code uint16) {
	if d.next <= d.limit {
		d.table[d.next] = lzwEntry{suffix: d.lastByte, prefix: d.prev}
		d.next++
		if d.next == d.limit && d.width < lzwMaxBits {
			d.width++
			d.limit = d.limit<<1 + 1
		}
	}
	d.prev = code
}

func lzw1(dst []byte, src io.Reader) error {
	d := lzwDecoder{bits: bitreader.NewReader(src)}
	d.reset()

	n := 0
	fresh := true
	for n < len(dst) {
		code, err := d.bits.Read16(d.width)
		if err != nil {
			return err
		}

		switch {
		case code == lzwEnd:
			return short(len(dst), n)
		case code == lzwReset:
			d.reset()
			fresh = true
			continue
		case fresh:
			d.lastByte = uint8(code)
			d.prev = code
			dst[n] = d.lastByte
			n++
			fresh = false
			continue
		}

		d.expand(code)
		for len(d.stack) > 0 && n < len(dst) {
			top := len(d.stack) - 1
			dst[n] = d.stack[top]
			d.stack = d.stack[:top]
			n++
		}
		d.stack = d.stack[:0]
		d.learn(code)
	}
	return nil
}
