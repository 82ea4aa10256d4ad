package decompression

import (
	"encoding/binary"
	"io"

	"github.com/32bitkid/bitreader"
)

// A huffman payload starts with a node count, a terminator byte and the
// node table. Each node holds a value and two 4-bit forward offsets; an
// offset of zero on an inner node means an 8-bit literal follows.
type huffmanNode struct {
	Value    uint8
	Siblings uint8
}

type huffmanTree struct {
	nodes []huffmanNode
	bits  bitreader.BitReader
}

// symbol walks the tree from the root. literal is set when the symbol was
// read as a raw byte instead of from a leaf.
func (h *huffmanTree) symbol() (value uint8, literal bool, err error) {
	idx := 0
	for {
		if idx >= len(h.nodes) {
			return 0, false, io.ErrUnexpectedEOF
		}
		node := h.nodes[idx]
		if node.Siblings == 0 {
			return node.Value, false, nil
		}

		bit, err := h.bits.Read1()
		if err != nil {
			return 0, false, err
		}

		offset := int(node.Siblings >> 4)
		if bit {
			offset = int(node.Siblings & 0x0f)
		}
		if offset == 0 {
			v, err := h.bits.Read8(8)
			return v, true, err
		}
		idx += offset
	}
}

func huffman(dst []byte, src io.Reader) error {
	var header struct {
		Count      uint8
		Terminator uint8
	}
	if err := binary.Read(src, binary.LittleEndian, &header); err != nil {
		return err
	}

	nodes := make([]huffmanNode, header.Count)
	if err := binary.Read(src, binary.LittleEndian, &nodes); err != nil {
		return err
	}

	tree := huffmanTree{nodes: nodes, bits: bitreader.NewReader(src)}
	n := 0
	for {
		v, literal, err := tree.symbol()
		if err != nil {
			return err
		}
		if literal && v == header.Terminator {
			break
		}
		if n == len(dst) {
			return short(len(dst), n+1)
		}
		dst[n] = v
		n++
	}

	if n != len(dst) {
		return short(len(dst), n)
	}
	return nil
}
