package screen

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/32bitkid/dashline/style"
)

type rgb24Color uint32

func (rgb24 rgb24Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (rgb24>>16)&0xFF, (rgb24>>8)&0xFF, (rgb24>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

var DefaultPalettes = struct {
	EGA   color.Palette
	Retro color.Palette
	Amber color.Palette
	Green color.Palette
}{
	EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x0000AA),
		rgb24Color(0x00AA00),
		rgb24Color(0x00AAAA),
		rgb24Color(0xAA0000),
		rgb24Color(0xAA00AA),
		rgb24Color(0xAA5500),
		rgb24Color(0xAAAAAA),

		rgb24Color(0x555555),
		rgb24Color(0x5555FF),
		rgb24Color(0x55FF55),
		rgb24Color(0x55FFFF),
		rgb24Color(0xFF5555),
		rgb24Color(0xFF55FF),
		rgb24Color(0xFFFF55),
		rgb24Color(0xFFFFFF),
	},
	Retro: color.Palette{
		style.Colors.Black,
		style.Colors.White,
		style.Colors.Red,
		style.Colors.Blue,
		style.Colors.Green,
		style.Colors.Amber,
		style.Colors.LtAmber,
		style.Colors.Apple2,
		style.Colors.Apple2C,
		style.Colors.Green1,
		style.Colors.Green2,
		style.Colors.Green3,
		style.Colors.C585NM,
	},
	// monochrome terminals: black plus one phosphor
	Amber: color.Palette{style.Colors.Black, style.Colors.Amber},
	Green: color.Palette{style.Colors.Black, style.Colors.Apple2},
}

// PaletteByName resolves "ega", "retro", "amber" or "green". The names
// "" and "rgb" select no palette (true colour).
func PaletteByName(name string) (color.Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rgb":
		return nil, nil
	case "ega":
		return DefaultPalettes.EGA, nil
	case "retro":
		return DefaultPalettes.Retro, nil
	case "amber":
		return DefaultPalettes.Amber, nil
	case "green":
		return DefaultPalettes.Green, nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}
