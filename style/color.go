package style

import (
	"fmt"
	"image/color"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"
)

// WriteMode controls which pixels of a shape are written.
type WriteMode uint8

const (
	// WriteNormal writes set pixels in the foreground and clear pixels in the
	// background colour.
	WriteNormal WriteMode = iota
	// WriteOverlay writes only set pixels, in the foreground colour.
	WriteOverlay
	// WriteErase writes only set pixels, in the background colour.
	WriteErase
)

func (m WriteMode) String() string {
	switch m {
	case WriteNormal:
		return "Mode(Normal)"
	case WriteOverlay:
		return "Mode(Overlay)"
	case WriteErase:
		return "Mode(Erase)"
	}
	return "Mode(UNKNOWN)"
}

func (m WriteMode) Valid() bool {
	return m <= WriteErase
}

// ParseMode maps "normal", "overlay" or "erase" to a WriteMode.
func ParseMode(s string) (WriteMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return WriteNormal, nil
	case "overlay":
		return WriteOverlay, nil
	case "erase":
		return WriteErase, nil
	}
	return WriteNormal, fmt.Errorf("unknown write mode %q", s)
}

// ColorPair is the foreground/background pair a shape is drawn with.
type ColorPair struct {
	Foreground color.Color
	Background color.Color
	Invert     bool
	Mode       WriteMode
}

// Resolve returns the colour for a pixel that is set (on) or clear in the
// shape's texture. ok is false when the pixel must not be written.
func (cp ColorPair) Resolve(on bool) (c color.Color, ok bool) {
	fg, bg := cp.Foreground, cp.Background
	if cp.Invert {
		fg, bg = bg, fg
	}

	switch cp.Mode {
	case WriteOverlay:
		return fg, on
	case WriteErase:
		return bg, on
	}

	if on {
		return fg, true
	}
	return bg, true
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Colors are the named retro terminal colours.
var Colors = struct {
	Black   color.RGBA
	White   color.RGBA
	Red     color.RGBA
	Blue    color.RGBA
	Green   color.RGBA
	Amber   color.RGBA
	LtAmber color.RGBA
	Apple2  color.RGBA
	Apple2C color.RGBA
	Green1  color.RGBA
	Green2  color.RGBA
	Green3  color.RGBA
	C585NM  color.RGBA
}{
	Black:   rgb(0, 0, 0),
	White:   rgb(200, 200, 200),
	Red:     rgb(255, 0, 0),
	Blue:    rgb(0, 0, 255),
	Green:   rgb(0, 255, 0),
	Amber:   rgb(255, 176, 0),
	LtAmber: rgb(255, 204, 0),
	Apple2:  rgb(51, 255, 51),
	Apple2C: rgb(102, 255, 102),
	Green1:  rgb(51, 255, 0),
	Green2:  rgb(0, 255, 51),
	Green3:  rgb(0, 255, 102),
	C585NM:  rgb(255, 140, 23),
}

var colorNames = map[string]color.RGBA{
	"black":    Colors.Black,
	"white":    Colors.White,
	"red":      Colors.Red,
	"blue":     Colors.Blue,
	"green":    Colors.Green,
	"amber":    Colors.Amber,
	"lt_amber": Colors.LtAmber,
	"apple2":   Colors.Apple2,
	"apple2c":  Colors.Apple2C,
	"green1":   Colors.Green1,
	"green2":   Colors.Green2,
	"green3":   Colors.Green3,
	"c585nm":   Colors.C585NM,
}

// ParseColor accepts one of the named colours ("amber", "c585nm", ...) or a
// "#rrggbb" hex triplet.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[name]; ok {
		return c, nil
	}

	c, err := clr.Hex(name)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return rgb(r, g, b), nil
}
