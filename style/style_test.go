package style

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternBit(t *testing.T) {
	p := Pattern(0x8001)
	assert.True(t, p.Bit(0))
	assert.False(t, p.Bit(1))
	assert.True(t, p.Bit(15))
	assert.True(t, p.Bit(16), "bit index wraps at the period")
	assert.True(t, p.Bit(-1), "negative indexes wrap too")
}

func TestPatternFromTemplate(t *testing.T) {
	assert.Equal(t, Pattern(0xAAAA), PatternFromTemplate("X-X-X-X-X-X-X-X-"))
	assert.Equal(t, Pattern(0x0F0F), PatternFromTemplate("  ____XXXX0000####  "))
	assert.Equal(t, "XX--XX--XX--XX--", DefaultPatterns.Stripes2.String())
	assert.Panics(t, func() { PatternFromTemplate("X-X") })
}

func TestParsePattern(t *testing.T) {
	cases := []struct {
		in   string
		want Pattern
	}{
		{"", 0},
		{"0xF0F0", 0xF0F0},
		{"0b1000000000000001", 0x8001},
		{"255", 255},
		{"XXXX------------", 0xF000},
	}
	for _, c := range cases {
		got, err := ParsePattern(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := ParsePattern("0x1FFFF")
	assert.Error(t, err)
	_, err = ParsePattern("stripes")
	assert.Error(t, err)
}

func TestParseKinds(t *testing.T) {
	b, err := ParseBorder("dash")
	require.NoError(t, err)
	assert.Equal(t, BorderDash, b)

	f, err := ParseFill("bars")
	require.NoError(t, err)
	assert.Equal(t, FillBars, f)

	_, err = ParseBorder("dotted")
	assert.Error(t, err)
	_, err = ParseFill("hatched")
	assert.Error(t, err)

	assert.False(t, BorderKind(9).Valid())
	assert.False(t, FillKind(4).Valid())
	assert.Equal(t, "Fill(UNKNOWN)", FillKind(4).String())
}

func TestColorPairResolve(t *testing.T) {
	fg, bg := Colors.Amber, Colors.Black
	cp := ColorPair{Foreground: fg, Background: bg}

	c, ok := cp.Resolve(true)
	assert.True(t, ok)
	assert.Equal(t, color.Color(fg), c)
	c, ok = cp.Resolve(false)
	assert.True(t, ok)
	assert.Equal(t, color.Color(bg), c)

	cp.Invert = true
	c, _ = cp.Resolve(true)
	assert.Equal(t, color.Color(bg), c)

	cp = ColorPair{Foreground: fg, Background: bg, Mode: WriteOverlay}
	c, ok = cp.Resolve(true)
	assert.True(t, ok)
	assert.Equal(t, color.Color(fg), c)
	_, ok = cp.Resolve(false)
	assert.False(t, ok)

	cp.Mode = WriteErase
	c, ok = cp.Resolve(true)
	assert.True(t, ok)
	assert.Equal(t, color.Color(bg), c)
	_, ok = cp.Resolve(false)
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("C585NM")
	require.NoError(t, err)
	assert.Equal(t, color.Color(Colors.C585NM), c)

	c, err = ParseColor("#ffb000")
	require.NoError(t, err)
	assert.Equal(t, color.Color(color.RGBA{255, 176, 0, 255}), c)

	_, err = ParseColor("mauve-ish")
	assert.Error(t, err)
}

func TestStrokeWidth(t *testing.T) {
	assert.Equal(t, 1.0, Style{}.StrokeWidth())
	assert.Equal(t, 3.0, Style{Width: 3}.StrokeWidth())
}
