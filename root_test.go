package dashline

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/32bitkid/dashline/render"
	"github.com/32bitkid/dashline/resource"
	"github.com/32bitkid/dashline/screen"
	"github.com/32bitkid/dashline/shape"
	"github.com/32bitkid/dashline/style"
)

const sceneYAML = `
width: 64
height: 48
background: "#000000"
foreground: amber
objects:
  - type: rect
    at: [4, 4, 40, 20]
    border: dash
    fill: bars
    pattern: "XXXX----XXXX----"
  - type: circle
    at: [30, 30, 8]
    fill: solid
    foreground: red
  - type: line
    at: [0, 47, 63, 47]
    border: pattern
    pattern: 0xAAAA
    mode: overlay
`

func TestParseScene(t *testing.T) {
	sc, err := ParseScene([]byte(sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, 64, sc.Width)
	assert.Equal(t, 48, sc.Height)
	require.Len(t, sc.Objects, 3)
	assert.Equal(t, "rect", sc.Objects[0].Type)
	assert.Equal(t, []float64{30, 30, 8}, sc.Objects[1].At)

	o, src, err := sc.Objects[0].Shape("", style.ColorPair{Foreground: style.Colors.Amber, Background: style.Colors.Black})
	require.NoError(t, err)
	assert.Nil(t, src)
	assert.Equal(t, shape.Rect{X0: 4, Y0: 4, X1: 40, Y1: 20}, o.Geometry())
	assert.Equal(t, style.BorderDash, o.Style.Border)
	assert.Equal(t, style.FillBars, o.Style.Fill)
	assert.Equal(t, style.Pattern(0xF0F0), o.Style.Pattern)
}

func TestParseSceneDefaults(t *testing.T) {
	sc, err := ParseScene(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, sc.Width)
	assert.Equal(t, DefaultHeight, sc.Height)
	assert.Empty(t, sc.Objects)

	_, err = ParseScene([]byte("widht: 10\n"))
	assert.Error(t, err)

	_, err = ParseScene([]byte("width: -1\n"))
	assert.Error(t, err)
}

func TestParseSceneOverKeepsBaseCanvas(t *testing.T) {
	base := DefaultScene()
	base.Width, base.Height, base.Background = 32, 16, "white"

	sc, err := ParseSceneOver([]byte("height: 24\nobjects:\n  - {type: line, at: [0, 0, 5, 0], border: solid}\n"), base)
	require.NoError(t, err)
	assert.Equal(t, 32, sc.Width)
	assert.Equal(t, 24, sc.Height)
	assert.Equal(t, "white", sc.Background)
	assert.Equal(t, "c585nm", sc.Foreground)
	require.Len(t, sc.Objects, 1, "base objects are replaced")
	assert.Len(t, base.Objects, 3)
}

func TestDefaultSceneDrawsDashedTriangle(t *testing.T) {
	var rec screen.Recorder
	require.NoError(t, DefaultScene().Render(&rec))

	segs := rec.Filter(screen.OpSegment)
	require.Len(t, rec.Ops, len(segs))
	// 190 px, 290 px and the 346.7 px diagonal
	assert.Len(t, segs, 19+29+35)
	assert.Equal(t, color.Color(style.Colors.C585NM), segs[0].Color)
	assert.Equal(t, color.Color(style.Colors.Black), segs[1].Color)
}

func TestSceneCanvas(t *testing.T) {
	sc, err := ParseScene([]byte(sceneYAML))
	require.NoError(t, err)

	buf, err := sc.Canvas(nil)
	require.NoError(t, err)
	require.NoError(t, sc.Render(buf))

	assert.Equal(t, image.Rect(0, 0, 64, 48), buf.Bounds())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, color.RGBAModel.Convert(buf.At(30, 30)))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, color.RGBAModel.Convert(buf.At(63, 0)))
}

func TestSceneRasters(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bits.bin"), []byte{0xA0}, 0o644))

	var res bytes.Buffer
	require.NoError(t, resource.WriteRaster(&res, 4, []byte{0xF0}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bits.res"), res.Bytes(), 0o644))

	sc := Scene{
		Width: 8, Height: 8, Background: "black", Foreground: "white", Dir: dir,
		Objects: []Object{
			{Type: "raster", At: []float64{0, 0}, Raster: "bits.bin", RasterWidth: 3},
			{Type: "raster", At: []float64{4, 4}, Raster: "bits.res", Resource: true},
		},
	}

	var rec screen.Recorder
	require.NoError(t, sc.Render(&rec))

	pixels := rec.Filter(screen.OpPixel)
	require.Len(t, pixels, 16)
	assert.Equal(t, screen.Op{Kind: screen.OpPixel, X0: 0, Y0: 0, Color: style.Colors.White}, pixels[0])
	assert.Equal(t, screen.Op{Kind: screen.OpPixel, X0: 4, Y0: 4, Color: style.Colors.White}, pixels[8])
	assert.Equal(t, screen.Op{Kind: screen.OpPixel, X0: 4, Y0: 5, Color: style.Colors.Black}, pixels[12])
}

func TestSceneErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bits.bin"), []byte{0xFF}, 0o644))

	cases := map[string]Object{
		"border":   {Type: "line", At: []float64{0, 0, 1, 1}, Border: "dotted"},
		"fill":     {Type: "rect", At: []float64{0, 0, 1, 1}, Fill: "hatch"},
		"type":     {Type: "polygon", At: []float64{0, 0}},
		"coords":   {Type: "circle", At: []float64{0, 0}},
		"radius":   {Type: "circle", At: []float64{0, 0, -1}},
		"pattern":  {Type: "line", At: []float64{0, 0, 1, 1}, Pattern: "0xZZ"},
		"color":    {Type: "line", At: []float64{0, 0, 1, 1}, Foreground: "mauve-ish"},
		"mode":     {Type: "line", At: []float64{0, 0, 1, 1}, Mode: "xor"},
		"no file":  {Type: "raster", At: []float64{0, 0}},
		"missing":  {Type: "raster", At: []float64{0, 0}, Raster: "nope.bin", RasterWidth: 8},
		"resource": {Type: "raster", At: []float64{0, 0}, Raster: "bits.bin", Resource: true},
	}
	for name, spec := range cases {
		var rec screen.Recorder
		sc := Scene{
			Width: 8, Height: 8, Background: "black", Foreground: "white", Dir: dir,
			Objects: []Object{{Type: "line", At: []float64{0, 0, 7, 7}, Border: "solid"}, spec},
		}
		assert.Error(t, sc.Render(&rec), name)
		assert.Empty(t, rec.Ops, name)
	}
}

func TestSceneReturnsDrawErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bits.bin"), []byte{0xFF}, 0o644))

	sc := Scene{
		Width: 8, Height: 8, Background: "black", Foreground: "white", Dir: dir,
		Objects: []Object{
			{Type: "line", At: []float64{0, 0, 7, 7}, Border: "solid"},
			{Type: "raster", At: []float64{0, 0}, Raster: "bits.bin"},
			{Type: "line", At: []float64{7, 0, 0, 7}, Border: "solid"},
		},
	}

	var rec screen.Recorder
	err := sc.Render(&rec)
	assert.ErrorIs(t, err, render.ErrNoWidth)
	assert.Len(t, rec.Ops, 1)
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o644))

	sc, err := LoadScene(path)
	require.NoError(t, err)
	assert.Equal(t, dir, sc.Dir)
	assert.Len(t, sc.Objects, 3)

	_, err = LoadScene(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
