// Package dashline draws scenes of styled shapes: dashed, solid and
// textured lines, circles and rectangles, and packed monochrome rasters.
//
// A Scene is an ordered list of objects, usually loaded from YAML. Each
// object is converted to a shape.Object and drawn with the render package
// onto any screen.Surface, typically a screen.Buffer created by Canvas.
package dashline

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/32bitkid/dashline/render"
	"github.com/32bitkid/dashline/screen"
	"github.com/32bitkid/dashline/shape"
	"github.com/32bitkid/dashline/style"
)

const (
	DefaultWidth  = 512
	DefaultHeight = 700
)

// Scene is a canvas description plus the objects drawn on it, in order.
type Scene struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Background string   `yaml:"background"`
	Foreground string   `yaml:"foreground"`
	Objects    []Object `yaml:"objects"`

	// Dir resolves relative raster paths.
	Dir string `yaml:"-"`
}

// DefaultScene is a dashed triangle on a 512x700 canvas.
func DefaultScene() Scene {
	return Scene{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: "black",
		Foreground: "c585nm",
		Objects: []Object{
			{Type: "line", At: []float64{10, 10, 200, 10}, Border: "dash"},
			{Type: "line", At: []float64{200, 10, 200, 300}, Border: "dash"},
			{Type: "line", At: []float64{200, 300, 10, 10}, Border: "dash"},
		},
	}
}

// ParseScene decodes a YAML scene. Unknown fields are rejected and missing
// canvas fields take the defaults of DefaultScene.
func ParseScene(data []byte) (Scene, error) {
	return ParseSceneOver(data, DefaultScene())
}

// ParseSceneOver decodes a YAML scene on top of the canvas of base. Fields
// the document sets win; base's objects are dropped.
func ParseSceneOver(data []byte, base Scene) (Scene, error) {
	sc := base
	sc.Objects = nil
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && err != io.EOF {
		return Scene{}, fmt.Errorf("parse scene: %w", err)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return Scene{}, fmt.Errorf("scene canvas %dx%d must be positive", sc.Width, sc.Height)
	}
	return sc, nil
}

// LoadScene reads the scene file at path. Raster paths in the scene are
// relative to the file.
func LoadScene(path string) (Scene, error) {
	return LoadSceneOver(path, DefaultScene())
}

// LoadSceneOver is LoadScene with the canvas defaults taken from base.
func LoadSceneOver(path string, base Scene) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	sc, err := ParseSceneOver(data, base)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	sc.Dir = filepath.Dir(path)
	return sc, nil
}

// Colors returns the scene's default colour pair.
func (sc Scene) Colors() (style.ColorPair, error) {
	bg, err := style.ParseColor(sc.Background)
	if err != nil {
		return style.ColorPair{}, fmt.Errorf("background: %w", err)
	}
	fg, err := style.ParseColor(sc.Foreground)
	if err != nil {
		return style.ColorPair{}, fmt.Errorf("foreground: %w", err)
	}
	return style.ColorPair{Foreground: fg, Background: bg}, nil
}

// Canvas returns a buffer the size of the scene cleared to its background.
// A nil palette gives an RGBA buffer.
func (sc Scene) Canvas(p color.Palette) (*screen.Buffer, error) {
	cp, err := sc.Colors()
	if err != nil {
		return nil, err
	}
	buf := screen.NewBuffer(image.Rect(0, 0, sc.Width, sc.Height), p)
	buf.Clear(cp.Background)
	return buf, nil
}

// Render converts every object and then draws them on s in order. Nothing
// is drawn when an object fails to convert; otherwise the first draw error
// stops the render.
func (sc Scene) Render(s screen.Surface) error {
	cp, err := sc.Colors()
	if err != nil {
		return err
	}

	objects := make([]shape.Object, 0, len(sc.Objects))
	var sources []*shape.Source
	defer func() {
		for _, src := range sources {
			src.Close()
		}
	}()

	for i, spec := range sc.Objects {
		o, src, err := spec.Shape(sc.Dir, cp)
		if err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
		if src != nil {
			sources = append(sources, src)
		}
		objects = append(objects, o)
	}

	for i, o := range objects {
		if err := render.Draw(s, o); err != nil {
			return fmt.Errorf("object %d (%s): %w", i, o.Type(), err)
		}
	}
	return nil
}
