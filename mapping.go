package dashline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/32bitkid/dashline/resource"
	"github.com/32bitkid/dashline/shape"
	"github.com/32bitkid/dashline/style"
)

// Object is the scene file form of a shape.Object. At holds the geometry:
// x0 y0 x1 y1 for lines and rectangles, x y r for circles and x y for
// rasters. Empty colours fall back to the scene colours.
type Object struct {
	Type       string    `yaml:"type"`
	At         []float64 `yaml:"at"`
	Border     string    `yaml:"border,omitempty"`
	Fill       string    `yaml:"fill,omitempty"`
	Pattern    string    `yaml:"pattern,omitempty"`
	Foreground string    `yaml:"foreground,omitempty"`
	Background string    `yaml:"background,omitempty"`
	Mode       string    `yaml:"mode,omitempty"`
	Invert     bool      `yaml:"invert,omitempty"`
	Wrap       bool      `yaml:"wrap,omitempty"`
	Width      float64   `yaml:"width,omitempty"`

	// Raster is a file of packed bits, or a raster resource when Resource
	// is set. RasterWidth is required for plain files.
	Raster      string `yaml:"raster,omitempty"`
	RasterWidth int    `yaml:"raster_width,omitempty"`
	Resource    bool   `yaml:"resource,omitempty"`
}

var coordCount = map[shape.Type]int{
	shape.TypeLine:   4,
	shape.TypeCircle: 3,
	shape.TypeRect:   4,
	shape.TypeRaster: 2,
}

func parseType(s string) (shape.Type, error) {
	switch strings.ToLower(s) {
	case "", "line":
		return shape.TypeLine, nil
	case "circle":
		return shape.TypeCircle, nil
	case "rect", "rectangle":
		return shape.TypeRect, nil
	case "raster":
		return shape.TypeRaster, nil
	}
	return 0, fmt.Errorf("unknown shape type %q", s)
}

func (spec Object) geometry(t shape.Type, dir string) (shape.Geometry, *shape.Source, error) {
	at := spec.At
	if len(at) != coordCount[t] {
		return nil, nil, fmt.Errorf("%s needs %d coordinates, got %d", t, coordCount[t], len(at))
	}

	switch t {
	case shape.TypeLine:
		return shape.Line{X0: at[0], Y0: at[1], X1: at[2], Y1: at[3]}, nil, nil
	case shape.TypeCircle:
		if at[2] < 0 {
			return nil, nil, fmt.Errorf("negative circle radius %v", at[2])
		}
		return shape.Circle{X: at[0], Y: at[1], R: at[2]}, nil, nil
	case shape.TypeRect:
		x0, y0, x1, y1 := int(at[0]), int(at[1]), int(at[2]), int(at[3])
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		return shape.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, nil, nil
	}

	src, width, err := spec.openRaster(dir)
	if err != nil {
		return nil, nil, err
	}
	return shape.Raster{X: int(at[0]), Y: int(at[1]), Width: width, Source: src}, src, nil
}

func (spec Object) openRaster(dir string) (*shape.Source, int, error) {
	if spec.Raster == "" {
		return nil, 0, fmt.Errorf("raster has no file")
	}
	path := spec.Raster
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	if spec.Resource {
		r, err := resource.ReadRaster(path)
		if err != nil {
			return nil, 0, err
		}
		width := r.Width
		if spec.RasterWidth > 0 {
			width = spec.RasterWidth
		}
		return r.Source(), width, nil
	}

	src, err := shape.OpenSource(path)
	if err != nil {
		return nil, 0, err
	}
	return src, spec.RasterWidth, nil
}

func (spec Object) colors(defaults style.ColorPair) (style.ColorPair, error) {
	cp := defaults
	var err error
	if spec.Foreground != "" {
		if cp.Foreground, err = style.ParseColor(spec.Foreground); err != nil {
			return cp, err
		}
	}
	if spec.Background != "" {
		if cp.Background, err = style.ParseColor(spec.Background); err != nil {
			return cp, err
		}
	}
	if cp.Mode, err = style.ParseMode(spec.Mode); err != nil {
		return cp, err
	}
	cp.Invert = spec.Invert
	return cp, nil
}

// Shape converts the entry using defaults for missing colours. A raster source
// it opens is returned and must be closed by the caller.
func (spec Object) Shape(dir string, defaults style.ColorPair) (shape.Object, *shape.Source, error) {
	var st style.Style
	var err error
	if st.Border, err = style.ParseBorder(spec.Border); err != nil {
		return shape.Object{}, nil, err
	}
	if st.Fill, err = style.ParseFill(spec.Fill); err != nil {
		return shape.Object{}, nil, err
	}
	if spec.Pattern != "" {
		if st.Pattern, err = style.ParsePattern(spec.Pattern); err != nil {
			return shape.Object{}, nil, err
		}
	}
	st.Wrap = spec.Wrap
	st.Width = spec.Width

	cp, err := spec.colors(defaults)
	if err != nil {
		return shape.Object{}, nil, err
	}

	t, err := parseType(spec.Type)
	if err != nil {
		return shape.Object{}, nil, err
	}
	g, src, err := spec.geometry(t, dir)
	if err != nil {
		return shape.Object{}, nil, err
	}
	return shape.New(g, st, cp), src, nil
}
