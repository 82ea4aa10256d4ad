package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/32bitkid/dashline"
	"github.com/32bitkid/dashline/internal/config"
	"github.com/32bitkid/dashline/internal/log"
	"github.com/32bitkid/dashline/render"
	"github.com/32bitkid/dashline/screen"
)

type common struct {
	config string
	out    string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "YAML configuration file")
	fs.StringVar(&c.out, "o", "dashline.png", "output image")
}

// setup loads the configuration and installs the loggers.
func (c *common) setup() (config.Config, error) {
	cfg, err := config.Load(c.config)
	if err != nil {
		return cfg, err
	}
	log.Init(log.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format, File: cfg.Logging.File})
	render.SetLogger(log.WithComponent("render"))
	return cfg, nil
}

func baseScene(cfg config.Config) dashline.Scene {
	sc := dashline.DefaultScene()
	sc.Width, sc.Height = cfg.Canvas.Width, cfg.Canvas.Height
	sc.Background, sc.Foreground = cfg.Canvas.Background, cfg.Canvas.Foreground
	return sc
}

func renderCmd(args []string) error {
	var c common
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := c.setup()
	if err != nil {
		return err
	}
	defer log.Close()

	// a scene file keeps the configured canvas for the fields it leaves out
	sc := baseScene(cfg)
	if fs.NArg() > 0 {
		if sc, err = dashline.LoadSceneOver(fs.Arg(0), sc); err != nil {
			return err
		}
	}
	return draw(cfg, sc, c.out)
}

func rasterCmd(args []string) error {
	var (
		c        common
		width    int
		isRes    bool
		x, y     int
		overlay  bool
		inverted bool
	)
	fs := flag.NewFlagSet("raster", flag.ContinueOnError)
	c.register(fs)
	fs.IntVar(&width, "width", 0, "row width in pixels (required for plain files)")
	fs.BoolVar(&isRes, "resource", false, "the file is a raster resource")
	fs.IntVar(&x, "x", 0, "left edge")
	fs.IntVar(&y, "y", 0, "top edge")
	fs.BoolVar(&overlay, "overlay", false, "leave background bits untouched")
	fs.BoolVar(&inverted, "invert", false, "swap foreground and background")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("raster needs exactly one file")
	}
	cfg, err := c.setup()
	if err != nil {
		return err
	}
	defer log.Close()

	obj := dashline.Object{
		Type:        "raster",
		At:          []float64{float64(x), float64(y)},
		Raster:      fs.Arg(0),
		RasterWidth: width,
		Resource:    isRes,
		Invert:      inverted,
	}
	if overlay {
		obj.Mode = "overlay"
	}

	sc := baseScene(cfg)
	sc.Objects = []dashline.Object{obj}
	return draw(cfg, sc, c.out)
}

func draw(cfg config.Config, sc dashline.Scene, out string) error {
	l := log.WithComponent("cli")

	p, err := screen.PaletteByName(cfg.Output.Palette)
	if err != nil {
		return err
	}
	buf, err := sc.Canvas(p)
	if err != nil {
		return err
	}
	if err := sc.Render(buf); err != nil {
		return err
	}

	cp, err := sc.Colors()
	if err != nil {
		return err
	}
	img := present(cfg, buf, cp.Foreground)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := encode(f, img, cfg.Output.Format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	l.Info("rendered",
		slog.String("out", out),
		slog.Int("objects", len(sc.Objects)),
		slog.Any("size", img.Bounds().Size()))
	return nil
}

func present(cfg config.Config, img image.Image, phosphor color.Color) image.Image {
	var s screen.Scaler = screen.Nearest(cfg.Canvas.Scale)
	if cfg.Output.CRT {
		s = screen.CRT{Factor: cfg.Canvas.Scale, Phosphor: phosphor}
	}
	return s.Scale(img)
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unknown output format %q", format)
}
