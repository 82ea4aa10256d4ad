package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/32bitkid/dashline/resource"
)

func decode(t *testing.T, path string, fn func(*os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := fn(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRenderDefaultScene(t *testing.T) {
	t.Setenv("DASHLINE_LOG_LEVEL", "error")
	out := filepath.Join(t.TempDir(), "demo.png")
	if err := renderCmd([]string{"-o", out}); err != nil {
		t.Fatal(err)
	}

	img := decode(t, out, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	if got := img.Bounds().Size(); got != image.Pt(1024, 1400) {
		t.Fatalf("expected(1024x1400) != actual(%v)", got)
	}
	// first dash of the top edge, scaled by two
	if got := color.RGBAModel.Convert(img.At(20, 20)); got != (color.RGBA{255, 140, 23, 255}) {
		t.Fatalf("unexpected colour %v", got)
	}
}

func TestRasterCommand(t *testing.T) {
	dir := t.TempDir()
	var res bytes.Buffer
	if err := resource.WriteRaster(&res, 8, []byte{0x80, 0x01}); err != nil {
		t.Fatal(err)
	}
	in := filepath.Join(dir, "bits.res")
	if err := os.WriteFile(in, res.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := filepath.Join(dir, "dashline.yaml")
	if err := os.WriteFile(cfg, []byte("canvas: {width: 16, height: 4, scale: 1, foreground: white}\noutput: {format: bmp}\nlogging: {level: error}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "bits.bmp")
	if err := rasterCmd([]string{"-config", cfg, "-o", out, "-resource", "-x", "2", in}); err != nil {
		t.Fatal(err)
	}

	img := decode(t, out, func(f *os.File) (image.Image, error) { return bmp.Decode(f) })
	white := color.RGBA{200, 200, 200, 255}
	if got := color.RGBAModel.Convert(img.At(2, 0)); got != white {
		t.Fatalf("(2,0): unexpected colour %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(9, 1)); got != white {
		t.Fatalf("(9,1): unexpected colour %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(3, 0)); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("(3,0): unexpected colour %v", got)
	}
}

func TestRenderSceneUsesConfiguredCanvas(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "dashline.yaml")
	if err := os.WriteFile(cfg, []byte("canvas: {width: 16, height: 8, scale: 1, background: white}\nlogging: {level: error}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	scene := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(scene, []byte("objects:\n  - {type: line, at: [0, 0, 3, 0], border: solid}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "scene.png")
	if err := renderCmd([]string{"-config", cfg, "-o", out, scene}); err != nil {
		t.Fatal(err)
	}

	img := decode(t, out, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	if got := img.Bounds().Size(); got != image.Pt(16, 8) {
		t.Fatalf("expected(16x8) != actual(%v)", got)
	}
	if got := color.RGBAModel.Convert(img.At(10, 5)); got != (color.RGBA{200, 200, 200, 255}) {
		t.Fatalf("background: unexpected colour %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(2, 0)); got != (color.RGBA{255, 140, 23, 255}) {
		t.Fatalf("line: unexpected colour %v", got)
	}
}

func TestRasterCommandNeedsAFile(t *testing.T) {
	if err := rasterCmd(nil); err == nil {
		t.Fatal("expected an error")
	}
}

func TestEncodeFormats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for _, format := range []string{"png", "bmp", "tiff"} {
		var buf bytes.Buffer
		if err := encode(&buf, img, format); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s: empty output", format)
		}
	}

	var buf bytes.Buffer
	if err := encode(&buf, img, "tiff"); err != nil {
		t.Fatal(err)
	}
	if _, err := tiff.Decode(&buf); err != nil {
		t.Fatal(err)
	}
	if err := encode(&buf, img, "gif"); err == nil {
		t.Fatal("expected an error")
	}
}
