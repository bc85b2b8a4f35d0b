package main

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/noxowl/mask-my-name/internal/ocr"
	"github.com/noxowl/mask-my-name/internal/pipeline"
)

// skipIfNoTesseract skips end-to-end tests on machines without a usable
// Tesseract installation.
func skipIfNoTesseract(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	if errors.Is(err, ocr.ErrEngineInit) ||
		strings.Contains(err.Error(), "tesseract") ||
		strings.Contains(err.Error(), "library") {
		t.Skip("Tesseract not available")
	}
}

// writeScreenshot renders text in black on a white canvas, scaled up with
// nearest-neighbor so the strokes stay solid, and writes it as a PNG.
func writeScreenshot(t *testing.T, dir, name, text string, canvasW, canvasH, scale int) string {
	t.Helper()

	small := image.NewRGBA(image.Rect(0, 0, len(text)*7+20, 30))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(10), Y: fixed.I(18)},
	}
	d.DrawString(text)

	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	offX, offY := canvasW/4, canvasH/3
	for y := 0; y < small.Bounds().Dy()*scale; y++ {
		for x := 0; x < small.Bounds().Dx()*scale; x++ {
			canvas.Set(offX+x, offY+y, small.At(x/scale, y/scale))
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create screenshot: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, canvas); err != nil {
		t.Fatalf("failed to encode screenshot: %v", err)
	}
	return path
}

func TestRun_EndToEndMatch(t *testing.T) {
	dir := t.TempDir()
	path := writeScreenshot(t, dir, "shot.png", "ALICE", 1280, 720, 4)

	err := run(path, "alice", "eng", zerolog.Nop())
	if err != nil {
		skipIfNoTesseract(t, err)
		t.Fatalf("run failed: %v", err)
	}

	out := filepath.Join(dir, "shot_masked.png")
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	defer f.Close()

	masked, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output not decodable: %v", err)
	}

	// The text sat at (canvasW/4, canvasH/3); its center must now be the
	// opaque masking color instead of glyph-and-background pixels.
	r, g, b, _ := masked.At(1280/4+60, 720/3+25).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("center of redacted region: got (%d,%d,%d), want black", r>>8, g>>8, b>>8)
	}
	// A far corner stays white.
	r, g, b, _ = masked.At(20, 20).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 255 || uint8(b>>8) != 255 {
		t.Errorf("corner pixel: got (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestRun_EndToEndNoMatch(t *testing.T) {
	dir := t.TempDir()
	path := writeScreenshot(t, dir, "shot.png", "ALICE", 1280, 720, 4)

	err := run(path, "bob", "eng", zerolog.Nop())
	skipIfNoTesseract(t, err)
	if !errors.Is(err, pipeline.ErrNoMatch) {
		t.Fatalf("err: got %v, want ErrNoMatch", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "shot_masked.png")); !os.IsNotExist(err) {
		t.Error("no output file may be written when nothing matches")
	}
}

func TestRun_EndToEndLowResolution(t *testing.T) {
	// Below 720 rows the pipeline uses the looser saturation ceiling and
	// fewer dilation passes; the target must still be found.
	dir := t.TempDir()
	path := writeScreenshot(t, dir, "shot.png", "ALICE", 640, 360, 2)

	err := run(path, "alice", "eng", zerolog.Nop())
	if err != nil {
		skipIfNoTesseract(t, err)
		t.Fatalf("run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "shot_masked.png")); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestRun_MissingPath(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "nope.png"), "alice", "eng", zerolog.Nop())
	if err == nil {
		t.Fatal("run should fail for a missing image path")
	}
	if errors.Is(err, pipeline.ErrNoMatch) {
		t.Error("a missing path must not be reported as no-match")
	}
}
