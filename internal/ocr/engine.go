package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

var (
	// ErrEngineInit marks a failure to bring up Tesseract for the
	// configured language. It aborts the whole run.
	ErrEngineInit = errors.New("ocr engine init failed")

	// ErrRecognition marks a failure to recognize one region. The pipeline
	// treats it as fatal for the run as well; see pipeline.Run.
	ErrRecognition = errors.New("ocr recognition failed")
)

// Engine wraps a single Tesseract client configured for one language.
//
// The engine is stateful: every Recognize call re-seeds the underlying
// client with new image bytes, so one Engine must never be shared across
// goroutines. Create one per run and Close it when the run ends.
type Engine struct {
	client *gosseract.Client
	lang   string
}

// NewEngine creates an engine for the given Tesseract language code
// (e.g. "eng"). The corresponding traineddata must be installed on the
// system. Returns an error wrapping ErrEngineInit when the client rejects
// the language.
func NewEngine(language string) (*Engine, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: language %q: %v", ErrEngineInit, language, err)
	}
	return &Engine{client: client, lang: language}, nil
}

// Close releases the underlying Tesseract client.
func (e *Engine) Close() error {
	return e.client.Close()
}

// Language returns the language code the engine was created with.
func (e *Engine) Language() string {
	return e.lang
}

// Recognize runs OCR over the full image buffer and returns the recognized
// text verbatim, including case and punctuation. Failures wrap
// ErrRecognition.
//
// The buffer is handed to Tesseract as encoded PNG bytes; no temporary
// file is written.
func (e *Engine) Recognize(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("%w: encode buffer: %v", ErrRecognition, err)
	}
	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("%w: set image: %v", ErrRecognition, err)
	}
	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognition, err)
	}
	return text, nil
}

// RecognizeRegion runs OCR over one rectangle of the image. Only the
// sub-rectangle is copied and handed to the engine; the source image is
// never modified.
func (e *Engine) RecognizeRegion(img image.Image, region image.Rectangle) (string, error) {
	return e.Recognize(imaging.Crop(img, region))
}

// Version returns the Tesseract library version, for diagnostics.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
