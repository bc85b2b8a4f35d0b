package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"github.com/noxowl/mask-my-name/internal/detection"
	"github.com/noxowl/mask-my-name/internal/imaging"
)

// ErrNoMatch is returned by Run when every candidate region was scanned and
// none matched the target. It is an expected outcome, not an internal
// error; callers must not write an output file when they see it.
var ErrNoMatch = errors.New("no matching text found")

// Recognizer recognizes the text inside one rectangle of an image. It is
// satisfied by *ocr.Engine.
type Recognizer interface {
	RecognizeRegion(img image.Image, region image.Rectangle) (string, error)
}

// Result describes a completed run with at least one match.
type Result struct {
	// Matched holds the rectangles that were redacted.
	Matched []image.Rectangle

	// Scanned is the number of candidate regions that went through OCR.
	Scanned int
}

// Pipeline drives one redaction run: mask, extract, recognize each
// candidate region, and black out the matches in place.
//
// The zero value is not usable; Recognizer must be set. A Pipeline holds no
// state between runs, but the Recognizer it wraps is stateful, so a
// Pipeline must not be shared across concurrent runs.
type Pipeline struct {
	Recognizer Recognizer
	Target     Target
	Log        zerolog.Logger
}

// Run executes the pipeline over a single image buffer, mutating it in
// place wherever a region matches the target.
//
// Returns ErrNoMatch when no region matched (the buffer is untouched in
// that case). A recognition failure on any region aborts the run
// immediately and is returned as the run's error; regions after it are not
// scanned and no information about partial matches is reported.
func (p *Pipeline) Run(img *image.RGBA) (*Result, error) {
	mask := detection.MaskText(img)
	p.Log.Debug().
		Int("foreground_px", mask.ForegroundCount()).
		Msg("text-likelihood mask built")

	regions := detection.FindRegions(mask)
	p.Log.Debug().Int("regions", len(regions)).Msg("candidate regions extracted")

	res := &Result{}
	for _, region := range regions {
		text, err := p.Recognizer.RecognizeRegion(img, region)
		if err != nil {
			return nil, fmt.Errorf("region %v: %w", region, err)
		}
		res.Scanned++

		if !p.Target.Matches(text) {
			p.Log.Debug().
				Stringer("region", region).
				Str("text", text).
				Msg("no match")
			continue
		}

		imaging.FillRegion(img, region, imaging.RedactColor)
		res.Matched = append(res.Matched, region)
		p.Log.Info().Stringer("region", region).Msg("matched region redacted")
	}

	if len(res.Matched) == 0 {
		return nil, fmt.Errorf("scanned %d regions: %w", res.Scanned, ErrNoMatch)
	}
	return res, nil
}
