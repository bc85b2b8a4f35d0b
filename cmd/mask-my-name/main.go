// Command mask-my-name finds a word or phrase burned into a raster image
// and writes a copy with every matching region blacked out.
//
// Usage:
//
//	mask-my-name [options] <image-path> [target-string]
//
// On success the redacted copy is written next to the input as
// <stem>_masked<ext> and its path is printed. When no region matches, no
// file is written. Omitting the target redacts every detected text region.
//
// Exit codes: 0 success, 1 no matching text found, 2 any other failure.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/noxowl/mask-my-name/internal/imaging"
	"github.com/noxowl/mask-my-name/internal/ocr"
	"github.com/noxowl/mask-my-name/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Fprintln(os.Stderr, "mask-my-name - redact a word or phrase from an image")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: mask-my-name [options] <image-path> [target-string]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "The redacted copy is written as <stem>_masked<ext> next to the input.")
	fmt.Fprintln(os.Stderr, "Omitting the target redacts every detected text region.")
}

func main() {
	lang := flag.String("lang", "eng", "Tesseract language code")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("mask-my-name %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		fmt.Printf("  Tesseract:  %s\n", ocr.Version())
		return
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	err := run(flag.Arg(0), flag.Arg(1), *lang, log)
	switch {
	case errors.Is(err, pipeline.ErrNoMatch):
		fmt.Println("no matching text found; nothing to redact")
		os.Exit(1)
	case err != nil:
		log.Error().Err(err).Msg("run failed")
		os.Exit(2)
	}
}

// run executes one full redaction: load, detect, recognize, redact, save.
func run(path, target, lang string, log zerolog.Logger) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("image path: %w", err)
	}

	img, format, err := imaging.Load(path)
	if err != nil {
		return err
	}

	if info, err := imaging.Describe(img, format, path); err == nil {
		log.Debug().
			Int("width", info.Width).
			Int("height", info.Height).
			Str("format", info.Format).
			Bool("alpha", info.HasAlpha).
			Int64("bytes", info.FileSizeBytes).
			Msg("image loaded")
	}

	engine, err := ocr.NewEngine(lang)
	if err != nil {
		return err
	}
	defer engine.Close()

	p := &pipeline.Pipeline{
		Recognizer: engine,
		Target:     pipeline.NewTarget(target),
		Log:        log,
	}
	result, err := p.Run(img)
	if err != nil {
		return err
	}

	out := imaging.MaskedPath(path)
	if err := imaging.Save(img, out); err != nil {
		return err
	}

	log.Info().
		Int("matched", len(result.Matched)).
		Int("scanned", result.Scanned).
		Str("output", out).
		Msg("redaction complete")
	fmt.Println(out)
	return nil
}
