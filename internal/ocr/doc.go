// Package ocr adapts the Tesseract OCR engine (via gosseract/v2) to the
// redaction pipeline.
//
// # Prerequisites
//
// Tesseract and language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Usage
//
// An Engine owns one Tesseract client configured for a single language and
// is reused for every region of one run:
//
//	engine, err := ocr.NewEngine("eng")
//	if err != nil { ... }
//	defer engine.Close()
//	text, err := engine.RecognizeRegion(img, rect)
//
// The engine is re-seeded with image bytes on every call and therefore is
// not safe for concurrent use. The recognized text is returned exactly as
// Tesseract produces it; normalization belongs to the matcher.
package ocr
