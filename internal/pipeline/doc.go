// Package pipeline orchestrates the redaction run and decides what counts
// as a match.
//
// One run is strictly sequential: build the text-likelihood mask, extract
// candidate regions, OCR each region through the injected Recognizer, and
// black out every region whose text contains the target. The source buffer
// is the only thing mutated, and only when a region matches.
//
// # Error Policy
//
// Masking and extraction cannot fail on a decoded image. Engine
// initialization failures and per-region recognition failures both abort
// the run; nothing is written. Completing the run with zero matches is the
// one expected failure, reported as ErrNoMatch so callers can distinguish
// it from breakage.
package pipeline
