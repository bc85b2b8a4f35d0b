// Package detection turns an image into candidate text regions.
//
// The work happens in two stages. MaskText converts the image to HSV and
// thresholds saturation and value to mark likely-text pixels, then dilates
// the result so individual character strokes merge into word-sized blobs.
// FindRegions walks the mask's connected components and keeps only the
// bounding rectangles whose geometry looks like a short single line of
// text.
//
// All thresholds scale with image height through ParamsFor, a pure
// function, so the heuristic is testable without touching pixels.
//
// Rationale: text strokes are thin, dark, and high contrast. Scattered
// stroke pixels survive the color threshold; dilation converts them into
// solid blobs that a flood fill can isolate as single regions, and the
// geometric filters discard photos, rules, and noise that also survive
// the threshold.
package detection
