// Package imaging handles the file boundary of the redaction pipeline:
// decoding a raster image into a single mutable RGBA buffer, deriving the
// output path, filling matched regions in place, and encoding the result.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Rectangles follow the
// standard Go image convention: Min is inclusive, Max is exclusive.
//
// # Ownership
//
// Load returns a buffer with exactly one owner. Nothing in this package
// retains a reference to it; FillRegion mutates whatever buffer the caller
// passes in. None of these functions are safe for concurrent use on the
// same buffer.
//
// # Supported Formats
//
// PNG, JPEG, GIF, BMP, and TIFF are registered for decoding. Save picks
// the encoder from the output file extension, so a redacted copy written
// next to the input keeps the input's format.
package imaging
