package detection

// highResRows is the row count at and above which an image is treated as
// high resolution for threshold selection.
const highResRows = 720

// Params holds the resolution-dependent tuning shared by the masker and the
// region filter. Every field derives from the image height alone, so the
// heuristic can be audited and tested in isolation from the pixel work.
type Params struct {
	// SatCeil is the upper bound on the HSV saturation channel (0-255 scale)
	// for a pixel to count as likely text. High-resolution images use a
	// tighter bound; at low pixel density antialiasing bleeds background
	// color into strokes, so the bound loosens.
	SatCeil uint8

	// ValueCeil is the upper bound on the HSV value channel (0-255 scale).
	// Text strokes are assumed dark against their background.
	ValueCeil uint8

	// DilateIters is the number of dilation passes that merge adjacent
	// character strokes into connected line-like blobs.
	DilateIters int

	// MinRegionHeight is the minimum pixel height for a candidate region;
	// shorter blobs are treated as noise specks.
	MinRegionHeight int
}

// ParamsFor returns the tuning for an image with the given pixel height.
func ParamsFor(height int) Params {
	p := Params{
		SatCeil:         80,
		ValueCeil:       150,
		DilateIters:     3,
		MinRegionHeight: height / 72,
	}
	if height >= highResRows {
		p.SatCeil = 30
		p.DilateIters = 5
	}
	return p
}
