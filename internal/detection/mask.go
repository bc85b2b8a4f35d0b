package detection

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Mask is a binary single-channel raster marking likely-text pixels as
// foreground. It shares the width and height of the image it was derived
// from and is read-only once MaskText returns it.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// NewMask creates an all-background mask of the given size.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		bits:   make([]bool, width*height),
	}
}

// At reports whether the pixel at (x, y) is foreground. Coordinates outside
// the mask are background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.bits[y*m.Width+x]
}

// Set marks the pixel at (x, y) as foreground. Out-of-range coordinates are
// ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.bits[y*m.Width+x] = true
}

// ForegroundCount returns the number of foreground pixels.
func (m *Mask) ForegroundCount() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Structuring element for dilation: 5 wide, 3 tall. Text lines run
// horizontally, so strokes merge faster along X than Y.
const (
	kernelHalfW = 2
	kernelHalfH = 1
)

// MaskText converts an image into a binary mask of likely-text pixels.
//
// Each pixel is converted to HSV. A pixel is foreground when its saturation
// and value both fall at or below the resolution-scaled ceilings from
// ParamsFor: low saturation rejects colorful graphics, low value keeps only
// dark strokes. The raw mask is then dilated with a 5x3 rectangular
// structuring element for the configured number of passes, turning scattered
// stroke pixels into solid word-sized blobs that connected-component
// analysis can isolate.
//
// The operation is total for any decodable image; it never fails.
func MaskText(img image.Image) *Mask {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	p := ParamsFor(height)

	satCeil := float64(p.SatCeil) / 255.0
	valCeil := float64(p.ValueCeil) / 255.0

	m := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}
			_, s, v := c.Hsv()
			if s <= satCeil && v <= valCeil {
				m.bits[y*width+x] = true
			}
		}
	}

	for i := 0; i < p.DilateIters; i++ {
		m = dilate(m)
	}
	return m
}

// dilate expands every foreground pixel into its 5x3 neighborhood, clipped
// at the mask edges.
func dilate(src *Mask) *Mask {
	dst := NewMask(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if !src.bits[y*src.Width+x] {
				continue
			}
			y1 := clamp(y-kernelHalfH, 0, src.Height-1)
			y2 := clamp(y+kernelHalfH, 0, src.Height-1)
			x1 := clamp(x-kernelHalfW, 0, src.Width-1)
			x2 := clamp(x+kernelHalfW, 0, src.Width-1)
			for ny := y1; ny <= y2; ny++ {
				row := ny * dst.Width
				for nx := x1; nx <= x2; nx++ {
					dst.bits[row+nx] = true
				}
			}
		}
	}
	return dst
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
