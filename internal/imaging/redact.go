package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// RedactColor is the opaque fill used to black out matched text regions.
var RedactColor = color.RGBA{A: 255}

// FillRegion overwrites every pixel inside rect with the given color,
// in place. The rectangle is clipped to the image bounds; pixels outside
// it are left bit-identical. Image dimensions and layout never change.
//
// This is the only operation in the package that mutates a loaded image.
// The standard draw package is used directly because the operation must
// modify the caller's buffer rather than return a copy.
func FillRegion(img *image.RGBA, rect image.Rectangle, c color.Color) {
	r := rect.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}
