package detection

import "image"

// maxAspectRatio rejects degenerate thin slivers that dilation can produce
// by merging unrelated strokes along a line.
const maxAspectRatio = 15.0

// FindRegions extracts candidate single-line text regions from a mask.
//
// Connected foreground components are found by flood fill (4-connectivity;
// holes inside a component cannot affect its bounding box and are ignored).
// Each component's bounding rectangle is kept only if all of the following
// hold, with p = ParamsFor(mask height):
//
//   - height < width: text lines are wider than tall
//   - height > p.MinRegionHeight: rejects noise specks
//   - width/height < 15: rejects degenerate slivers
//   - width < maskWidth/2: a short target token never spans half the
//     image, and the bound caps per-region OCR cost
//
// The returned order carries no spatial meaning. Every rectangle lies fully
// inside the mask bounds and has positive width and height.
func FindRegions(m *Mask) []image.Rectangle {
	p := ParamsFor(m.Height)
	visited := make([]bool, m.Width*m.Height)

	var regions []image.Rectangle
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if !m.bits[idx] || visited[idx] {
				continue
			}
			rect := floodFill(m, visited, x, y)
			if keepRegion(rect, m.Width, p) {
				regions = append(regions, rect)
			}
		}
	}
	return regions
}

// keepRegion applies the single-line-of-text filters to a component's
// bounding rectangle.
func keepRegion(rect image.Rectangle, maskWidth int, p Params) bool {
	w := rect.Dx()
	h := rect.Dy()
	if h >= w {
		return false
	}
	if h <= p.MinRegionHeight {
		return false
	}
	if float64(w)/float64(h) >= maxAspectRatio {
		return false
	}
	return w < maskWidth/2
}

// floodFill visits the connected foreground component containing the start
// pixel, marks it visited, and returns its bounding rectangle.
func floodFill(m *Mask, visited []bool, startX, startY int) image.Rectangle {
	minX, minY := startX, startY
	maxX, maxY := startX+1, startY+1

	stack := []image.Point{{X: startX, Y: startY}}
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pt.X < 0 || pt.X >= m.Width || pt.Y < 0 || pt.Y >= m.Height {
			continue
		}
		idx := pt.Y*m.Width + pt.X
		if visited[idx] || !m.bits[idx] {
			continue
		}
		visited[idx] = true

		if pt.X < minX {
			minX = pt.X
		}
		if pt.X+1 > maxX {
			maxX = pt.X + 1
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y+1 > maxY {
			maxY = pt.Y + 1
		}

		stack = append(stack,
			image.Point{X: pt.X - 1, Y: pt.Y},
			image.Point{X: pt.X + 1, Y: pt.Y},
			image.Point{X: pt.X, Y: pt.Y - 1},
			image.Point{X: pt.X, Y: pt.Y + 1},
		)
	}

	return image.Rect(minX, minY, maxX, maxY)
}
