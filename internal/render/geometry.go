package render

import "image"

// Standard card canvas in pixels.
const (
	CardWidth  = 1500
	CardHeight = 2100
)

// Box is a bounding box in normalized coordinates: x, y, width and height are
// fractions of the card canvas. Region boxes are defined once per frame layout
// and reused across renders.
type Box struct {
	X, Y, W, H float64
}

// Valid reports whether the box lies inside the canvas with positive extent.
func (b Box) Valid() bool {
	return b.W > 0 && b.H > 0 &&
		b.X >= 0 && b.Y >= 0 &&
		b.X+b.W <= 1 && b.Y+b.H <= 1
}

// Rect converts the box to a pixel rectangle on the card canvas.
func (b Box) Rect() image.Rectangle {
	x := int(b.X * CardWidth)
	y := int(b.Y * CardHeight)
	w := int(b.W * CardWidth)
	h := int(b.H * CardHeight)
	return image.Rect(x, y, x+w, y+h)
}

// Placement describes where a uniformly scaled art bitmap is pasted on the
// canvas. X or Y may be negative: the overscaled axis is centered and the
// excess is cropped at the canvas edges.
type Placement struct {
	X, Y, W, H int
}

// FitArt computes a cover-fit placement of an artW×artH bitmap into box:
// the art is scaled uniformly so it fully covers the box, then centered on
// the axis that overflows. Art dimensions must be positive; callers validate
// inputs before layout begins.
func FitArt(artW, artH int, box Box) Placement {
	r := box.Rect()
	bw, bh := r.Dx(), r.Dy()

	artAspect := float64(artW) / float64(artH)
	boxAspect := float64(bw) / float64(bh)

	if artAspect > boxAspect {
		// Art is relatively wider: fit to height, center horizontally.
		newH := bh
		newW := int(float64(artW) * float64(bh) / float64(artH))
		return Placement{
			X: r.Min.X - (newW-bw)/2,
			Y: r.Min.Y,
			W: newW,
			H: newH,
		}
	}

	// Art is relatively taller or equal: fit to width, center vertically.
	newW := bw
	newH := int(float64(artH) * float64(bw) / float64(artW))
	return Placement{
		X: r.Min.X,
		Y: r.Min.Y - (newH-bh)/2,
		W: newW,
		H: newH,
	}
}

// CanvasCrop returns the sub-rectangle of the placed bitmap that is visible
// on the canvas, in the bitmap's own coordinates, together with the paste
// point. The crop never exceeds the bitmap or the canvas.
func (p Placement) CanvasCrop() (crop image.Rectangle, at image.Point) {
	left := -min(0, p.X)
	top := -min(0, p.Y)
	right := min(p.W, CardWidth-p.X)
	bottom := min(p.H, CardHeight-p.Y)
	return image.Rect(left, top, right, bottom), image.Pt(max(0, p.X), max(0, p.Y))
}
