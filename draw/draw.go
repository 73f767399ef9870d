package draw

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Scale resamples all of src into all of dst.
//
// Images with a single row or column, such as LED strips, are sampled with nearest
// neighbour so no colors are invented between adjacent LEDs; everything else is
// scaled bilinearly.
func Scale(dst Image, src image.Image) {
	var (
		dr = dst.Bounds()
		s  xdraw.Scaler = xdraw.ApproxBiLinear
	)
	if dr.Dx() == 1 || dr.Dy() == 1 {
		s = xdraw.NearestNeighbor
	}
	s.Scale(dst, dr, src, src.Bounds(), xdraw.Src, nil)
}
