package gridpaint

import (
	"image"
	"image/color"
	"image/draw"
)

// FillRect floods r with c. The rect is clipped to dst bounds, so cells
// overhanging the canvas edge paint their visible part and nothing else.
func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

// StrokeRect paints a border band of the given width just inside r, leaving
// the interior untouched. Clipping matches FillRect.
func StrokeRect(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	if width <= 0 || r.Empty() {
		return
	}
	// Border thicker than the rect degenerates to a solid fill.
	if width*2 >= r.Dx() || width*2 >= r.Dy() {
		FillRect(dst, r, c)
		return
	}

	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width)
	bottom := image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y)
	left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y)
	right := image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y)

	for _, band := range []image.Rectangle{top, bottom, left, right} {
		FillRect(dst, band, c)
	}
}
