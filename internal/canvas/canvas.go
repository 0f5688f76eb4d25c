// Package canvas allocates the in-memory pixel buffer the generator draws
// into, with an explicit safety valve against accidental oversize canvases.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ErrTooManyPixels is returned when the requested canvas exceeds the pixel
// limit and oversize allocation was not explicitly allowed.
var ErrTooManyPixels = errors.New("pixel count exceeds configured limit")

// maxDim caps each dimension so width*height*4 cannot overflow int64.
const maxDim = 1 << 30

// Options controls canvas allocation.
type Options struct {
	MaxPixels     int64       // safety valve; <= 0 disables the check
	AllowOversize bool        // explicit consent to exceed MaxPixels
	Background    color.Color // nil defaults to white
}

// Pixels returns width*height as int64, or an error when the dimensions are
// unusable.
func Pixels(width, height int) (int64, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("canvas dimensions must be positive, got %dx%d", width, height)
	}
	if width > maxDim || height > maxDim {
		return 0, fmt.Errorf("canvas dimension exceeds %d", maxDim)
	}
	return int64(width) * int64(height), nil
}

// EstimatedDecodedBytes reports how much memory a naive ARGB decode of a
// width x height image needs. Used for the pre-run warning banner.
func EstimatedDecodedBytes(width, height int) int64 {
	px, err := Pixels(width, height)
	if err != nil {
		return 0
	}
	return px * 4
}

// Alloc allocates a width x height RGBA canvas filled with the background
// color. Allocation above opts.MaxPixels requires opts.AllowOversize; that
// gate replaces the silent "disable the decoder pixel limit" step of tools
// like this with a visible decision.
func Alloc(width, height int, opts Options) (*image.RGBA, error) {
	px, err := Pixels(width, height)
	if err != nil {
		return nil, err
	}

	if opts.MaxPixels > 0 && px > opts.MaxPixels && !opts.AllowOversize {
		return nil, fmt.Errorf("%dx%d = %d pixels: %w (limit %d, pass --force to override)",
			width, height, px, ErrTooManyPixels, opts.MaxPixels)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	return img, nil
}
