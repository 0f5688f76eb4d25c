package gridpaint

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// haloOffset is the diagonal offset used for the faux text outline on
// filled cells.
const haloOffset = 2

// LoadFace loads a TTF file and builds a face at the given point size.
func LoadFace(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// FallbackFace returns the embedded Go Regular face at the given point
// size, for when no usable font file is configured.
func FallbackFace(points float64) font.Face {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		// goregular.TTF is embedded and known-good
		panic(fmt.Sprintf("parsing embedded font: %v", err))
	}
	return truetype.NewFace(f, &truetype.Options{Size: points})
}

// DrawLabel draws text with its top-left corner at (x, y).
func DrawLabel(dst draw.Image, x, y int, text string, face font.Face, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		// Drawer positions text at the baseline; shift down by the
		// ascent so (x, y) is the top-left of the glyph box.
		Dot: fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// DrawOutlinedLabel draws text with a halo-colored faux outline so it stays
// legible on arbitrary fills: the halo is drawn at two diagonal offsets,
// then the foreground once at the true position.
func DrawOutlinedLabel(dst draw.Image, x, y int, text string, face font.Face, fg, halo color.Color) {
	DrawLabel(dst, x-haloOffset, y-haloOffset, text, face, halo)
	DrawLabel(dst, x+haloOffset, y+haloOffset, text, face, halo)
	DrawLabel(dst, x, y, text, face, fg)
}
