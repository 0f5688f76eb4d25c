// Package generator runs the allocate, draw, encode pipeline that produces
// the oversized labeled-grid image.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/Faultbox/bigimage/internal/canvas"
	"github.com/Faultbox/bigimage/internal/config"
	"github.com/Faultbox/bigimage/internal/logger"
	"github.com/Faultbox/bigimage/pkg/gridpaint"
)

// progressEvery is the cell cadence of progress log lines.
const progressEvery = 100

// Generator produces one output image from a validated config.
type Generator struct {
	cfg *config.Config
}

// New creates a Generator for the given config.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run executes the whole pipeline: allocate the canvas, draw the grid,
// encode the JPEG, report timing. The returned error wraps
// canvas.ErrTooManyPixels when the safety valve refuses the allocation.
func (g *Generator) Run() error {
	cfg := g.cfg
	start := time.Now()

	logger.Warn("generating intentionally oversized image",
		zap.Int("width", cfg.Canvas.Width),
		zap.Int("height", cfg.Canvas.Height),
		zap.String("decoded_size", formatBytes(canvas.EstimatedDecodedBytes(cfg.Canvas.Width, cfg.Canvas.Height))))
	logger.Sugar.Debugf("effective config: %+v", cfg)

	logger.Info("allocating canvas", zap.Duration("elapsed", time.Since(start)))
	img, err := canvas.Alloc(cfg.Canvas.Width, cfg.Canvas.Height, canvas.Options{
		MaxPixels:     cfg.Limits.MaxPixels,
		AllowOversize: cfg.Limits.AllowOversize,
	})
	if err != nil {
		return fmt.Errorf("allocating %dx%d canvas: %w", cfg.Canvas.Width, cfg.Canvas.Height, err)
	}

	face := g.labelFace()

	logger.Info("drawing grid", zap.Duration("elapsed", time.Since(start)))
	g.render(img, face)

	logger.Info("encoding jpeg",
		zap.String("path", cfg.Output.Path),
		zap.Int("quality", cfg.Output.Quality),
		zap.Duration("elapsed", time.Since(start)))
	if err := writeJPEG(cfg.Output.Path, img, cfg.Output.Quality); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output.Path, err)
	}

	var fileSize int64
	if info, err := os.Stat(cfg.Output.Path); err == nil {
		fileSize = info.Size()
	}
	logger.Info("done",
		zap.String("path", cfg.Output.Path),
		zap.String("file_size", formatBytes(fileSize)),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

// labelFace loads the configured font, falling back to the embedded face
// when the file is missing or unusable. A missing file is the expected case
// and only logged once; anything else carries the underlying error.
func (g *Generator) labelFace() font.Face {
	face, err := gridpaint.LoadFace(g.cfg.Font.Path, g.cfg.Font.Size)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("font file not found, using embedded face",
				zap.String("path", g.cfg.Font.Path))
		} else {
			logger.Warn("font file unusable, using embedded face",
				zap.String("path", g.cfg.Font.Path),
				zap.Error(err))
		}
		return gridpaint.FallbackFace(g.cfg.Font.Size)
	}
	return face
}

// cellGrid returns the number of grid columns and rows covering a
// width x height canvas, counting partially covered edge cells.
func cellGrid(width, height, size int) (cols, rows int) {
	cols = (width + size - 1) / size
	rows = (height + size - 1) / size
	return cols, rows
}

// render paints every grid cell and its label onto the canvas.
func (g *Generator) render(img *image.RGBA, face font.Face) {
	cfg := g.cfg
	size := cfg.Grid.Size

	cols, rows := cellGrid(cfg.Canvas.Width, cfg.Canvas.Height, size)
	total := cols * rows
	done := 0

	for x := 0; x < cfg.Canvas.Width; x += size {
		for y := 0; y < cfg.Canvas.Height; y += size {
			done++
			if done%progressEvery == 0 {
				logger.Sugar.Infof("progress: %.1f%%", float64(done)/float64(total)*100)
			}

			c := gridpaint.CellColor(x, y, cfg.Grid.GreenDivisor)
			cell := image.Rect(x, y, x+size, y+size)
			label := fmt.Sprintf("%d,%d", x, y)
			lx := x + cfg.Grid.LabelMargin
			ly := y + cfg.Grid.LabelMargin

			switch cfg.Grid.Style {
			case config.StyleFilled:
				gridpaint.FillRect(img, cell, c)
				// Solid fills can be any brightness, so the label
				// gets a white halo to stay legible.
				gridpaint.DrawOutlinedLabel(img, lx, ly, label, face, color.Black, color.White)
			default:
				gridpaint.StrokeRect(img, cell, cfg.Grid.LineWidth, c)
				gridpaint.DrawLabel(img, lx, ly, label, face, color.Black)
			}
		}
	}
}

// writeJPEG encodes img at the given quality, overwriting path.
func writeJPEG(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatBytes renders a byte count as a human-readable size.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
