//go:build ebiten

package render

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws text frames as a grid of scaled pixels.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for frames of w*h glyphs.
func NewGridPainter(w, h int) *GridPainter {
	w, h = max(w, 1), max(h, 1)
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the frame into the painter image and draws it scaled onto dst.
// Frames whose glyph count does not match the painter size are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, frame string, alive rune, on, off color.Color, scale int) {
	if utf8.RuneCountInString(frame) != gp.w*gp.h {
		return
	}
	fillFrameRGBA(gp.buf, frame, alive, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
