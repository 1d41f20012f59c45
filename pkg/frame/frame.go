// Package frame flattens boards into text for a fixed-size character surface.
package frame

import (
	"strings"

	"termlife/pkg/layout"
	"termlife/pkg/sims/life"
)

// Glyphs are the runes written for each kind of position in a frame.
type Glyphs struct {
	Alive rune
	Dead  rune
	Fill  rune
}

// DefaultGlyphs draws live cells as '0' on a blank background.
var DefaultGlyphs = Glyphs{Alive: '0', Dead: ' ', Fill: ' '}

// Render writes the padded viewport in row-major order with no row
// separators. Rows run from -p.Top to b.Height()+p.Bottom and columns from
// -p.Left to b.Width()+p.Right; positions outside the board are g.Fill. The
// row width of the result is p.Width(b.Width()).
func Render(b life.Board, p layout.Padding, g Glyphs) string {
	w, h := b.Width(), b.Height()
	fw, fh := p.Width(w), p.Height(h)
	if fw <= 0 || fh <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(fw * fh)
	for y := -p.Top; y < h+p.Bottom; y++ {
		for x := -p.Left; x < w+p.Right; x++ {
			switch {
			case y < 0 || y >= h || x < 0 || x >= w:
				sb.WriteRune(g.Fill)
			case b[y][x]:
				sb.WriteRune(g.Alive)
			default:
				sb.WriteRune(g.Dead)
			}
		}
	}
	return sb.String()
}

// Flatten writes one glyph per board cell in row-major order.
func Flatten(b life.Board, g Glyphs) string {
	var sb strings.Builder
	sb.Grow(b.Width() * b.Height())
	for _, row := range b {
		for _, c := range row {
			if c {
				sb.WriteRune(g.Alive)
			} else {
				sb.WriteRune(g.Dead)
			}
		}
	}
	return sb.String()
}

// Rows splits a flat frame into rows of width runes. A trailing partial row
// is kept.
func Rows(frame string, width int) []string {
	if width <= 0 || frame == "" {
		return nil
	}
	runes := []rune(frame)
	rows := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := min(start+width, len(runes))
		rows = append(rows, string(runes[start:end]))
	}
	return rows
}
