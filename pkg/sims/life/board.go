package life

import (
	"errors"
	"strings"

	"termlife/pkg/core"
)

// AliveMarker is the rune that marks a live cell in board text.
const AliveMarker = 'o'

// ErrEmptyBoard is returned when board text holds no cells.
var ErrEmptyBoard = errors.New("board has no cells")

// Board is a rectangular grid of cells stored as rows. A true cell is alive.
// Boards are treated as values: Step and the helpers below never modify the
// receiver.
type Board [][]bool

// NewBoard returns an all-dead board with the given dimensions.
func NewBoard(w, h int) Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	b := make(Board, h)
	for y := range b {
		b[y] = make([]bool, w)
	}
	return b
}

// Random returns a w*h board seeded from the deterministic core RNG.
func Random(w, h int, seed int64) Board {
	b := NewBoard(w, h)
	rng := core.NewRNG(seed)
	for _, row := range b {
		rng.FillBool(row)
	}
	return b
}

// Parse converts board text into a Board using AliveMarker.
func Parse(text string) (Board, error) {
	return ParseMarker(text, AliveMarker)
}

// ParseMarker converts board text into a Board. The text is trimmed, split
// into lines and every line trimmed again. Each rune equal to marker becomes
// a live cell; any other rune is dead. Rows shorter than the widest row are
// padded with dead cells so the result is always rectangular.
func ParseMarker(text string, marker rune) (Board, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyBoard
	}

	lines := strings.Split(text, "\n")
	b := make(Board, 0, len(lines))
	width := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]bool, 0, len(line))
		for _, r := range line {
			row = append(row, r == marker)
		}
		width = max(width, len(row))
		b = append(b, row)
	}
	if width == 0 {
		return nil, ErrEmptyBoard
	}

	for y, row := range b {
		if len(row) < width {
			b[y] = append(row, make([]bool, width-len(row))...)
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b Board) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Height returns the number of rows.
func (b Board) Height() int { return len(b) }

// Size returns the board dimensions.
func (b Board) Size() core.Size { return core.Size{W: b.Width(), H: b.Height()} }

// Alive reports whether the cell at (x, y) is alive. Coordinates outside the
// board are dead.
func (b Board) Alive(x, y int) bool {
	if y < 0 || y >= len(b) || x < 0 || x >= len(b[y]) {
		return false
	}
	return b[y][x]
}

// Population counts the live cells.
func (b Board) Population() int {
	n := 0
	for _, row := range b {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y, row := range b {
		c[y] = append([]bool(nil), row...)
	}
	return c
}

// Equal reports whether both boards have the same shape and cells.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for y := range b {
		if len(b[y]) != len(o[y]) {
			return false
		}
		for x := range b[y] {
			if b[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// String formats the board in the text form accepted by Parse, with '.' for
// dead cells.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((b.Width() + 1) * b.Height())
	for y, row := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c {
				sb.WriteRune(AliveMarker)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
