package life

import "termlife/pkg/core"

// Neighbors returns the eight cells surrounding (x, y) on a w*h torus, in
// reading order: the row above, the left and right cells, then the row below.
func Neighbors(x, y, w, h int) [8]core.Point {
	left := (x - 1 + w) % w
	right := (x + 1) % w
	top := (y - 1 + h) % h
	bottom := (y + 1) % h
	return [8]core.Point{
		{X: left, Y: top}, {X: x, Y: top}, {X: right, Y: top},
		{X: left, Y: y}, {X: right, Y: y},
		{X: left, Y: bottom}, {X: x, Y: bottom}, {X: right, Y: bottom},
	}
}

// Step computes the next generation of b under Conway's rules (B3/S23) with
// toroidal wrapping. Neighbor counts only read b; the result is a newly
// allocated board of the same dimensions.
func Step(b Board) Board {
	h := b.Height()
	w := b.Width()
	next := make(Board, h)
	for y := 0; y < h; y++ {
		row := make([]bool, w)
		for x := 0; x < w; x++ {
			neighbors := 0
			for _, n := range Neighbors(x, y, w, h) {
				if b[n.Y][n.X] {
					neighbors++
				}
			}
			alive := b[y][x]
			row[x] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
		next[y] = row
	}
	return next
}

// Life holds the current generation of a board together with the board it
// started from.
type Life struct {
	initial Board
	cur     Board
	gen     int
}

// New returns a Life simulation starting at b.
func New(b Board) *Life {
	return &Life{initial: b, cur: b}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the board dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Board exposes the current generation. Callers must not modify it.
func (l *Life) Board() Board { return l.cur }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.gen }

// Reset restores the starting board.
func (l *Life) Reset() {
	l.cur = l.initial
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.cur = Step(l.cur)
	l.gen++
}
