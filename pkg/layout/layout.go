// Package layout positions a board inside a viewport. Padding values are
// signed: a negative side crops the board instead of surrounding it with fill.
package layout

import "math"

// Padding is the number of fill rows/columns around a board on each side.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Width returns the frame width for a board boardW columns wide.
func (p Padding) Width(boardW int) int { return boardW + p.Left + p.Right }

// Height returns the frame height for a board boardH rows tall.
func (p Padding) Height(boardH int) int { return boardH + p.Top + p.Bottom }

// Center returns the padding that centers a board in the window. Odd
// differences put the extra fill on the bottom/right, or take the extra crop
// from the top/left when the board is larger than the window.
func Center(winW, winH, boardW, boardH int) Padding {
	left, right := split(winW - boardW)
	top, bottom := split(winH - boardH)
	return Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Anchored returns the padding that pins the board to the edge or corner
// named by a. AnchorNone centers like Center.
func Anchored(a Anchor, winW, winH, boardW, boardH int) Padding {
	if a == AnchorNone {
		return Center(winW, winH, boardW, boardH)
	}
	diffW := winW - boardW
	diffH := winH - boardH

	var p Padding
	switch a.vertical() {
	case 't':
		p.Top, p.Bottom = 0, diffH
	case 'b':
		p.Top, p.Bottom = diffH, 0
	default:
		p.Top, p.Bottom = split(diffH)
	}
	switch a.horizontal() {
	case 'l':
		p.Left, p.Right = 0, diffW
	case 'r':
		p.Left, p.Right = diffW, 0
	default:
		p.Left, p.Right = split(diffW)
	}
	return p
}

// split halves diff into floor and ceil parts that always sum to diff.
func split(diff int) (lo, hi int) {
	half := float64(diff) / 2
	return int(math.Floor(half)), int(math.Ceil(half))
}
