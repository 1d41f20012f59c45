package core

// Size describes the dimensions of a board or viewport in cells.
type Size struct {
	W int
	H int
}

// Point addresses a single cell. X is the column and Y the row.
type Point struct {
	X int
	Y int
}
