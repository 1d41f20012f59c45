package life

import (
	"errors"
	"testing"

	"termlife/pkg/core"
)

const testBoard = `
        -----
        --o--
        --o--
        --o--
        -----
    `

func TestParse(t *testing.T) {
	b, err := Parse(testBoard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Width() != 5 || b.Height() != 5 {
		t.Fatalf("parsed %dx%d, want 5x5", b.Width(), b.Height())
	}
	expectAlive(t, b, "parse", core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 3})
}

func TestParseMarker(t *testing.T) {
	b, err := ParseMarker("0.0\n.0.", '0')
	if err != nil {
		t.Fatalf("ParseMarker: %v", err)
	}
	expectAlive(t, b, "marker", core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 0}, core.Point{X: 1, Y: 1})
}

func TestParsePadsShortRows(t *testing.T) {
	b, err := Parse("o\nooo\n\noo")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Width() != 3 || b.Height() != 4 {
		t.Fatalf("parsed %dx%d, want 3x4", b.Width(), b.Height())
	}
	for y, row := range b {
		if len(row) != 3 {
			t.Fatalf("row %d has %d cells", y, len(row))
		}
	}
	if b[0][1] || b[2][0] || !b[3][1] {
		t.Fatalf("unexpected cells:\n%s", b)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n  "} {
		if _, err := Parse(text); !errors.Is(err, ErrEmptyBoard) {
			t.Fatalf("Parse(%q) error = %v, want ErrEmptyBoard", text, err)
		}
	}
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := Random(7, 4, 3)
	again, err := Parse(b.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !again.Equal(b) {
		t.Fatalf("round trip mismatch:\n%s\n---\n%s", b, again)
	}
}

func TestBoardHelpers(t *testing.T) {
	b := boardWith(3, 2, core.Point{X: 1, Y: 0}, core.Point{X: 2, Y: 1})
	if b.Population() != 2 {
		t.Fatalf("population = %d", b.Population())
	}
	if b.Alive(-1, 0) || b.Alive(3, 0) || !b.Alive(1, 0) {
		t.Fatal("Alive bounds handling wrong")
	}
	c := b.Clone()
	c[0][0] = true
	if b[0][0] {
		t.Fatal("Clone shares rows with the original")
	}
	if b.Equal(c) {
		t.Fatal("Equal ignored a differing cell")
	}
	if NewBoard(0, -1).Size() != (core.Size{W: 1, H: 1}) {
		t.Fatal("NewBoard should clamp to 1x1")
	}
}
