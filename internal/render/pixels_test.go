package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillFrameRGBA(t *testing.T) {
	buf := make([]byte, 4*4)
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{A: 255}
	fillFrameRGBA(buf, "0 0 ", '0', on, off)

	want := []byte{
		10, 20, 30, 255,
		0, 0, 0, 255,
		10, 20, 30, 255,
		0, 0, 0, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillFrameRGBAIgnoresOverflow(t *testing.T) {
	buf := make([]byte, 4)
	fillFrameRGBA(buf, "000", '0', color.White, color.Black)
	if !slices.Equal(buf, []byte{255, 255, 255, 255}) {
		t.Fatalf("buf = %v", buf)
	}
}

func TestFillFrameRGBAMultibyteGlyphs(t *testing.T) {
	buf := make([]byte, 4*3)
	fillFrameRGBA(buf, "█·█", '█', color.White, color.Black)
	if buf[3] != 255 || buf[4] != 0 || buf[8] != 255 {
		t.Fatalf("buf = %v", buf)
	}
}
