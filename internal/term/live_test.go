package term

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"termlife/internal/app"
	"termlife/pkg/frame"
	"termlife/pkg/layout"
	"termlife/pkg/sims/life"

	"github.com/muesli/termenv"
)

func TestLiveDraw(t *testing.T) {
	var buf bytes.Buffer
	session := newSession(t, layout.AnchorNone)
	l := NewLive(&buf, session, time.Hour)
	l.size = func() (int, int) { return 30, 6 }

	if err := l.draw(); err != nil {
		t.Fatalf("draw: %v", err)
	}

	blank := strings.Repeat(" ", 30)
	cell := strings.Repeat(" ", 14) + "0" + strings.Repeat(" ", 15)
	want := []string{blank, cell, cell, cell, blank, "generation 0  population 3", ""}
	got := strings.Split(buf.String(), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLiveRedrawClearsOnlyItsOwnLines(t *testing.T) {
	b, err := life.Parse(blinker)
	if err != nil {
		t.Fatal(err)
	}
	glyphs := frame.Glyphs{Alive: '█', Dead: ' ', Fill: ' '}
	session := app.NewSession(b, layout.AnchorNone, glyphs)

	for _, size := range [][2]int{{40, 12}, {20, 8}, {12, 6}} {
		w, h := size[0], size[1]
		var buf bytes.Buffer
		l := NewLive(&buf, session, time.Hour)
		l.renderer.SetColorProfile(termenv.TrueColor)
		l.restyle()
		l.size = func() (int, int) { return w, h }

		if err := l.draw(); err != nil {
			t.Fatalf("draw: %v", err)
		}
		first := buf.String()
		lines := strings.Count(first, "\n")
		if lines != h {
			t.Fatalf("%dx%d: drew %d lines, want %d", w, h, lines, h)
		}
		for i, line := range strings.Split(strings.TrimSuffix(first, "\n"), "\n") {
			if len(line) > w {
				t.Fatalf("%dx%d: line %d is %d bytes, wider than the viewport: %q", w, h, i, len(line), line)
			}
		}

		buf.Reset()
		session.Step()
		if err := l.draw(); err != nil {
			t.Fatalf("draw: %v", err)
		}
		if up := strings.Count(buf.String(), "\x1b[1A"); up != lines {
			t.Fatalf("%dx%d: redraw moved up %d lines, drew %d", w, h, up, lines)
		}
	}
}

func TestLiveStatusStyledOnlyWhenItFits(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf, newSession(t, layout.AnchorNone), time.Hour)
	l.renderer.SetColorProfile(termenv.TrueColor)
	l.restyle()

	if wide := l.statusLine(80); !strings.Contains(wide, "\x1b[") {
		t.Fatalf("status on a wide viewport is not styled: %q", wide)
	}
	if narrow := l.statusLine(26); narrow != "generation 0  population 3" {
		t.Fatalf("status on a tight viewport = %q", narrow)
	}
	if cut := l.statusLine(10); cut != "generation" {
		t.Fatalf("status on a narrow viewport = %q", cut)
	}
}

func TestGlyphBytes(t *testing.T) {
	if n := glyphBytes(frame.DefaultGlyphs); n != 1 {
		t.Fatalf("default glyphs = %d bytes", n)
	}
	if n := glyphBytes(frame.Glyphs{Alive: '█', Dead: '·', Fill: ' '}); n != 3 {
		t.Fatalf("block glyphs = %d bytes", n)
	}
}

func TestLiveRunSteps(t *testing.T) {
	var buf bytes.Buffer
	session := newSession(t, layout.AnchorNone)
	l := NewLive(&buf, session, time.Millisecond)
	l.size = func() (int, int) { return 9, 8 }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if session.Generation() == 0 {
		t.Fatal("session never stepped")
	}
}
