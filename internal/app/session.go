package app

import (
	"termlife/pkg/frame"
	"termlife/pkg/layout"
	"termlife/pkg/sims/life"
)

// Session owns the running simulation and turns it into frames for a
// viewport of a given size. Drivers call it from a single goroutine.
type Session struct {
	life   *life.Life
	anchor layout.Anchor
	glyphs frame.Glyphs
}

// NewSession starts a simulation at b.
func NewSession(b life.Board, anchor layout.Anchor, glyphs frame.Glyphs) *Session {
	return &Session{life: life.New(b), anchor: anchor, glyphs: glyphs}
}

// Layout computes the padding for the current board in a winW*winH viewport.
func (s *Session) Layout(winW, winH int) layout.Padding {
	size := s.life.Size()
	if s.anchor == layout.AnchorNone {
		return layout.Center(winW, winH, size.W, size.H)
	}
	return layout.Anchored(s.anchor, winW, winH, size.W, size.H)
}

// Frame renders the current generation for a winW*winH viewport. It returns
// the flat frame and its row width.
func (s *Session) Frame(winW, winH int) (string, int) {
	p := s.Layout(winW, winH)
	b := s.life.Board()
	return frame.Render(b, p, s.glyphs), p.Width(b.Width())
}

// Glyphs returns the glyphs frames are drawn with.
func (s *Session) Glyphs() frame.Glyphs { return s.glyphs }

// Step advances one generation.
func (s *Session) Step() { s.life.Step() }

// Reset returns to the starting board.
func (s *Session) Reset() { s.life.Reset() }

// Generation returns the number of generations since the last reset.
func (s *Session) Generation() int { return s.life.Generation() }

// Population counts the live cells of the current generation.
func (s *Session) Population() int { return s.life.Board().Population() }

// Board exposes the current generation.
func (s *Session) Board() life.Board { return s.life.Board() }
