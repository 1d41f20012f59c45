// Package term presents a running session on a terminal.
package term

import (
	"context"
	"fmt"
	"time"

	"termlife/internal/app"
	"termlife/pkg/frame"

	"github.com/gdamore/tcell/v2"
)

// Screen draws frames on the full terminal with tcell. It takes the
// alternate screen for the duration of Run and restores the terminal when
// Run returns or panics.
type Screen struct {
	screen   tcell.Screen
	session  *app.Session
	interval time.Duration

	style      tcell.Style
	aliveStyle tcell.Style
	paused     bool
}

// OpenScreen initializes the controlling terminal.
func OpenScreen(session *app.Session, interval time.Duration) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return NewScreen(s, session, interval), nil
}

// NewScreen wraps an initialized tcell screen. Run takes ownership of it.
func NewScreen(s tcell.Screen, session *app.Session, interval time.Duration) *Screen {
	return &Screen{
		screen:     s,
		session:    session,
		interval:   interval,
		style:      tcell.StyleDefault,
		aliveStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	}
}

// Run steps the session once per interval and redraws until the user quits
// or ctx is done.
func (d *Screen) Run(ctx context.Context) error {
	defer func() {
		r := recover()
		d.screen.Fini()
		if r != nil {
			panic(r)
		}
	}()

	d.screen.HideCursor()
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go d.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				d.screen.Sync()
			case *tcell.EventKey:
				if d.handleKey(ev) {
					return nil
				}
			}
			d.draw()
		case <-ticker.C:
			if !d.paused {
				d.session.Step()
			}
			d.draw()
		}
	}
}

// handleKey applies a key press and reports whether the driver should exit.
func (d *Screen) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			d.paused = !d.paused
		case 'n':
			if d.paused {
				d.session.Step()
			}
		case 'r':
			d.session.Reset()
		}
	}
	return false
}

// draw blits the frame for the current screen size at the origin.
func (d *Screen) draw() {
	w, h := d.screen.Size()
	f, width := d.session.Frame(w, h)
	alive := d.session.Glyphs().Alive

	d.screen.Clear()
	for y, row := range frame.Rows(f, width) {
		x := 0
		for _, r := range row {
			style := d.style
			if r == alive {
				style = d.aliveStyle
			}
			d.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
	d.screen.Show()
}
