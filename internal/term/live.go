package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"termlife/internal/app"
	"termlife/pkg/frame"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uilive"
	xterm "golang.org/x/term"
)

// Live redraws frames in place on the normal screen buffer, below whatever
// the shell printed before. The bottom row holds a status line.
//
// uilive measures lines in bytes when it decides how many rows to clear, so
// no line written here may be longer in bytes than the viewport is wide.
// Cells are therefore drawn unstyled and the status line is only colored
// when the escapes fit.
type Live struct {
	out      *uilive.Writer
	session  *app.Session
	interval time.Duration
	size     func() (int, int)

	renderer *lipgloss.Renderer
	status   lipgloss.Style
}

// NewLive returns a driver writing to w. The viewport follows the size of
// standard output, then $COLUMNS and $LINES, then 80x24.
func NewLive(w io.Writer, session *app.Session, interval time.Duration) *Live {
	out := uilive.New()
	out.Out = w
	l := &Live{
		out:      out,
		session:  session,
		interval: interval,
		size:     stdoutSize,
		renderer: lipgloss.NewRenderer(w),
	}
	l.restyle()
	return l
}

func (l *Live) restyle() {
	l.status = l.renderer.NewStyle().Foreground(lipgloss.Color("#8b949e"))
}

func stdoutSize() (width, height int) {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err == nil && w > 0 && h > 0 {
		return w, h
	}
	width, height = envInt("COLUMNS", 80), envInt("LINES", 24)
	return width, height
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

// Run steps and redraws once per interval until ctx is done.
func (l *Live) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		if err := l.draw(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.session.Step()
		}
	}
}

func (l *Live) draw() error {
	w, h := l.size()
	cols := max(w/glyphBytes(l.session.Glyphs()), 1)
	f, width := l.session.Frame(cols, max(h-1, 1))

	var sb strings.Builder
	for _, row := range frame.Rows(f, width) {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	sb.WriteString(l.statusLine(w))
	sb.WriteByte('\n')

	if _, err := io.WriteString(l.out, sb.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if err := l.out.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// statusLine returns the generation and population cut to w columns, styled
// only if the styled text still fits in w bytes.
func (l *Live) statusLine(w int) string {
	status := fmt.Sprintf("generation %d  population %d", l.session.Generation(), l.session.Population())
	if len(status) > w {
		status = status[:w]
	}
	if styled := l.status.Render(status); len(styled) <= w {
		return styled
	}
	return status
}

// glyphBytes is the widest UTF-8 encoding among the frame glyphs.
func glyphBytes(g frame.Glyphs) int {
	return max(utf8.RuneLen(g.Alive), utf8.RuneLen(g.Dead), utf8.RuneLen(g.Fill), 1)
}
