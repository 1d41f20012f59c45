//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"termlife/internal/core"
	"termlife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a Session to the ebiten.Game interface. The window is treated
// as a character surface of scale*scale pixel cells.
type Game struct {
	session *Session
	painter *render.GridPainter
	ticker  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale      int
	cols, rows int
	paused     bool
	tickOnce   bool
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config) *Game {
	size := session.Board().Size()
	return &Game{
		session:  session,
		ticker:   core.NewFixedStep(cfg.Interval),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		cols:     size.W,
		rows:     size.H,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}

	due := g.ticker.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.session.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current frame and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	f, width := g.session.Frame(g.cols, g.rows)
	if width > 0 {
		height := len([]rune(f)) / width
		if w, h := g.painterSize(); w != width || h != height {
			g.painter = render.NewGridPainter(width, height)
		}
		g.painter.Blit(screen, f, g.session.Glyphs().Alive, g.onColor, g.offColor, g.scale)
	}

	status := fmt.Sprintf("gen %d  pop %d", g.session.Generation(), g.session.Population())
	if g.paused {
		status += "  paused"
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.RGBA{R: 120, G: 200, B: 120, A: 255})
}

func (g *Game) painterSize() (int, int) {
	if g.painter == nil {
		return 0, 0
	}
	return g.painter.Size()
}

// Layout maps the window onto a grid of character cells.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cols = max(outsideWidth/g.scale, 1)
	g.rows = max(outsideHeight/g.scale, 1)
	return g.cols * g.scale, g.rows * g.scale
}

// RunWindow presents the session in a resizable window until it is closed.
func RunWindow(session *Session, cfg *Config) error {
	game := New(session, cfg)
	size := session.Board().Size()

	ebiten.SetWindowTitle("life")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
