package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"termlife/internal/core"
	"termlife/pkg/frame"
	"termlife/pkg/layout"
	"termlife/pkg/sims/life"
)

// Drivers that can present a session.
const (
	DriverTerm   = "term"
	DriverLive   = "live"
	DriverWindow = "window"
)

// ErrUnknownDriver is returned for a -driver value that names no driver.
var ErrUnknownDriver = errors.New("unknown driver")

const usage = `NAME
        life - play the Game of Life in your terminal.

SYNOPSIS
        life [options] [BOARD]

DESCRIPTION
        BOARD is a text file with one line per board row. A live cell is
        written with the marker rune ("o" unless -marker says otherwise) and
        any other character is a dead cell. "builtin:NAME" selects a bundled
        board; the default is builtin:gallery, a gallery of still lifes and
        oscillators.

        The board does not depend on the window size. It is centered in the
        viewport whether it is larger or smaller, and cropped when it does
        not fit. The anchor option pins it to an edge or corner instead.

OPTIONS
`

// Config represents the command-line parameters for the application.
type Config struct {
	Board    string
	Anchor   layout.Anchor
	Interval time.Duration
	Driver   string
	Marker   string
	Glyph    string
	Random   bool
	Size     string
	Seed     int64
	Scale    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Interval: core.DefaultInterval,
		Driver:   DriverTerm,
		Marker:   string(life.AliveMarker),
		Glyph:    string(frame.DefaultGlyphs.Alive),
		Size:     "64x32",
		Seed:     42,
		Scale:    8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(&c.Anchor, "anchor", "pin the board to `ALIGNMENT`: two characters, vertical (t, c, b) then horizontal (l, c, r), e.g. tl, cc, br")
	fs.Var(&c.Anchor, "a", "shorthand for -anchor")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.StringVar(&c.Driver, "driver", c.Driver, "output driver: term, live or window")
	fs.StringVar(&c.Marker, "marker", c.Marker, "rune marking a live cell in BOARD")
	fs.StringVar(&c.Glyph, "glyph", c.Glyph, "rune drawn for a live cell")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board instead of BOARD")
	fs.StringVar(&c.Size, "size", c.Size, "random board size as `WxH`")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell for the window driver")
}

// Parse reads the command line into a Config. Asking for help returns
// flag.ErrHelp after the usage text has been written to output.
func Parse(args []string, output io.Writer) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(output)
	cfg.Bind(fs)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("parse command line: %w", err)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Board = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one BOARD, got %d", fs.NArg())
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Driver {
	case DriverTerm, DriverLive, DriverWindow:
	default:
		return fmt.Errorf("%w %q: expected term, live or window", ErrUnknownDriver, c.Driver)
	}
	if utf8.RuneCountInString(c.Marker) != 1 {
		return fmt.Errorf("marker must be a single character, got %q", c.Marker)
	}
	if utf8.RuneCountInString(c.Glyph) != 1 {
		return fmt.Errorf("glyph must be a single character, got %q", c.Glyph)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Random {
		if _, _, err := c.RandomSize(); err != nil {
			return err
		}
	}
	return nil
}

// MarkerRune returns the rune marking live cells in board text.
func (c *Config) MarkerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Marker)
	return r
}

// RandomSize parses Size into columns and rows.
func (c *Config) RandomSize() (w, h int, err error) {
	if _, err := fmt.Sscanf(c.Size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: expected WxH with positive dimensions", c.Size)
	}
	return w, h, nil
}

// Glyphs returns the glyph set used by the text drivers.
func (c *Config) Glyphs() frame.Glyphs {
	g := frame.DefaultGlyphs
	if r, _ := utf8.DecodeRuneInString(c.Glyph); r != utf8.RuneError {
		g.Alive = r
	}
	return g
}
