package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"termlife/boards"
	"termlife/pkg/sims/life"
)

// BuiltinPrefix selects a bundled board instead of a file.
const BuiltinPrefix = "builtin:"

// ErrUnknownBoard is returned when a builtin board name is not registered.
var ErrUnknownBoard = errors.New("unknown board")

// BoardName returns the board the config refers to, applying the default.
func (c *Config) BoardName() string {
	if c.Board == "" {
		return BuiltinPrefix + boards.Default
	}
	return c.Board
}

// LoadBoard produces the starting board described by cfg: a random board, a
// bundled board, or a file read from disk.
func LoadBoard(cfg *Config) (life.Board, error) {
	if cfg.Random {
		w, h, err := cfg.RandomSize()
		if err != nil {
			return nil, err
		}
		return life.Random(w, h, cfg.Seed), nil
	}

	name := cfg.BoardName()
	var text string
	if builtin, ok := strings.CutPrefix(name, BuiltinPrefix); ok {
		t, found := boards.Lookup(builtin)
		if !found {
			return nil, fmt.Errorf("%w %q: available boards are %s", ErrUnknownBoard, builtin, strings.Join(boards.Names(), ", "))
		}
		text = t
	} else {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("load board %q: %w", name, err)
		}
		text = string(data)
	}

	b, err := life.ParseMarker(text, cfg.MarkerRune())
	if err != nil {
		return nil, fmt.Errorf("load board %q: %w", name, err)
	}
	return b, nil
}
