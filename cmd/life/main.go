package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"termlife/internal/app"
	"termlife/internal/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg, err := app.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.Board == "" && !cfg.Random {
		log.Printf("no board given, falling back on %q", cfg.BoardName())
	}
	board, err := app.LoadBoard(cfg)
	if err != nil {
		log.Fatal(err)
	}
	session := app.NewSession(board, cfg.Anchor, cfg.Glyphs())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, session)
	stop()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped after %d generations", session.Generation())
}

func run(ctx context.Context, cfg *app.Config, session *app.Session) error {
	switch cfg.Driver {
	case app.DriverLive:
		return term.NewLive(os.Stdout, session, cfg.Interval).Run(ctx)
	case app.DriverWindow:
		return app.RunWindow(session, cfg)
	default:
		screen, err := term.OpenScreen(session, cfg.Interval)
		if err != nil {
			return err
		}
		return screen.Run(ctx)
	}
}
