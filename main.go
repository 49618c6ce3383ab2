package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// gameOverHold is how long the final board stays up after the game ends.
const gameOverHold = 3 * time.Second

func main() {
	frontend := flag.String("ui", "raylib", "front-end: raylib or term")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	sound := flag.Bool("sound", false, "play a chime when food is eaten")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFile := flag.String("log-file", "", "write logs to this file instead of stderr")
	flag.Parse()

	closeLog, err := setupLogging(*logLevel, *logFile, *frontend == "term")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	over, err := run(*frontend, *seed, *sound)
	if err != nil {
		log.Error().Err(err).Msg("snake stopped")
	}
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintln(os.Stderr, "close log:", cerr)
	}

	if err != nil {
		os.Exit(1)
	}
	if over {
		fmt.Println("Game over!")
	}
}

// run plays one game and reports whether it ended by the rules. Closing the
// front-end or an interrupt is not an error.
func run(frontend string, seed uint64, sound bool) (bool, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info().Uint64("seed", seed).Str("ui", frontend).Msg("starting")

	grid := types.DefaultGrid()
	g := game.New(grid, rng, log.Logger)

	fe, err := newFrontend(frontend, grid)
	if err != nil {
		return false, fmt.Errorf("start front-end: %w", err)
	}
	defer fe.Close()

	var chime player
	if sound {
		c, err := audio.NewChime()
		if err != nil {
			// Non-fatal, game can run without sound
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			defer c.Close()
			chime = c
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := NewSession(g, fe, chime, log.Logger)
	err = session.Run(ctx)
	switch {
	case errors.Is(err, errClosed), errors.Is(err, context.Canceled):
		return false, nil
	case err != nil:
		return false, err
	}

	session.Hold(ctx, gameOverHold)
	return g.Over(), nil
}

func newFrontend(name string, grid types.Grid) (ui.Frontend, error) {
	switch name {
	case "raylib":
		return ui.NewRenderer(grid, "snake-game"), nil
	case "term":
		t, err := ui.NewTerminal()
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("unknown front-end %q", name)
}
