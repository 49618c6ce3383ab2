package main

import (
	"context"
	"errors"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/ui"

	"github.com/rs/zerolog"
)

const frameInterval = time.Second / 60

// errClosed is returned by Run when the player closes the front-end.
var errClosed = errors.New("front-end closed")

type player interface {
	Play()
}

// Session drives one game: a step ticker advances the engine, a frame ticker
// polls input and redraws. Everything runs on the caller's goroutine.
type Session struct {
	game      *game.Game
	frontend  ui.Frontend
	input     *manager.InputManager
	chime     player
	stepEvery time.Duration
	log       zerolog.Logger

	newTicker func(d time.Duration) (<-chan time.Time, func())
}

// NewSession wires g to fe. chime may be nil.
func NewSession(g *game.Game, fe ui.Frontend, chime player, logger zerolog.Logger) *Session {
	return &Session{
		game:      g,
		frontend:  fe,
		input:     manager.NewInputManager(),
		chime:     chime,
		stepEvery: types.TickInterval,
		log:       logger,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

// Run blocks until the game is over, the front-end asks to close or ctx is
// done. A finished game returns nil.
func (s *Session) Run(ctx context.Context) error {
	stepC, stopStep := s.newTicker(s.stepEvery)
	defer stopStep()
	frameC, stopFrame := s.newTicker(frameInterval)
	defer stopFrame()

	s.frontend.Draw(s.game.Frame())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-stepC:
			s.drainInput()
			outcome := s.game.Step()
			s.input.Reset()

			if outcome == game.Ate && s.chime != nil {
				s.chime.Play()
			}
			s.frontend.Draw(s.game.Frame())

			if s.game.Over() {
				return nil
			}

		case <-frameC:
			s.drainInput()
			if s.frontend.ShouldClose() {
				s.log.Info().Int("steps", s.game.Steps()).Msg("closed by player")
				return errClosed
			}
			s.frontend.Draw(s.game.Frame())
		}
	}
}

// Hold keeps the final frame up after Run until the player presses a key,
// asks to close, ctx is done or d elapses.
func (s *Session) Hold(ctx context.Context, d time.Duration) {
	frameC, stop := s.newTicker(frameInterval)
	defer stop()
	deadline := time.NewTimer(d)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-frameC:
			for _, ev := range s.frontend.Poll() {
				if ev.State == types.Pressed {
					return
				}
			}
			if s.frontend.ShouldClose() {
				return
			}
			s.frontend.Draw(s.game.Frame())
		}
	}
}

// drainInput offers every pending event to the engine through the per-tick
// gate.
func (s *Session) drainInput() {
	for _, ev := range s.frontend.Poll() {
		if s.input.Offer(ev, s.game.SetDirection) {
			s.log.Debug().Int("key", int(ev.Key)).Msg("direction changed")
		}
	}
}
