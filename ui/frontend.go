package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Frontend draws frames and reports key presses. All methods are called from
// the session goroutine.
type Frontend interface {
	// Poll returns the input events received since the previous call
	// without blocking.
	Poll() []types.InputEvent
	Draw(frame game.Frame)
	ShouldClose() bool
	Close()
}
