package manager

import (
	"gridsnake/game/types"
)

// InputManager lets at most one direction change through per tick, so two
// perpendicular turns can never add up to a reversal between steps.
type InputManager struct {
	turned bool
}

func NewInputManager() *InputManager {
	return &InputManager{}
}

// Offer hands ev to apply unless a change was already accepted this tick.
// Events that apply rejects do not use up the tick.
func (im *InputManager) Offer(ev types.InputEvent, apply func(types.InputEvent) bool) bool {
	if im.turned {
		return false
	}
	if apply(ev) {
		im.turned = true
		return true
	}
	return false
}

// Reset reopens the gate. Call it right after each step.
func (im *InputManager) Reset() {
	im.turned = false
}

// Turned reports whether a change was accepted since the last Reset.
func (im *InputManager) Turned() bool {
	return im.turned
}
