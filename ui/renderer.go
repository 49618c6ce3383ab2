package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.NewColor(255, 255, 255, 255)
	snakeColor      = rl.NewColor(0, 0, 255, 255)
	foodColor       = rl.NewColor(0, 255, 0, 255)
)

// rlKeys maps raylib key codes to engine keys.
var rlKeys = []struct {
	code int32
	key  types.Key
}{
	{rl.KeyUp, types.KeyUp},
	{rl.KeyDown, types.KeyDown},
	{rl.KeyLeft, types.KeyLeft},
	{rl.KeyRight, types.KeyRight},
}

// Renderer is the raylib window front-end. One board unit is one pixel.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(grid types.Grid, title string) *Renderer {
	r := &Renderer{
		screenWidth:  int32(grid.Width),
		screenHeight: int32(grid.Height),
	}
	rl.InitWindow(r.screenWidth, r.screenHeight, title)
	rl.SetTargetFPS(60)
	return r
}

func (r *Renderer) Poll() []types.InputEvent {
	var events []types.InputEvent
	for _, k := range rlKeys {
		if rl.IsKeyPressed(k.code) {
			events = append(events, types.Press(k.key))
		}
		if rl.IsKeyReleased(k.code) {
			events = append(events, types.InputEvent{Key: k.key, State: types.Released})
		}
	}
	return events
}

func (r *Renderer) Draw(frame game.Frame) {
	size := int32(frame.Grid.CellSize)

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	for _, p := range frame.Body {
		rl.DrawRectangle(int32(p.X), int32(p.Y), size, size, snakeColor)
	}
	rl.DrawRectangle(int32(frame.Food.X), int32(frame.Food.Y), size, size, foodColor)

	rl.EndDrawing()
}

func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}
