package manager

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

func pos(x, y int) types.Position {
	return types.Position{X: x, Y: y}
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 90, Height: 45, CellSize: 9})
	occupied := types.NewPositionSet(pos(9, 9), pos(18, 9), pos(27, 9))

	tests := []struct {
		name string
		head types.Position
		want CollisionType
	}{
		{"free cell", pos(36, 9), NoCollision},
		{"last column", pos(81, 0), NoCollision},
		{"last row", pos(0, 36), NoCollision},
		{"left wall", pos(-9, 0), WallCollision},
		{"top wall", pos(0, -9), WallCollision},
		{"right wall", pos(90, 0), WallCollision},
		{"bottom wall", pos(0, 45), WallCollision},
		{"bottom wall inside width", pos(45, 63), WallCollision},
		{"body", pos(18, 9), SelfCollision},
		{"tail still occupied", pos(27, 9), SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.head, occupied); got != tt.want {
				t.Errorf("CheckCollision(%v) = %v, want %v", tt.head, got, tt.want)
			}
		})
	}
}

func TestFoodManagerRespawn(t *testing.T) {
	grid := types.Grid{Width: 27, Height: 9, CellSize: 9}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))
	if len(fm.AllPositions()) != 3 {
		t.Fatalf("Expected 3 cells, got %d", len(fm.AllPositions()))
	}

	food := &entity.Food{Position: pos(0, 0)}
	if !fm.Respawn(food, types.NewPositionSet(pos(0, 0), pos(9, 0))) {
		t.Fatal("Expected respawn to succeed")
	}
	if food.Position != pos(18, 0) {
		t.Errorf("Expected the only free cell (18,0), got %v", food.Position)
	}

	if fm.Respawn(food, fm.AllPositions().Set()) {
		t.Error("Expected respawn to fail on a full board")
	}
	if food.Position != pos(18, 0) {
		t.Errorf("Failed respawn moved food to %v", food.Position)
	}
}

func TestFoodManagerPlace(t *testing.T) {
	grid := types.DefaultGrid()
	fm := NewFoodManager(grid, rand.New(rand.NewSource(4)))
	snake := entity.SnakeFromBody(types.Up, pos(45, 45))

	food := &entity.Food{Position: pos(45, 45)}
	if !fm.Place(food, snake) {
		t.Fatal("Expected placement to succeed")
	}
	if snake.BodySet.Contains(food.Position) {
		t.Errorf("Food left on the snake at %v", food.Position)
	}

	food = &entity.Food{Position: pos(0, 0)}
	fm.Place(food, snake)
	if food.Position != pos(0, 0) {
		t.Errorf("Food on a free cell was moved to %v", food.Position)
	}
}

func TestInputManagerOneChangePerTick(t *testing.T) {
	snake := entity.SnakeFromBody(types.Up, pos(45, 45))
	apply := func(ev types.InputEvent) bool {
		dir, ok := ev.Key.Direction()
		return ok && ev.State == types.Pressed && snake.SetDirection(dir)
	}
	im := NewInputManager()

	// a rejected reversal does not use up the tick
	if im.Offer(types.Press(types.KeyDown), apply) {
		t.Fatal("Reversal must be rejected")
	}
	if im.Turned() {
		t.Fatal("Rejected event closed the gate")
	}

	if !im.Offer(types.Press(types.KeyLeft), apply) {
		t.Fatal("Left turn must be accepted")
	}
	// Down is legal from Left but the tick already turned
	if im.Offer(types.Press(types.KeyDown), apply) {
		t.Error("Second change in one tick must be dropped")
	}
	if snake.Direction != types.Left {
		t.Errorf("Expected Left, got %v", snake.Direction)
	}

	im.Reset()
	if !im.Offer(types.Press(types.KeyDown), apply) {
		t.Error("Gate must reopen after Reset")
	}
	if snake.Direction != types.Down {
		t.Errorf("Expected Down, got %v", snake.Direction)
	}
}
