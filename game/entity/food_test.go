package entity

import (
	"testing"

	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

func TestNewFoodOnBoard(t *testing.T) {
	grid := types.DefaultGrid()
	f := NewFood(grid, rand.New(rand.NewSource(11)))
	if !grid.Contains(f.Position) {
		t.Errorf("Food %v is off the board", f.Position)
	}
}

func TestRefreshPosition(t *testing.T) {
	grid := types.DefaultGrid()
	all := grid.Positions(rand.New(rand.NewSource(2)))
	f := &Food{}

	t.Run("free cell chosen", func(t *testing.T) {
		invalid := types.NewPositionSet(all[:1000]...)
		p, ok := f.RefreshPosition(all, invalid)
		if !ok {
			t.Fatal("Expected a free cell")
		}
		if invalid.Contains(p) {
			t.Errorf("Picked occupied cell %v", p)
		}
		if !all.Set().Contains(p) {
			t.Errorf("Picked %v which is not on the board", p)
		}
	})

	t.Run("last free cell", func(t *testing.T) {
		invalid := types.NewPositionSet(all[1:]...)
		p, ok := f.RefreshPosition(all, invalid)
		if !ok || p != all[0] {
			t.Errorf("Expected (%v, true), got (%v, %v)", all[0], p, ok)
		}
	})

	t.Run("board full", func(t *testing.T) {
		invalid := all.Set()
		if invalid.Len() != grid.CellCount() {
			t.Fatalf("Expected %d occupied cells, got %d", grid.CellCount(), invalid.Len())
		}
		if _, ok := f.RefreshPosition(all, invalid); ok {
			t.Error("Expected no free cell on a full board")
		}
	})
}
