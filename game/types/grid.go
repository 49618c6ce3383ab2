package types

// PositionSet is an unordered set of cells.
type PositionSet map[Position]struct{}

// NewPositionSet builds a set holding ps.
func NewPositionSet(ps ...Position) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Remove(p Position) {
	delete(s, p)
}

func (s PositionSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of s.
func (s PositionSet) Clone() PositionSet {
	c := make(PositionSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Cells is a collection of distinct cells kept in a fixed order. Map
// iteration order is not stable between runs, so anything that must replay
// from a seed picks from Cells rather than from a PositionSet.
type Cells []Position

// Set returns the cells as a PositionSet.
func (c Cells) Set() PositionSet {
	return NewPositionSet(c...)
}

// Difference returns, in order, the cells not present in invalid.
func (c Cells) Difference(invalid PositionSet) Cells {
	out := make(Cells, 0, len(c))
	for _, p := range c {
		if !invalid.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Grid describes the board: its size in board units and the side of one cell.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultGrid is the 300x300 board with 9 unit cells.
func DefaultGrid() Grid {
	return Grid{Width: BoardWidth, Height: BoardHeight, CellSize: CellSize}
}

// steps lists 0, c, 2c, ... up to and including dim-c.
func steps(dim, cellSize int) []int {
	if cellSize <= 0 {
		return nil
	}
	var out []int
	for v := 0; v <= dim-cellSize; v += cellSize {
		out = append(out, v)
	}
	return out
}

// Columns is the number of cells along the x axis.
func (g Grid) Columns() int {
	return len(steps(g.Width, g.CellSize))
}

// Rows is the number of cells along the y axis.
func (g Grid) Rows() int {
	return len(steps(g.Height, g.CellSize))
}

// CellCount is the number of distinct cells on the board.
func (g Grid) CellCount() int {
	return g.Columns() * g.Rows()
}

// Contains reports whether p lies on the board. Each axis is checked against
// its own dimension.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X <= g.Width-g.CellSize &&
		p.Y >= 0 && p.Y <= g.Height-g.CellSize
}

// Positions enumerates every cell. The enumeration is shuffled so nothing
// downstream can rely on coordinate order.
func (g Grid) Positions(rng Rand) Cells {
	xs := steps(g.Width, g.CellSize)
	ys := steps(g.Height, g.CellSize)

	all := make(Cells, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			all = append(all, Position{X: x, Y: y})
		}
	}
	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return all
}

// RandomPosition picks a cell uniformly, one axis at a time. An axis with no
// valid cell falls back to 0.
func (g Grid) RandomPosition(rng Rand) Position {
	return Position{
		X: pick(rng, steps(g.Width, g.CellSize)),
		Y: pick(rng, steps(g.Height, g.CellSize)),
	}
}

func pick(rng Rand, vs []int) int {
	if len(vs) == 0 {
		return 0
	}
	return vs[rng.Intn(len(vs))]
}
