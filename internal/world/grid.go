package world

import "strings"

// Cell is one square of a map window.
type Cell rune

const (
	// CellAbsent is a square with no discovered room.
	CellAbsent Cell = ' '
	// CellUnvisited is a discovered room that has not been entered.
	CellUnvisited Cell = '?'
	// CellVisited is a discovered room that has been entered.
	CellVisited Cell = '.'
	// CellOrigin is the room the window is centred on.
	CellOrigin Cell = '@'
)

// Discovered reports whether the cell holds a room.
func (c Cell) Discovered() bool {
	return c != CellAbsent
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}

// Grid is a square map window centred on an origin room.
// Row 0 is the northmost row.
type Grid struct {
	Radius int
	cells  [][]Cell
	rooms  [][]RoomID
}

func newGrid(radius int) *Grid {
	size := 2*radius + 1
	cells := make([][]Cell, size)
	rooms := make([][]RoomID, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
		rooms[y] = make([]RoomID, size)
		for x := range cells[y] {
			cells[y][x] = CellAbsent
		}
	}
	return &Grid{Radius: radius, cells: cells, rooms: rooms}
}

// Size returns the side length of the window.
func (g *Grid) Size() int {
	return 2*g.Radius + 1
}

func (g *Grid) index(rel Coord) (row, col int, ok bool) {
	if rel.Chebyshev() > g.Radius {
		return 0, 0, false
	}
	return g.Radius - rel.Y, g.Radius + rel.X, true
}

func (g *Grid) set(rel Coord, c Cell, id RoomID) {
	row, col, ok := g.index(rel)
	if !ok {
		return
	}
	g.cells[row][col] = c
	g.rooms[row][col] = id
}

// At returns the cell at offset (dx, dy) from the origin. Offsets outside the
// window are absent.
func (g *Grid) At(dx, dy int) Cell {
	row, col, ok := g.index(Coord{X: dx, Y: dy})
	if !ok {
		return CellAbsent
	}
	return g.cells[row][col]
}

// RoomAt returns the room drawn at offset (dx, dy), if any.
func (g *Grid) RoomAt(dx, dy int) (RoomID, bool) {
	row, col, ok := g.index(Coord{X: dx, Y: dy})
	if !ok {
		return NoRoom, false
	}
	id := g.rooms[row][col]
	return id, !id.IsZero()
}

// Row returns a copy of row y (0 is north).
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= len(g.cells) {
		return nil
	}
	row := make([]Cell, len(g.cells[y]))
	copy(row, g.cells[y])
	return row
}

// Discovered returns the number of cells holding a room.
func (g *Grid) Discovered() int {
	count := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.Discovered() {
				count++
			}
		}
	}
	return count
}

// String renders the window one row per line, north first.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
	}
	return sb.String()
}
