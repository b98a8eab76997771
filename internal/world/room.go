package world

import (
	"fmt"

	"github.com/google/uuid"
)

// Coord is an integer lattice position.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the offset from o to c.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Chebyshev returns max(|X|, |Y|), the window distance of an offset.
func (c Coord) Chebyshev() int {
	return max(abs(c.X), abs(c.Y))
}

// String formats the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// RoomID is a handle to a room owned by one Graph.
// The zero value is NoRoom.
type RoomID struct {
	floor uuid.UUID
	index int
}

// NoRoom is the absent room handle.
var NoRoom RoomID

// IsZero reports whether id is NoRoom.
func (id RoomID) IsZero() bool {
	return id == NoRoom
}

// String returns a short debug form of the handle.
func (id RoomID) String() string {
	if id.IsZero() {
		return "room#none"
	}
	return fmt.Sprintf("room#%d", id.index)
}

// Content is whatever a room holds. The graph only stores it and hands it back.
type Content interface {
	Description() string
}

// ContentSource creates the content of a room once, when the room is created.
type ContentSource interface {
	NewContent(c Coord) Content
}

// ContentFunc adapts a function to ContentSource.
type ContentFunc func(c Coord) Content

// NewContent calls f(c).
func (f ContentFunc) NewContent(c Coord) Content {
	return f(c)
}

// Room is a node of the floor graph.
type Room struct {
	id        RoomID
	coord     Coord
	neighbors [len(Directions)]RoomID
	content   Content
	visited   bool
}

// ID returns the room's handle.
func (r *Room) ID() RoomID {
	return r.id
}

// Coord returns the room's lattice position.
func (r *Room) Coord() Coord {
	return r.coord
}

// Neighbor returns the room linked in direction d, if any.
func (r *Room) Neighbor(d Direction) (RoomID, bool) {
	if !d.Valid() {
		return NoRoom, false
	}
	n := r.neighbors[d]
	return n, !n.IsZero()
}

// Exits returns the directions that have a linked room, in table order.
func (r *Room) Exits() []Direction {
	exits := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if !r.neighbors[d].IsZero() {
			exits = append(exits, d)
		}
	}
	return exits
}

// Content returns the room's content.
func (r *Room) Content() Content {
	return r.content
}

// Visited reports whether the room has been entered during exploration.
func (r *Room) Visited() bool {
	return r.visited
}

// Description returns the content description, or "Empty Room" without content.
func (r *Room) Description() string {
	if r.content == nil {
		return "Empty Room"
	}
	return r.content.Description()
}
