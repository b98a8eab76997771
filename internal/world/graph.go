package world

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidRoomCount is returned when a floor is requested with no rooms.
	ErrInvalidRoomCount = errors.New("room count must be positive")
	// ErrDuplicateCoordinate means a room already occupies the coordinate.
	ErrDuplicateCoordinate = errors.New("coordinate already occupied")
	// ErrUnknownRoom means the handle does not belong to this graph.
	ErrUnknownRoom = errors.New("unknown room")
	// ErrInvalidDirection means a direction outside North, South, West, East.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidRadius means a negative map window radius.
	ErrInvalidRadius = errors.New("radius must not be negative")
)

// Graph owns every room of one floor and indexes them by coordinate.
// Rooms are never removed individually; Teardown drops the whole floor.
type Graph struct {
	id      uuid.UUID
	rooms   []*Room
	byCoord map[Coord]RoomID
	source  ContentSource
}

// NewGraph creates an empty floor whose rooms get their content from source.
// A nil source leaves content empty.
func NewGraph(source ContentSource) *Graph {
	return &Graph{
		id:      uuid.New(),
		rooms:   make([]*Room, 0),
		byCoord: make(map[Coord]RoomID),
		source:  source,
	}
}

// FloorID returns the identity stamped into every handle of this graph.
func (g *Graph) FloorID() uuid.UUID {
	return g.id
}

// CreateRoom adds a room at c and fills its content.
func (g *Graph) CreateRoom(c Coord) (RoomID, error) {
	if existing, ok := g.byCoord[c]; ok {
		return NoRoom, fmt.Errorf("create room at %s (held by %s): %w", c, existing, ErrDuplicateCoordinate)
	}

	id := RoomID{floor: g.id, index: len(g.rooms)}
	room := &Room{id: id, coord: c}
	if g.source != nil {
		room.content = g.source.NewContent(c)
	}

	g.rooms = append(g.rooms, room)
	g.byCoord[c] = id
	return id, nil
}

// Room resolves a handle.
func (g *Graph) Room(id RoomID) (*Room, error) {
	if id.IsZero() || id.floor != g.id || id.index < 0 || id.index >= len(g.rooms) {
		return nil, fmt.Errorf("resolve %s: %w", id, ErrUnknownRoom)
	}
	return g.rooms[id.index], nil
}

// MustRoom resolves a handle, panicking on error.
func (g *Graph) MustRoom(id RoomID) *Room {
	room, err := g.Room(id)
	if err != nil {
		panic(err)
	}
	return room
}

// Lookup returns the room at c, if any.
func (g *Graph) Lookup(c Coord) (RoomID, bool) {
	id, ok := g.byCoord[c]
	return id, ok
}

// RoomCount returns the number of rooms on the floor.
func (g *Graph) RoomCount() int {
	return len(g.rooms)
}

// Rooms returns every handle in creation order.
func (g *Graph) Rooms() []RoomID {
	ids := make([]RoomID, len(g.rooms))
	for i, r := range g.rooms {
		ids[i] = r.id
	}
	return ids
}

// Neighbor returns the room linked to id in direction d.
// A missing link is (NoRoom, false, nil), not an error.
func (g *Graph) Neighbor(id RoomID, d Direction) (RoomID, bool, error) {
	room, err := g.Room(id)
	if err != nil {
		return NoRoom, false, err
	}
	n, ok := room.Neighbor(d)
	return n, ok, nil
}

// MarkVisited sets the visited flag of a room.
func (g *Graph) MarkVisited(id RoomID) error {
	room, err := g.Room(id)
	if err != nil {
		return err
	}
	room.visited = true
	return nil
}

// Teardown destroys the floor. Handles issued before the call no longer resolve.
func (g *Graph) Teardown() {
	g.id = uuid.New()
	g.rooms = make([]*Room, 0)
	g.byCoord = make(map[Coord]RoomID)
}
