package world

import "fmt"

// Link joins a to b in direction d and b back to a in the opposite direction.
// An existing link in either slot is overwritten. This is the only way
// neighbor slots change, so links are always symmetric.
func (g *Graph) Link(a, b RoomID, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("link %s to %s: %w", a, b, ErrInvalidDirection)
	}
	from, err := g.Room(a)
	if err != nil {
		return fmt.Errorf("link from: %w", err)
	}
	to, err := g.Room(b)
	if err != nil {
		return fmt.Errorf("link to: %w", err)
	}
	link(from, to, d)
	return nil
}

func link(from, to *Room, d Direction) {
	from.neighbors[d] = to.id
	to.neighbors[d.Opposite()] = from.id
}

// stitch links a room to every existing room on its four lattice-adjacent
// coordinates. It returns the number of links made.
func (g *Graph) stitch(id RoomID) int {
	room := g.rooms[id.index]
	linked := 0
	for _, d := range Directions {
		other, ok := g.byCoord[room.coord.Add(d.Offset())]
		if !ok {
			continue
		}
		link(room, g.rooms[other.index], d)
		linked++
	}
	return linked
}
