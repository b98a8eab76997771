package world

import (
	"github.com/zyedidia/generic/mapset"
)

// unbounded disables the distance cutoff of walk.
const unbounded = -1

type walkStep struct {
	id  RoomID
	rel Coord
}

// walk visits rooms breadth-first from start by following links only. Each
// room is reported with its coordinate relative to start, derived from the
// directions walked. Coordinates already seen are skipped, so two handles
// claiming one coordinate are reported once. Rooms farther than cutoff
// (Chebyshev) are not entered unless cutoff is unbounded. fn returning false
// stops the walk.
func (g *Graph) walk(start RoomID, cutoff int, fn func(room *Room, rel Coord) bool) error {
	first, err := g.Room(start)
	if err != nil {
		return err
	}

	seen := mapset.New[Coord]()
	seen.Put(Coord{})
	queue := []walkStep{{id: first.id}}

	for len(queue) > 0 {
		step := queue[0]
		queue = queue[1:]

		room, err := g.Room(step.id)
		if err != nil {
			return err
		}
		if !fn(room, step.rel) {
			return nil
		}

		for _, d := range Directions {
			next, ok := room.Neighbor(d)
			if !ok {
				continue
			}
			rel := step.rel.Add(d.Offset())
			if seen.Has(rel) {
				continue
			}
			if cutoff != unbounded && rel.Chebyshev() > cutoff {
				continue
			}
			seen.Put(rel)
			queue = append(queue, walkStep{id: next, rel: rel})
		}
	}
	return nil
}

// Walk visits every room reachable from start, breadth-first, with its
// coordinate relative to start. Returning false from fn stops the walk.
func (g *Graph) Walk(start RoomID, fn func(id RoomID, rel Coord) bool) error {
	return g.walk(start, unbounded, func(room *Room, rel Coord) bool {
		return fn(room.id, rel)
	})
}

// ReachableCount returns how many rooms can be reached from start, start included.
func (g *Graph) ReachableCount(start RoomID) (int, error) {
	count := 0
	err := g.walk(start, unbounded, func(*Room, Coord) bool {
		count++
		return true
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MapWindow renders the rooms around origin within radius steps on each axis.
// The walk continues through rooms outside the window, up to twice the
// radius, so rooms only reachable by a detour still show up.
func (g *Graph) MapWindow(origin RoomID, radius int) (*Grid, error) {
	if radius < 0 {
		return nil, ErrInvalidRadius
	}

	grid := newGrid(radius)
	err := g.walk(origin, 2*radius, func(room *Room, rel Coord) bool {
		if rel.Chebyshev() > radius {
			return true
		}
		switch {
		case rel == (Coord{}):
			grid.set(rel, CellOrigin, room.id)
		case room.visited:
			grid.set(rel, CellVisited, room.id)
		default:
			grid.set(rel, CellUnvisited, room.id)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return grid, nil
}
