// Package world provides floor generation and traversal over a lattice of linked rooms.
package world

import (
	"fmt"
	"strings"
)

// Direction is one of the four lattice directions a room can link in.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists every direction in table order.
var Directions = [...]Direction{North, South, West, East}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// Offset returns the lattice step taken when moving in this direction.
// North increases Y.
func (d Direction) Offset() Coord {
	switch d {
	case North:
		return Coord{X: 0, Y: 1}
	case South:
		return Coord{X: 0, Y: -1}
	case West:
		return Coord{X: -1, Y: 0}
	case East:
		return Coord{X: 1, Y: 0}
	default:
		return Coord{}
	}
}

// Valid reports whether d is one of the four lattice directions.
func (d Direction) Valid() bool {
	return d >= North && d <= East
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return "Unknown"
	}
}

// ParseDirection accepts a direction name or its first letter, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	case "e", "east":
		return East, nil
	}
	return 0, fmt.Errorf("parse direction %q: %w", s, ErrInvalidDirection)
}
