package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/valeris/internal/telemetry"
)

const (
	// DefaultRoomCount is the floor size used by the game.
	DefaultRoomCount = 10

	// Random draws of a (room, direction) pair before falling back to a scan
	// of every free slot.
	maxPlacementDraws = 64
)

var errNoFreeSlot = errors.New("no room has a free direction")

// Builder grows floors one room at a time by randomized incremental placement.
type Builder struct {
	rng    *rand.Rand
	source ContentSource

	// fallbacks counts placements that needed the free-slot scan during the
	// last GenerateFloor call.
	fallbacks int
}

// NewBuilder creates a builder drawing from rng. A nil rng is seeded from the clock.
func NewBuilder(rng *rand.Rand, source ContentSource) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{rng: rng, source: source}
}

// slot is a room and one of its directions without a neighbor.
type slot struct {
	room RoomID
	dir  Direction
}

// GenerateFloor builds a floor of n connected rooms and returns it with a
// uniformly chosen entry room. The seed room sits at (0, 0).
// For n <= 0 it returns an empty graph, NoRoom and ErrInvalidRoomCount.
func (b *Builder) GenerateFloor(ctx context.Context, n int) (*Graph, RoomID, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "floor.generate")
	defer span.End()

	startTime := time.Now()
	b.fallbacks = 0

	g := NewGraph(b.source)
	span.SetAttributes(
		attribute.String("floor.id", g.FloorID().String()),
		attribute.Int("floor.requested_rooms", n),
	)

	if n <= 0 {
		return g, NoRoom, fmt.Errorf("generate floor of %d rooms: %w", n, ErrInvalidRoomCount)
	}

	seed, err := g.CreateRoom(Coord{})
	if err != nil {
		return g, NoRoom, err
	}
	g.stitch(seed)

	for g.RoomCount() < n {
		s, err := b.pickSlot(g)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "placement failed")
			return g, NoRoom, err
		}
		if _, err := b.place(g, s); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "placement failed")
			return g, NoRoom, err
		}
	}

	entry := g.rooms[b.rng.Intn(len(g.rooms))].id

	span.SetAttributes(
		attribute.Int("floor.room_count", g.RoomCount()),
		attribute.Int("floor.placement_fallbacks", b.fallbacks),
		attribute.String("floor.entry", g.rooms[entry.index].coord.String()),
		attribute.Int64("floor.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return g, entry, nil
}

// Fallbacks returns how many placements of the last floor used the free-slot scan.
func (b *Builder) Fallbacks() int {
	return b.fallbacks
}

// pickSlot draws a uniformly random room and direction, redrawing while the
// slot is taken. After maxPlacementDraws misses it picks uniformly among all
// free slots instead, which always terminates.
func (b *Builder) pickSlot(g *Graph) (slot, error) {
	for i := 0; i < maxPlacementDraws; i++ {
		room := g.rooms[b.rng.Intn(len(g.rooms))]
		d := Directions[b.rng.Intn(len(Directions))]
		if _, taken := room.Neighbor(d); !taken {
			return slot{room: room.id, dir: d}, nil
		}
	}

	free := g.freeSlots()
	if len(free) == 0 {
		return slot{}, errNoFreeSlot
	}
	b.fallbacks++
	return free[b.rng.Intn(len(free))], nil
}

// place creates a room next to s.room in s.dir, links it to its parent and
// back-fills links to any other adjacent rooms.
func (b *Builder) place(g *Graph, s slot) (RoomID, error) {
	parent := g.rooms[s.room.index]
	id, err := g.CreateRoom(parent.coord.Add(s.dir.Offset()))
	if err != nil {
		return NoRoom, fmt.Errorf("place room %s of %s: %w", s.dir, parent.coord, err)
	}
	link(parent, g.rooms[id.index], s.dir)
	g.stitch(id)
	return id, nil
}

// freeSlots lists every (room, direction) pair without a neighbor.
func (g *Graph) freeSlots() []slot {
	var free []slot
	for _, r := range g.rooms {
		for _, d := range Directions {
			if r.neighbors[d].IsZero() {
				free = append(free, slot{room: r.id, dir: d})
			}
		}
	}
	return free
}
