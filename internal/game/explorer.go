package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/valeris/internal/content"
	"github.com/samdwyer/valeris/internal/entity"
	"github.com/samdwyer/valeris/internal/telemetry"
	"github.com/samdwyer/valeris/internal/world"
)

// ErrNoLockedDoor is returned by EnterCode when no locked door is being tried.
var ErrNoLockedDoor = errors.New("no locked door to open")

// Explorer moves the party through a generated floor. It is the only caller
// of MarkVisited.
type Explorer struct {
	floor   *world.Graph
	party   *entity.Party
	message string

	// Locked room the party is trying to open, NoRoom otherwise.
	door    world.RoomID
	doorDir world.Direction
}

// NewExplorer places the party on the floor and marks its room visited.
func NewExplorer(floor *world.Graph, party *entity.Party) (*Explorer, error) {
	if err := floor.MarkVisited(party.Room); err != nil {
		return nil, fmt.Errorf("place party: %w", err)
	}
	return &Explorer{floor: floor, party: party}, nil
}

// Current returns the room the party stands in.
func (e *Explorer) Current() *world.Room {
	return e.floor.MustRoom(e.party.Room)
}

// Party returns the explored party.
func (e *Explorer) Party() *entity.Party {
	return e.party
}

// Message returns the feedback of the last move.
func (e *Explorer) Message() string {
	return e.message
}

// Move walks the party through the exit in direction d. It reports false,
// with a message, when the room has no such exit or the room beyond is
// locked. A locked room becomes the door EnterCode works on.
func (e *Explorer) Move(ctx context.Context, d world.Direction) (bool, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "explore.move")
	defer span.End()

	from := e.Current()
	span.SetAttributes(
		attribute.String("direction", d.String()),
		attribute.String("from", from.Coord().String()),
	)
	e.door = world.NoRoom

	next, ok := from.Neighbor(d)
	if !ok {
		e.message = fmt.Sprintf("You can't move %s.", d)
		span.SetAttributes(attribute.Bool("blocked", true))
		return false, nil
	}

	room, err := e.floor.Room(next)
	if err != nil {
		return false, err
	}
	if c := contentOf(room); c != nil && c.Sealed() {
		span.SetAttributes(attribute.Bool("locked", true))
		if c.Lock.Jammed() {
			e.message = fmt.Sprintf("The door to the %s is jammed shut.", d)
			return false, nil
		}
		e.door, e.doorDir = next, d
		e.message = fmt.Sprintf("The door to the %s is locked. Enter the %d-digit code (%d attempts left).",
			d, c.Lock.CodeLength(), c.Lock.Remaining)
		return false, nil
	}

	if err := e.enter(next); err != nil {
		return false, err
	}
	e.message = ""

	span.SetAttributes(
		attribute.String("to", e.Current().Coord().String()),
		attribute.Int("steps", e.party.Steps),
	)
	return true, nil
}

func (e *Explorer) enter(id world.RoomID) error {
	if err := e.floor.MarkVisited(id); err != nil {
		return err
	}
	e.party.MoveTo(id)
	return nil
}

// AtLockedDoor reports whether the last move stopped at a locked door that
// still takes guesses.
func (e *Explorer) AtLockedDoor() bool {
	return !e.door.IsZero()
}

// EnterCode spends one attempt on the door the last move stopped at and
// walks through when guess opens it.
func (e *Explorer) EnterCode(ctx context.Context, guess string) (bool, error) {
	if !e.AtLockedDoor() {
		return false, ErrNoLockedDoor
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "explore.unlock")
	defer span.End()

	room, err := e.floor.Room(e.door)
	if err != nil {
		return false, err
	}
	c := contentOf(room)
	if c == nil || c.Lock == nil {
		e.door = world.NoRoom
		return false, ErrNoLockedDoor
	}

	opened := c.Unlock(guess)
	span.SetAttributes(
		attribute.Bool("opened", opened),
		attribute.Int("remaining", c.Lock.Remaining),
	)

	switch {
	case opened:
		if err := e.enter(e.door); err != nil {
			return false, err
		}
		e.door = world.NoRoom
		e.message = fmt.Sprintf("The lock clicks open. You step %s.", e.doorDir)
		return true, nil
	case c.Lock.Jammed():
		e.door = world.NoRoom
		e.message = "Wrong code. The lock jams for good."
	default:
		e.message = fmt.Sprintf("Wrong code: %d of %d digits in place. %d attempts left.",
			c.Lock.InPlace(strings.TrimSpace(guess)), c.Lock.CodeLength(), c.Lock.Remaining)
	}
	return false, nil
}

// CodeLength returns the digit count of the door being tried, 0 when none.
func (e *Explorer) CodeLength() int {
	if !e.AtLockedDoor() {
		return 0
	}
	if c := contentOf(e.floor.MustRoom(e.door)); c != nil && c.Lock != nil {
		return c.Lock.CodeLength()
	}
	return 0
}

// LeaveDoor gives up on the locked door.
func (e *Explorer) LeaveDoor() {
	if e.AtLockedDoor() {
		e.door = world.NoRoom
		e.message = "You step back from the door."
	}
}

// TakeItem moves the first item of the current room into the party's pack.
func (e *Explorer) TakeItem() (string, bool) {
	c := contentOf(e.Current())
	if c == nil {
		e.message = "There is nothing to take here."
		return "", false
	}
	item, ok := c.TakeItem(0)
	if !ok {
		e.message = "There is nothing to take here."
		return "", false
	}
	e.party.Carry(item)
	e.message = "You take the " + item + "."
	return item, true
}

// ItemsLine lists the loose items of the current room, "" when there are none.
func (e *Explorer) ItemsLine() string {
	c := contentOf(e.Current())
	if c == nil || len(c.Items) == 0 {
		return ""
	}
	return "You see: " + strings.Join(c.Items, ", ")
}

// Enemies returns the enemies standing in the current room.
func (e *Explorer) Enemies() []content.Enemy {
	if c := contentOf(e.Current()); c != nil {
		return c.Enemies
	}
	return nil
}

// contentOf returns the room's generated content, nil for rooms built without it.
func contentOf(room *world.Room) *content.Content {
	c, _ := room.Content().(*content.Content)
	return c
}

// Describe returns the room prompt, e.g. "Currently, you are in a Empty Room."
func (e *Explorer) Describe() string {
	return "Currently, you are in a " + e.Current().Description() + "."
}

// ExitsLine lists the exits of the current room.
func (e *Explorer) ExitsLine() string {
	exits := e.Current().Exits()
	names := make([]string, len(exits))
	for i, d := range exits {
		names[i] = d.String()
	}
	return "You can move: " + strings.Join(names, ", ")
}

// Map renders the window around the party.
func (e *Explorer) Map(radius int) (*world.Grid, error) {
	return e.floor.MapWindow(e.party.Room, radius)
}
