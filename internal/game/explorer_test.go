package game

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/valeris/internal/content"
	"github.com/samdwyer/valeris/internal/entity"
	"github.com/samdwyer/valeris/internal/world"
)

// corridor builds (0,0) -East-> (1,0) and returns an explorer at the origin.
func corridor(t *testing.T) (*world.Graph, *Explorer, []world.RoomID) {
	t.Helper()
	g := world.NewGraph(nil)
	a, err := g.CreateRoom(world.Coord{})
	require.NoError(t, err)
	b, err := g.CreateRoom(world.Coord{X: 1})
	require.NoError(t, err)
	require.NoError(t, g.Link(a, b, world.East))

	e, err := NewExplorer(g, entity.NewParty(a))
	require.NoError(t, err)
	return g, e, []world.RoomID{a, b}
}

// vault builds (0,0) -East-> (1,0) where the east room is locked with code
// and the origin holds a goblin and two items.
func vault(t *testing.T, code string) (*world.Graph, *Explorer, []world.RoomID) {
	t.Helper()
	goblin := &content.EnemyDef{Name: "Goblin", Glyph: "g", Color: "#00FF00", HP: 10}
	g := world.NewGraph(world.ContentFunc(func(c world.Coord) world.Content {
		if c == (world.Coord{}) {
			return &content.Content{
				Kind:    content.KindEmpty,
				Items:   []string{"Torch", "Old Map"},
				Enemies: []content.Enemy{{Def: goblin, HP: goblin.HP}},
			}
		}
		return &content.Content{Kind: content.KindLocked, Lock: content.NewLock(code)}
	}))
	a, err := g.CreateRoom(world.Coord{})
	require.NoError(t, err)
	b, err := g.CreateRoom(world.Coord{X: 1})
	require.NoError(t, err)
	require.NoError(t, g.Link(a, b, world.East))

	e, err := NewExplorer(g, entity.NewParty(a))
	require.NoError(t, err)
	return g, e, []world.RoomID{a, b}
}

func TestExplorerStartsVisited(t *testing.T) {
	g, e, ids := corridor(t)

	assert.True(t, g.MustRoom(ids[0]).Visited())
	assert.False(t, g.MustRoom(ids[1]).Visited())
	assert.Equal(t, "Currently, you are in a Empty Room.", e.Describe())
	assert.Equal(t, "You can move: East", e.ExitsLine())
}

func TestExplorerMove(t *testing.T) {
	ctx := context.Background()
	g, e, ids := corridor(t)

	moved, err := e.Move(ctx, world.North)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "You can't move North.", e.Message())
	assert.Equal(t, ids[0], e.Party().Room)

	moved, err = e.Move(ctx, world.East)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Empty(t, e.Message())
	assert.Equal(t, ids[1], e.Party().Room)
	assert.Equal(t, 1, e.Party().Steps)
	assert.True(t, g.MustRoom(ids[1]).Visited())

	moved, err = e.Move(ctx, world.West)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, ids[0], e.Party().Room)
}

func TestExplorerMap(t *testing.T) {
	ctx := context.Background()
	_, e, _ := corridor(t)

	grid, err := e.Map(1)
	require.NoError(t, err)
	assert.Equal(t, world.CellOrigin, grid.At(0, 0))
	assert.Equal(t, world.CellUnvisited, grid.At(1, 0))

	_, err = e.Move(ctx, world.East)
	require.NoError(t, err)
	grid, err = e.Map(1)
	require.NoError(t, err)
	assert.Equal(t, world.CellVisited, grid.At(-1, 0))
	assert.Equal(t, world.CellOrigin, grid.At(0, 0))
}

func TestNewExplorerUnknownRoom(t *testing.T) {
	g := world.NewGraph(nil)
	_, err := NewExplorer(g, entity.NewParty(world.NoRoom))
	assert.ErrorIs(t, err, world.ErrUnknownRoom)
}

func TestNewFloor(t *testing.T) {
	ctx := context.Background()

	floor, e, err := NewFloor(ctx, 12345, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, floor.RoomCount())

	count, err := floor.ReachableCount(e.Party().Room)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
	assert.True(t, e.Current().Visited())
	assert.NotEmpty(t, e.Current().Description())

	again, e2, err := NewFloor(ctx, 12345, 10)
	require.NoError(t, err)
	assert.Equal(t, e.Current().Coord(), e2.Current().Coord())
	for i, id := range floor.Rooms() {
		other := again.Rooms()[i]
		assert.Equal(t, floor.MustRoom(id).Coord(), again.MustRoom(other).Coord())
		assert.Equal(t, floor.MustRoom(id).Description(), again.MustRoom(other).Description())
	}

	_, _, err = NewFloor(ctx, 1, 0)
	assert.ErrorIs(t, err, world.ErrInvalidRoomCount)
}

func TestLayout(t *testing.T) {
	g, _, ids := corridor(t)

	out, err := Layout(g, ids[1])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"Room at (0, 0): Empty Room",
		"Room at (-1, 0): Empty Room",
	}, lines)

	_, err = Layout(g, world.NoRoom)
	assert.ErrorIs(t, err, world.ErrUnknownRoom)
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want command
	}{
		{"escape", tcell.KeyEscape, 0, command{quit: true}},
		{"ctrl-c", tcell.KeyCtrlC, 0, command{quit: true}},
		{"q", tcell.KeyRune, 'q', command{quit: true}},
		{"up", tcell.KeyUp, 0, command{move: true, dir: world.North}},
		{"down", tcell.KeyDown, 0, command{move: true, dir: world.South}},
		{"left", tcell.KeyLeft, 0, command{move: true, dir: world.West}},
		{"right", tcell.KeyRight, 0, command{move: true, dir: world.East}},
		{"n", tcell.KeyRune, 'n', command{move: true, dir: world.North}},
		{"E", tcell.KeyRune, 'E', command{move: true, dir: world.East}},
		{"take", tcell.KeyRune, 't', command{take: true}},
		{"other", tcell.KeyRune, 'x', command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandForKey(tt.key, tt.r))
		})
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	_, e, ids := corridor(t)
	g := &Game{explorer: e, state: StateExplore}

	g.apply(ctx, command{move: true, dir: world.East})
	assert.Equal(t, ids[1], e.Party().Room)

	g.apply(ctx, command{})
	assert.Equal(t, StateExplore, g.state)

	g.apply(ctx, command{quit: true})
	assert.Equal(t, StateQuit, g.state)
	assert.Equal(t, "quit", g.state.String())
}

func TestExplorerLockedRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("locked door stops the party", func(t *testing.T) {
		g, e, ids := vault(t, "4821")

		moved, err := e.Move(ctx, world.East)
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, ids[0], e.Party().Room)
		assert.False(t, g.MustRoom(ids[1]).Visited())
		assert.True(t, e.AtLockedDoor())
		assert.Equal(t, 4, e.CodeLength())
		assert.Equal(t, "The door to the East is locked. Enter the 4-digit code (5 attempts left).", e.Message())
	})

	t.Run("right code opens and enters", func(t *testing.T) {
		g, e, ids := vault(t, "4821")
		_, err := e.Move(ctx, world.East)
		require.NoError(t, err)

		opened, err := e.EnterCode(ctx, "4000")
		require.NoError(t, err)
		assert.False(t, opened)
		assert.Equal(t, "Wrong code: 1 of 4 digits in place. 4 attempts left.", e.Message())
		assert.True(t, e.AtLockedDoor())

		opened, err = e.EnterCode(ctx, "4821")
		require.NoError(t, err)
		assert.True(t, opened)
		assert.Equal(t, ids[1], e.Party().Room)
		assert.True(t, g.MustRoom(ids[1]).Visited())
		assert.False(t, e.AtLockedDoor())
		assert.Equal(t, "Currently, you are in a Unlocked Room.", e.Describe())

		// Open rooms no longer stop the party.
		_, err = e.Move(ctx, world.West)
		require.NoError(t, err)
		moved, err := e.Move(ctx, world.East)
		require.NoError(t, err)
		assert.True(t, moved)
	})

	t.Run("attempts run out", func(t *testing.T) {
		_, e, ids := vault(t, "4821")
		_, err := e.Move(ctx, world.East)
		require.NoError(t, err)

		for i := 0; i < content.PasscodeAttempts; i++ {
			opened, err := e.EnterCode(ctx, "0000")
			require.NoError(t, err)
			assert.False(t, opened)
		}
		assert.Equal(t, "Wrong code. The lock jams for good.", e.Message())
		assert.False(t, e.AtLockedDoor())

		moved, err := e.Move(ctx, world.East)
		require.NoError(t, err)
		assert.False(t, moved)
		assert.False(t, e.AtLockedDoor())
		assert.Equal(t, "The door to the East is jammed shut.", e.Message())
		assert.Equal(t, ids[0], e.Party().Room)

		_, err = e.EnterCode(ctx, "4821")
		assert.ErrorIs(t, err, ErrNoLockedDoor)
	})

	t.Run("leaving the door", func(t *testing.T) {
		_, e, _ := vault(t, "4821")
		_, err := e.Move(ctx, world.East)
		require.NoError(t, err)

		e.LeaveDoor()
		assert.False(t, e.AtLockedDoor())
		assert.Equal(t, "You step back from the door.", e.Message())
		assert.Zero(t, e.CodeLength())
	})
}

func TestExplorerTakeItem(t *testing.T) {
	_, e, _ := vault(t, "4821")

	assert.Equal(t, "You see: Torch, Old Map", e.ItemsLine())

	item, ok := e.TakeItem()
	assert.True(t, ok)
	assert.Equal(t, "Torch", item)
	assert.Equal(t, "You take the Torch.", e.Message())
	assert.Equal(t, "You see: Old Map", e.ItemsLine())

	_, ok = e.TakeItem()
	assert.True(t, ok)
	assert.Equal(t, []string{"Torch", "Old Map"}, e.Party().Items)
	assert.Empty(t, e.ItemsLine())

	_, ok = e.TakeItem()
	assert.False(t, ok)
	assert.Equal(t, "There is nothing to take here.", e.Message())

	_, bare, _ := corridor(t)
	_, ok = bare.TakeItem()
	assert.False(t, ok)
}

func TestGameCodeEntry(t *testing.T) {
	ctx := context.Background()
	_, e, ids := vault(t, "4821")
	g := &Game{explorer: e, state: StateExplore}

	g.apply(ctx, command{move: true, dir: world.East})
	require.Equal(t, StateCode, g.state)
	assert.Equal(t, "Code: ____", codePrompt(g.code, e.CodeLength()))

	for _, r := range "48x219" {
		g.codeKey(ctx, tcell.KeyRune, r)
	}
	assert.Equal(t, "Code: 4821", codePrompt(g.code, e.CodeLength()), "non-digits and overflow are dropped")

	g.codeKey(ctx, tcell.KeyBackspace2, 0)
	g.codeKey(ctx, tcell.KeyRune, '1')
	g.codeKey(ctx, tcell.KeyEnter, 0)
	assert.Equal(t, StateExplore, g.state)
	assert.Equal(t, ids[1], e.Party().Room)
}

func TestGameCodeEntryEscape(t *testing.T) {
	ctx := context.Background()
	_, e, ids := vault(t, "4821")
	g := &Game{explorer: e, state: StateExplore}

	g.apply(ctx, command{move: true, dir: world.East})
	g.codeKey(ctx, tcell.KeyRune, '9')
	g.codeKey(ctx, tcell.KeyEscape, 0)

	assert.Equal(t, StateExplore, g.state)
	assert.Nil(t, g.code)
	assert.Equal(t, ids[0], e.Party().Room)
}

func TestGameTakeAndOccupants(t *testing.T) {
	ctx := context.Background()
	_, e, _ := vault(t, "4821")
	g := &Game{explorer: e, state: StateExplore}

	g.apply(ctx, commandForKey(tcell.KeyRune, 't'))
	assert.Equal(t, []string{"Torch"}, e.Party().Items)

	occ := occupants(e.Enemies())
	require.Len(t, occ, 1)
	assert.Equal(t, 'g', occ[0].Glyph)
	assert.Equal(t, "Goblin", occ[0].Name)
	assert.Equal(t, tcell.NewRGBColor(0, 0xFF, 0), occ[0].Color)
}
