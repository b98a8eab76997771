package game

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/valeris/internal/config"
	"github.com/samdwyer/valeris/internal/content"
	"github.com/samdwyer/valeris/internal/entity"
	"github.com/samdwyer/valeris/internal/telemetry"
	"github.com/samdwyer/valeris/internal/ui"
	"github.com/samdwyer/valeris/internal/world"
)

const (
	helpLine     = "Arrows or N/S/E/W to move, T to take an item, Q to quit."
	codeHelpLine = "Type the digits, Enter to try them, Esc to step back."
)

// Game holds the entire game state.
type Game struct {
	cfg      config.Config
	seed     int64
	screen   *ui.Screen
	renderer *ui.Renderer
	floor    *world.Graph
	explorer *Explorer
	state    State
	code     []rune // digits typed in StateCode
}

// New creates a new game instance.
func New(cfg config.Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		seed:     cfg.EffectiveSeed(),
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		state:    StateExplore,
	}, nil
}

// NewFloor generates a floor from seed and puts a party on its entry room.
// Placement and room content share one random source.
func NewFloor(ctx context.Context, seed int64, rooms int) (*world.Graph, *Explorer, error) {
	rng := rand.New(rand.NewSource(seed))

	gen, err := content.NewGenerator(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("load room content: %w", err)
	}

	floor, entry, err := world.NewBuilder(rng, gen).GenerateFloor(ctx, rooms)
	if err != nil {
		return nil, nil, err
	}

	explorer, err := NewExplorer(floor, entity.NewParty(entry))
	if err != nil {
		return nil, nil, err
	}
	return floor, explorer, nil
}

// Layout lists every room reachable from start with its position relative
// to start, breadth-first.
func Layout(floor *world.Graph, start world.RoomID) (string, error) {
	var sb strings.Builder
	err := floor.Walk(start, func(id world.RoomID, rel world.Coord) bool {
		room := floor.MustRoom(id)
		fmt.Fprintf(&sb, "Room at %s: %s\n", rel, room.Description())
		return true
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	floor, explorer, err := NewFloor(ctx, g.seed, g.cfg.Rooms)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.floor, g.explorer = floor, explorer
	defer g.floor.Teardown()

	if g.cfg.DOTPath != "" {
		if err := writeDOT(g.floor, g.cfg.DOTPath); err != nil {
			initSpan.RecordError(err)
		}
	}

	initSpan.SetAttributes(
		attribute.Int64("game.seed", g.seed),
		attribute.Int("floor.rooms", g.floor.RoomCount()),
		attribute.String("party.start", g.explorer.Current().Coord().String()),
	)
	initSpan.End()

	for g.state != StateQuit {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

// render draws the current room and map.
func (g *Game) render() {
	view := ui.View{
		Title:       ui.Title(g.seed, g.floor.RoomCount()),
		PartySymbol: g.explorer.Party().Symbol,
		Description: g.explorer.Describe(),
		Occupants:   occupants(g.explorer.Enemies()),
		Items:       g.explorer.ItemsLine(),
		Exits:       g.explorer.ExitsLine(),
		Message:     g.explorer.Message(),
		Help:        helpLine,
	}
	if g.state == StateCode {
		view.Prompt = codePrompt(g.code, g.explorer.CodeLength())
		view.Help = codeHelpLine
	}
	grid, err := g.explorer.Map(g.cfg.MapRadius)
	if err != nil {
		view.Message = err.Error()
	} else {
		view.Map = grid
	}
	g.renderer.Render(view)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if g.state == StateCode {
			g.codeKey(ctx, ev.Key(), ev.Rune())
			return
		}
		g.apply(ctx, commandForKey(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// command is what one key press asks for.
type command struct {
	quit bool
	take bool
	move bool
	dir  world.Direction
}

// commandForKey maps a key press to a command. Unknown keys map to the zero command.
func commandForKey(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command{quit: true}
	case tcell.KeyUp:
		return command{move: true, dir: world.North}
	case tcell.KeyDown:
		return command{move: true, dir: world.South}
	case tcell.KeyLeft:
		return command{move: true, dir: world.West}
	case tcell.KeyRight:
		return command{move: true, dir: world.East}
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return command{quit: true}
		case 't', 'T':
			return command{take: true}
		}
		if d, err := world.ParseDirection(string(r)); err == nil {
			return command{move: true, dir: d}
		}
	}
	return command{}
}

// apply runs a command against the explorer.
func (g *Game) apply(ctx context.Context, cmd command) {
	switch {
	case cmd.quit:
		g.state = StateQuit
	case cmd.take:
		g.explorer.TakeItem()
	case cmd.move:
		if _, err := g.explorer.Move(ctx, cmd.dir); err != nil {
			g.explorer.message = err.Error()
		}
		if g.explorer.AtLockedDoor() {
			g.state, g.code = StateCode, nil
		}
	}
}

// codeKey edits the typed code. Enter tries it, Esc gives up on the door.
func (g *Game) codeKey(ctx context.Context, key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.explorer.LeaveDoor()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.code) > 0 {
			g.code = g.code[:len(g.code)-1]
		}
	case tcell.KeyEnter:
		if _, err := g.explorer.EnterCode(ctx, string(g.code)); err != nil {
			g.explorer.message = err.Error()
		}
		g.code = nil
	case tcell.KeyRune:
		if r >= '0' && r <= '9' && len(g.code) < g.explorer.CodeLength() {
			g.code = append(g.code, r)
		}
	}

	if !g.explorer.AtLockedDoor() {
		g.state, g.code = StateExplore, nil
	}
}

// codePrompt shows the typed digits padded with '_' to the code length.
func codePrompt(code []rune, length int) string {
	pad := length - len(code)
	if pad < 0 {
		pad = 0
	}
	return "Code: " + string(code) + strings.Repeat("_", pad)
}

// occupants turns the room's enemies into glyphs colored from their table entry.
func occupants(enemies []content.Enemy) []ui.Occupant {
	out := make([]ui.Occupant, 0, len(enemies))
	for _, e := range enemies {
		out = append(out, ui.Occupant{
			Glyph: e.Def.GlyphRune(),
			Color: e.Def.TCellColor(),
			Name:  e.Name(),
		})
	}
	return out
}

func writeDOT(floor *world.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := world.WriteDOT(floor, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
