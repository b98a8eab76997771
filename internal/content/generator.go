package content

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/samdwyer/valeris/internal/world"
)

// Relative odds of each room kind.
var kindWeights = [...]struct {
	kind   Kind
	weight int
}{
	{KindEmpty, 6},
	{KindGambling, 2},
	{KindLocked, 2},
}

const (
	maxEnemies = 4
	maxItems   = 3
)

// Generator fills rooms from the embedded tables. It implements
// world.ContentSource and draws from one injected random source.
type Generator struct {
	rng     *rand.Rand
	enemies *EnemyRegistry
	items   []ItemDef
	npcs    NPCTable
}

// NewGenerator loads every table and returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand) (*Generator, error) {
	enemies, err := LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	npcs, err := LoadNPCs()
	if err != nil {
		return nil, err
	}
	if len(npcs.Names) == 0 || len(npcs.Games) == 0 {
		return nil, errors.New("npcs.json needs at least one name and one game")
	}

	return &Generator{
		rng:     rng,
		enemies: enemies,
		items:   items,
		npcs:    npcs,
	}, nil
}

// NewContent creates the content of the room at c. The room at the origin
// is where the floor's seed sits and never holds enemies.
func (g *Generator) NewContent(c world.Coord) world.Content {
	if c == (world.Coord{}) {
		return &Content{Kind: KindEmpty, Items: g.pickItems()}
	}

	switch g.pickKind() {
	case KindGambling:
		return g.gamblingRoom()
	case KindLocked:
		return g.lockedRoom()
	default:
		return g.emptyRoom()
	}
}

func (g *Generator) pickKind() Kind {
	total := 0
	for _, kw := range kindWeights {
		total += kw.weight
	}
	roll := g.rng.Intn(total)
	for _, kw := range kindWeights {
		if roll < kw.weight {
			return kw.kind
		}
		roll -= kw.weight
	}
	return KindEmpty
}

func (g *Generator) emptyRoom() *Content {
	content := &Content{Kind: KindEmpty, Items: g.pickItems()}

	// Slots are filled from the entries that passed their chance roll; when
	// none did, the spawn weights pick instead.
	candidates := g.enemies.Roll(g.rng)
	count := 1 + g.rng.Intn(maxEnemies)
	for i := 0; i < count; i++ {
		var def *EnemyDef
		if len(candidates) > 0 {
			def = candidates[g.rng.Intn(len(candidates))]
		} else {
			def = g.enemies.SpawnRandom(g.rng)
		}
		if def == nil {
			break
		}
		content.Enemies = append(content.Enemies, Enemy{Def: def, HP: def.HP})
	}
	return content
}

func (g *Generator) pickItems() []string {
	candidates := rollItems(g.items, g.rng)
	count := 1 + g.rng.Intn(maxItems)
	var picked []string
	for i := 0; i < count && len(candidates) > 0; i++ {
		picked = append(picked, candidates[g.rng.Intn(len(candidates))])
	}
	return picked
}

func (g *Generator) gamblingRoom() *Content {
	return &Content{
		Kind: KindGambling,
		NPC: &NPC{
			Name: g.npcs.Names[g.rng.Intn(len(g.npcs.Names))],
			Game: g.npcs.Games[g.rng.Intn(len(g.npcs.Games))],
		},
	}
}

func (g *Generator) lockedRoom() *Content {
	return &Content{
		Kind: KindLocked,
		Lock: NewLock(g.passcode()),
	}
}

func (g *Generator) passcode() string {
	limit := 1
	for i := 0; i < PasscodeDigits; i++ {
		limit *= 10
	}
	return fmt.Sprintf("%0*d", PasscodeDigits, g.rng.Intn(limit))
}
