package content

import (
	"errors"
	"math/rand"
	"sort"
)

// EnemyRegistry holds the enemy table and the two ways of drawing from it.
type EnemyRegistry struct {
	enemies []EnemyDef
	// cumulative[i] is the summed spawn weight of enemies[0..i].
	cumulative []int
}

// NewEnemyRegistry indexes defs by spawn weight. Entries with a
// non-positive weight are never spawned by weight.
func NewEnemyRegistry(defs []EnemyDef) *EnemyRegistry {
	r := &EnemyRegistry{enemies: defs, cumulative: make([]int, len(defs))}
	sum := 0
	for i, d := range defs {
		if d.SpawnWeight > 0 {
			sum += d.SpawnWeight
		}
		r.cumulative[i] = sum
	}
	return r
}

// LoadEnemyRegistry builds a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	defs, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(defs), nil
}

func (r *EnemyRegistry) totalWeight() int {
	if len(r.cumulative) == 0 {
		return 0
	}
	return r.cumulative[len(r.cumulative)-1]
}

// SpawnRandom picks one definition with probability proportional to its
// spawn weight, or nil when no entry has weight.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	total := r.totalWeight()
	if total <= 0 {
		return nil
	}
	roll := rng.Intn(total)
	i := sort.Search(len(r.cumulative), func(i int) bool { return r.cumulative[i] > roll })
	return &r.enemies[i]
}

// Roll returns the definitions that pass their own chance roll: each entry
// with Chance c is kept when c beats a draw from 0 to 10.
func (r *EnemyRegistry) Roll(rng *rand.Rand) []*EnemyDef {
	var kept []*EnemyDef
	for i := range r.enemies {
		if r.enemies[i].Chance > rng.Intn(11) {
			kept = append(kept, &r.enemies[i])
		}
	}
	return kept
}

// rollItems applies the same per-entry chance roll to the item table.
func rollItems(items []ItemDef, rng *rand.Rand) []string {
	var kept []string
	for _, it := range items {
		if it.Chance > rng.Intn(11) {
			kept = append(kept, it.Name)
		}
	}
	return kept
}
