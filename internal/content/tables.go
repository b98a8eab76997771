package content

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// EnemyDef is one row of enemies.json.
type EnemyDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	HP          int    `json:"hp"`
	Attack      int    `json:"attack"`
	SpawnWeight int    `json:"spawnWeight"` // relative frequency for SpawnRandom
	Chance      int    `json:"chance"`      // out of 10, for Roll
}

// GlyphRune returns the first rune of the glyph, '?' when it has none.
func (e *EnemyDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(e.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the enemy color, white when the table value is malformed.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ItemDef is one row of items.json.
type ItemDef struct {
	Name   string `json:"name"`
	Chance int    `json:"chance"` // out of 10
}

// NPCTable is npcs.json.
type NPCTable struct {
	Names []string `json:"names"`
	Games []string `json:"games"`
}

type enemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

type itemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadEnemies loads enemies.json.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[enemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// LoadItems loads items.json.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[itemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// LoadNPCs loads npcs.json.
func LoadNPCs() (NPCTable, error) {
	return Load[NPCTable]("npcs.json")
}
