// Package entity provides the player's party.
package entity

import "github.com/samdwyer/valeris/internal/world"

// Party represents the player's party of adventurers.
// In explore mode, the party is displayed as a single symbol.
type Party struct {
	Room   world.RoomID // Room the party stands in
	Symbol rune         // Display symbol ('&' in explore mode)
	Steps  int          // Moves made since entering the floor
	Items  []string     // Picked up along the way, oldest first
}

// NewParty creates a new party standing in room.
func NewParty(room world.RoomID) *Party {
	return &Party{
		Room:   room,
		Symbol: '&',
	}
}

// MoveTo puts the party in another room and counts the step.
func (p *Party) MoveTo(room world.RoomID) {
	p.Room = room
	p.Steps++
}

// Carry adds an item to the party's pack.
func (p *Party) Carry(item string) {
	p.Items = append(p.Items, item)
}
