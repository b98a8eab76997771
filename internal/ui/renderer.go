package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/valeris/internal/world"
)

// Layout of the exploration screen.
const (
	mapLeft = 2
	mapTop  = 2
	// Each map cell is drawn two columns wide so the window looks square.
	cellWidth = 2

	occupantsLabel = "Here: "
)

// Occupant is one creature drawn under the room description.
type Occupant struct {
	Glyph rune
	Color tcell.Color
	Name  string
}

// View is everything one frame shows.
type View struct {
	Title       string
	Map         *world.Grid
	PartySymbol rune
	Description string
	Occupants   []Occupant
	Items       string
	Exits       string
	Message     string
	Prompt      string
	Help        string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, 0, v.Title, textStyle.Bold(true))

	bottom := mapTop
	if v.Map != nil {
		bottom = r.drawMap(v.Map, v.PartySymbol)
	}

	y := bottom + 1
	if v.Description != "" {
		r.screen.DrawText(0, y, v.Description, textStyle)
		y++
	}
	if len(v.Occupants) > 0 {
		r.drawOccupants(y, v.Occupants)
		y++
	}
	for _, line := range []string{v.Items, v.Exits, v.Message, v.Prompt, v.Help} {
		if line == "" {
			continue
		}
		r.screen.DrawText(0, y, line, textStyle)
		y++
	}

	r.screen.Show()
}

// drawMap draws the grid framed by a border and returns the row below it.
func (r *Renderer) drawMap(grid *world.Grid, party rune) int {
	size := grid.Size()
	border := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	width := size*cellWidth + 1

	for x := 0; x <= width; x++ {
		r.screen.SetContent(mapLeft-1+x, mapTop-1, '-', border)
		r.screen.SetContent(mapLeft-1+x, mapTop+size, '-', border)
	}
	for y := 0; y < size; y++ {
		r.screen.SetContent(mapLeft-1, mapTop+y, '|', border)
		r.screen.SetContent(mapLeft+width-1, mapTop+y, '|', border)

		for x, cell := range grid.Row(y) {
			ch := cell.Rune()
			if cell == world.CellOrigin && party != 0 {
				ch = party
			}
			r.screen.SetContent(mapLeft+x*cellWidth, mapTop+y, ch, r.cellStyle(cell))
		}
	}
	return mapTop + size + 1
}

// cellStyle returns the appropriate style for a map cell.
func (r *Renderer) cellStyle(cell world.Cell) tcell.Style {
	switch cell {
	case world.CellOrigin:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case world.CellVisited:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.CellUnvisited:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	default:
		return tcell.StyleDefault
	}
}

// drawOccupants lists each creature as its colored glyph followed by its name.
func (r *Renderer) drawOccupants(y int, occupants []Occupant) {
	label := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := r.screen.DrawText(0, y, occupantsLabel, label)
	for _, o := range occupants {
		r.screen.SetContent(x, y, o.Glyph, tcell.StyleDefault.Foreground(o.Color).Bold(true))
		x = r.screen.DrawText(x+2, y, o.Name, label) + 2
	}
}

// Title formats the header line.
func Title(seed int64, rooms int) string {
	return fmt.Sprintf("Valeris - floor of %d rooms (seed %d)", rooms, seed)
}
