// Package ui draws the exploration view on a tcell terminal.
package ui

import "github.com/gdamore/tcell/v2"

var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the subset of tcell.Screen the game draws through.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(term)
}

// Wrap initializes term and takes ownership of it. Tests pass a simulation screen.
func Wrap(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(baseStyle)
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks until the next key or resize event.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

func (s *Screen) Clear() { s.term.Clear() }

func (s *Screen) Show() { s.term.Show() }

// Sync repaints everything after a resize.
func (s *Screen) Sync() { s.term.Sync() }

func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

// DrawText writes msg from (x, y) one cell per rune and returns the column
// after the last rune.
func (s *Screen) DrawText(x, y int, msg string, style tcell.Style) int {
	for _, ch := range msg {
		s.term.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
