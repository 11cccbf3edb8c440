// SPDX-License-Identifier: Unlicense OR MIT

// Package term draws rate bars in a terminal with tcell.
//
// Every icon occupies CellsPerIcon cells. A cell shows the selected
// glyph when its center lies inside the selected part of its slot, so
// fractional ratings are drawn to the nearest cell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/durov/ratebar/rating"
)

// Screen is the part of tcell.Screen a RateBar draws to.
type Screen interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// RateBar is a rate bar at a fixed position of a terminal.
type RateBar struct {
	X, Y         int
	CellsPerIcon int

	SelectedRune    rune
	UnselectedRune  rune
	SelectedStyle   tcell.Style
	UnselectedStyle tcell.Style

	bar     *rating.Bar
	pressed bool
}

// New returns a RateBar drawing bar with two cells per star.
func New(bar *rating.Bar) *RateBar {
	return &RateBar{
		CellsPerIcon:    2,
		SelectedRune:    '★',
		UnselectedRune:  '☆',
		SelectedStyle:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		UnselectedStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		bar:             bar,
	}
}

// Bar returns the underlying state.
func (r *RateBar) Bar() *rating.Bar {
	return r.bar
}

// Width returns the number of cells the bar occupies.
func (r *RateBar) Width() int {
	return r.cells() * r.bar.Config().Items
}

func (r *RateBar) cells() int {
	if r.CellsPerIcon < 1 {
		return 1
	}
	return r.CellsPerIcon
}

// Draw draws the displayed rating.
func (r *RateBar) Draw(s Screen) {
	n := r.cells()
	r.bar.Render(rating.PainterFunc(func(slot int, side rating.Side, c rating.Clip) {
		ch, st := r.SelectedRune, r.SelectedStyle
		if side == rating.Unselected {
			ch, st = r.UnselectedRune, r.UnselectedStyle
		}
		for i := 0; i < n; i++ {
			center := (float32(i) + .5) / float32(n)
			if center < c.Left || center >= c.Right {
				continue
			}
			s.SetContent(r.X+slot*n+i, r.Y, ch, nil, st)
		}
	}))
}

// HandleEvent taps the bar for a primary button press and release on
// it. It reports whether the event committed a rating.
func (r *RateBar) HandleEvent(ev tcell.Event) (bool, error) {
	me, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false, nil
	}
	x, y := me.Position()
	inside := y == r.Y && x >= r.X && x < r.X+r.Width()
	if me.Buttons()&tcell.Button1 != 0 {
		if inside && !r.pressed {
			r.pressed = true
		}
		return false, nil
	}
	// Wheel motion and other buttons do not release Button1.
	if me.Buttons() != tcell.ButtonNone || !r.pressed {
		return false, nil
	}
	r.pressed = false
	if !inside {
		return false, nil
	}
	// Tap at the cell center.
	if _, err := r.bar.Tap(float32(x-r.X)+.5, float32(r.Width())); err != nil {
		return false, errors.Wrap(err, "term: tap")
	}
	return true, nil
}
