// SPDX-License-Identifier: Unlicense OR MIT

package rating

import "fmt"

// Side selects one of the two icons of a bar.
type Side uint8

const (
	Selected Side = iota
	Unselected
)

// Clip is a horizontal window [Left, Right) of an icon, in fractions of
// the icon width.
type Clip struct {
	Left, Right float32
}

// Whole is the clip that shows the entire icon.
var Whole = Clip{Left: 0, Right: 1}

// Part is one icon drawn into a slot.
type Part struct {
	Side Side
	Clip Clip
}

// Slot is a position in the row and the icons drawn into it.
type Slot struct {
	Index int
	Parts []Part
}

// Painter draws icons. Slots are laid out left to right without gaps;
// slot is the position in the row.
type Painter interface {
	Draw(slot int, side Side, clip Clip)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(slot int, side Side, clip Clip)

func (f PainterFunc) Draw(slot int, side Side, clip Clip) {
	f(slot, side, clip)
}

// Slots returns the draw list for d: the full slots, the partial slot
// with the selected icon clipped to its left part and the unselected
// icon to the rest, then the empty slots.
func Slots(d Decomposition) []Slot {
	slots := make([]Slot, 0, d.Count())
	for i := 0; i < d.Full; i++ {
		slots = append(slots, Slot{Index: len(slots), Parts: []Part{{Selected, Whole}}})
	}
	if d.Partial > 0 {
		slots = append(slots, Slot{Index: len(slots), Parts: []Part{
			{Selected, Clip{Left: 0, Right: d.Partial}},
			{Unselected, Clip{Left: d.Partial, Right: 1}},
		}})
	}
	for i := 0; i < d.Empty; i++ {
		slots = append(slots, Slot{Index: len(slots), Parts: []Part{{Unselected, Whole}}})
	}
	return slots
}

func (s Side) String() string {
	switch s {
	case Selected:
		return "selected"
	case Unselected:
		return "unselected"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}
