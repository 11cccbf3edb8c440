// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"github.com/pkg/errors"

	"github.com/durov/ratebar/rating"
)

// RateBar is a row of icons showing a rating the user sets by tapping.
type RateBar struct {
	bar     *rating.Bar
	click   gesture.Click
	width   int
	changed bool
}

// NewRateBar returns a RateBar for cfg.
func NewRateBar(cfg rating.Config) (*RateBar, error) {
	b, err := rating.New(cfg)
	if err != nil {
		return nil, err
	}
	r := &RateBar{bar: b}
	b.Subscribe(func(float32) { r.changed = true })
	return r, nil
}

// Update processes taps and reports whether any was committed.
func (r *RateBar) Update(gtx layout.Context) bool {
	tapped := false
	for {
		e, ok := r.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind != gesture.KindClick {
			continue
		}
		_, err := r.bar.Tap(float32(e.Position.X), float32(r.width))
		switch {
		case errors.Is(err, rating.ErrDisposed):
			return false
		case err != nil:
			// Taps only arrive through the area of a laid out bar.
			panic(err)
		}
		tapped = true
	}
	return tapped
}

// Layout draws the bar with icons of size by size pixels. The icon
// widgets are laid out with exact constraints and clipped to the part
// of the slot they cover. The returned dimensions and the tappable
// area are limited to gtx.Constraints; icons beyond them are clipped.
func (r *RateBar) Layout(gtx layout.Context, size int, selected, unselected layout.Widget) layout.Dimensions {
	if size <= 0 {
		panic("widget: rate bar icon size must be positive")
	}
	r.Update(gtx)
	r.bar.Frame(gtx.Now)

	full := image.Pt(size*r.bar.Config().Items, size)
	// Taps map against the full bar even when it is cut off.
	r.width = full.X
	dims := gtx.Constraints.Constrain(full)
	defer clip.Rect{Max: dims}.Push(gtx.Ops).Pop()
	icons := [...]layout.Widget{
		rating.Selected:   selected,
		rating.Unselected: unselected,
	}
	r.bar.Render(rating.PainterFunc(func(slot int, side rating.Side, c rating.Clip) {
		layoutIcon(gtx, icons[side], slot, size, c)
	}))

	r.click.Add(gtx.Ops)
	if r.bar.Animating() {
		gtx.Execute(op.InvalidateCmd{})
	}
	return layout.Dimensions{Size: dims}
}

func layoutIcon(gtx layout.Context, w layout.Widget, slot, size int, c rating.Clip) {
	x0 := int(math.Round(float64(c.Left) * float64(size)))
	x1 := int(math.Round(float64(c.Right) * float64(size)))
	if w == nil || x1 <= x0 {
		return
	}
	defer op.Offset(image.Pt(slot*size, 0)).Push(gtx.Ops).Pop()
	defer clip.Rect{Min: image.Pt(x0, 0), Max: image.Pt(x1, size)}.Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(size, size))
	w(gtx)
}

// Changed reports whether a tap was committed since the last call.
func (r *RateBar) Changed() bool {
	c := r.changed
	r.changed = false
	return c
}

// Rating returns the committed rating.
func (r *RateBar) Rating() float32 {
	return r.bar.Rating()
}

// Displayed returns the rating as drawn by the last Layout.
func (r *RateBar) Displayed() float32 {
	return r.bar.Displayed()
}

// Bar returns the underlying state.
func (r *RateBar) Bar() *rating.Bar {
	return r.bar
}

// Dispose stops the bar. Later taps are ignored and no callbacks run.
func (r *RateBar) Dispose() {
	r.bar.Dispose()
}
