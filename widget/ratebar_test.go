// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/durov/ratebar/rating"
)

func newRateBar(t *testing.T, mutate func(*rating.Config)) *RateBar {
	t.Helper()
	cfg := rating.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	r, err := NewRateBar(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func sizedIcon(calls *int, sizes *[]image.Point) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		*calls++
		if sizes != nil {
			*sizes = append(*sizes, gtx.Constraints.Min)
		}
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
}

func tap(r *input.Router, x, y float32) {
	r.Queue(
		pointer.Event{Kind: pointer.Press, Source: pointer.Touch, Position: f32.Pt(x, y)},
		pointer.Event{Kind: pointer.Release, Source: pointer.Touch, Position: f32.Pt(x, y)},
	)
}

func TestRateBarLayout(t *testing.T) {
	bar := newRateBar(t, func(c *rating.Config) { c.Initial = 2.5 })
	var sel, unsel int
	var sizes []image.Point
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(1000, 100)},
	}
	dims := bar.Layout(gtx, 40, sizedIcon(&sel, &sizes), sizedIcon(&unsel, &sizes))
	if want := image.Pt(200, 40); dims.Size != want {
		t.Errorf("dims = %v, want %v", dims.Size, want)
	}
	// Two full, one shared and two empty slots.
	if sel != 3 || unsel != 3 {
		t.Errorf("selected drawn %d times, unselected %d; want 3 and 3", sel, unsel)
	}
	for _, sz := range sizes {
		if sz != image.Pt(40, 40) {
			t.Errorf("icon laid out at %v, want 40x40", sz)
		}
	}
}

func TestRateBarTap(t *testing.T) {
	var (
		r     input.Router
		calls []float32
	)
	bar := newRateBar(t, func(c *rating.Config) {
		c.Animate = false
		c.OnRateChanged = func(v float32) { calls = append(calls, v) }
	})
	var n int
	icon := sizedIcon(&n, nil)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Exact(image.Pt(500, 100)),
	}
	frame := func() {
		gtx.Ops.Reset()
		bar.Layout(gtx, 100, icon, icon)
		r.Frame(gtx.Ops)
	}
	frame()
	tap(&r, 250, 50)
	frame()
	if got := bar.Rating(); got != 2.5 {
		t.Errorf("rating after tap = %v, want 2.5", got)
	}
	if !bar.Changed() || bar.Changed() {
		t.Error("Changed did not report the tap exactly once")
	}
	tap(&r, 250, 50)
	frame()
	if len(calls) != 2 || calls[0] != 2.5 || calls[1] != 2.5 {
		t.Errorf("callbacks = %v, want [2.5 2.5]", calls)
	}
}

func TestRateBarConstrained(t *testing.T) {
	var (
		r     input.Router
		calls []float32
	)
	bar := newRateBar(t, func(c *rating.Config) {
		c.Animate = false
		c.OnRateChanged = func(v float32) { calls = append(calls, v) }
	})
	var n int
	icon := sizedIcon(&n, nil)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Constraints{Max: image.Pt(300, 60)},
	}
	frame := func() layout.Dimensions {
		gtx.Ops.Reset()
		dims := bar.Layout(gtx, 100, icon, icon)
		r.Frame(gtx.Ops)
		return dims
	}
	if dims := frame(); dims.Size != image.Pt(300, 60) {
		t.Errorf("dims = %v, want (300,60)", dims.Size)
	}
	// The rating still maps against the full 500px bar.
	tap(&r, 250, 30)
	frame()
	// Outside the visible part.
	tap(&r, 450, 30)
	frame()
	if len(calls) != 1 || calls[0] != 2.5 {
		t.Errorf("callbacks = %v, want [2.5]", calls)
	}
}

func TestRateBarAnimates(t *testing.T) {
	bar := newRateBar(t, func(c *rating.Config) { c.Threshold = 0 })
	if _, err := bar.Bar().Tap(500, 500); err != nil {
		t.Fatal(err)
	}
	var n int
	icon := sizedIcon(&n, nil)
	gtx := layout.Context{Ops: new(op.Ops)}
	start := time.Unix(0, 0)
	for _, tc := range []struct {
		at   time.Duration
		want float32
	}{
		{0, 0},
		{150 * time.Millisecond, 2.5},
		{300 * time.Millisecond, 5},
	} {
		gtx.Ops.Reset()
		gtx.Now = start.Add(tc.at)
		bar.Layout(gtx, 10, icon, icon)
		if got := bar.Displayed(); got != tc.want {
			t.Errorf("displayed at %v = %v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestRateBarDispose(t *testing.T) {
	var r input.Router
	var calls int
	bar := newRateBar(t, func(c *rating.Config) {
		c.OnRateChanged = func(float32) { calls++ }
	})
	var n int
	icon := sizedIcon(&n, nil)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Exact(image.Pt(500, 100)),
	}
	bar.Layout(gtx, 100, icon, icon)
	r.Frame(gtx.Ops)
	bar.Dispose()
	tap(&r, 100, 50)
	gtx.Ops.Reset()
	bar.Layout(gtx, 100, icon, icon)
	if calls != 0 || bar.Rating() != 0 {
		t.Errorf("disposed bar: %d callbacks, rating %v", calls, bar.Rating())
	}
}
