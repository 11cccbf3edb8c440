// SPDX-License-Identifier: Unlicense OR MIT

package rating

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/durov/ratebar/anim"
)

// Config describes a rate bar. Start from DefaultConfig; the zero
// Config is invalid.
type Config struct {
	// Items is the number of icons.
	Items int
	// Step is the granularity of tapped ratings, in rating units.
	Step float32
	// Animate enables animated transitions between ratings.
	Animate bool
	// Duration of a transition.
	Duration time.Duration
	// Curve eases transitions. Nil means anim.Linear.
	Curve anim.Curve
	// Threshold ends a transition once the displayed rating is
	// closer than Threshold to the committed rating.
	Threshold float32
	// Initial is the starting rating. It is clamped to [0, Items].
	Initial float32
	// OnRateChanged is called with the new rating after every tap.
	OnRateChanged func(rating float32)
}

// DefaultConfig returns a five item bar with a step of one half and
// 300ms linear transitions.
func DefaultConfig() Config {
	return Config{
		Items:     5,
		Step:      .5,
		Animate:   true,
		Duration:  300 * time.Millisecond,
		Curve:     anim.Linear,
		Threshold: .5,
	}
}

// Validate reports whether c describes a usable bar.
func (c Config) Validate() error {
	switch {
	case c.Items < 1:
		return errors.Wrapf(ErrInvalidConfiguration, "%d items", c.Items)
	case !(c.Step > 0) || math.IsInf(float64(c.Step), 0):
		return errors.Wrapf(ErrInvalidConfiguration, "step %v", c.Step)
	case c.Duration < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "duration %v", c.Duration)
	case !(c.Threshold >= 0):
		return errors.Wrapf(ErrInvalidConfiguration, "threshold %v", c.Threshold)
	}
	return nil
}

// State is the animation state of a Bar.
type State uint8

const (
	// Idle means the displayed rating equals the committed rating.
	Idle State = iota
	// Animating means the displayed rating moves towards the
	// committed rating on every frame.
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Bar holds the state of a rate bar: the committed rating set by the
// last tap, and the displayed rating which trails it while a
// transition runs.
//
// A Bar is not safe for concurrent use. Hosts call Tap from their
// event handling and Frame once per redraw.
type Bar struct {
	cfg       Config
	committed float32
	displayed float32
	tween     anim.Tween

	listeners []*listener
	disposed  bool
}

type listener struct {
	fn func(float32)
}

// New returns a Bar for cfg.
func New(cfg Config) (*Bar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Curve == nil {
		cfg.Curve = anim.Linear
	}
	r := Clamp(cfg.Initial, 0, float32(cfg.Items))
	b := &Bar{
		cfg:       cfg,
		committed: r,
		displayed: r,
	}
	b.tween = anim.Tween{
		Duration:  cfg.Duration,
		Curve:     cfg.Curve,
		Threshold: cfg.Threshold,
	}
	return b, nil
}

// Tap commits the rating for a tap at horizontal offset x on a bar of
// the given width, notifies listeners and starts a transition. Every
// tap notifies, even when the rating is unchanged.
func (b *Bar) Tap(x, width float32) (float32, error) {
	if b.disposed {
		return 0, ErrDisposed
	}
	r, err := MapPointer(x, width, b.cfg.Items, b.cfg.Step)
	if err != nil {
		return 0, err
	}
	b.commit(r)
	return r, nil
}

func (b *Bar) commit(r float32) {
	b.committed = r
	if !b.cfg.Animate || r == b.displayed {
		b.tween.Cancel()
		b.displayed = r
	} else {
		// Retarget from where the bar is drawn now.
		b.tween.Retarget(b.displayed, r)
	}
	if b.cfg.OnRateChanged != nil {
		b.cfg.OnRateChanged(r)
	}
	// Listeners may dispose the bar or cancel other listeners.
	for _, l := range b.listeners {
		if b.disposed {
			return
		}
		if l.fn != nil {
			l.fn(r)
		}
	}
}

// Frame advances a running transition to now and returns the
// displayed rating.
func (b *Bar) Frame(now time.Time) float32 {
	if b.disposed || !b.tween.Running() {
		return b.displayed
	}
	v, done := b.tween.Advance(now)
	if done {
		v = b.committed
	}
	b.displayed = v
	return v
}

// SetAnimate enables or disables transitions. Disabling them during a
// transition moves the displayed rating to the committed rating.
func (b *Bar) SetAnimate(animate bool) {
	if b.disposed {
		return
	}
	b.cfg.Animate = animate
	if !animate {
		b.tween.Cancel()
		b.displayed = b.committed
	}
}

// Subscribe registers fn to be called with the rating after every
// tap, after Config.OnRateChanged. Listeners are called in the order
// they subscribed. The returned function removes fn.
func (b *Bar) Subscribe(fn func(rating float32)) (cancel func()) {
	l := &listener{fn: fn}
	b.listeners = append(b.listeners, l)
	return func() {
		l.fn = nil
		for i, o := range b.listeners {
			if o == l {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				break
			}
		}
	}
}

// Rating returns the committed rating.
func (b *Bar) Rating() float32 {
	return b.committed
}

// Displayed returns the rating as currently drawn.
func (b *Bar) Displayed() float32 {
	return b.displayed
}

// State reports whether a transition is running.
func (b *Bar) State() State {
	if b.tween.Running() {
		return Animating
	}
	return Idle
}

// Animating is short for State() == Animating.
func (b *Bar) Animating() bool {
	return b.State() == Animating
}

// Config returns the configuration of b.
func (b *Bar) Config() Config {
	return b.cfg
}

// Decomposition returns the slot split of the displayed rating.
func (b *Bar) Decomposition() Decomposition {
	return Decompose(b.displayed, b.cfg.Items)
}

// Render draws the displayed rating with p, slot by slot from the left.
func (b *Bar) Render(p Painter) {
	for _, s := range Slots(b.Decomposition()) {
		for _, part := range s.Parts {
			p.Draw(s.Index, part.Side, part.Clip)
		}
	}
}

// Dispose stops any transition and detaches all listeners. A disposed
// Bar ignores taps and frames.
func (b *Bar) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.tween.Cancel()
	for _, l := range b.listeners {
		l.fn = nil
	}
	b.listeners = nil
}

// Disposed reports whether Dispose has been called.
func (b *Bar) Disposed() bool {
	return b.disposed
}
