// SPDX-License-Identifier: Unlicense OR MIT

// Package rating implements the state and arithmetic of a rate bar: a
// row of icons showing a fractional rating that the user sets by
// tapping.
//
// The package does not draw. Bar reports what to draw through a
// Painter, and hosts feed it taps and frame times.
package rating

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration is returned for an item count below one,
	// a non-positive step or a negative duration.
	ErrInvalidConfiguration = errors.New("rating: invalid configuration")
	// ErrInvalidLayout is returned for taps on a bar without a
	// positive measured width.
	ErrInvalidLayout = errors.New("rating: invalid layout")
	// ErrDisposed is returned for taps on a disposed Bar.
	ErrDisposed = errors.New("rating: bar disposed")
)

// Decomposition splits a rating into icon slots.
type Decomposition struct {
	// Full is the number of fully selected icons.
	Full int
	// Partial is the selected fraction of the icon after the full ones,
	// in [0, 1).
	Partial float32
	// Empty is the number of unselected icons.
	Empty int
}

// Quantize returns the multiple of step nearest to raw. Halfway values
// round away from zero.
func Quantize(raw, step float32) (float32, error) {
	if !(step > 0) || math.IsInf(float64(step), 0) {
		return 0, errors.Wrapf(ErrInvalidConfiguration, "step %v", step)
	}
	s := float64(step)
	return float32(math.Round(float64(raw)/s) * s), nil
}

// Clamp limits v to [min, max]. NaN is mapped to min.
func Clamp(v, min, max float32) float32 {
	switch {
	case v != v:
		return min
	case v < min:
		return min
	case v > max:
		return max
	}
	return v
}

// Decompose splits rating into full, partial and empty slots of a row
// of items icons. The rating is clamped to [0, items].
func Decompose(rating float32, items int) Decomposition {
	if items < 0 {
		items = 0
	}
	r := Clamp(rating, 0, float32(items))
	full := int(math.Floor(float64(r)))
	if full > items {
		full = items
	}
	d := Decomposition{
		Full:    full,
		Partial: r - float32(full),
		Empty:   items - int(math.Ceil(float64(r))),
	}
	if d.Partial <= 0 {
		d.Partial = 0
	}
	if d.Empty < 0 {
		d.Empty = 0
	}
	return d
}

// Count returns the number of slots covered by d.
func (d Decomposition) Count() int {
	n := d.Full + d.Empty
	if d.Partial > 0 {
		n++
	}
	return n
}

// MapPointer converts the horizontal position x of a tap on a bar of the
// given width to a rating: the tapped fraction of items, quantized to
// step and clamped to [0, items].
func MapPointer(x, width float32, items int, step float32) (float32, error) {
	if !(width > 0) {
		return 0, errors.Wrapf(ErrInvalidLayout, "width %v", width)
	}
	if items < 1 {
		return 0, errors.Wrapf(ErrInvalidConfiguration, "%d items", items)
	}
	v, err := Quantize(x/width*float32(items), step)
	if err != nil {
		return 0, err
	}
	return Clamp(v, 0, float32(items)), nil
}
