// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// Standard CSS curves.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

// CubicBezier returns the curve of CSS cubic-bezier(x1, y1, x2, y2).
// The end points are fixed at (0, 0) and (1, 1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// Solve x(u) = t, first with Newton steps.
		u := t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, u)
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}
		// Bisection keeps u inside [0, 1].
		lo, hi := 0.0, 1.0
		u = math.Max(0, math.Min(1, u))
		for i := 0; i < 16; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

// CurveByName looks up a curve by its configuration name:
// linear, ease, ease-in, ease-out or ease-in-out. The empty
// name is linear.
func CurveByName(name string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear, nil
	case "ease":
		return Ease, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	}
	return nil, errors.Errorf("anim: unknown curve %q", name)
}
