// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the rate bar control for Gio. RateBar
// contains the persistent state of a bar and processes its taps; the
// icons it draws are plain layout widgets, so any drawing can serve as
// an icon. Package widget/material builds icons from vector and raster
// resources.
package widget
