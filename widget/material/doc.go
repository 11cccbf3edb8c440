// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws rate bars from icon resources.
//
// A widget.RateBar holds the state of a bar while a RateBarStyle
// supplies its icons. The default style uses the Material star icons
// colored from a Theme:
//
//	bar, _ := widget.NewRateBar(material.DefaultConfig())
//
//	material.RateBar(th, bar).Layout(gtx)
//
// Raster icons are drawn with Images; a missing unselected image is
// derived from the selected one with FadedImage.
package material
