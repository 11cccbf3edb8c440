// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"
	"github.com/disintegration/imaging"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/draw"

	"github.com/durov/ratebar/rating"
	"github.com/durov/ratebar/widget"
)

var (
	starIcon       = mustIcon(icons.ToggleStar)
	starBorderIcon = mustIcon(icons.ToggleStarBorder)
)

// DefaultConfig returns rating.DefaultConfig with the finer step of
// one tenth used for resource icons.
func DefaultConfig() rating.Config {
	c := rating.DefaultConfig()
	c.Step = .1
	return c
}

// RateBarStyle lays out a widget.RateBar with a pair of icon widgets.
type RateBarStyle struct {
	Selected   layout.Widget
	Unselected layout.Widget
	// Size is the width and height of one icon.
	Size unit.Dp
	Bar  *widget.RateBar
}

// RateBar draws bar with filled and outlined stars.
func RateBar(th *giomaterial.Theme, bar *widget.RateBar) RateBarStyle {
	sel, unsel := th.Palette.ContrastBg, mulAlpha(th.Palette.Fg, 0x60)
	return RateBarStyle{
		Selected: func(gtx layout.Context) layout.Dimensions {
			return starIcon.Layout(gtx, sel)
		},
		Unselected: func(gtx layout.Context) layout.Dimensions {
			return starBorderIcon.Layout(gtx, unsel)
		},
		Size: 36,
		Bar:  bar,
	}
}

// Images draws bar with raster icons. A nil unselected image is
// replaced by FadedImage(selected).
func Images(bar *widget.RateBar, selected, unselected image.Image) RateBarStyle {
	if unselected == nil {
		unselected = FadedImage(selected)
	}
	return RateBarStyle{
		Selected:   ImageIcon(selected),
		Unselected: ImageIcon(unselected),
		Size:       36,
		Bar:        bar,
	}
}

// Layout draws the bar with icons of Size.
func (s RateBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	return s.Bar.Layout(gtx, gtx.Dp(s.Size), s.Selected, s.Unselected)
}

// VectorIcon returns a widget drawing IconVG data in col.
func VectorIcon(data []byte, col color.NRGBA) (layout.Widget, error) {
	ic, err := giowidget.NewIcon(data)
	if err != nil {
		return nil, err
	}
	return func(gtx layout.Context) layout.Dimensions {
		return ic.Layout(gtx, col)
	}, nil
}

// ImageIcon returns a widget drawing img scaled to the minimum
// constraints, or at its own size if they are empty. The scaled image
// is cached until the size changes.
func ImageIcon(img image.Image) layout.Widget {
	var (
		size  image.Point
		imgOp paint.ImageOp
	)
	return func(gtx layout.Context) layout.Dimensions {
		sz := gtx.Constraints.Min
		if sz.X == 0 || sz.Y == 0 {
			sz = img.Bounds().Size()
		}
		if sz != size {
			imgOp = paint.NewImageOp(scale(img, sz))
			size = sz
		}
		imgOp.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		return layout.Dimensions{Size: sz}
	}
}

func scale(src image.Image, sz image.Point) image.Image {
	b := src.Bounds()
	if b.Min == (image.Point{}) && b.Size() == sz {
		return src
	}
	dst := image.NewNRGBA(image.Rectangle{Max: sz})
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// FadedImage returns a gray, lightened copy of img for use as the
// unselected icon.
func FadedImage(img image.Image) image.Image {
	return imaging.AdjustBrightness(imaging.Grayscale(img), 35)
}

func mustIcon(data []byte) *giowidget.Icon {
	ic, err := giowidget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return ic
}

func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}
