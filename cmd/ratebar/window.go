// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	_ "golang.org/x/image/webp"

	"github.com/durov/ratebar/config"
	"github.com/durov/ratebar/widget"
	"github.com/durov/ratebar/widget/material"
)

func runWindow(c *cli.Context) error {
	cfg, icons, err := config.FromCLI(c, material.DefaultConfig())
	if err != nil {
		return err
	}
	cfg.OnRateChanged = logRating
	bar, err := widget.NewRateBar(cfg)
	if err != nil {
		return err
	}
	th := giomaterial.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	style, err := barStyle(th, bar, icons)
	if err != nil {
		return err
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Rate bar"), app.Size(unit.Dp(400), unit.Dp(300)))
		if err := loop(w, th, style); err != nil {
			log.WithError(err).Fatal("window failed")
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func barStyle(th *giomaterial.Theme, bar *widget.RateBar, icons config.Icons) (material.RateBarStyle, error) {
	if icons.Selected == "" {
		return material.RateBar(th, bar), nil
	}
	sel, err := loadImage(icons.Selected)
	if err != nil {
		return material.RateBarStyle{}, err
	}
	var unsel image.Image
	if icons.Unselected != "" {
		if unsel, err = loadImage(icons.Unselected); err != nil {
			return material.RateBarStyle{}, err
		}
	}
	return material.Images(bar, sel, unsel), nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open icon")
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode icon %s", path)
	}
	return img, nil
}

func loop(w *app.Window, th *giomaterial.Theme, style material.RateBarStyle) error {
	defer style.Bar.Dispose()
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			start := time.Now()
			gtx := app.NewContext(&ops, e)
			layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(style.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						lbl := giomaterial.Body1(th, fmt.Sprintf("Current rate: %g", style.Bar.Rating()))
						return layout.Inset{Top: unit.Dp(20)}.Layout(gtx, lbl.Layout)
					}),
				)
			})
			e.Frame(gtx.Ops)
			log.WithField("took", time.Since(start)).Debug("frame")
		}
	}
}
