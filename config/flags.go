// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/durov/ratebar/anim"
	"github.com/durov/ratebar/rating"
)

const (
	fileFlag       = "config"
	itemsFlag      = "items"
	stepFlag       = "step"
	noAnimateFlag  = "no-animate"
	durationFlag   = "duration"
	easingFlag     = "easing"
	initialFlag    = "initial"
	selectedFlag   = "selected"
	unselectedFlag = "unselected"
)

// RegisterFlags adds the rate bar flags to f.
func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   fileFlag,
			Usage:  "YAML configuration file",
			EnvVar: "RATEBAR_CONFIG",
		},
		cli.IntFlag{
			Name:  itemsFlag,
			Usage: "number of icons",
		},
		cli.Float64Flag{
			Name:  stepFlag,
			Usage: "rating step",
		},
		cli.BoolFlag{
			Name:  noAnimateFlag,
			Usage: "change the displayed rating without transition",
		},
		cli.IntFlag{
			Name:  durationFlag,
			Usage: "transition duration in milliseconds",
		},
		cli.StringFlag{
			Name:  easingFlag,
			Usage: "transition curve: linear, ease, ease-in, ease-out or ease-in-out",
		},
		cli.Float64Flag{
			Name:  initialFlag,
			Usage: "initial rating",
		},
	)
}

// RegisterIconFlags adds the raster icon flags to f.
func RegisterIconFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:  selectedFlag,
			Usage: "selected icon image (png, jpeg or webp)",
		},
		cli.StringFlag{
			Name:  unselectedFlag,
			Usage: "unselected icon image, derived from the selected icon if empty",
		},
	)
}

// FromCLI applies the configuration file named by the flags, then the
// flags set on the command line, to base.
func FromCLI(c *cli.Context, base rating.Config) (rating.Config, Icons, error) {
	cfg := base
	var icons Icons
	if path := c.String(fileFlag); path != "" {
		f, err := Load(path)
		if err != nil {
			return cfg, icons, err
		}
		if err := f.Apply(&cfg); err != nil {
			return cfg, icons, err
		}
		icons = f.Icons
	}
	if c.IsSet(itemsFlag) {
		cfg.Items = c.Int(itemsFlag)
	}
	if c.IsSet(stepFlag) {
		cfg.Step = float32(c.Float64(stepFlag))
	}
	if c.Bool(noAnimateFlag) {
		cfg.Animate = false
	}
	if c.IsSet(durationFlag) {
		cfg.Duration = time.Duration(c.Int(durationFlag)) * time.Millisecond
	}
	if c.IsSet(easingFlag) {
		curve, err := anim.CurveByName(c.String(easingFlag))
		if err != nil {
			return cfg, icons, err
		}
		cfg.Curve = curve
	}
	if c.IsSet(initialFlag) {
		cfg.Initial = float32(c.Float64(initialFlag))
	}
	if p := c.String(selectedFlag); p != "" {
		icons.Selected = p
	}
	if p := c.String(unselectedFlag); p != "" {
		icons.Unselected = p
	}
	if err := cfg.Validate(); err != nil {
		return cfg, icons, errors.Wrap(err, "config: flags")
	}
	return cfg, icons, nil
}
