// SPDX-License-Identifier: Unlicense OR MIT

// Package config reads rate bar settings from YAML files.
//
// A file may set any subset of the fields; the rest keep the values of
// the rating.Config it is applied to:
//
//	items: 5
//	step: 0.5
//	animate: true
//	duration_ms: 300
//	easing: ease-out
//	threshold: 0.5
//	initial: 2.5
//	icons:
//	  selected: star.png
//	  unselected: star-gray.png
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/durov/ratebar/anim"
	"github.com/durov/ratebar/rating"
)

// File is the YAML schema.
type File struct {
	Items      *int     `yaml:"items,omitempty"`
	Step       *float32 `yaml:"step,omitempty"`
	Animate    *bool    `yaml:"animate,omitempty"`
	DurationMs *int     `yaml:"duration_ms,omitempty"`
	Easing     string   `yaml:"easing,omitempty"`
	Threshold  *float32 `yaml:"threshold,omitempty"`
	Initial    *float32 `yaml:"initial,omitempty"`
	Icons      Icons    `yaml:"icons,omitempty"`
}

// Icons names raster icon files. Relative paths are resolved against
// the directory of the configuration file by Load.
type Icons struct {
	Selected   string `yaml:"selected,omitempty"`
	Unselected string `yaml:"unselected,omitempty"`
}

// Parse decodes a configuration. Unknown fields are errors.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "config: parse")
	}
	return &f, nil
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	dir := filepath.Dir(path)
	f.Icons.Selected = resolve(dir, f.Icons.Selected)
	f.Icons.Unselected = resolve(dir, f.Icons.Unselected)
	return f, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Apply overrides the fields of c set in f and validates the result.
func (f *File) Apply(c *rating.Config) error {
	if f.Items != nil {
		c.Items = *f.Items
	}
	if f.Step != nil {
		c.Step = *f.Step
	}
	if f.Animate != nil {
		c.Animate = *f.Animate
	}
	if f.DurationMs != nil {
		c.Duration = time.Duration(*f.DurationMs) * time.Millisecond
	}
	if f.Easing != "" {
		curve, err := anim.CurveByName(f.Easing)
		if err != nil {
			return errors.Wrap(err, "config")
		}
		c.Curve = curve
	}
	if f.Threshold != nil {
		c.Threshold = *f.Threshold
	}
	if f.Initial != nil {
		c.Initial = *f.Initial
	}
	return c.Validate()
}
