// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/durov/ratebar/rating"
)

const sample = `
items: 10
step: 0.25
animate: false
duration_ms: 120
easing: ease-out
threshold: 0.1
initial: 3.5
icons:
  selected: icons/on.png
  unselected: /abs/off.png
`

func TestApply(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	c := rating.DefaultConfig()
	if err := f.Apply(&c); err != nil {
		t.Fatal(err)
	}
	if c.Items != 10 || c.Step != .25 || c.Animate || c.Duration != 120*time.Millisecond ||
		c.Threshold != .1 || c.Initial != 3.5 {
		t.Errorf("applied config = %+v", c)
	}
	if c.Curve == nil || c.Curve(.5) <= .5 {
		t.Error("easing not applied")
	}
}

func TestApplyPartial(t *testing.T) {
	f, err := Parse([]byte("step: 0.1\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := rating.DefaultConfig()
	if err := f.Apply(&c); err != nil {
		t.Fatal(err)
	}
	def := rating.DefaultConfig()
	if c.Step != .1 || c.Items != def.Items || c.Animate != def.Animate || c.Duration != def.Duration {
		t.Errorf("applied config = %+v", c)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(nil); err != nil {
		t.Errorf("Parse(nil): %v", err)
	}
}

func TestParseUnknownField(t *testing.T) {
	if _, err := Parse([]byte("colour: red\n")); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestApplyInvalid(t *testing.T) {
	f, err := Parse([]byte("items: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := rating.DefaultConfig()
	if err := f.Apply(&c); !errors.Is(err, rating.ErrInvalidConfiguration) {
		t.Errorf("Apply error = %v, want ErrInvalidConfiguration", err)
	}

	f, err = Parse([]byte("easing: wobble\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Apply(&c); err == nil {
		t.Error("unknown easing accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bar.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "icons", "on.png"); f.Icons.Selected != want {
		t.Errorf("selected icon = %q, want %q", f.Icons.Selected, want)
	}
	if f.Icons.Unselected != "/abs/off.png" {
		t.Errorf("absolute icon path rewritten to %q", f.Icons.Unselected)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}
