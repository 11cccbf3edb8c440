// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/durov/ratebar/config"
	"github.com/durov/ratebar/rating"
	"github.com/durov/ratebar/term"
)

const frameInterval = 16 * time.Millisecond

func runTerm(c *cli.Context) error {
	// The screen owns the terminal; log to a file or not at all.
	log.SetOutput(io.Discard)
	if path := c.String(logFileFlag); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "failed to open log file")
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, _, err := config.FromCLI(c, rating.DefaultConfig())
	if err != nil {
		return err
	}
	cfg.OnRateChanged = logRating
	bar, err := rating.New(cfg)
	if err != nil {
		return err
	}
	defer bar.Dispose()

	s, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "failed to init screen")
	}
	defer s.Fini()
	s.EnableMouse()

	tb := term.New(bar)
	tb.X, tb.Y = 2, 1

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		drawTerm(s, tb)
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
			}
			if _, err := tb.HandleEvent(ev); err != nil {
				log.WithError(err).Error("failed to handle event")
			}
		case now := <-ticker.C:
			bar.Frame(now)
		}
	}
}

func drawTerm(s tcell.Screen, tb *term.RateBar) {
	s.Clear()
	tb.Draw(s)
	msg := fmt.Sprintf("Current rate: %g", tb.Bar().Rating())
	for i, r := range []rune(msg) {
		s.SetContent(tb.X+i, tb.Y+2, r, nil, tcell.StyleDefault)
	}
	s.Show()
}
