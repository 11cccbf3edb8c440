// SPDX-License-Identifier: Unlicense OR MIT

// Command ratebar shows a rate bar and the rating it is set to, in a
// window or in the terminal.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/durov/ratebar/config"
)

const logFileFlag = "log-file"

func main() {
	app := cli.NewApp()
	app.Name = "ratebar"
	app.Usage = "Tap the stars to rate"
	app.Flags = config.RegisterIconFlags(config.RegisterFlags(nil))
	app.Action = runWindow
	app.Commands = []cli.Command{
		{
			Name:  "term",
			Usage: "Shows the rate bar in the terminal",
			Flags: config.RegisterFlags([]cli.Flag{
				cli.StringFlag{
					Name:  logFileFlag,
					Usage: "log file",
				},
			}),
			Action: runTerm,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("failed to run ratebar")
	}
}

func logRating(r float32) {
	log.WithField("rating", r).Info("rate changed")
}
