package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/hongker/btree-simulator/btree"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "btreesim",
		Usage:   "B-tree indexing simulator",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "capacity",
			Usage:   "maximum keys per node before it is split",
			Value:   btree.DefaultCapacity,
			EnvVars: []string{"BTREESIM_CAPACITY"},
		},
		&cli.StringFlag{
			Name:    "style",
			Usage:   "tree rendering: outline or levels",
			Value:   "outline",
			EnvVars: []string{"BTREESIM_STYLE"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"BTREESIM_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "no-color",
			Usage:   "disable coloured output",
			EnvVars: []string{"NO_COLOR"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		if _, err := configLogger(cctx, cctx.App.ErrWriter); err != nil {
			return err
		}
		if cctx.Bool("no-color") {
			color.NoColor = true
		}
		return nil
	}
	app.Commands = []*cli.Command{
		cmdInsert,
		cmdRepl,
		cmdExport,
		cmdShow,
	}
	return app
}
