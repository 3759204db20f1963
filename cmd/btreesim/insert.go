package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"
)

var cmdInsert = &cli.Command{
	Name:      "insert",
	Usage:     "insert keys in order and print the resulting tree",
	ArgsUsage: `<key>...`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "check",
			Usage: "verify tree invariants after every insert",
		},
	},
	Action: runInsert,
}

func runInsert(cctx *cli.Context) error {
	if cctx.Args().Len() < 1 {
		return fmt.Errorf("need at least one key")
	}
	keys, err := parseKeys(cctx.Args().Slice())
	if err != nil {
		return err
	}

	tree, err := newTree(cctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		tree.Insert(key)
		slog.Debug("inserted key", "key", key, "height", tree.Height())
		if cctx.Bool("check") {
			if err := tree.Check(); err != nil {
				return fmt.Errorf("after inserting %d: %w", key, err)
			}
		}
	}
	return renderTree(cctx, tree.Snapshot())
}
