package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/hongker/btree-simulator/btree"
	"github.com/hongker/btree-simulator/render"
)

// configLogger installs a JSON logger on writer at the level named by --log-level.
func configLogger(cctx *cli.Context, writer io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, nil
}

func newTree(cctx *cli.Context) (*btree.Tree, error) {
	tree, err := btree.NewBTree(
		btree.WithCapacity(cctx.Int("capacity")),
		btree.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("capacity %d: %w", cctx.Int("capacity"), err)
	}
	return tree, nil
}

// parseKey rejects anything that is not a base-10 integer before it reaches the tree
func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid input %q, enter numerical data", s)
	}
	return key, nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := parseKey(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func renderTree(cctx *cli.Context, snap btree.Snapshot) error {
	r := render.New(cctx.App.Writer)
	switch style := cctx.String("style"); style {
	case "outline":
		return r.Outline(snap)
	case "levels":
		return r.Levels(snap)
	default:
		return fmt.Errorf("unknown style %q", style)
	}
}
