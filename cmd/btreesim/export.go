package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hongker/btree-simulator/btree"
)

var cmdExport = &cli.Command{
	Name:      "export",
	Usage:     "build a tree and write its shape as MessagePack",
	ArgsUsage: `<key>...`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "file path for the snapshot (default stdout)",
		},
	},
	Action: runExport,
}

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "render a MessagePack tree snapshot",
	ArgsUsage: `<file>`,
	Action:    runShow,
}

func runExport(cctx *cli.Context) error {
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
	}

	snap := tree.Snapshot()
	bts, err := snap.MarshalMsg(nil)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if path := cctx.String("output"); path != "" {
		err = writeSnapshot(path, bts)
	} else {
		_, err = cctx.App.Writer.Write(bts)
	}
	if err != nil {
		return err
	}
	slog.Info("exported snapshot", "keys", tree.Len(), "height", tree.Height(), "bytes", len(bts))
	return nil
}

func writeSnapshot(path string, bts []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(bts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runShow(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return fmt.Errorf("expected a single snapshot path")
	}
	snap, err := readSnapshot(cctx.Args().First())
	if err != nil {
		return err
	}
	return renderTree(cctx, snap)
}

func readSnapshot(path string) (btree.Snapshot, error) {
	var snap btree.Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()

	bts, err := io.ReadAll(f)
	if err != nil {
		return snap, err
	}
	left, err := snap.UnmarshalMsg(bts)
	if err != nil {
		return snap, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	if len(left) > 0 {
		return snap, fmt.Errorf("decoding snapshot %s: %d trailing bytes", path, len(left))
	}
	return snap, nil
}
