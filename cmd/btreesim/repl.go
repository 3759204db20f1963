package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hongker/btree-simulator/btree"
)

var cmdRepl = &cli.Command{
	Name:   "repl",
	Usage:  "interactive prompt, type numbers to insert them",
	Action: runRepl,
}

type repl struct {
	cctx *cli.Context
	tree *btree.Tree
	out  io.Writer
}

func runRepl(cctx *cli.Context) error {
	tree, err := newTree(cctx)
	if err != nil {
		return err
	}
	r := &repl{cctx: cctx, tree: tree, out: cctx.App.Writer}

	r.printHelp()
	r.printPrompt()
	scanner := bufio.NewScanner(cctx.App.Reader)
	for scanner.Scan() {
		done, err := r.processInput(scanner.Text())
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		r.printPrompt()
	}
	return scanner.Err()
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, `B-Tree Indexing Simulator

Enter one or more numbers separated by spaces to insert them.
  HELP   show this message
  CHECK  verify tree invariants
  EXIT   terminate this session`)
}

func (r *repl) printPrompt() {
	fmt.Fprint(r.out, "> ")
}

func (r *repl) processInput(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return true, nil
	case "help":
		r.printHelp()
		return false, nil
	case "check":
		if err := r.tree.Check(); err != nil {
			fmt.Fprintln(r.out, err)
		} else {
			fmt.Fprintf(r.out, "ok: %d keys, height %d\n", r.tree.Len(), r.tree.Height())
		}
		return false, nil
	}

	// the whole line must parse before any key is inserted
	keys, err := parseKeys(fields)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return false, nil
	}
	for _, key := range keys {
		r.tree.Insert(key)
		slog.Debug("inserted key", "key", key, "height", r.tree.Height())
	}
	return false, renderTree(r.cctx, r.tree.Snapshot())
}
