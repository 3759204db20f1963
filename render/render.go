// Package render draws a btree shape on a terminal, one box per node.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/hongker/btree-simulator/btree"
)

// Renderer writes tree shapes to a terminal.
type Renderer struct {
	w    io.Writer
	box  *color.Color
	line *color.Color
}

// New returns a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{
		w:    w,
		box:  color.New(color.FgCyan, color.Bold),
		line: color.New(color.Faint),
	}
}

// Box formats a node's keys, an empty node is drawn as "[]".
func Box(keys []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(key))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Outline prints the tree top-down with box-drawing connectors:
//
//	[10]
//	├── [5 6]
//	└── [12 20]
func (r *Renderer) Outline(s btree.Snapshot) error {
	if _, err := fmt.Fprintln(r.w, r.box.Sprint(Box(s.Keys))); err != nil {
		return err
	}
	return r.outline(s.Children, "")
}

func (r *Renderer) outline(nodes []btree.Snapshot, prefix string) error {
	for i, n := range nodes {
		connector, indent := "├── ", "│   "
		if i == len(nodes)-1 {
			connector, indent = "└── ", "    "
		}
		if _, err := fmt.Fprintln(r.w, r.line.Sprint(prefix+connector)+r.box.Sprint(Box(n.Keys))); err != nil {
			return err
		}
		if err := r.outline(n.Children, prefix+indent); err != nil {
			return err
		}
	}
	return nil
}

// Levels prints one line per depth, boxes left to right.
func (r *Renderer) Levels(s btree.Snapshot) error {
	level := []btree.Snapshot{s}
	for depth := 0; len(level) > 0; depth++ {
		var next []btree.Snapshot
		boxes := make([]string, len(level))
		for i, n := range level {
			boxes[i] = r.box.Sprint(Box(n.Keys))
			next = append(next, n.Children...)
		}
		if _, err := fmt.Fprintf(r.w, "%s %s\n", r.line.Sprintf("L%d", depth), strings.Join(boxes, " ")); err != nil {
			return err
		}
		level = next
	}
	return nil
}
