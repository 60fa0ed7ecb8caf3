// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/pkg/errors"
)

// DumpDot writes a GraphViz description of the diagrams denoted by roots. There
// must be one name in inames for each variable of the manager and one name in
// onames for each root, otherwise we return an error wrapping ErrNameCount.
//
// Nodes are drawn on one row per variable, with the name of the variable on the
// left, and the roots hang from one box per output. We draw then edges with a
// solid line and else edges with a dashed line, or a dotted line when the edge
// is complemented. There are two terminal vertices, one and zero: a
// complemented edge to the terminal is drawn as a regular edge to zero. Names
// are written as quoted strings, so they may contain any character.
func (m *Manager) DumpDot(w io.Writer, roots []Edge, inames, onames []string) error {
	if err := m.checkexport(roots, inames, onames); err != nil {
		return errors.Wrap(err, "DumpDot")
	}
	nodes := m.reachable(roots)
	// nodes grouped by level, in the order of the traversal
	rows := make([][]int, m.varnum)
	for _, k := range nodes {
		if k > 1 {
			lvl := m.nodes[k].level &^ _MARK
			rows[lvl] = append(rows[lvl], k)
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `digraph "DD" {`)
	fmt.Fprintln(bw, `size = "7.5,10"`)
	fmt.Fprintln(bw, "center = true;")
	fmt.Fprintln(bw, "edge [dir = none];")
	// the column of variable names, only for the levels that have nodes
	fmt.Fprintln(bw, "{ node [shape = plaintext];")
	fmt.Fprintln(bw, "  edge [style = invis];")
	fmt.Fprintln(bw, `  "CONST NODES" [style = invis];`)
	fmt.Fprint(bw, " ")
	for lvl, row := range rows {
		if len(row) > 0 {
			fmt.Fprintf(bw, " %q ->", " "+inames[lvl]+" ")
		}
	}
	fmt.Fprintln(bw, ` "CONST NODES";`)
	fmt.Fprintln(bw, "}")
	// the outputs
	fmt.Fprintln(bw, "{ rank = same; node [shape = box]; edge [style = invis];")
	for _, o := range onames {
		fmt.Fprintf(bw, "%q; ", "  "+o+"  ")
	}
	fmt.Fprintln(bw, "\n}")
	// one row per level
	for lvl, row := range rows {
		if len(row) == 0 {
			continue
		}
		fmt.Fprintf(bw, "{ rank = same; %q;\n", " "+inames[lvl]+" ")
		for _, k := range row {
			fmt.Fprintf(bw, "%q %s\n", nodename(k), dotlabel(k, inames[lvl]))
		}
		fmt.Fprintln(bw, "}")
	}
	fmt.Fprintln(bw, `{ rank = same; "CONST NODES";`)
	fmt.Fprintln(bw, `{ node [shape = box]; "one" [label = "1"]; "zero" [label = "0"]; }`)
	fmt.Fprintln(bw, "}")
	// the edges from the outputs
	for i, r := range roots {
		style := "solid"
		if r.IsComplement() && !r.IsConstant() {
			style = "dotted"
		}
		fmt.Fprintf(bw, "%q -> %q [style = %s];\n", "  "+onames[i]+"  ", dotvertex(r), style)
	}
	// the edges between nodes
	for _, k := range nodes {
		if k < 2 {
			continue
		}
		n := m.nodes[k]
		fmt.Fprintf(bw, "%q -> %q;\n", nodename(k), dotvertex(n.then))
		style := "dashed"
		if n.els.IsComplement() && !n.els.IsConstant() {
			style = "dotted"
		}
		fmt.Fprintf(bw, "%q -> %q [style = %s];\n", nodename(k), dotvertex(n.els), style)
	}
	fmt.Fprintln(bw, "}")
	return errors.Wrap(bw.Flush(), "writing DOT graph")
}

// dotvertex returns the vertex that e points to.
func dotvertex(e Edge) string {
	switch e {
	case One:
		return "one"
	case Zero:
		return "zero"
	}
	return nodename(e.index())
}

func dotlabel(k int, name string) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%s</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, html.EscapeString(name), k)
}
