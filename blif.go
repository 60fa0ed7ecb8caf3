// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// DumpBlif writes a BLIF netlist, with the given model name, computing the
// functions denoted by roots. There must be one name in inames for each
// variable of the manager and one name in onames for each root, otherwise we
// return an error wrapping ErrNameCount.
//
// Each node reachable from the roots becomes a multiplexer, named after its
// index in the node table, whose select input is the variable of the node. The
// terminal is the constant n1. Complemented else edges are absorbed in the
// cover of the multiplexer and complemented roots in the cover of the output.
// Since signals are separated by spaces, a name that is empty, contains a space
// or clashes with a node signal (n followed by digits) is rejected with an
// error wrapping ErrName.
func (m *Manager) DumpBlif(w io.Writer, roots []Edge, inames, onames []string, model string) error {
	if err := m.checkexport(roots, inames, onames); err != nil {
		return errors.Wrap(err, "DumpBlif")
	}
	for _, names := range [][]string{inames, onames} {
		for _, name := range names {
			if err := checkblifname(name); err != nil {
				return errors.Wrap(err, "DumpBlif")
			}
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, ".model %s\n", model)
	fmt.Fprintf(bw, ".inputs %s\n", strings.Join(inames, " "))
	fmt.Fprintf(bw, ".outputs %s\n", strings.Join(onames, " "))
	fmt.Fprintf(bw, ".names %s\n1\n", nodename(1))
	for _, k := range m.reachable(roots) {
		if k < 2 {
			continue
		}
		n := m.nodes[k]
		fmt.Fprintf(bw, ".names %s %s %s %s\n", inames[n.level&^_MARK], nodename(n.then.index()), nodename(n.els.index()), nodename(k))
		fmt.Fprintln(bw, "11- 1")
		if n.els.IsComplement() {
			fmt.Fprintln(bw, "0-0 1")
		} else {
			fmt.Fprintln(bw, "0-1 1")
		}
	}
	for i, r := range roots {
		fmt.Fprintf(bw, ".names %s %s\n", nodename(r.index()), onames[i])
		if r.IsComplement() {
			fmt.Fprintln(bw, "0 1")
		} else {
			fmt.Fprintln(bw, "1 1")
		}
	}
	fmt.Fprintln(bw, ".end")
	return errors.Wrap(bw.Flush(), "writing BLIF netlist")
}

// checkblifname returns an error if name cannot be used as a signal of a BLIF
// netlist produced by DumpBlif.
func checkblifname(name string) error {
	if name == "" {
		return errors.Wrap(ErrName, "empty name")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errors.Wrapf(ErrName, "%q contains a space", name)
	}
	if len(name) > 1 && name[0] == 'n' && strings.Trim(name[1:], "0123456789") == "" {
		return errors.Wrapf(ErrName, "%q clashes with a node name", name)
	}
	return nil
}
