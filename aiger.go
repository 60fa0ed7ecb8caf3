// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"io"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/logic/aiger"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

// Circuit compiles the diagrams denoted by roots into the and-inverter graph c,
// with one multiplexer per node, and returns the literals of the roots. The
// literal for variable i is inputs[i]; there must be one input per variable of
// the manager. Complemented edges cost nothing, since they are mapped to
// negated literals.
func (m *Manager) Circuit(c *logic.C, inputs []z.Lit, roots ...Edge) ([]z.Lit, error) {
	if m.nodes == nil {
		return nil, ErrQuit
	}
	if len(inputs) != m.varnum {
		return nil, errors.Wrapf(ErrNameCount, "%d inputs for %d variables", len(inputs), m.varnum)
	}
	for i, r := range roots {
		if err := m.checkptr(r); err != nil {
			return nil, errors.Wrapf(err, "root %d in call to Circuit", i)
		}
	}
	// lits[k] is the literal of the (regular) node k; reachable returns the
	// children before their parents
	lits := make(map[int]z.Lit)
	lits[1] = c.T
	for _, k := range m.reachable(roots) {
		if k < 2 {
			continue
		}
		n := m.nodes[k]
		t := lits[n.then.index()]
		e := lits[n.els.index()]
		if n.els.IsComplement() {
			e = e.Not()
		}
		lits[k] = c.Choice(inputs[n.level&^_MARK], t, e)
	}
	res := make([]z.Lit, len(roots))
	for i, r := range roots {
		res[i] = lits[r.index()]
		if r.IsComplement() {
			res[i] = res[i].Not()
		}
	}
	return res, nil
}

// DumpAiger writes the diagrams denoted by roots as a combinational circuit in
// the ASCII AIGER format (version 1.9), with the symbol table built from inames
// and onames. The arguments follow the same rules than with DumpBlif.
func (m *Manager) DumpAiger(w io.Writer, roots []Edge, inames, onames []string) error {
	if err := m.checkexport(roots, inames, onames); err != nil {
		return errors.Wrap(err, "DumpAiger")
	}
	a := aiger.Make(2 * (m.DagSize(roots...) + m.varnum))
	inputs := make([]z.Lit, m.varnum)
	for i := range inputs {
		inputs[i] = a.NewIn()
		if err := a.NameInput(i, inames[i]); err != nil {
			return errors.Wrapf(err, "input %q", inames[i])
		}
	}
	outs, err := m.Circuit(&a.S.C, inputs, roots...)
	if err != nil {
		return errors.Wrap(err, "DumpAiger")
	}
	for i, o := range outs {
		a.SetOutput(o)
		if err := a.NameOutput(i, onames[i]); err != nil {
			return errors.Wrapf(err, "output %q", onames[i])
		}
	}
	return errors.Wrap(a.WriteAscii(w), "writing AIGER circuit")
}
