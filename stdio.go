// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// Stats returns information about the manager: size of the node table, number
// of nodes produced, garbage collections and cache usage.
func (m *Manager) Stats() string {
	if m.nodes == nil {
		return "manager has been torn down"
	}
	res := fmt.Sprintf("Varnum:     %d\n", m.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(m.nodes))
	res += fmt.Sprintf("Produced:   %d\n", m.produced)
	r := (float64(m.freenum) / float64(len(m.nodes))) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", m.freenum, r)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", len(m.nodes)-m.freenum, (100.0 - r))
	res += "==============\n"
	res += fmt.Sprintf("# of GC:    %d\n", len(m.history))
	res += fmt.Sprintf("Reclaimed:  %d\n", m.reclaimed)
	res += "==============\n"
	res += m.cacheStat.format()
	if _DEBUG {
		res += "\n==============\n"
		res += fmt.Sprintf("Unique Access:  %d\n", m.uniqueAccess)
		res += fmt.Sprintf("Unique Chain:   %d\n", m.uniqueChain)
		res += fmt.Sprintf("Unique Hit:     %d\n", m.uniqueHit)
		res += fmt.Sprintf("Unique Miss:    %d", m.uniqueMiss)
	}
	return res
}

// ******************************************************************************************************

// Print returns a one-line description of the node referenced by e.
func (m *Manager) Print(e Edge) string {
	if err := m.checkptr(e); err != nil {
		return fmt.Sprintf("Error (%s)", err)
	}
	if e.IsConstant() {
		return e.String()
	}
	n := m.nodes[e.index()]
	res := fmt.Sprintf("(%d[%d] ? %s : %s)", e.index(), n.level&^_MARK, n.then, n.els)
	if e.IsComplement() {
		return "!" + res
	}
	return res
}

// PrintSet outputs a textual representation of the nodes reachable from the
// roots, one node per line with children before parents. With no roots we
// print all the active nodes, sorted by index.
func (m *Manager) PrintSet(w io.Writer, roots ...Edge) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	err := m.Allnodes(func(id, level int, then, els Edge) error {
		if id < 2 {
			return nil
		}
		_, err := fmt.Fprintf(tw, "%d\t[%d\t] ? \t%s\t : %s\t(%d)\n", id, level, then, els, m.nodes[id].refcou)
		return err
	}, roots...)
	if err != nil {
		return errors.Wrap(err, "printing node table")
	}
	return errors.Wrap(tw.Flush(), "printing node table")
}

// ******************************************************************************************************

// checkexport verifies the arguments of the Dump functions: one name per
// variable, one name per root and only valid roots.
func (m *Manager) checkexport(roots []Edge, inames, onames []string) error {
	if m.nodes == nil {
		return ErrQuit
	}
	if len(inames) != m.varnum {
		return errors.Wrapf(ErrNameCount, "%d input names for %d variables", len(inames), m.varnum)
	}
	if len(onames) != len(roots) {
		return errors.Wrapf(ErrNameCount, "%d output names for %d roots", len(onames), len(roots))
	}
	for i, r := range roots {
		if err := m.checkptr(r); err != nil {
			return errors.Wrapf(err, "root %d (%s)", i, onames[i])
		}
	}
	return nil
}

// nodename is the name of node k in the exported netlists and graphs.
func nodename(k int) string {
	return fmt.Sprintf("n%d", k)
}
