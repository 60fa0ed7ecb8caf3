// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package robdd

import (
	"github.com/pkg/errors"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

// ******************************************************************************************************

func (m *Manager) logTable() {
	if m.error != nil {
		m.logger.Debugf("ERROR: %s", m.error)
	}
	for k, n := range m.nodes {
		switch {
		case n.refcou == _MAXREFCOUNT:
			m.logger.Debugf("%-3d ( %-3d ,  %-3s ,  %-3s) |hash:  %-3d  |next:  %-3d | +", k, n.level, n.then, n.els, n.hash, n.next)
		case n.refcou == 0:
			m.logger.Debugf("%-3d ( %-3d ,  %-3s ,  %-3s) |hash:  %-3d  |next:  %-3d |", k, n.level, n.then, n.els, n.hash, n.next)
		default:
			m.logger.Debugf("%-3d ( %-3d ,  %-3s ,  %-3s) |hash:  %-3d  |next:  %-3d | %d", k, n.level, n.then, n.els, n.hash, n.next, n.refcou)
		}
	}
}

// checkTable verifies the structural invariants of the node table: every live
// node is reduced, has a regular then branch, is found in its hash chain and
// has a reference count at least equal to its number of parents; the free list
// has exactly freenum slots.
func (m *Manager) checkTable() error {
	parents := make([]int32, len(m.nodes))
	for k := 2; k < len(m.nodes); k++ {
		n := m.nodes[k]
		if n.then == EdgeNull {
			continue
		}
		if n.then == n.els {
			return errors.Errorf("node %d is redundant", k)
		}
		if n.then.IsComplement() {
			return errors.Errorf("node %d has a complemented then branch", k)
		}
		if m.level(n.then) <= n.level || m.level(n.els) <= n.level {
			return errors.Wrapf(ErrOrdering, "node %d", k)
		}
		found := false
		for p := m.nodes[m.ptrhash(k)].hash; p != 0; p = m.nodes[p].next {
			if p == k {
				found = true
				break
			}
		}
		if !found {
			return errors.Errorf("node %d missing from its hash chain", k)
		}
		parents[n.then.index()]++
		parents[n.els.index()]++
	}
	for k := 2; k < len(m.nodes); k++ {
		if m.nodes[k].then != EdgeNull && m.nodes[k].refcou < parents[k] {
			return errors.Wrapf(ErrRefcount, "node %d has count %d for %d parents", k, m.nodes[k].refcou, parents[k])
		}
	}
	free := 0
	for p := m.freepos; p != 0; p = m.nodes[p].next {
		if m.nodes[p].then != EdgeNull {
			return errors.Errorf("slot %d in the free list is in use", p)
		}
		free++
	}
	if free != m.freenum {
		return errors.Errorf("free list has %d slots, expected %d", free, m.freenum)
	}
	return nil
}
