// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// node is an entry in the node table. When a slot is unused, we have then set
// to EdgeNull and next set to the next free position. The value of m.freepos
// gives the index of the lowest unused slot, except when freenum is 0, in which
// case it is also 0.
type node struct {
	level  int32  // Order of the variable in the BDD, with bit _MARK used for traversals
	refcou int32  // Number of parent nodes plus external references
	gen    uint32 // Incremented each time the slot is freed; used to validate cache entries
	then   Edge   // Reference to the true branch, never complemented
	els    Edge   // Reference to the false branch
	hash   int    // Head of the hash chain for the bucket with this index
	next   int    // Next index to check in case of a collision (or next free slot), 0 if last
}

func (m *Manager) ismarked(n int) bool {
	return (m.nodes[n].level & _MARK) != 0
}

func (m *Manager) marknode(n int) {
	m.nodes[n].level |= _MARK
}

func (m *Manager) unmarknode(n int) {
	m.nodes[n].level &^= _MARK
}

// level returns the variable at the root of e; it is varnum for constants.
func (m *Manager) level(e Edge) int32 {
	return m.nodes[e.index()].level &^ _MARK
}

// cofactors returns the two cofactors of e with respect to variable at level
// lvl, taking the polarity of e into account. If e does not depend on lvl
// (because its root is below lvl) both cofactors are e.
func (m *Manager) cofactors(e Edge, lvl int32) (Edge, Edge) {
	if m.level(e) != lvl {
		return e, e
	}
	n := &m.nodes[e.index()]
	neg := e.IsComplement()
	return n.then.notif(neg), n.els.notif(neg)
}

// MakeNode returns the diagram for the function "if x_level then t else e". It
// is the constructor of the unique table: it never creates a redundant node
// (when t == e it simply returns t) nor a duplicated one. The variable must be
// strictly above the top variables of t and e, otherwise we return an error
// wrapping ErrOrdering and leave the table unchanged.
func (m *Manager) MakeNode(level int, t, e Edge) (Edge, error) {
	if m.nodes == nil {
		return EdgeNull, ErrQuit
	}
	if level < 0 || level >= m.varnum {
		return EdgeNull, errors.Wrapf(ErrVarIndex, "level %d in call to MakeNode", level)
	}
	if err := m.checkptr(t); err != nil {
		return EdgeNull, errors.Wrap(err, "then branch in call to MakeNode")
	}
	if err := m.checkptr(e); err != nil {
		return EdgeNull, errors.Wrap(err, "else branch in call to MakeNode")
	}
	if lt := m.level(t); int32(level) >= lt {
		return EdgeNull, errors.Wrapf(ErrOrdering, "level %d is not above then branch (level %d)", level, lt)
	}
	if le := m.level(e); int32(level) >= le {
		return EdgeNull, errors.Wrapf(ErrOrdering, "level %d is not above else branch (level %d)", level, le)
	}
	m.initref()
	m.pushref(t)
	m.pushref(e)
	res, err := m.makenode(int32(level), t, e)
	m.popref(2)
	if err != nil {
		return EdgeNull, err
	}
	return res, nil
}

// makenode is the unchecked version of MakeNode used by all the recursive
// operations. Callers must protect t and e with pushref since we may trigger a
// garbage collection.
func (m *Manager) makenode(level int32, t, e Edge) (Edge, error) {
	if _DEBUG {
		m.uniqueAccess++
	}
	// check whether children are equal, in which case we can skip the node
	if t == e {
		return t, nil
	}
	// the then branch of a node is always regular; we move the complement bit
	// to the result
	neg := t.IsComplement()
	if neg {
		t, e = t.Not(), e.Not()
	}
	// otherwise try to find an existing node using the hash and next fields
	hash := m.nodehash(level, t, e)
	for res := m.nodes[hash].hash; res != 0; res = m.nodes[res].next {
		n := &m.nodes[res]
		if n.level&^_MARK == level && n.then == t && n.els == e {
			if _DEBUG {
				m.uniqueHit++
			}
			return mkedge(res, neg), nil
		}
		if _DEBUG {
			m.uniqueChain++
		}
	}
	if _DEBUG {
		m.uniqueMiss++
	}
	// If no existing node, we build one. If there is no available spot
	// (m.freepos == 0), we try garbage collection and, as a last resort,
	// resizing the node table.
	if m.freepos == 0 {
		m.gbc()
		if (m.freenum*100)/len(m.nodes) <= m.minfreenodes {
			if err := m.noderesize(); err != nil && m.freepos == 0 {
				return EdgeNull, err
			}
		}
		if m.freepos == 0 {
			return EdgeNull, errors.Wrapf(ErrMemory, "no free node after collecting %d slots", len(m.nodes))
		}
		// the size of the table may have changed
		hash = m.nodehash(level, t, e)
	}
	// We can now build the new node in the first available spot
	m.produced++
	res := m.freepos
	m.freepos = m.nodes[res].next
	m.freenum--
	n := &m.nodes[res]
	n.level = level
	n.then = t
	n.els = e
	n.refcou = 0
	n.next = m.nodes[hash].hash
	m.nodes[hash].hash = res
	m.incref(t)
	m.incref(e)
	return mkedge(res, neg), nil
}

// unlink removes node n from its hash chain.
func (m *Manager) unlink(n int) {
	hash := m.ptrhash(n)
	if m.nodes[hash].hash == n {
		m.nodes[hash].hash = m.nodes[n].next
		return
	}
	for p := m.nodes[hash].hash; p != 0; p = m.nodes[p].next {
		if m.nodes[p].next == n {
			m.nodes[p].next = m.nodes[n].next
			return
		}
	}
}

// noderesize grows the node table and rebuilds the hash chains. Allocated nodes
// keep their index, so edges held by clients remain valid.
func (m *Manager) noderesize() error {
	oldsize := len(m.nodes)
	nodesize := oldsize
	if (oldsize >= m.maxnodesize) && (m.maxnodesize > 0) {
		return errors.Wrapf(ErrMemory, "already at max capacity (%d nodes)", m.maxnodesize)
	}
	if oldsize > (math.MaxInt32 >> 2) {
		nodesize = (math.MaxInt32 >> 1) - 1
	} else {
		nodesize = nodesize << 1
	}
	if m.maxnodeincrease > 0 && nodesize > (oldsize+m.maxnodeincrease) {
		nodesize = oldsize + m.maxnodeincrease
	}
	if (nodesize > m.maxnodesize) && (m.maxnodesize > 0) {
		nodesize = m.maxnodesize
	}
	nodesize = primeLTE(nodesize)
	if nodesize <= oldsize {
		return errors.Wrapf(ErrMemory, "unable to grow node table (%d nodes)", oldsize)
	}

	tmp := m.nodes
	m.nodes = make([]node, nodesize)
	copy(m.nodes, tmp)
	for n := range m.nodes {
		m.nodes[n].hash = 0
	}
	// we rebuild the hash chains and the free list; the free list is kept
	// sorted by index
	m.freepos = 0
	m.freenum = 0
	for n := nodesize - 1; n > 1; n-- {
		if m.nodes[n].then != EdgeNull {
			hash := m.ptrhash(n)
			m.nodes[n].next = m.nodes[hash].hash
			m.nodes[hash].hash = n
		} else {
			m.nodes[n].next = m.freepos
			m.freepos = n
			m.freenum++
		}
	}
	m.applycache.cacheresize(nodesize)
	m.itecache.cacheresize(nodesize)
	m.quantcache.cacheresize(nodesize)
	m.replacecache.cacheresize(nodesize)

	m.logger.WithFields(logrus.Fields{
		"from": oldsize,
		"to":   nodesize,
	}).Debug("node table resized")
	return nil
}

// LiveNodes returns the number of nodes currently allocated in the table,
// including the terminal and the projection functions of the variables.
func (m *Manager) LiveNodes() int {
	if m.nodes == nil {
		return 0
	}
	return len(m.nodes) - m.freenum - 1
}
