// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"github.com/sirupsen/logrus"
)

// gcstat stores status information about garbage collections. We use a stack
// (slice) of objects to record the sequence of GC during a computation.
type gcstat struct {
	reclaimed int       // Total number of nodes returned to the free list
	history   []gcpoint // Snaphot of GC stats at each occurrence
}

type gcpoint struct {
	nodes     int // Total number of allocated nodes in the nodetable
	freenodes int // Number of free nodes before the collection
	reclaimed int // Number of nodes freed by the collection
}

// *************************************************************************

// AddRef increases the reference count on e and returns e so that calls can be
// easily chained together. The count of a node is the number of its parents
// plus the number of holds from the client; a node with a positive count is
// never reclaimed. Constants and variables are always alive, so AddRef is a
// no-op on them.
func (m *Manager) AddRef(e Edge) Edge {
	if err := m.checkptr(e); err != nil {
		return m.seterror(err, "call to AddRef")
	}
	m.incref(e)
	return e
}

// DelRef releases a hold on e and returns e. When the count of a node drops to
// zero it is removed from the node table immediately and its children are
// released in turn. Releasing a node whose count is already zero sets the
// error status of the manager (wrapping ErrRefcount) and returns EdgeNull.
func (m *Manager) DelRef(e Edge) Edge {
	if err := m.checkptr(e); err != nil {
		return m.seterror(err, "call to DelRef")
	}
	n := e.index()
	if m.nodes[n].refcou <= 0 {
		return m.seterror(ErrRefcount, "node %d in call to DelRef", n)
	}
	m.decref(e)
	return e
}

func (m *Manager) incref(e Edge) {
	n := &m.nodes[e.index()]
	if n.refcou < _MAXREFCOUNT {
		n.refcou++
	}
}

func (m *Manager) decref(e Edge) {
	k := e.index()
	n := &m.nodes[k]
	if n.refcou == _MAXREFCOUNT || n.refcou <= 0 {
		return
	}
	n.refcou--
	if n.refcou == 0 && !m.ismarked(k) {
		m.reclaim(k)
	}
}

// deref drops a hold on e without reclaiming the node when its count reaches
// zero. The node is left for the next sweep.
func (m *Manager) deref(e Edge) {
	n := &m.nodes[e.index()]
	if n.refcou != _MAXREFCOUNT && n.refcou > 0 {
		n.refcou--
	}
}

// reclaim removes node k from the table and puts its slot back on the free
// list. Bumping the generation of the slot invalidates every cache entry that
// mentions it.
func (m *Manager) reclaim(k int) {
	m.unlink(k)
	n := &m.nodes[k]
	t, e := n.then, n.els
	n.level = 0
	n.then = EdgeNull
	n.els = EdgeNull
	n.gen++
	n.next = m.freepos
	m.freepos = k
	m.freenum++
	m.reclaimed++
	m.decref(t)
	m.decref(e)
}

// *************************************************************************

// GC reclaims the nodes that are not referenced, either by a parent node or by
// a call to AddRef; typically the results of operations that were never held.
// It returns the number of nodes freed. A collection is also triggered
// automatically when the node table is full.
func (m *Manager) GC() int {
	if m.nodes == nil {
		m.seterror(ErrQuit, "call to GC")
		return 0
	}
	m.initref()
	return m.gbc()
}

// gbc is the garbage collector called for reclaiming memory, inside a call to
// makenode, when there are no free positions available. Allocated nodes that
// are not reclaimed do not move.
func (m *Manager) gbc() int {
	if _LOGLEVEL > 2 {
		m.logTable()
	}
	before := m.reclaimed
	freenodes := m.freenum
	// we mark the nodes in the refstack to avoid collecting them; they are the
	// intermediate results of the operation under way
	for _, r := range m.refstack {
		if r != EdgeNull {
			m.marknode(r.index())
		}
	}
	for k := len(m.nodes) - 1; k > 1; k-- {
		n := &m.nodes[k]
		if n.then != EdgeNull && n.refcou == 0 && !m.ismarked(k) {
			m.reclaim(k)
		}
	}
	for _, r := range m.refstack {
		if r != EdgeNull {
			m.unmarknode(r.index())
		}
	}
	freed := m.reclaimed - before
	m.history = append(m.history, gcpoint{
		nodes:     len(m.nodes),
		freenodes: freenodes,
		reclaimed: freed,
	})
	m.logger.WithFields(logrus.Fields{
		"nodes":     len(m.nodes),
		"reclaimed": freed,
		"free":      m.freenum,
	}).Debug("garbage collection")
	if _DEBUG {
		if err := m.checkTable(); err != nil {
			m.logger.WithError(err).Panic("corrupted node table after garbage collection")
		}
	}
	return freed
}

// CheckZeroRef returns the number of nodes that are still held by the client,
// meaning nodes whose reference count is greater than their number of parents.
// The terminal and the variables, which are held by the manager, are not
// counted. This should be 0 after all the calls to AddRef have been matched by
// a call to DelRef.
func (m *Manager) CheckZeroRef() int {
	if m.nodes == nil {
		return 0
	}
	parents := make([]int32, len(m.nodes))
	for k := 2; k < len(m.nodes); k++ {
		if n := m.nodes[k]; n.then != EdgeNull {
			parents[n.then.index()]++
			parents[n.els.index()]++
		}
	}
	res := 0
	for k := 2; k < len(m.nodes); k++ {
		n := m.nodes[k]
		if n.then == EdgeNull || n.refcou == _MAXREFCOUNT {
			continue
		}
		if n.refcou > parents[k] {
			res++
		}
	}
	return res
}

// *************************************************************************
// private functions to manipulate the refstack; used to prevent nodes that are
// currently being built (e.g. transient nodes built during an apply) to be
// reclaimed during GC.

func (m *Manager) initref() {
	m.refstack = m.refstack[:0]
}

func (m *Manager) pushref(e Edge) Edge {
	m.refstack = append(m.refstack, e)
	return e
}

func (m *Manager) popref(a int) {
	m.refstack = m.refstack[:len(m.refstack)-a]
}
