// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Manager is the owner of a shared, reduced and ordered BDD with complemented
// edges. All the Edges returned by a Manager are only meaningful for this
// manager and become invalid after a call to Quit.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	nodes     []node // List of all the nodes. Slot 0 is never used and slot 1 is the terminal
	freenum   int    // Number of free nodes
	freepos   int    // First free node
	varset    []Edge // Projection function of each variable, held by the manager
	refstack  []Edge // Internal node reference stack
	replacers int    // Number of replacers created, used to give them a unique id
	error            // Error status to help chain operations
	configs          // Configurable parameters
	bddStats         // Information about the node table
	gcstat           // Information about garbage collections
	cacheStat        // Information about the caches
	applycache       // Cache for apply results
	itecache         // Cache for ITE results
	quantcache       // Cache for exist results
	replacecache     // Cache for Replace results
}

// bddStats stores status information about the node table.
type bddStats struct {
	produced     int // Total number of new nodes ever produced
	uniqueAccess int // accesses to the unique node table
	uniqueChain  int // iterations through the hash chains of the unique table
	uniqueHit    int // entries actually found in the the unique node table
	uniqueMiss   int // entries not found in the the unique node table
}

// New returns a manager for diagrams over varnum variables, with indices in
// [0..varnum). We create the terminal node and one projection node per
// variable; these are held by the manager (their count is pinned) and stay
// alive until Quit.
//
// The initial size of the node table is not critical since the table will be
// resized whenever there are too few nodes left after a garbage collection.
// See the Option functions for the possible configurations.
func New(varnum int, options ...Option) (*Manager, error) {
	if (varnum < 0) || (int32(varnum) > _MAXVAR) {
		return nil, errors.Wrapf(ErrVarIndex, "bad number of variables (%d)", varnum)
	}
	config := makeconfigs(varnum)
	for _, f := range options {
		f(config)
	}
	m := &Manager{configs: *config}
	nodesize := primeGTE(config.nodesize)
	m.nodes = make([]node, nodesize)
	for k := range m.nodes {
		m.nodes[k].next = k + 1
	}
	m.nodes[nodesize-1].next = 0
	m.nodes[0].next = 0
	// The terminal is never entered in the unique table and never freed.
	m.nodes[1] = node{
		level:  int32(varnum),
		then:   One,
		els:    One,
		refcou: _MAXREFCOUNT,
	}
	m.freepos = 2
	m.freenum = nodesize - 2
	m.cacheinit()
	m.refstack = make([]Edge, 0, 2*varnum+4)
	m.varset = make([]Edge, varnum)
	for k := 0; k < varnum; k++ {
		v, err := m.makenode(int32(k), One, Zero)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot allocate variable %d", k)
		}
		m.nodes[v.index()].refcou = _MAXREFCOUNT
		m.varset[k] = v
	}
	m.logger.WithFields(logrus.Fields{
		"varnum":   varnum,
		"nodesize": nodesize,
	}).Debug("new manager")
	return m, nil
}

// Quit tears down the manager. It returns an error wrapping ErrLiveReferences
// if some nodes are still held by the client, meaning that the number of calls
// to AddRef and DelRef do not match; the manager is freed in any case.
func (m *Manager) Quit() error {
	if m.nodes == nil {
		return ErrQuit
	}
	var err error
	if dangling := m.CheckZeroRef(); dangling > 0 {
		err = errors.Wrapf(ErrLiveReferences, "%d nodes still referenced", dangling)
		m.logger.WithField("dangling", dangling).Warn("manager torn down with live references")
	}
	m.nodes = nil
	m.varset = nil
	m.refstack = nil
	m.applycache.table = nil
	m.itecache.table = nil
	m.quantcache.table = nil
	m.replacecache.table = nil
	m.freenum = 0
	m.freepos = 0
	return err
}

// Varnum returns the number of defined variables.
func (m *Manager) Varnum() int {
	return m.varnum
}

// True returns the constant true.
func (m *Manager) True() Edge {
	return One
}

// False returns the constant false.
func (m *Manager) False() Edge {
	return Zero
}

// From returns a constant from a boolean value.
func (m *Manager) From(v bool) Edge {
	if v {
		return One
	}
	return Zero
}

// Ithvar returns the diagram of the i'th variable on success, otherwise we set
// the error status of the manager and return EdgeNull. The requested variable
// must be in the range [0..Varnum). Variables do not need to be referenced.
func (m *Manager) Ithvar(i int) Edge {
	if m.nodes == nil {
		return m.seterror(ErrQuit, "call to Ithvar(%d)", i)
	}
	if (i < 0) || (i >= m.varnum) {
		return m.seterror(ErrVarIndex, "unknown variable (%d) in call to Ithvar", i)
	}
	return m.varset[i]
}

// NIthvar returns the diagram of the negation of the i'th variable. See Ithvar
// for further info.
func (m *Manager) NIthvar(i int) Edge {
	if m.nodes == nil {
		return m.seterror(ErrQuit, "call to NIthvar(%d)", i)
	}
	if (i < 0) || (i >= m.varnum) {
		return m.seterror(ErrVarIndex, "unknown variable (%d) in call to NIthvar", i)
	}
	return m.varset[i].Not()
}

// Label returns the variable (index) at the root of e. Constants have label
// Varnum(), below every variable. We return -1 and set the error status if e
// is not a valid edge.
func (m *Manager) Label(e Edge) int {
	if err := m.checkptr(e); err != nil {
		m.seterror(err, "call to Label")
		return -1
	}
	return int(m.level(e))
}

// Then returns the positive cofactor of e with respect to its top variable,
// taking the polarity of e into account. It returns e for constants.
func (m *Manager) Then(e Edge) Edge {
	if err := m.checkptr(e); err != nil {
		return m.seterror(err, "call to Then")
	}
	if e.IsConstant() {
		return e
	}
	return m.nodes[e.index()].then.notif(e.IsComplement())
}

// Else returns the negative cofactor of e with respect to its top variable,
// taking the polarity of e into account. It returns e for constants.
func (m *Manager) Else(e Edge) Edge {
	if err := m.checkptr(e); err != nil {
		return m.seterror(err, "call to Else")
	}
	if e.IsConstant() {
		return e
	}
	return m.nodes[e.index()].els.notif(e.IsComplement())
}
