// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"

	"github.com/pkg/errors"
)

// ************************************************************
// cache is used for caching apply/ite/exist/replace results
type cache struct {
	cacheratio int // value used to resize the caches as a factor of the number of nodes
	table      []cacheData
}

// cacheStat stores status information about cache usage
type cacheStat struct {
	opHit   int // entries found in the operator caches
	opMiss  int // entries not found in the operator caches
	opStale int // entries found but referencing a node that was reclaimed since
}

// cacheData is a unit of information stored in the caches. We record the
// generation of each node involved when the entry is created; an entry is only
// valid if all these nodes are still alive with the same generation. This way
// we never need to purge the caches when nodes are reclaimed.
type cacheData struct {
	res  Edge
	a    Edge
	b    Edge
	c    Edge
	op   int
	gens [4]uint32 // generations of res, a, b and c
}

// ************************************************************

// Different kind of caches used in the manager

type applycache struct {
	cache // Cache for apply results
}

type itecache struct {
	cache // Cache for ITE results
}

type quantcache struct {
	cache // Cache for exist results
}

type replacecache struct {
	cache // Cache for replace results
}

// ************************************************************

// Cache tags; the ones for apply are the operators themselves
const (
	cacheidITE     int = 0x10
	cacheidEXIST   int = 0x11
	cacheidREPLACE int = 0x12 // replacer ids are shifted above this tag
)

// ************************************************************

// Basic functions shared by all caches

func (bc *cache) cacheinit(size int) {
	size = primeGTE(size)
	bc.table = make([]cacheData, size)
	bc.cachereset()
}

func (bc *cache) cacheresize(nodesize int) {
	if bc.cacheratio > 0 {
		bc.cacheinit((nodesize * bc.cacheratio) / 100)
	}
}

func (bc *cache) cachereset() {
	for k := range bc.table {
		bc.table[k] = cacheData{}
	}
}

// *************************************************************************
// Setup

func (m *Manager) cacheinit() {
	size := m.cachesize
	if size <= 0 {
		size = len(m.nodes)/5 + 1
	}
	m.applycache.cacheratio = m.cacheratio
	m.applycache.cacheinit(size)
	m.itecache.cacheratio = m.cacheratio
	m.itecache.cacheinit(size)
	m.quantcache.cacheratio = m.cacheratio
	m.quantcache.cacheinit(size)
	m.replacecache.cacheratio = m.cacheratio
	m.replacecache.cacheinit(size)
}

// *************************************************************************

// gen returns the generation of the node referenced by e, or 0 for EdgeNull.
func (m *Manager) gen(e Edge) uint32 {
	if e == EdgeNull {
		return 0
	}
	return m.nodes[e.index()].gen
}

// alive tells whether edge e, recorded with generation g, still refers to the
// same node.
func (m *Manager) alive(e Edge, g uint32) bool {
	if e == EdgeNull {
		return true
	}
	n := e.index()
	if n >= len(m.nodes) {
		return false
	}
	return m.nodes[n].then != EdgeNull && m.nodes[n].gen == g
}

// match looks for entry (op, a, b, c) in bc; it returns EdgeNull on a miss.
func (m *Manager) match(bc *cache, op int, a, b, c Edge) Edge {
	entry := &bc.table[_TRIPLE(int(a), int(b), int(c)+op, len(bc.table))]
	if entry.res == EdgeNull || entry.op != op || entry.a != a || entry.b != b || entry.c != c {
		m.opMiss++
		return EdgeNull
	}
	if !m.alive(entry.res, entry.gens[0]) || !m.alive(a, entry.gens[1]) ||
		!m.alive(b, entry.gens[2]) || !m.alive(c, entry.gens[3]) {
		m.opStale++
		*entry = cacheData{}
		return EdgeNull
	}
	m.opHit++
	return entry.res
}

// insert records res as the result of (op, a, b, c) in bc and returns res.
func (m *Manager) insert(bc *cache, op int, a, b, c, res Edge) Edge {
	bc.table[_TRIPLE(int(a), int(b), int(c)+op, len(bc.table))] = cacheData{
		res:  res,
		a:    a,
		b:    b,
		c:    c,
		op:   op,
		gens: [4]uint32{m.gen(res), m.gen(a), m.gen(b), m.gen(c)},
	}
	return res
}

// ************************************************************

// matchapply and setapply take care of the normalization of commutative
// operators, so that (a op b) and (b op a) share the same entry.

func (m *Manager) matchapply(op Operator, a, b Edge) Edge {
	if a > b {
		a, b = b, a
	}
	return m.match(&m.applycache.cache, int(op), a, b, EdgeNull)
}

func (m *Manager) setapply(op Operator, a, b, res Edge) Edge {
	if a > b {
		a, b = b, a
	}
	return m.insert(&m.applycache.cache, int(op), a, b, EdgeNull, res)
}

func (m *Manager) matchite(f, g, h Edge) Edge {
	return m.match(&m.itecache.cache, cacheidITE, f, g, h)
}

func (m *Manager) setite(f, g, h, res Edge) Edge {
	return m.insert(&m.itecache.cache, cacheidITE, f, g, h, res)
}

func (m *Manager) matchquant(f, cube Edge) Edge {
	return m.match(&m.quantcache.cache, cacheidEXIST, f, cube, EdgeNull)
}

func (m *Manager) setquant(f, cube, res Edge) Edge {
	return m.insert(&m.quantcache.cache, cacheidEXIST, f, cube, EdgeNull, res)
}

func (m *Manager) matchreplace(id int, f Edge) Edge {
	return m.match(&m.replacecache.cache, id, f, EdgeNull, EdgeNull)
}

func (m *Manager) setreplace(id int, f, res Edge) Edge {
	return m.insert(&m.replacecache.cache, id, f, EdgeNull, EdgeNull, res)
}

// ************************************************************

// SetCacheratio sets the cache ratio for the operator caches. With a cache
// ratio of r, there are r entries in each cache for every 100 slots of the node
// table. When this is done the caches are resized instantly to fit the new
// ratio.
func (m *Manager) SetCacheratio(r int) error {
	if r <= 0 {
		return errors.Errorf("non-positive ratio (%d) in call to SetCacheratio", r)
	}
	if m.nodes == nil {
		return ErrQuit
	}
	for _, bc := range []*cache{&m.applycache.cache, &m.itecache.cache, &m.quantcache.cache, &m.replacecache.cache} {
		bc.cacheratio = r
		bc.cacheresize(len(m.nodes))
	}
	return nil
}

// ************************************************************

// Prints information about the cache performance.

func (c cacheStat) format() string {
	res := fmt.Sprintf("Operator Hits:  %d\n", c.opHit)
	res += fmt.Sprintf("Operator Miss:  %d\n", c.opMiss)
	res += fmt.Sprintf("Operator Stale: %d", c.opStale)
	return res
}
