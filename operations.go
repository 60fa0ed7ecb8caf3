// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math/big"

	"github.com/pkg/errors"
)

// Scanset returns the set of variables (levels) found when following the then
// branch of the cube f. This is the dual of function Makeset. The result is
// nil if there is an error or if f is a constant.
func (m *Manager) Scanset(f Edge) []int {
	if err := m.checkptr(f); err != nil {
		m.seterror(err, "call to Scanset")
		return nil
	}
	if f.IsConstant() {
		return nil
	}
	res := []int{}
	for e := f; !e.IsConstant(); e = m.Then(e) {
		res = append(res, int(m.level(e)))
	}
	return res
}

// Makeset returns the conjunction (the cube) of all the variables in varset, in
// their positive form. It is such that Scanset(Makeset(a)) == a when a is
// sorted. It returns EdgeNull and sets the error condition of the manager if
// one of the variables is outside the scope of the manager.
func (m *Manager) Makeset(varset []int) Edge {
	res := One
	for _, level := range varset {
		v := m.Ithvar(level)
		if v == EdgeNull {
			return EdgeNull
		}
		res = m.Apply(res, v, OPand)
		if res == EdgeNull {
			return EdgeNull
		}
	}
	return res
}

// Not returns the negation of f. With complement edges this never creates new
// nodes.
func (m *Manager) Not(f Edge) Edge {
	if err := m.checkptr(f); err != nil {
		return m.seterror(err, "call to Not")
	}
	return f.Not()
}

// Apply performs all of the basic bdd operations with two operands, such as
// AND, OR etc. Left and right are the operand and opr is the requested
// operation and must be one of the following:
//
//	Identifier    Description             Truth table
//
//	OPand         logical and             [0,0,0,1]
//	OPxor         logical xor             [0,1,1,0]
//	OPor          logical or              [0,1,1,1]
//	OPnand        logical not-and         [1,1,1,0]
//	OPnor         logical not-or          [1,0,0,0]
//	OPimp         implication             [1,1,0,1]
//	OPbiimp       equivalence             [1,0,0,1]
//	OPdiff        set difference          [0,0,1,0]
//	OPless        less than               [0,1,0,0]
//	OPinvimp      reverse implication     [1,0,1,1]
//
// The result is not referenced; use AddRef to keep it alive across operations
// that may trigger a garbage collection.
func (m *Manager) Apply(left Edge, right Edge, op Operator) Edge {
	if err := m.checkptr(left); err != nil {
		return m.seterror(err, "wrong operand in call to Apply %s(left: %s, right: ...)", op, left)
	}
	if err := m.checkptr(right); err != nil {
		return m.seterror(err, "wrong operand in call to Apply %s(left: ..., right: %s)", op, right)
	}
	if op < OPand || op > OPinvimp {
		return m.seterror(ErrOperator, "operator %d in call to Apply", op)
	}
	base, l, r, neg := op.kernel(left, right)
	m.initref()
	m.pushref(left)
	m.pushref(right)
	res := m.apply(base, l, r)
	m.popref(2)
	if res == EdgeNull {
		return EdgeNull
	}
	return res.notif(neg)
}

func (m *Manager) apply(op Operator, left, right Edge) Edge {
	switch op {
	case OPand:
		switch {
		case left == right:
			return left
		case left == right.Not(), left == Zero, right == Zero:
			return Zero
		case left == One:
			return right
		case right == One:
			return left
		}
	case OPor:
		switch {
		case left == right:
			return left
		case left == right.Not(), left == One, right == One:
			return One
		case left == Zero:
			return right
		case right == Zero:
			return left
		}
	case OPxor:
		switch {
		case left == right:
			return Zero
		case left == right.Not():
			return One
		case left == Zero:
			return right
		case right == Zero:
			return left
		case left == One:
			return right.Not()
		case right == One:
			return left.Not()
		}
	}
	// xor commutes with negation, so we only store results for regular
	// operands: xor(!f, g) == !xor(f, g)
	neg := false
	if op == OPxor {
		neg = left.IsComplement() != right.IsComplement()
		left, right = left.Regular(), right.Regular()
	}
	if res := m.matchapply(op, left, right); res != EdgeNull {
		return res.notif(neg)
	}
	level := min(m.level(left), m.level(right))
	lt, le := m.cofactors(left, level)
	rt, re := m.cofactors(right, level)
	t := m.pushref(m.apply(op, lt, rt))
	e := m.pushref(m.apply(op, le, re))
	if t == EdgeNull || e == EdgeNull {
		m.popref(2)
		return EdgeNull
	}
	res, err := m.makenode(level, t, e)
	m.popref(2)
	if err != nil {
		return m.seterror(err, "node allocation in %s", op)
	}
	return m.setapply(op, left, right, res).notif(neg)
}

// Ite, short for if-then-else operator, computes the BDD for the expression [(f
// /\ g) \/ (not f /\ h)] more efficiently than doing the three operations
// separately.
func (m *Manager) Ite(f, g, h Edge) Edge {
	if err := m.checkptr(f); err != nil {
		return m.seterror(err, "wrong operand in call to Ite (f: %s)", f)
	}
	if err := m.checkptr(g); err != nil {
		return m.seterror(err, "wrong operand in call to Ite (g: %s)", g)
	}
	if err := m.checkptr(h); err != nil {
		return m.seterror(err, "wrong operand in call to Ite (h: %s)", h)
	}
	m.initref()
	m.pushref(f)
	m.pushref(g)
	m.pushref(h)
	res := m.ite(f, g, h)
	m.popref(3)
	return res
}

func (m *Manager) ite(f, g, h Edge) Edge {
	// the condition is always regular
	if f.IsComplement() {
		f, g, h = f.Not(), h, g
	}
	// replace the branches that are equal to the condition by a constant
	switch {
	case g == f:
		g = One
	case g == f.Not():
		g = Zero
	}
	switch {
	case h == f:
		h = Zero
	case h == f.Not():
		h = One
	}
	switch {
	case f == One:
		return g
	case g == h:
		return g
	case g == One && h == Zero:
		return f
	case g == Zero && h == One:
		return f.Not()
	}
	// the then branch is always regular and the complement moves to the result
	neg := g.IsComplement()
	if neg {
		g, h = g.Not(), h.Not()
	}
	if res := m.matchite(f, g, h); res != EdgeNull {
		return res.notif(neg)
	}
	level := min(m.level(f), m.level(g), m.level(h))
	ft, fe := m.cofactors(f, level)
	gt, ge := m.cofactors(g, level)
	ht, he := m.cofactors(h, level)
	t := m.pushref(m.ite(ft, gt, ht))
	e := m.pushref(m.ite(fe, ge, he))
	if t == EdgeNull || e == EdgeNull {
		m.popref(2)
		return EdgeNull
	}
	res, err := m.makenode(level, t, e)
	m.popref(2)
	if err != nil {
		return m.seterror(err, "node allocation in ite")
	}
	return m.setite(f, g, h, res).notif(neg)
}

// Exist returns the existential quantification of f for the variables in
// varset, where varset is a cube built with a method such as Makeset. We return
// EdgeNull and set the error flag of the manager if there is an error.
func (m *Manager) Exist(f, varset Edge) Edge {
	if err := m.checkptr(f); err != nil {
		return m.seterror(err, "wrong operand in call to Exist (f: %s)", f)
	}
	if err := m.checkptr(varset); err != nil {
		return m.seterror(err, "wrong varset in call to Exist (%s)", varset)
	}
	if err := m.checkcube(varset); err != nil {
		return m.seterror(err, "call to Exist")
	}
	m.initref()
	m.pushref(f)
	m.pushref(varset)
	res := m.exist(f, varset)
	m.popref(2)
	return res
}

// checkcube returns an error if e is not a conjunction of positive variables.
func (m *Manager) checkcube(e Edge) error {
	if e == Zero {
		return errors.Wrap(ErrVarset, "constant false")
	}
	for ; e != One; e = m.nodes[e.index()].then {
		if e.IsComplement() || m.nodes[e.index()].els != Zero {
			return errors.Wrapf(ErrVarset, "node %s", e)
		}
	}
	return nil
}

func (m *Manager) exist(f, cube Edge) Edge {
	if f.IsConstant() {
		return f
	}
	level := m.level(f)
	// we skip the variables that are above the root of f
	for cube != One && m.level(cube) < level {
		cube = m.nodes[cube.index()].then
	}
	if cube == One {
		return f
	}
	if res := m.matchquant(f, cube); res != EdgeNull {
		return res
	}
	ft, fe := m.cofactors(f, level)
	next := cube
	if m.level(cube) == level {
		next = m.nodes[cube.index()].then
	}
	t := m.pushref(m.exist(ft, next))
	e := m.pushref(m.exist(fe, next))
	if t == EdgeNull || e == EdgeNull {
		m.popref(2)
		return EdgeNull
	}
	var res Edge
	if next != cube {
		res = m.apply(OPor, t, e)
	} else {
		var err error
		if res, err = m.makenode(level, t, e); err != nil {
			m.popref(2)
			return m.seterror(err, "node allocation in exist")
		}
	}
	m.popref(2)
	if res == EdgeNull {
		return EdgeNull
	}
	return m.setquant(f, cube, res)
}

// Eval returns the value of f for the assignment values, where values[i] is
// the value of variable i. It returns false and sets the error status of the
// manager if values does not have Varnum() entries.
func (m *Manager) Eval(f Edge, values []bool) bool {
	if err := m.checkptr(f); err != nil {
		m.seterror(err, "call to Eval")
		return false
	}
	if len(values) != m.varnum {
		m.seterror(ErrVarIndex, "%d values for %d variables in call to Eval", len(values), m.varnum)
		return false
	}
	for !f.IsConstant() {
		if values[m.level(f)] {
			f = m.Then(f)
		} else {
			f = m.Else(f)
		}
	}
	return f == One
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by f, over all the Varnum() variables. We return a result
// using arbitrary-precision arithmetic to avoid possible overflows. The result
// is zero (and we set the error flag of the manager) if there is an error.
func (m *Manager) Satcount(f Edge) *big.Int {
	res := big.NewInt(0)
	if err := m.checkptr(f); err != nil {
		m.seterror(err, "call to Satcount")
		return res
	}
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, int(m.level(f)), 1)
	satc := make(map[Edge]*big.Int)
	return res.Mul(res, m.satcount(f, satc))
}

// satcount returns the number of models of f over the variables with level
// greater or equal to the one of f.
func (m *Manager) satcount(f Edge, satc map[Edge]*big.Int) *big.Int {
	switch f {
	case One:
		return big.NewInt(1)
	case Zero:
		return big.NewInt(0)
	}
	// we use satc to memoize the value of satcount for each nodes
	if res, ok := satc[f]; ok {
		return res
	}
	level := m.level(f)
	res := big.NewInt(0)
	if f.IsComplement() {
		// models of !f are the assignments that are not models of f
		res.SetBit(res, int(int32(m.varnum)-level), 1)
		res.Sub(res, m.satcount(f.Not(), satc))
		satc[f] = res
		return res
	}
	for _, child := range [2]Edge{m.nodes[f.index()].then, m.nodes[f.index()].els} {
		two := big.NewInt(0)
		two.SetBit(two, int(m.level(child)-level-1), 1)
		res.Add(res, two.Mul(two, m.satcount(child, satc)))
	}
	satc[f] = res
	return res
}

// Allsat Iterates through all legal variable assignments for f and calls the
// function fn on each of them. We pass an int slice of length varnum to fn
// where each entry is either  0 if the variable is false, 1 if it is true, and
// -1 if it is a don't care. We stop and return an error if fn returns an error
// at some point.
//
// The following is an example of a callback handler that counts the number of
// possible assignments (such that we do not count don't care twice):
//
//	acc := new(int)
//	m.Allsat(f, func(varset []int) error {
//		*acc++
//		return nil
//	})
func (m *Manager) Allsat(f Edge, fn func([]int) error) error {
	if err := m.checkptr(f); err != nil {
		return errors.Wrap(err, "call to Allsat")
	}
	prof := make([]int, m.varnum)
	for k := range prof {
		prof[k] = -1
	}
	// the function does not create new nodes, so we do not need to take care of
	// possible resizing
	return m.allsat(f, prof, fn)
}

func (m *Manager) allsat(f Edge, prof []int, fn func([]int) error) error {
	switch f {
	case One:
		return fn(prof)
	case Zero:
		return nil
	}
	level := m.level(f)
	t, e := m.cofactors(f, level)
	for _, branch := range [2]struct {
		val  int
		next Edge
	}{{0, e}, {1, t}} {
		if branch.next == Zero {
			continue
		}
		prof[level] = branch.val
		for v := m.level(branch.next) - 1; v > level; v-- {
			prof[v] = -1
		}
		if err := m.allsat(branch.next, prof, fn); err != nil {
			return err
		}
	}
	prof[level] = -1
	return nil
}

// Allnodes applies function fn over all the nodes accessible from the edges in
// the sequence roots..., or all the active nodes if roots is absent. The
// parameters to function fn are the index, level, and the edges of the then
// and else successors of each node. The terminal node, with index 1, is
// visited like the other nodes; its successors are both One.
//
// The order in which nodes are visited is not specified. The behavior is very
// similar to the one of Allsat. In particular, we stop the computation and
// return an error if fn returns an error at some point.
func (m *Manager) Allnodes(fn func(id, level int, then, els Edge) error, roots ...Edge) error {
	for _, r := range roots {
		if err := m.checkptr(r); err != nil {
			return errors.Wrap(err, "call to Allnodes")
		}
	}
	if len(roots) == 0 {
		for k := 1; k < len(m.nodes); k++ {
			n := m.nodes[k]
			if n.then == EdgeNull {
				continue
			}
			if err := fn(k, int(n.level&^_MARK), n.then, n.els); err != nil {
				return err
			}
		}
		return nil
	}
	for _, k := range m.reachable(roots) {
		n := m.nodes[k]
		if err := fn(k, int(n.level&^_MARK), n.then, n.els); err != nil {
			return err
		}
	}
	return nil
}

// reachable returns the indices of all the nodes reachable from roots, in post
// order (children before parents). The terminal, if reached, comes first.
func (m *Manager) reachable(roots []Edge) []int {
	visited := make(map[int]bool)
	res := []int{}
	var visit func(k int)
	visit = func(k int) {
		if visited[k] {
			return
		}
		visited[k] = true
		if k > 1 {
			visit(m.nodes[k].then.index())
			visit(m.nodes[k].els.index())
		}
		res = append(res, k)
	}
	for _, r := range roots {
		visit(r.index())
	}
	return res
}

// DagSize returns the number of distinct nodes reachable from the roots,
// including the terminal node. It returns -1 and sets the error status of the
// manager on an invalid edge.
func (m *Manager) DagSize(roots ...Edge) int {
	for _, r := range roots {
		if err := m.checkptr(r); err != nil {
			m.seterror(err, "call to DagSize")
			return -1
		}
	}
	return len(m.reachable(roots))
}

// Support returns the cube of all the variables that f depends on.
func (m *Manager) Support(f Edge) Edge {
	if err := m.checkptr(f); err != nil {
		return m.seterror(err, "call to Support")
	}
	support := make([]bool, m.varnum)
	for _, k := range m.reachable([]Edge{f}) {
		if k > 1 {
			support[m.nodes[k].level&^_MARK] = true
		}
	}
	// we build the cube bottom-up so that each step adds a node on top
	m.initref()
	res := One
	for v := m.varnum - 1; v >= 0; v-- {
		if !support[v] {
			continue
		}
		m.pushref(res)
		tmp, err := m.makenode(int32(v), res, Zero)
		m.popref(1)
		if err != nil {
			return m.seterror(err, "call to Support")
		}
		res = tmp
	}
	return res
}
