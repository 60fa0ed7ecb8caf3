// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// And returns the logical 'and' of a sequence of diagrams. The conjunction of
// an empty sequence is True.
func (m *Manager) And(n ...Edge) Edge {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return One
	}
	tail := m.And(n[1:]...)
	if tail == EdgeNull {
		return EdgeNull
	}
	return m.Apply(n[0], tail, OPand)
}

// Or returns the logical 'or' of a sequence of diagrams. The disjunction of an
// empty sequence is False.
func (m *Manager) Or(n ...Edge) Edge {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return Zero
	}
	tail := m.Or(n[1:]...)
	if tail == EdgeNull {
		return EdgeNull
	}
	return m.Apply(n[0], tail, OPor)
}

// Xor returns the exclusive or of two diagrams.
func (m *Manager) Xor(n1, n2 Edge) Edge {
	return m.Apply(n1, n2, OPxor)
}

// Imp returns the logical 'implication' between two diagrams.
func (m *Manager) Imp(n1, n2 Edge) Edge {
	return m.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two diagrams.
func (m *Manager) Equiv(n1, n2 Edge) Edge {
	return m.Apply(n1, n2, OPbiimp)
}

// Equal tests equivalence between two diagrams of the same manager. Since
// diagrams are canonical, this is a simple comparison of edges.
func (m *Manager) Equal(n1, n2 Edge) bool {
	return n1 == n2
}

// AndExist returns the "relational composition" of two diagrams with respect to
// varset, meaning the result of (Exists varset . n1 & n2).
func (m *Manager) AndExist(varset, n1, n2 Edge) Edge {
	conj := m.AddRef(m.Apply(n1, n2, OPand))
	if conj == EdgeNull {
		return EdgeNull
	}
	res := m.Exist(conj, varset)
	if res == EdgeNull {
		m.DelRef(conj)
		return EdgeNull
	}
	// res may be a descendant of conj, so we keep it alive while releasing conj
	m.incref(res)
	m.DelRef(conj)
	m.deref(res)
	return res
}
