// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// Edge is a reference to a node of a Manager together with a polarity bit. The
// lowest bit of an Edge is set when the edge is complemented, meaning that it
// denotes the negation of the function rooted at the node; the other bits give
// the index of the node in the node table.
//
// There is only one terminal node, at index 1, standing for the constant true.
// The constant false is the complement of true. Index 0 is never used for a
// node, so the zero value of Edge, EdgeNull, can be used to signal an error.
type Edge uint32

const (
	// EdgeNull is returned by operations that fail.
	EdgeNull Edge = 0
	// One is the edge for the constant function true.
	One Edge = 2
	// Zero is the edge for the constant function false, the complement of One.
	Zero Edge = 3
)

// mkedge returns the edge pointing to node index n, complemented if neg.
func mkedge(n int, neg bool) Edge {
	if neg {
		return Edge(n<<1) | 1
	}
	return Edge(n << 1)
}

// index returns the position of the node referenced by e in the node table.
func (e Edge) index() int {
	return int(e >> 1)
}

// Not returns the negation of e. It never allocates nodes.
func (e Edge) Not() Edge {
	return e ^ 1
}

// Regular returns e stripped from its complement bit.
func (e Edge) Regular() Edge {
	return e &^ 1
}

// IsComplement reports whether e is a complemented edge.
func (e Edge) IsComplement() bool {
	return e&1 != 0
}

// IsConstant reports whether e is one of the two constants.
func (e Edge) IsConstant() bool {
	return e == One || e == Zero
}

// notif returns the complement of e when neg is true.
func (e Edge) notif(neg bool) Edge {
	if neg {
		return e ^ 1
	}
	return e
}

func (e Edge) String() string {
	switch e {
	case EdgeNull:
		return "null"
	case One:
		return "True"
	case Zero:
		return "False"
	}
	if e.IsComplement() {
		return fmt.Sprintf("!%d", e.index())
	}
	return fmt.Sprintf("%d", e.index())
}
