// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Operator describe the potential (binary) operations available on an Apply.
// Only OPand, OPxor and OPor have their own recursive kernel; the other ones
// are obtained from them by complementing the operands or the result, which
// costs nothing with complement edges.
type Operator int

const (
	OPand    Operator = iota // Boolean conjunction
	OPxor                    // Exclusive or
	OPor                     // Disjunction
	OPnand                   // Negation of and
	OPnor                    // Negation of or
	OPimp                    // Implication
	OPbiimp                  // Equivalence
	OPdiff                   // Difference
	OPless                   // Set difference
	OPinvimp                 // Reverse implication
)

var opnames = [...]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
}

func (op Operator) String() string {
	if op < OPand || op > OPinvimp {
		return "unknown"
	}
	return opnames[op]
}

var opres = [...][2][2]bool{
	//                00    01              10    11
	OPand:    {{false, false}, {false, true}}, // 0001
	OPxor:    {{false, true}, {true, false}},  // 0110
	OPor:     {{false, true}, {true, true}},   // 0111
	OPnand:   {{true, true}, {true, false}},   // 1110
	OPnor:    {{true, false}, {false, false}}, // 1000
	OPimp:    {{true, true}, {false, true}},   // 1101
	OPbiimp:  {{true, false}, {false, true}},  // 1001
	OPdiff:   {{false, false}, {true, false}}, // 0010
	OPless:   {{false, true}, {false, false}}, // 0100
	OPinvimp: {{true, false}, {true, true}},   // 1011
}

// Eval returns the value of "a op b".
func (op Operator) Eval(a, b bool) bool {
	i, j := 0, 0
	if a {
		i = 1
	}
	if b {
		j = 1
	}
	return opres[op][i][j]
}

// kernel rewrites "f op g" into "base(l, r)", negated when neg is true, where
// base is one of OPand, OPxor or OPor.
func (op Operator) kernel(f, g Edge) (base Operator, l, r Edge, neg bool) {
	switch op {
	case OPnand:
		return OPand, f, g, true
	case OPnor:
		return OPor, f, g, true
	case OPimp:
		return OPor, f.Not(), g, false
	case OPbiimp:
		return OPxor, f, g, true
	case OPdiff:
		return OPand, f, g.Not(), false
	case OPless:
		return OPand, f.Not(), g, false
	case OPinvimp:
		return OPor, f, g.Not(), false
	}
	return op, f, g, false
}
