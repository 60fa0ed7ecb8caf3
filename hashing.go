// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Hash functions

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR64(uint64(c), _PAIR(a, b, len), uint64(len)))
}

// _PAIR is a mapping function that maps (bijectively) a pair of integer (a, b)
// into a unique integer, modulo len.
func _PAIR(a, b, len int) uint64 {
	return (((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len)
}

func _PAIR64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}

// ************************************************************

// The hash function for nodes is #(level, then, else)

func (m *Manager) ptrhash(n int) int {
	return _TRIPLE(int(m.nodes[n].level&^_MARK), int(m.nodes[n].then), int(m.nodes[n].els), len(m.nodes))
}

func (m *Manager) nodehash(level int32, t, e Edge) int {
	return _TRIPLE(int(level), int(t), int(e), len(m.nodes))
}
