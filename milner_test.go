// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// milnerSystem is an example of using BDD for state space computation. It is
// adapted from the milner program distributed with BuDDy. It computes the
// number of reachable states of a system composed of N cyclers, with an initial
// BDD size of size. For this system, we have an analytical formula to compute
// the size of the state space.
func milnerSystem(t testing.TB, size, N int, fast bool) *big.Int {
	m := newManager(t, N*6, Nodesize(size), Cachesize(size/4), Cacheratio(25))
	c := make([]Edge, N)
	cp := make([]Edge, N)
	tv := make([]Edge, N)
	tp := make([]Edge, N)
	h := make([]Edge, N)
	hp := make([]Edge, N)
	for n := 0; n < N; n++ {
		c[n] = m.Ithvar(n * 6)
		cp[n] = m.Ithvar(n*6 + 1)
		tv[n] = m.Ithvar(n*6 + 2)
		tp[n] = m.Ithvar(n*6 + 3)
		h[n] = m.Ithvar(n*6 + 4)
		hp[n] = m.Ithvar(n*6 + 5)
	}

	nvar := make([]int, N*3)
	pvar := make([]int, N*3)
	for n := 0; n < N*3; n++ {
		nvar[n] = n * 2   // normal variables
		pvar[n] = n*2 + 1 // primed variables
	}
	replacer, err := m.NewReplacer(pvar, nvar)
	require.NoError(t, err)

	// We create a BDD for the initial state of Milner's cyclers.
	I := m.AddRef(m.And(c[0], m.Not(h[0]), m.Not(tv[0])))
	for i := 1; i < N; i++ {
		keep(m, &I, m.And(I, m.Not(c[i]), m.Not(h[i]), m.Not(tv[i])))
	}

	// A builds a (held) BDD expressing that all other variables than 'z' are
	// unchanged.
	A := func(x, y []Edge, z int) Edge {
		res := One
		for i := 0; i < N; i++ {
			if i != z {
				keep(m, &res, m.And(res, m.Equiv(x[i], y[i])))
			}
		}
		return res
	}

	// Now we compute the monolithic transition relation
	T := Zero
	for i := 0; i < N; i++ {
		a1, a2, a3 := A(c, cp, i), A(tv, tp, i), A(h, hp, i)
		P1 := m.AddRef(m.And(c[i], m.Not(cp[i]), tp[i], m.Not(tv[i]), hp[i], a1, a2, a3))
		release(m, a1, a2, a3)

		a1, a2, a3 = A(c, cp, (i+1)%N), A(h, hp, i), A(tv, tp, N)
		P2 := m.AddRef(m.And(h[i], m.Not(hp[i]), cp[(i+1)%N], a1, a2, a3))
		release(m, a1, a2, a3)

		a1, a2, a3 = A(tv, tp, i), A(h, hp, N), A(c, cp, N)
		E := m.AddRef(m.And(tv[i], m.Not(tp[i]), a1, a2, a3))
		release(m, a1, a2, a3)

		keep(m, &T, m.Or(T, P1, P2, E))
		release(m, P1, P2, E)
	}

	// We compute the reachable states.
	normvar := m.AddRef(m.Makeset(nvar))
	R := I
	for {
		next := One
		if fast {
			keep(m, &next, m.AndExist(normvar, R, T))
		} else {
			keep(m, &next, m.And(R, T))
			keep(m, &next, m.Exist(next, normvar))
		}
		keep(m, &next, m.Replace(next, replacer))
		keep(m, &next, m.Or(next, R))
		if next == R {
			release(m, next)
			break
		}
		release(m, R)
		R = next
	}
	require.False(t, m.Errored(), m.Error())
	res := m.Satcount(R)
	release(m, R, T, normvar)
	return res
}

// milnerStates is the number of solutions of the reachability set of the
// system with N cyclers, over the 6N variables of the manager.
func milnerStates(N int) *big.Int {
	expected := big.NewInt(int64(N))
	pow := big.NewInt(0)
	pow.SetBit(pow, 4*N+1, 1)
	return expected.Mul(expected, pow)
}

func TestMilnerSmall(t *testing.T) {
	for _, N := range []int{4, 5, 7} {
		// we choose a small size to stress test garbage collection
		fast := milnerSystem(t, 100, N, true)
		slow := milnerSystem(t, 100, N, false)
		expected := milnerStates(N)
		assert.Zero(t, expected.Cmp(fast), "Milner(%d) (fast), expected %s, actual %s", N, expected, fast)
		assert.Zero(t, expected.Cmp(slow), "Milner(%d) (slow), expected %s, actual %s", N, expected, slow)
	}
}

func TestMilner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large state spaces in short mode")
	}
	for _, N := range []int{16, 20, 30} {
		actual := milnerSystem(t, 10000, N, true)
		expected := milnerStates(N)
		assert.Zero(t, expected.Cmp(actual), "Milner(%d), expected %s, actual %s", N, expected, actual)
	}
}

func BenchmarkMilner(b *testing.B) {
	for n := 0; n < b.N; n++ {
		milnerSystem(b, 500000, 100, true)
	}
}
