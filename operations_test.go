// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

func TestApplyOperators(t *testing.T) {
	// we use a large table so that no garbage collection occurs
	m := newManager(t, 2, Nodesize(1000))
	x0, x1 := m.Ithvar(0), m.Ithvar(1)
	for op := OPand; op <= OPinvimp; op++ {
		r := m.Apply(x0, x1, op)
		require.NotEqual(t, EdgeNull, r, "Apply(%s)", op)
		for a := 0; a < 4; a++ {
			vs := assignment(2, a)
			assert.Equalf(t, op.Eval(vs[0], vs[1]), m.Eval(r, vs), "%s on %v", op, vs)
		}
		// constant operands
		for _, a := range []bool{false, true} {
			for _, b := range []bool{false, true} {
				assert.Equal(t, m.From(op.Eval(a, b)), m.Apply(m.From(a), m.From(b), op), "%s(%v, %v)", op, a, b)
			}
		}
		// a second call is answered by the cache
		assert.Equal(t, r, m.Apply(x0, x1, op))
	}
	assert.Equal(t, EdgeNull, m.Apply(x0, x1, Operator(42)))
	assert.True(t, errors.Is(m.Err(), ErrOperator))
	m.ClearError()
	assert.Equal(t, EdgeNull, m.Apply(x0, EdgeNull, OPand))
	assert.True(t, errors.Is(m.Err(), ErrInvalidEdge))
}

func TestCanonicity(t *testing.T) {
	m := newManager(t, 4, Nodesize(1000))
	x := []Edge{m.Ithvar(0), m.Ithvar(1), m.Ithvar(2), m.Ithvar(3)}
	f := m.Or(m.And(x[0], x[1]), m.And(x[2], x[3].Not()))

	// idempotence and complement
	assert.Equal(t, f, m.Not(m.Not(f)))
	assert.Equal(t, f, m.And(f, f))
	assert.Equal(t, f, m.Or(f, f))
	assert.Equal(t, Zero, m.And(f, m.Not(f)))
	assert.Equal(t, One, m.Or(f, m.Not(f)))
	assert.Equal(t, Zero, m.Xor(f, f))
	assert.Equal(t, One, m.Xor(f, m.Not(f)))
	assert.Equal(t, One, m.Equiv(f, f))
	assert.Equal(t, One, m.Imp(Zero, f))

	// commutativity, associativity and De Morgan
	assert.Equal(t, m.And(x[0], x[1]), m.And(x[1], x[0]))
	assert.Equal(t, m.And(x[0], m.And(x[1], x[2])), m.And(m.And(x[0], x[1]), x[2]))
	assert.Equal(t, f, m.Not(m.And(m.Or(x[0].Not(), x[1].Not()), m.Or(x[2].Not(), x[3]))))
	assert.Equal(t, m.Xor(x[0], x[1]), m.Xor(x[1].Not(), x[0].Not()))
	assert.Equal(t, m.Xor(x[0], x[1]).Not(), m.Xor(x[0].Not(), x[1]))
	assert.True(t, m.Equal(m.Apply(x[0], x[1], OPnand), m.Not(m.And(x[0], x[1]))))

	// the negation shares all the nodes of f
	live := m.LiveNodes()
	g := m.Not(f)
	assert.Equal(t, live, m.LiveNodes())
	assert.Equal(t, m.DagSize(f), m.DagSize(f, g))

	// every node has a regular then branch and distinct children
	err := m.Allnodes(func(id, level int, then, els Edge) error {
		if id < 2 {
			return nil
		}
		if then.IsComplement() || then == els {
			return errors.Errorf("node %d is not canonical", id)
		}
		return nil
	}, f)
	assert.NoError(t, err)
	assert.False(t, m.Errored())
}

func TestIte(t *testing.T) {
	m := newManager(t, 4, Nodesize(1000))
	n1 := m.Makeset([]int{0, 2, 3})
	n2 := m.Makeset([]int{0, 3})
	actual := m.Equiv(m.Ite(n1, n2, m.Not(n2)), m.Or(m.And(n1, n2), m.And(m.Not(n1), m.Not(n2))))
	assert.Equal(t, One, actual, "ite(f,g,h) <=> (f and g) or (-f and h)")

	x0, x1, x2 := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2)
	var iteTests = []struct {
		f, g, h  Edge
		expected Edge
	}{
		{One, x1, x2, x1},
		{Zero, x1, x2, x2},
		{x0, x1, x1, x1},
		{x0, One, Zero, x0},
		{x0, Zero, One, x0.Not()},
		{x0, One, x1, m.Or(x0, x1)},
		{x0, x1, Zero, m.And(x0, x1)},
		{x0.Not(), x1, x2, m.Or(m.And(x0.Not(), x1), m.And(x0, x2))},
		{x2, x0, x1.Not(), m.Or(m.And(x2, x0), m.And(x2.Not(), x1.Not()))},
		{x1, x0, x0.Not(), m.Equiv(x1, x0)},
	}
	for _, tt := range iteTests {
		assert.Equal(t, tt.expected, m.Ite(tt.f, tt.g, tt.h), "Ite(%s, %s, %s)", tt.f, tt.g, tt.h)
	}
}

func TestExist(t *testing.T) {
	m := newManager(t, 4, Nodesize(1000))
	x0, x1, x2, x3 := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2), m.Ithvar(3)
	f := m.Or(m.And(x0, x1), m.And(x2, x3.Not()))

	assert.Equal(t, f, m.Exist(f, One))
	assert.Equal(t, m.Or(x1, m.And(x2, x3.Not())), m.Exist(f, m.Makeset([]int{0})))
	assert.Equal(t, m.Or(m.And(x0, x1), x2), m.Exist(f, m.Makeset([]int{3})))
	assert.Equal(t, One, m.Exist(f, m.Makeset([]int{0, 1, 2, 3})))
	assert.Equal(t, m.Or(x0, x2), m.Exist(f, m.Makeset([]int{1, 3})))
	assert.Equal(t, One, m.Exist(m.Not(f), m.Makeset([]int{0, 2})))
	assert.Equal(t, m.Exist(m.And(f, x1), m.Makeset([]int{1, 2})), m.AndExist(m.Makeset([]int{1, 2}), f, x1))

	assert.Equal(t, EdgeNull, m.Exist(f, m.Or(x0, x1)))
	assert.True(t, errors.Is(m.Err(), ErrVarset))
}

func TestReplace(t *testing.T) {
	m := newManager(t, 4, Nodesize(1000))
	x0, x1, x2, x3 := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2), m.Ithvar(3)

	swap, err := m.NewReplacer([]int{0, 1}, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, m.And(x1, x0.Not()), m.Replace(m.And(x0, x1.Not()), swap))
	assert.Equal(t, m.Or(x1, m.And(x0, x2)), m.Replace(m.Or(x0, m.And(x1, x2)), swap))

	down, err := m.NewReplacer([]int{0}, []int{3})
	require.NoError(t, err)
	f := m.Or(m.And(x0, x1), x2.Not())
	assert.Equal(t, m.Or(m.And(x3, x1), x2.Not()), m.Replace(f, down))
	assert.Equal(t, m.Not(m.Or(m.And(x3, x1), x2.Not())), m.Replace(m.Not(f), down))
	// the result is cached per replacer
	assert.Equal(t, x1, m.Replace(x0, swap))
	assert.Equal(t, x3, m.Replace(x0, down))

	_, err = m.NewReplacer([]int{0, 1}, []int{1})
	assert.Error(t, err)
	_, err = m.NewReplacer([]int{0, 0}, []int{1, 2})
	assert.True(t, errors.Is(err, ErrVarset))
	_, err = m.NewReplacer([]int{4}, []int{1})
	assert.True(t, errors.Is(err, ErrVarIndex))
}

func TestSatcount(t *testing.T) {
	m := newManager(t, 3, Nodesize(1000))
	x0, x1, x2 := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2)
	var satcountTests = []struct {
		f        Edge
		expected int64
	}{
		{One, 8},
		{Zero, 0},
		{x0, 4},
		{x0.Not(), 4},
		{x2, 4},
		{m.And(x0, x1), 2},
		{m.Xor(x0, x2), 4},
		{m.Or(x0, x1, x2), 7},
		{m.Not(m.Or(x0, x1, x2)), 1},
		{m.Or(m.And(x0, x1.Not()), x2), 5},
		{m.Imp(x1, m.And(x0, x2.Not())), 5},
	}
	for _, tt := range satcountTests {
		assert.Equal(t, 0, big.NewInt(tt.expected).Cmp(m.Satcount(tt.f)), "Satcount(%s): expected %d, actual %s", tt.f, tt.expected, m.Satcount(tt.f))
	}
}

func TestSets(t *testing.T) {
	m := newManager(t, 5, Nodesize(1000))
	s := m.Makeset([]int{0, 2, 3})
	if diff := cmp.Diff([]int{0, 2, 3}, m.Scanset(s)); diff != "" {
		t.Errorf("Scanset(Makeset) mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, m.Scanset(One))
	assert.Equal(t, One, m.Makeset(nil))
	assert.Equal(t, EdgeNull, m.Makeset([]int{1, 7}))
	m.ClearError()

	x0, x2, x4 := m.Ithvar(0), m.Ithvar(2), m.Ithvar(4)
	f := m.Or(m.And(x0, x2), m.And(x2.Not(), x4))
	if diff := cmp.Diff([]int{0, 2, 4}, m.Scanset(m.Support(f))); diff != "" {
		t.Errorf("Support mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, One, m.Support(Zero))
	assert.Equal(t, m.Support(f), m.Support(m.Not(f)))
}

func TestDagSize(t *testing.T) {
	m := newManager(t, 3, Nodesize(1000))
	x0, x1, x2 := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2)
	assert.Equal(t, 1, m.DagSize(One))
	assert.Equal(t, 1, m.DagSize(Zero))
	assert.Equal(t, 2, m.DagSize(x0))
	assert.Equal(t, 3, m.DagSize(m.And(x0, x1)))
	// with complement edges, xor needs a single node per variable
	assert.Equal(t, 4, m.DagSize(m.Xor(m.Xor(x0, x1), x2)))
	assert.Equal(t, 3, m.DagSize(x0, x1.Not()))
	assert.Equal(t, -1, m.DagSize(EdgeNull))
	assert.True(t, errors.Is(m.Err(), ErrInvalidEdge))
}

//********************************************************************************************

// TestOperations implements the same tests than the bddtest program in the
// Buddy distribution. It uses function Allsat for checking that all assignments
// are detected. The manager starts small, so we hold every intermediate result.
func TestOperations(t *testing.T) {
	m := newManager(t, 4)
	varnum := 4

	check := func(x Edge) error {
		allsatBDD := m.AddRef(x)
		allsatSumBDD := Zero
		// Calculate whole set of asignments and remove all assignments
		// from original set
		err := m.Allsat(x, func(varset []int) error {
			y := One
			for k, v := range varset {
				switch v {
				case 0:
					keep(m, &y, m.And(y, m.NIthvar(k)))
				case 1:
					keep(m, &y, m.And(y, m.Ithvar(k)))
				}
			}
			// Sum up all assignments
			keep(m, &allsatSumBDD, m.Or(allsatSumBDD, y))
			// Remove assignment from initial set
			keep(m, &allsatBDD, m.Apply(allsatBDD, y, OPdiff))
			release(m, y)
			return nil
		})
		defer release(m, allsatBDD, allsatSumBDD)
		if err != nil {
			return err
		}
		// Now the summed set should be equal to the original set and the
		// subtracted set should be empty
		if !m.Equal(allsatSumBDD, x) {
			return errors.Errorf("AllSat sum is not the initial BDD")
		}
		if !m.Equal(allsatBDD, Zero) {
			return errors.Errorf("AllSat is not False")
		}
		return nil
	}

	a, b, c, d := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2), m.Ithvar(3)
	na, nb, nc, nd := m.NIthvar(0), m.NIthvar(1), m.NIthvar(2), m.NIthvar(3)

	assert.NoError(t, check(One))
	assert.NoError(t, check(Zero))

	for _, f := range []func() Edge{
		// a & b | !a & !b
		func() Edge { return m.Or(m.And(a, b), m.And(na, nb)) },
		// a & b | c & d
		func() Edge { return m.Or(m.And(a, b), m.And(c, d)) },
		// a & !b | a & !d | a & b & !c
		func() Edge { return m.Or(m.And(a, nb), m.And(a, nd), m.And(a, b, nc)) },
	} {
		x := m.AddRef(f())
		assert.NoError(t, check(x))
		release(m, x)
	}

	for i := 0; i < varnum; i++ {
		assert.NoError(t, check(m.Ithvar(i)))
		assert.NoError(t, check(m.NIthvar(i)))
	}

	set := One
	for i := 0; i < 50; i++ {
		v := rand.Intn(varnum)
		if rand.Intn(2) == 0 {
			keep(m, &set, m.And(set, m.Ithvar(v)))
		} else {
			keep(m, &set, m.Or(set, m.NIthvar(v)))
		}
		assert.NoError(t, check(set))
	}
	release(m, set)
	assert.False(t, m.Errored(), m.Error())
}

func TestAllsat(t *testing.T) {
	m := newManager(t, 3, Nodesize(1000))
	x0, x2 := m.Ithvar(0), m.Ithvar(2)
	var profiles [][]int
	err := m.Allsat(m.Or(x0, x2.Not()), func(p []int) error {
		profiles = append(profiles, append([]int(nil), p...))
		return nil
	})
	require.NoError(t, err)
	expected := [][]int{{0, -1, 0}, {1, -1, -1}}
	if diff := cmp.Diff(expected, profiles); diff != "" {
		t.Errorf("Allsat mismatch (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	err = m.Allsat(One, func(p []int) error { return stop })
	assert.Equal(t, stop, err)
	assert.NoError(t, m.Allsat(Zero, func(p []int) error { return stop }))
}

func TestEval(t *testing.T) {
	m := newManager(t, 3, Nodesize(1000))
	x0, x1, x2 := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2)
	f := m.Or(m.And(x0, x1.Not()), x2)
	for r := 0; r < 8; r++ {
		vs := assignment(3, r)
		assert.Equal(t, (vs[0] && !vs[1]) || vs[2], m.Eval(f, vs), "Eval(%v)", vs)
		assert.Equal(t, !((vs[0] && !vs[1]) || vs[2]), m.Eval(m.Not(f), vs), "Eval(%v)", vs)
	}
	assert.False(t, m.Eval(f, []bool{true}))
	assert.True(t, errors.Is(m.Err(), ErrVarIndex))
}
