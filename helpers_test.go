// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// quietLogger discards the logs of the managers built during tests.
func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newManager returns a manager with varnum variables that is torn down at the
// end of the test; the test fails if some nodes are still held at this point.
func newManager(t testing.TB, varnum int, options ...Option) *Manager {
	t.Helper()
	m, err := New(varnum, append([]Option{Logger(quietLogger())}, options...)...)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, m.Quit())
	})
	return m
}

// keep stores e in *acc, holding e and releasing the previous value of *acc.
func keep(m *Manager, acc *Edge, e Edge) {
	m.AddRef(e)
	m.DelRef(*acc)
	*acc = e
}

// release drops one hold on each edge.
func release(m *Manager, es ...Edge) {
	for _, e := range es {
		m.DelRef(e)
	}
}

// assignment returns the values of the n variables for minterm r, with
// variable 0 as the most significant bit.
func assignment(n, r int) []bool {
	vs := make([]bool, n)
	for k := range vs {
		vs[k] = (r>>(n-1-k))&1 == 1
	}
	return vs
}
