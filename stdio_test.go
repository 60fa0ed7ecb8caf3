// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	m := newManager(t, 3, Nodesize(100))
	x0 := m.Ithvar(0)
	assert.Equal(t, "True", m.Print(One))
	assert.Equal(t, "False", m.Print(Zero))
	assert.Equal(t, "(2[0] ? True : False)", m.Print(x0))
	assert.Equal(t, "!(2[0] ? True : False)", m.Print(x0.Not()))
	assert.True(t, strings.HasPrefix(m.Print(EdgeNull), "Error"))
}

func TestPrintSet(t *testing.T) {
	m := newManager(t, 3, Nodesize(100))
	f := m.And(m.Ithvar(0), m.Ithvar(1))

	var buf bytes.Buffer
	require.NoError(t, m.PrintSet(&buf, f))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, m.DagSize(f)-1)
	assert.True(t, strings.HasPrefix(lines[0], "3 "), lines[0])

	// all the nodes: the three variables and f
	buf.Reset()
	require.NoError(t, m.PrintSet(&buf))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 4)

	err := m.PrintSet(&buf, EdgeNull)
	assert.True(t, errors.Is(err, ErrInvalidEdge))
}

func TestStats(t *testing.T) {
	m, err := New(3, Logger(quietLogger()))
	require.NoError(t, err)
	m.Xor(m.Ithvar(0), m.Ithvar(2))
	stats := m.Stats()
	assert.Contains(t, stats, "Varnum:     3\n")
	assert.Contains(t, stats, "Operator Miss:  1\n")
	require.NoError(t, m.Quit())
	assert.Equal(t, "manager has been torn down", m.Stats())
	assert.True(t, errors.Is(m.Quit(), ErrQuit))
	assert.Zero(t, m.LiveNodes())
}

func TestSetCacheratio(t *testing.T) {
	m := newManager(t, 3, Nodesize(1000))
	assert.Error(t, m.SetCacheratio(0))
	require.NoError(t, m.SetCacheratio(50))
	assert.Equal(t, primeGTE(len(m.nodes)/2), len(m.applycache.table))
	assert.Equal(t, primeGTE(len(m.nodes)/2), len(m.replacecache.table))
	// results are still computed correctly after the caches were resized
	f := m.Or(m.Ithvar(0), m.Ithvar(1))
	assert.True(t, m.Eval(f, []bool{false, true, false}))
	assert.False(t, m.Eval(f, []bool{false, false, true}))
}
