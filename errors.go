// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"github.com/pkg/errors"
)

// Errors reported by the package. They are always wrapped with some context,
// so use errors.Is to test for them.
var (
	ErrOrdering        = errors.New("variable ordering violation")
	ErrVarIndex        = errors.New("variable index out of range")
	ErrInvalidEdge     = errors.New("invalid edge")
	ErrRefcount        = errors.New("reference count underflow")
	ErrMemory          = errors.New("unable to free memory or resize node table")
	ErrTruthTableSize  = errors.New("truth table size mismatch")
	ErrTruthTableDigit = errors.New("invalid truth table digit")
	ErrNameCount       = errors.New("name count mismatch")
	ErrLiveReferences  = errors.New("live references at teardown")
	ErrQuit            = errors.New("manager has been torn down")
	ErrOperator        = errors.New("unsupported operator")
	ErrVarset          = errors.New("not a set of variables")
	ErrName            = errors.New("invalid signal name")
)

// Error returns the error status of the manager. We return an empty string if
// there are no errors.
func (m *Manager) Error() string {
	if m.error == nil {
		return ""
	}
	return m.error.Error()
}

// Errored returns true if there was an error during a computation.
func (m *Manager) Errored() bool {
	return m.error != nil
}

// Err returns the first error recorded by an Edge returning operation (chained
// with the ones that followed), or nil.
func (m *Manager) Err() error {
	return m.error
}

// ClearError resets the error status of the manager.
func (m *Manager) ClearError() {
	m.error = nil
}

// seterror records err, wrapped with the given context, and always returns
// EdgeNull so that it can be used directly in return statements.
func (m *Manager) seterror(err error, format string, a ...interface{}) Edge {
	werr := errors.Wrapf(err, format, a...)
	if m.error != nil {
		m.error = errors.Wrap(m.error, werr.Error())
	} else {
		m.error = werr
	}
	m.logger.WithError(werr).Debug("operation failed")
	return EdgeNull
}

// checkptr returns an error if e is not an edge to a live node of m.
func (m *Manager) checkptr(e Edge) error {
	if m.nodes == nil {
		return ErrQuit
	}
	n := e.index()
	if n == 0 {
		return errors.Wrapf(ErrInvalidEdge, "null edge (%d)", e)
	}
	if n >= len(m.nodes) {
		return errors.Wrapf(ErrInvalidEdge, "edge %d not in node table", e)
	}
	if n > 1 && m.nodes[n].then == EdgeNull {
		return errors.Wrapf(ErrInvalidEdge, "edge %d points to a free slot", e)
	}
	return nil
}
