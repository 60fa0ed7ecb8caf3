// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TruthTable is the explicit list of the values of a Boolean function over n
// variables, indexed by minterm. Minterm r is the assignment where variable k
// (for k in [0..n)) is true iff bit n-1-k of r is set; hence variable 0 is the
// most significant bit.
type TruthTable []bool

// digitbits returns the number of bits encoded by one digit in base radix.
func digitbits(radix int) (int, error) {
	switch radix {
	case 16:
		return 4, nil
	case 2:
		return 1, nil
	}
	return 0, errors.Errorf("unsupported radix %d (should be 2 or 16)", radix)
}

// ParseTruthTable reads the truth table of a function with numVars variables
// from a string of digits in base radix (16 or 2). The rightmost digit holds
// the lowest minterms: bit b of the digit at position p (counting from the
// right, starting at 0) is the value for minterm p*bits+b, where bits is 4 in
// hexadecimal and 1 in binary. An optional 0x (or 0b) prefix is ignored.
//
// We return an error wrapping ErrTruthTableSize if the string has too few
// digits, or if it sets bits beyond minterm 2^numVars - 1, and an error
// wrapping ErrTruthTableDigit if it contains an invalid digit.
func ParseTruthTable(s string, radix, numVars int) (TruthTable, error) {
	bits, err := digitbits(radix)
	if err != nil {
		return nil, err
	}
	if numVars < 0 || numVars > _MAXTTVARS {
		return nil, errors.Wrapf(ErrTruthTableSize, "number of variables (%d) not in [0..%d]", numVars, _MAXTTVARS)
	}
	s = strings.TrimSpace(s)
	if radix == 16 {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	} else {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0b"), "0B")
	}
	size := 1 << numVars
	if len(s)*bits < size {
		return nil, errors.Wrapf(ErrTruthTableSize, "%d digits for %d minterms", len(s), size)
	}
	tt := make(TruthTable, size)
	for p := 0; p < len(s); p++ {
		c := s[len(s)-1-p]
		d, err := strconv.ParseUint(string(c), radix, 8)
		if err != nil {
			return nil, errors.Wrapf(ErrTruthTableDigit, "%q at position %d", c, p)
		}
		for b := 0; b < bits; b++ {
			if d&(1<<b) == 0 {
				continue
			}
			r := p*bits + b
			if r >= size {
				return nil, errors.Wrapf(ErrTruthTableSize, "minterm %d set in a table of size %d", r, size)
			}
			tt[r] = true
		}
	}
	return tt, nil
}

// String returns the digits of tt in base radix (16 or 2), most significant
// digit first, such that ParseTruthTable(tt.String(radix), radix, n) == tt. It
// returns the empty string for an unsupported radix.
func (tt TruthTable) String(radix int) string {
	bits, err := digitbits(radix)
	if err != nil {
		return ""
	}
	ndigits := (len(tt) + bits - 1) / bits
	if ndigits == 0 {
		ndigits = 1
	}
	var sb strings.Builder
	for p := ndigits - 1; p >= 0; p-- {
		d := 0
		for b := 0; b < bits; b++ {
			if r := p*bits + b; r < len(tt) && tt[r] {
				d |= 1 << b
			}
		}
		sb.WriteString(strconv.FormatInt(int64(d), radix))
	}
	return strings.ToUpper(sb.String())
}

// NumVars returns the number of variables of tt, or -1 if its length is not a
// power of two.
func (tt TruthTable) NumVars() int {
	for n := 0; n <= _MAXTTVARS; n++ {
		if len(tt) == 1<<n {
			return n
		}
	}
	return -1
}

// Minterm returns the cube over variables [0..numVars) that is true only for
// minterm r. Variable k is positive when bit numVars-1-k of r is set. The
// result is held once: the caller must release it with DelRef.
func (m *Manager) Minterm(numVars, r int) (Edge, error) {
	if m.nodes == nil {
		return EdgeNull, ErrQuit
	}
	if numVars < 0 || numVars > m.varnum || numVars > _MAXTTVARS {
		return EdgeNull, errors.Wrapf(ErrVarIndex, "%d variables in call to Minterm", numVars)
	}
	if r < 0 || r >= 1<<numVars {
		return EdgeNull, errors.Wrapf(ErrTruthTableSize, "minterm %d out of range for %d variables", r, numVars)
	}
	cube := One
	for k := 0; k < numVars; k++ {
		lit := m.varset[k]
		if (r>>(numVars-1-k))&1 == 0 {
			lit = lit.Not()
		}
		tmp := m.Apply(cube, lit, OPand)
		if tmp == EdgeNull {
			m.DelRef(cube)
			return EdgeNull, errors.Wrapf(m.Err(), "building minterm %d", r)
		}
		m.AddRef(tmp)
		m.DelRef(cube)
		cube = tmp
	}
	return cube, nil
}

// FromTruthTable returns the diagram of the function with numVars variables
// whose values are given in tt, that should have exactly 2^numVars entries.
// The function is built as the disjunction of the minterms set in tt, using
// variables [0..numVars) of the manager.
//
// The result is held once: the caller must release it with DelRef. All the
// intermediate results are released, so no other node stays referenced.
func (m *Manager) FromTruthTable(numVars int, tt TruthTable) (Edge, error) {
	if m.nodes == nil {
		return EdgeNull, ErrQuit
	}
	if numVars < 0 || numVars > m.varnum || numVars > _MAXTTVARS {
		return EdgeNull, errors.Wrapf(ErrVarIndex, "%d variables for a manager with %d variables", numVars, m.varnum)
	}
	if len(tt) != 1<<numVars {
		return EdgeNull, errors.Wrapf(ErrTruthTableSize, "%d entries for %d variables", len(tt), numVars)
	}
	acc := Zero
	for r, v := range tt {
		if !v {
			continue
		}
		cube, err := m.Minterm(numVars, r)
		if err != nil {
			m.DelRef(acc)
			return EdgeNull, err
		}
		tmp := m.Apply(acc, cube, OPor)
		if tmp == EdgeNull {
			m.DelRef(acc)
			m.DelRef(cube)
			return EdgeNull, errors.Wrapf(m.Err(), "adding minterm %d", r)
		}
		m.AddRef(tmp)
		m.DelRef(acc)
		m.DelRef(cube)
		acc = tmp
	}
	return acc, nil
}

// ToTruthTable returns the truth table of f over variables [0..numVars); the
// other variables are taken to be false.
func (m *Manager) ToTruthTable(f Edge, numVars int) (TruthTable, error) {
	if err := m.checkptr(f); err != nil {
		return nil, errors.Wrap(err, "call to ToTruthTable")
	}
	if numVars < 0 || numVars > m.varnum || numVars > _MAXTTVARS {
		return nil, errors.Wrapf(ErrVarIndex, "%d variables in call to ToTruthTable", numVars)
	}
	tt := make(TruthTable, 1<<numVars)
	values := make([]bool, m.varnum)
	for r := range tt {
		for k := 0; k < numVars; k++ {
			values[k] = (r>>(numVars-1-k))&1 == 1
		}
		tt[r] = m.Eval(f, values)
	}
	return tt, nil
}
