// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Replacer is the type of association lists used to replace variables in a
// diagram.
type Replacer interface {
	Replace(int32) (int32, bool)
	Id() int
}

type replacer struct {
	id    int     // unique identifier used for caching intermediate results
	image []int32 // map the level of old variables to the level of new variables
	last  int32   // last index in the Replacer, to speed up computations
}

func (r *replacer) String() string {
	res := fmt.Sprintf("replacer(last: %d)[", r.last)
	first := true
	for k, v := range r.image {
		if k != int(v) {
			if !first {
				res += ", "
			}
			first = false
			res += fmt.Sprintf("%d<-%d", k, v)
		}
	}
	return res + "]"
}

func (r *replacer) Replace(level int32) (int32, bool) {
	if level > r.last {
		return level, false
	}
	return r.image[level], true
}

func (r *replacer) Id() int {
	return r.id
}

// NewReplacer returns a Replacer for substituting variable oldvars[k] with
// newvars[k]. The substitution is simultaneous, so it is possible to swap two
// variables. We return an error if the two slices do not have the same length
// or if we find the same index twice in oldvars. All values must be in
// [0..Varnum).
func (m *Manager) NewReplacer(oldvars []int, newvars []int) (Replacer, error) {
	if m.nodes == nil {
		return nil, ErrQuit
	}
	if len(oldvars) != len(newvars) {
		return nil, errors.Wrapf(ErrNameCount, "unmatched length of slices (%d and %d)", len(oldvars), len(newvars))
	}
	if m.replacers == (math.MaxInt32 >> 2) {
		return nil, errors.Wrap(ErrMemory, "too many replacers created")
	}
	m.replacers++
	res := &replacer{id: cacheidREPLACE + m.replacers}
	support := make([]bool, m.varnum)
	res.image = make([]int32, m.varnum)
	for k := range res.image {
		res.image[k] = int32(k)
	}
	for k, v := range oldvars {
		if v < 0 || v >= m.varnum {
			return nil, errors.Wrapf(ErrVarIndex, "invalid variable in oldvars (%d)", v)
		}
		if newvars[k] < 0 || newvars[k] >= m.varnum {
			return nil, errors.Wrapf(ErrVarIndex, "invalid variable in newvars (%d)", newvars[k])
		}
		if support[v] {
			return nil, errors.Wrapf(ErrVarset, "duplicate variable (%d) in oldvars", v)
		}
		support[v] = true
		res.image[v] = int32(newvars[k])
		if int32(v) > res.last {
			res.last = int32(v)
		}
	}
	return res, nil
}

// ************************************************************

// Replace takes a Replacer and computes the result of f after replacing old
// variables with new ones. See type Replacer.
func (m *Manager) Replace(f Edge, r Replacer) Edge {
	if err := m.checkptr(f); err != nil {
		return m.seterror(err, "wrong operand in call to Replace (%s)", f)
	}
	m.initref()
	m.pushref(f)
	res := m.replace(f, r)
	m.popref(1)
	return res
}

func (m *Manager) replace(f Edge, r Replacer) Edge {
	if f.IsConstant() {
		return f
	}
	image, ok := r.Replace(m.level(f))
	if !ok {
		return f
	}
	if image < 0 || int(image) >= m.varnum {
		return m.seterror(ErrVarIndex, "image %d in call to Replace", image)
	}
	// the result for !f is the negation of the one for f
	neg := f.IsComplement()
	f = f.Regular()
	if res := m.matchreplace(r.Id(), f); res != EdgeNull {
		return res.notif(neg)
	}
	t := m.pushref(m.replace(m.nodes[f.index()].then, r))
	e := m.pushref(m.replace(m.nodes[f.index()].els, r))
	if t == EdgeNull || e == EdgeNull {
		m.popref(2)
		return EdgeNull
	}
	// the new variable may occur below, so we cannot call makenode directly
	res := m.ite(m.varset[image], t, e)
	m.popref(2)
	if res == EdgeNull {
		return EdgeNull
	}
	return m.setreplace(r.Id(), f, res).notif(neg)
}
