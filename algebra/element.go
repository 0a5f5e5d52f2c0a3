// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/bordered/ring"
)

// Term is a basis key of a linear combination. Keys render through String
// so that Keys can be listed deterministically.
type Term interface {
	comparable
	fmt.Stringer
}

// Element is a formal linear combination of terms over a ring.
//
// The zero-pruning invariant holds after every mutation: a term whose
// coefficient reduces to zero is removed, so Len()==0 iff the element is zero.
// Element has reference semantics (it wraps a map); use Clone to detach.
type Element[K Term] struct {
	ring  ring.Ring
	terms map[K]int
}

// NewElement returns the zero element over r.
func NewElement[K Term](r ring.Ring) Element[K] {
	return Element[K]{ring: r, terms: make(map[K]int)}
}

// Single returns c·k over r.
func Single[K Term](r ring.Ring, k K, c int) Element[K] {
	e := NewElement[K](r)
	e.Add(k, c)

	return e
}

// Ring returns the coefficient ring.
func (e Element[K]) Ring() ring.Ring { return e.ring }

// Add accumulates c·k into e, deleting k when its coefficient cancels.
func (e Element[K]) Add(k K, c int) {
	next := e.ring.Add(e.terms[k], c)
	if e.ring.IsZero(next) {
		delete(e.terms, k)
		return
	}
	e.terms[k] = next
}

// AddElement accumulates every term of o into e.
func (e Element[K]) AddElement(o Element[K]) {
	for k, c := range o.terms {
		e.Add(k, c)
	}
}

// Scale returns a new element c·e.
func (e Element[K]) Scale(c int) Element[K] {
	out := NewElement[K](e.ring)
	for k, v := range e.terms {
		out.Add(k, e.ring.Mul(v, c))
	}

	return out
}

// Clone returns an independent copy of e.
func (e Element[K]) Clone() Element[K] { return e.Scale(e.ring.One()) }

// Coeff returns the coefficient of k (zero when absent).
func (e Element[K]) Coeff(k K) int {
	if c, ok := e.terms[k]; ok {
		return c
	}

	return e.ring.Zero()
}

// IsZero reports whether e has no terms.
func (e Element[K]) IsZero() bool { return len(e.terms) == 0 }

// Len returns the number of nonzero terms.
func (e Element[K]) Len() int { return len(e.terms) }

// Keys lists the terms of e ordered by their String form.
func (e Element[K]) Keys() []K {
	keys := make([]K, 0, len(e.terms))
	for k := range e.terms {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	return keys
}

// Equal reports whether e and o have the same terms with the same coefficients.
func (e Element[K]) Equal(o Element[K]) bool {
	if len(e.terms) != len(o.terms) {
		return false
	}
	for k, c := range e.terms {
		if oc, ok := o.terms[k]; !ok || oc != c {
			return false
		}
	}

	return true
}

// String renders e as "k1 + 3*k2", or "0" when empty. Unit coefficients are omitted.
func (e Element[K]) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(e.terms))
	for _, k := range e.Keys() {
		c := e.terms[k]
		if c == e.ring.One() {
			parts = append(parts, k.String())
		} else {
			parts = append(parts, fmt.Sprintf("%d*%s", c, k))
		}
	}

	return strings.Join(parts, " + ")
}
