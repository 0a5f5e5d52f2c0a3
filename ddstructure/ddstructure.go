// SPDX-License-Identifier: MIT

package ddstructure

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/ring"
)

// SimpleStructure is a type DD structure with finitely many generators and arrows.
// It is not safe for concurrent mutation; callers serialize construction.
type SimpleStructure struct {
	ring ring.Ring
	alg1 algebra.DGA
	alg2 algebra.DGA

	generators []*Generator                           // registration order
	registered map[*Generator]bool                    // membership
	delta      map[*Generator]algebra.Element[Target] // δ¹, nonzero entries only
}

// NewSimpleStructure returns an empty DD structure over (alg1, alg2) with coefficients in r.
func NewSimpleStructure(r ring.Ring, alg1, alg2 algebra.DGA) *SimpleStructure {
	return &SimpleStructure{
		ring:       r,
		alg1:       alg1,
		alg2:       alg2,
		registered: make(map[*Generator]bool),
		delta:      make(map[*Generator]algebra.Element[Target]),
	}
}

// Ring returns the coefficient ring.
func (s *SimpleStructure) Ring() ring.Ring { return s.ring }

// Algebra1 returns the first algebra.
func (s *SimpleStructure) Algebra1() algebra.DGA { return s.alg1 }

// Algebra2 returns the second algebra.
func (s *SimpleStructure) Algebra2() algebra.DGA { return s.alg2 }

// Len returns the number of registered generators.
func (s *SimpleStructure) Len() int { return len(s.generators) }

// Generators lists registered generators in registration order.
func (s *SimpleStructure) Generators() []*Generator {
	return append([]*Generator(nil), s.generators...)
}

// AddGenerator registers g. Repeated registration has no effect.
// Panics with ErrWrongParent if g belongs to another structure.
func (s *SimpleStructure) AddGenerator(g *Generator) {
	if g == nil || g.parent != s {
		panic(fmt.Errorf("%w: %v", ErrWrongParent, g))
	}
	if s.registered[g] {
		return
	}
	s.registered[g] = true
	s.generators = append(s.generators, g)
}

// AddDelta adds ringCoeff·(a1, a2)·to to δ¹(from).
//
// Panics if either generator is foreign or unregistered, or if the
// coefficients do not lead from the idempotents of from to those of to.
func (s *SimpleStructure) AddDelta(from, to *Generator, a1, a2 algebra.Generator, ringCoeff int) {
	s.mustOwn(from)
	s.mustOwn(to)
	switch {
	case a1.LeftIdem() != from.idem1:
		panic(fmt.Errorf("%w: %s does not start at %s", ErrIdempotentMismatch, a1, from))
	case a1.RightIdem() != to.idem1:
		panic(fmt.Errorf("%w: %s does not end at %s", ErrIdempotentMismatch, a1, to))
	case a2.LeftIdem() != from.idem2:
		panic(fmt.Errorf("%w: %s does not start at %s", ErrIdempotentMismatch, a2, from))
	case a2.RightIdem() != to.idem2:
		panic(fmt.Errorf("%w: %s does not end at %s", ErrIdempotentMismatch, a2, to))
	}

	out, ok := s.delta[from]
	if !ok {
		out = algebra.NewElement[Target](s.ring)
		s.delta[from] = out
	}
	out.Add(Target{A1: a1, A2: a2, To: to}, ringCoeff)
	if out.IsZero() {
		delete(s.delta, from)
	}
}

// mustOwn panics unless g is a registered generator of s.
func (s *SimpleStructure) mustOwn(g *Generator) {
	if g == nil || g.parent != s {
		panic(fmt.Errorf("%w: %v", ErrWrongParent, g))
	}
	if !s.registered[g] {
		panic(fmt.Errorf("%w: %v", ErrUnknownGenerator, g))
	}
}

// Delta returns a copy of δ¹(from).
func (s *SimpleStructure) Delta(from *Generator) algebra.Element[Target] {
	if out, ok := s.delta[from]; ok {
		return out.Clone()
	}

	return algebra.NewElement[Target](s.ring)
}

// TestDelta reports whether the structure equation holds.
func (s *SimpleStructure) TestDelta() bool { return len(s.Violations()) == 0 }

// Violations evaluates the structure equation at every generator and lists
// its nonzero terms, grouped by source in registration order.
func (s *SimpleStructure) Violations() []Violation {
	var out []Violation
	for _, x := range s.generators {
		total := s.equationAt(x)
		for _, t := range total.Keys() {
			out = append(out, Violation{From: x, To: t.To, A1: t.A1, A2: t.A2, Coeff: total.Coeff(t)})
		}
	}

	return out
}

// equationAt returns (μ1⊗μ2)(δ¹∘δ¹)(x) + d(δ¹(x)).
func (s *SimpleStructure) equationAt(x *Generator) algebra.Element[Target] {
	r := s.ring
	total := algebra.NewElement[Target](r)
	dx, ok := s.delta[x]
	if !ok {
		return total
	}

	for _, t := range dx.Keys() {
		c := dx.Coeff(t)

		if dy, ok := s.delta[t.To]; ok {
			for _, u := range dy.Keys() {
				p1 := s.alg1.Multiply(t.A1, u.A1)
				if p1.IsZero() {
					continue
				}
				p2 := s.alg2.Multiply(t.A2, u.A2)
				if p2.IsZero() {
					continue
				}
				cu := r.Mul(c, dy.Coeff(u))
				for _, b1 := range p1.Keys() {
					for _, b2 := range p2.Keys() {
						total.Add(Target{A1: b1, A2: b2, To: u.To}, r.Mul(cu, r.Mul(p1.Coeff(b1), p2.Coeff(b2))))
					}
				}
			}
		}

		d1 := s.alg1.Diff(t.A1)
		for _, b1 := range d1.Keys() {
			total.Add(Target{A1: b1, A2: t.A2, To: t.To}, r.Mul(c, d1.Coeff(b1)))
		}
		d2 := s.alg2.Diff(t.A2)
		for _, b2 := range d2.Keys() {
			total.Add(Target{A1: t.A1, A2: b2, To: t.To}, r.Mul(c, d2.Coeff(b2)))
		}
	}

	return total
}

// String lists δ¹ of every generator with nonzero output.
func (s *SimpleStructure) String() string {
	var sb strings.Builder
	sb.WriteString("Type DD Structure.\n")
	for _, x := range s.generators {
		if dx, ok := s.delta[x]; ok {
			fmt.Fprintf(&sb, "d(%s) = %s\n", x, dx)
		}
	}

	return sb.String()
}
