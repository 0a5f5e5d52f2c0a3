// SPDX-License-Identifier: MIT

package dastructure

import (
	"fmt"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/ring"
)

// baseStructure carries what every type DA structure shares: algebras,
// sides, ring and the tensor module A1 ⊗ M. Concrete structures embed it and
// provide Delta; the tensor module always calls back into the concrete self.
type baseStructure struct {
	ring  ring.Ring
	alg1  algebra.DGA
	alg2  algebra.DGA
	side1 Side
	side2 Side

	tensor *TensorModule
}

// newBase wires the tensor module of self before self is handed to any caller.
func newBase(self Structure, r ring.Ring, alg1, alg2 algebra.DGA, side1, side2 Side) *baseStructure {
	return &baseStructure{
		ring:   r,
		alg1:   alg1,
		alg2:   alg2,
		side1:  side1,
		side2:  side2,
		tensor: &TensorModule{alg: alg1, str: self},
	}
}

// Ring returns the coefficient ring.
func (b *baseStructure) Ring() ring.Ring { return b.ring }

// Algebra1 returns the D-side algebra.
func (b *baseStructure) Algebra1() algebra.DGA { return b.alg1 }

// Algebra2 returns the A-side algebra.
func (b *baseStructure) Algebra2() algebra.DGA { return b.alg2 }

// Sides returns the action sides of the D-side and A-side algebras.
func (b *baseStructure) Sides() (Side, Side) { return b.side1, b.side2 }

// AtensorM returns A1 ⊗ M.
func (b *baseStructure) AtensorM() *TensorModule { return b.tensor }

// Delta has no generic definition; concrete structures shadow it.
func (b *baseStructure) Delta(x *Generator, coeffsA []algebra.Generator) algebra.Element[TensorGenerator] {
	panic(fmt.Errorf("%w: %v", ErrNotImplemented, x))
}

// RMultiply returns 1·(a ⊗ x), independent of δ¹.
func (b *baseStructure) RMultiply(x *Generator, a algebra.Generator) algebra.Element[TensorGenerator] {
	return algebra.Single(b.ring, TensorGenerator{A: a, M: x}, b.ring.One())
}

// TensorModule is A1 ⊗ M for a type DA structure M over the D-side algebra A1.
// A1 acts on the left through the algebra factor, and the differential is
// d(a ⊗ m) = d(a) ⊗ m + a · δ¹(m).
type TensorModule struct {
	alg algebra.DGA
	str Structure
}

// Algebra returns A1.
func (t *TensorModule) Algebra() algebra.DGA { return t.alg }

// Structure returns M.
func (t *TensorModule) Structure() Structure { return t.str }

// Multiply returns coeff · (a ⊗ m) = (coeff·a) ⊗ m.
func (t *TensorModule) Multiply(coeff algebra.Generator, g TensorGenerator) algebra.Element[TensorGenerator] {
	r := t.str.Ring()
	out := algebra.NewElement[TensorGenerator](r)
	prod := t.alg.Multiply(coeff, g.A)
	for _, a := range prod.Keys() {
		out.Add(TensorGenerator{A: a, M: g.M}, prod.Coeff(a))
	}

	return out
}

// Diff returns d(a) ⊗ m + a · δ¹(m) where δ¹(m) takes no A-side input.
func (t *TensorModule) Diff(g TensorGenerator) algebra.Element[TensorGenerator] {
	r := t.str.Ring()
	out := algebra.NewElement[TensorGenerator](r)

	da := t.alg.Diff(g.A)
	for _, a := range da.Keys() {
		out.Add(TensorGenerator{A: a, M: g.M}, da.Coeff(a))
	}

	dm := t.str.Delta(g.M, nil)
	for _, term := range dm.Keys() {
		prod := t.Multiply(g.A, term)
		c := dm.Coeff(term)
		for _, k := range prod.Keys() {
			out.Add(k, r.Mul(c, prod.Coeff(k)))
		}
	}

	return out
}
