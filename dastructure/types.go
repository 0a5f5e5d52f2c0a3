// SPDX-License-Identifier: MIT

package dastructure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/ring"
)

// Sentinel errors, used as panic values for contract violations.
var (
	// ErrWrongParent indicates a generator owned by another structure.
	ErrWrongParent = errors.New("dastructure: generator belongs to another structure")

	// ErrUnknownGenerator indicates a generator that was never added to the structure.
	ErrUnknownGenerator = errors.New("dastructure: generator not registered")

	// ErrIdempotentMismatch indicates an arrow whose coefficients do not chain the endpoint idempotents.
	ErrIdempotentMismatch = errors.New("dastructure: idempotent mismatch")

	// ErrUnsupportedSides indicates action sides other than left (D) and right (A).
	ErrUnsupportedSides = errors.New("dastructure: only left D / right A actions are supported")

	// ErrNotChordAlgebra indicates chord construction over algebras that cannot anchor chords.
	ErrNotChordAlgebra = errors.New("dastructure: algebra does not support chords")

	// ErrNotImplemented indicates δ¹ requested from a structure with no concrete operation.
	ErrNotImplemented = errors.New("dastructure: delta not implemented")
)

// Side is the side an algebra acts on.
type Side int

const (
	// ActionLeft is a left action.
	ActionLeft Side = iota
	// ActionRight is a right action.
	ActionRight
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == ActionLeft {
		return "left"
	}

	return "right"
}

// Structure is a type DA structure: anything that can evaluate δ¹.
type Structure interface {
	// Ring returns the coefficient ring.
	Ring() ring.Ring

	// Algebra1 returns the D-side algebra.
	Algebra1() algebra.DGA

	// Algebra2 returns the A-side algebra.
	Algebra2() algebra.DGA

	// Delta evaluates δ¹(x; a1, ..., an) in A1 ⊗ M.
	Delta(x *Generator, coeffsA []algebra.Generator) algebra.Element[TensorGenerator]

	// RMultiply returns the tensor a ⊗ x with unit coefficient.
	RMultiply(x *Generator, a algebra.Generator) algebra.Element[TensorGenerator]

	// AtensorM returns the tensor module A1 ⊗ M.
	AtensorM() *TensorModule
}

// Generator is a generator of a type DA structure: a handle owned by one
// structure. Two generators are equal iff they are the same handle, even
// when their idempotents and names agree.
type Generator struct {
	parent Structure
	idem1  algebra.Idempotent // type D side, on the left
	idem2  algebra.Idempotent // type A side, on the right
	name   string
	index  int // registration slot, -1 until added
}

// NewGenerator returns a generator owned by parent. It must still be
// registered with the parent's AddGenerator.
func NewGenerator(parent Structure, idem1, idem2 algebra.Idempotent, name string) *Generator {
	return &Generator{parent: parent, idem1: idem1, idem2: idem2, name: name, index: -1}
}

// Parent returns the owning structure.
func (g *Generator) Parent() Structure { return g.parent }

// Idem1 returns the type D (left) idempotent.
func (g *Generator) Idem1() algebra.Idempotent { return g.idem1 }

// Idem2 returns the type A (right) idempotent.
func (g *Generator) Idem2() algebra.Idempotent { return g.idem2 }

// Name returns the display name.
func (g *Generator) Name() string { return g.name }

// Index returns the registration slot, or -1 for an unregistered generator.
func (g *Generator) Index() int { return g.index }

// String renders "idem1,idem2".
func (g *Generator) String() string { return fmt.Sprintf("%s,%s", g.idem1, g.idem2) }

// TensorGenerator is a generator a ⊗ m of A1 ⊗ M.
type TensorGenerator struct {
	A algebra.Generator
	M *Generator
}

// String renders "a*m".
func (t TensorGenerator) String() string { return fmt.Sprintf("%s*%s", t.A, t.M) }

// Arrow is one term of δ¹: Coeff · (CoeffD ⊗ To) in δ¹(From; CoeffsA...).
type Arrow struct {
	From    *Generator
	To      *Generator
	CoeffD  algebra.Generator
	CoeffsA []algebra.Generator
	Coeff   int
}

// String renders "m(from; a1, a2) = coeffD*to".
func (a Arrow) String() string {
	return fmt.Sprintf("m(%s; %s) = %s", a.From, seqString(a.CoeffsA), TensorGenerator{A: a.CoeffD, M: a.To})
}

// IdemPair is one generator description for FromChords: D-side and A-side idempotents.
type IdemPair struct {
	D algebra.Idempotent
	A algebra.Idempotent
}

// ChordPair is one arrow description for FromChords: a D-side output chord and A-side input chords.
type ChordPair struct {
	D algebra.Chord
	A []algebra.Chord
}
