// SPDX-License-Identifier: MIT

package algebra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bordered/ring"
)

// Sentinel errors, used as panic values for contract violations.
var (
	// ErrForeignGenerator indicates a generator that does not belong to the receiving algebra.
	ErrForeignGenerator = errors.New("algebra: generator belongs to another algebra")

	// ErrIdempotentChain indicates consecutive generators whose idempotents do not chain.
	ErrIdempotentChain = errors.New("algebra: idempotent chain mismatch")

	// ErrMissingIdempotent indicates an empty tensor-star generator without an idempotent tag.
	ErrMissingIdempotent = errors.New("algebra: empty sequence requires an idempotent")
)

// Idempotent is an opaque combinatorial token. Implementations must be
// comparable values; == is idempotent equality.
type Idempotent interface {
	fmt.Stringer
}

// Generator is a basis element of a DGA.
type Generator interface {
	fmt.Stringer

	// LeftIdem returns the idempotent the generator starts from.
	LeftIdem() Idempotent

	// RightIdem returns the idempotent the generator ends at.
	RightIdem() Idempotent

	// IsIdempotent reports whether the generator is an idempotent (identity) element.
	IsIdempotent() bool

	// IsMultOne reports whether no entry of Multiplicity exceeds one.
	IsMultOne() bool

	// Multiplicity returns the per-interval multiplicity profile.
	Multiplicity() []int
}

// DGA is a differential graded algebra with a finite (or lazily enumerated) basis.
type DGA interface {
	// Ring returns the coefficient ring.
	Ring() ring.Ring

	// Generators enumerates the basis. Algebras with an infinite basis return nil.
	Generators() []Generator

	// Multiply returns a·b as a linear combination of generators.
	Multiply(a, b Generator) Element[Generator]

	// Diff returns the differential of a.
	Diff(a Generator) Element[Generator]

	// MultOne reports whether the algebra only admits multiplicity-one elements.
	MultOne() bool
}

// MultiplyElements extends alg.Multiply bilinearly.
func MultiplyElements(alg DGA, x, y Element[Generator]) Element[Generator] {
	r := alg.Ring()
	out := NewElement[Generator](r)
	for _, a := range x.Keys() {
		ca := x.Coeff(a)
		for _, b := range y.Keys() {
			out.AddElement(alg.Multiply(a, b).Scale(r.Mul(ca, y.Coeff(b))))
		}
	}

	return out
}

// SumColumns returns the componentwise sum of rows, each padded or truncated to n entries.
func SumColumns(rows [][]int, n int) []int {
	out := make([]int, n)
	for _, row := range rows {
		for i := 0; i < n && i < len(row); i++ {
			out[i] += row[i]
		}
	}

	return out
}

// Chord is an algebra element not yet anchored at an idempotent, e.g. a set
// of moving strands. Algebras that build elements from chords implement
// ChordAlgebra.
type Chord interface {
	fmt.Stringer

	// IsMultOne reports whether no interval is covered more than once.
	IsMultOne() bool

	// IdemCompatible reports whether the chord leads from left to right.
	IdemCompatible(left, right Idempotent) bool

	// PropagateRight returns the idempotent reached from left, or false when
	// the chord cannot start at left.
	PropagateRight(left Idempotent) (Idempotent, bool)
}

// ChordAlgebra is a DGA whose generators can be materialised from chords.
type ChordAlgebra interface {
	DGA

	// Anchor returns the generator of chord c starting at idem.
	// The caller guarantees compatibility; implementations may panic otherwise.
	Anchor(idem Idempotent, c Chord) Generator
}
