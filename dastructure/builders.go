// SPDX-License-Identifier: MIT

package dastructure

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/bordered/algebra"
)

// IdempotentSource is an algebra that lists its idempotents, such as the strand algebra of a PMC.
type IdempotentSource interface {
	algebra.DGA
	Idempotents() []algebra.Idempotent
}

// IdentityDA returns the identity type DA structure of src: one generator per
// idempotent (same idempotent on both sides, named by index) and, for every
// non-idempotent generator g, the arrow δ¹(x_left(g); g) = g ⊗ x_right(g).
func IdentityDA(src IdempotentSource) *SimpleStructure {
	s := NewSimpleStructure(src, src)
	byIdem := make(map[algebra.Idempotent]*Generator)
	for i, idem := range src.Idempotents() {
		g := NewGenerator(s, idem, idem, strconv.Itoa(i))
		byIdem[idem] = g
		s.AddGenerator(g)
	}

	for _, g := range src.Generators() {
		if g.IsIdempotent() {
			continue
		}
		s.AddDelta(byIdem[g.LeftIdem()], byIdem[g.RightIdem()], g, []algebra.Generator{g}, s.ring.One())
	}

	return s
}

// AddChord tries the arrow (coeffD; coeffsA) on every ordered pair (x, y) of
// generators of s, x == y included, and adds it where it fits:
//
//  1. multiplicity-one algebras reject chords of higher multiplicity;
//  2. coeffD must lead from x.Idem1 to y.Idem1;
//  3. coeffsA, walked from x.Idem2, must propagate at every step and end at y.Idem2.
//
// Pairs that do not fit are skipped silently. Both algebras of s must be
// algebra.ChordAlgebra; otherwise AddChord panics with ErrNotChordAlgebra.
func AddChord(s *SimpleStructure, coeffD algebra.Chord, coeffsA []algebra.Chord) {
	alg1, ok1 := s.alg1.(algebra.ChordAlgebra)
	alg2, ok2 := s.alg2.(algebra.ChordAlgebra)
	if !ok1 || !ok2 {
		panic(fmt.Errorf("%w: %T, %T", ErrNotChordAlgebra, s.alg1, s.alg2))
	}
	if alg1.MultOne() && !coeffD.IsMultOne() {
		return
	}
	if alg2.MultOne() {
		for _, c := range coeffsA {
			if !c.IsMultOne() {
				return
			}
		}
	}

	gens := s.Generators()
	for _, x := range gens {
		for _, y := range gens {
			if !coeffD.IdemCompatible(x.idem1, y.idem1) {
				continue
			}
			algD := alg1.Anchor(x.idem1, coeffD)

			algA := make([]algebra.Generator, 0, len(coeffsA))
			cur := x.idem2
			fits := true
			for _, c := range coeffsA {
				next, ok := c.PropagateRight(cur)
				if !ok {
					fits = false
					break
				}
				algA = append(algA, alg2.Anchor(cur, c))
				cur = next
			}
			if fits && cur == y.idem2 {
				s.AddDelta(x, y, algD, algA, s.ring.One())
			}
		}
	}
}

// FromChords builds a structure over (alg1, alg2) with one generator per
// idempotent pair (named by index) and the arrows of every chord pair added
// through AddChord.
func FromChords(alg1, alg2 algebra.ChordAlgebra, idemPairs []IdemPair, chordPairs []ChordPair) *SimpleStructure {
	s := NewSimpleStructure(alg1, alg2)
	for i, p := range idemPairs {
		s.AddGenerator(NewGenerator(s, p.D, p.A, strconv.Itoa(i)))
	}
	for _, cp := range chordPairs {
		AddChord(s, cp.D, cp.A)
	}

	return s
}
