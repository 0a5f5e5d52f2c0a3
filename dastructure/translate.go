// SPDX-License-Identifier: MIT

package dastructure

import (
	"fmt"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/ddstructure"
)

// TranslateDD rewrites s as a type DD structure over Algebra1 and the cobar
// algebra of Algebra2. Each generator maps to a DD generator with the same
// idempotents and name; each arrow x → coeffD ⊗ y with A-side inputs
// (a1, ..., an) becomes the DD arrow x → (coeffD, (a1*, ..., an*)) y.
// Arrows without A-side input use the idempotent x.Idem2 as cobar coefficient.
//
// The returned map is the generator correspondence; it is a bijection.
func (s *SimpleStructure) TranslateDD() (*ddstructure.SimpleStructure, map[*Generator]*ddstructure.Generator) {
	cobar := algebra.NewCobar(s.alg2)
	dd := ddstructure.NewSimpleStructure(s.ring, s.alg1, cobar)

	genMap := make(map[*Generator]*ddstructure.Generator, len(s.generators))
	for _, g := range s.generators {
		ddg := ddstructure.NewGenerator(dd, g.idem1, g.idem2, g.name)
		genMap[g] = ddg
		dd.AddGenerator(ddg)
	}

	for _, e := range s.entries() {
		for _, t := range e.out.Keys() {
			var idem algebra.Idempotent
			if len(e.coeffsA) == 0 {
				idem = e.from.idem2
				if idem != t.M.idem2 {
					panic(fmt.Errorf("%w: %s and %s differ on the A side", ErrIdempotentMismatch, e.from, t.M))
				}
			}
			star := cobar.Star(e.coeffsA, idem)
			dd.AddDelta(genMap[e.from], genMap[t.M], t.A, star, e.out.Coeff(t))
		}
	}

	return dd, genMap
}

// TestDelta reports whether s satisfies the type DA structure equation,
// decided by the structure equation of the translated DD structure.
func (s *SimpleStructure) TestDelta() bool {
	dd, _ := s.TranslateDD()

	return dd.TestDelta()
}

// Violations lists the nonzero terms of the translated structure equation.
// It is empty iff TestDelta returns true.
func (s *SimpleStructure) Violations() []ddstructure.Violation {
	dd, _ := s.TranslateDD()

	return dd.Violations()
}
