// SPDX-License-Identifier: MIT

package dastructure

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/ring"
)

// Option configures a SimpleStructure before construction.
type Option func(o *options)

type options struct {
	ring  ring.Ring
	side1 Side
	side2 Side
}

// WithRing sets the coefficient ring (default ring.F2). Panics on nil.
func WithRing(r ring.Ring) Option {
	if r == nil {
		panic("dastructure: WithRing(nil)")
	}

	return func(o *options) { o.ring = r }
}

// WithSides sets the action sides of the D-side and A-side algebras.
// Only (ActionLeft, ActionRight) is supported; NewSimpleStructure panics on anything else.
func WithSides(side1, side2 Side) Option {
	return func(o *options) { o.side1, o.side2 = side1, side2 }
}

// SimpleStructure is a type DA structure with finitely many generators and
// finitely many arrows, stored as a sparse table
//
//	(from, (a1, ..., an)) → Σ c · (coeffD ⊗ to)
//
// holding only nonzero combinations. The table is δ¹: Delta is a lookup.
// Not safe for concurrent mutation; callers serialize construction.
type SimpleStructure struct {
	*baseStructure

	generators []*Generator
	action     map[actionKey]*entry
	seqIndex   map[algebra.Generator]int // A-side generator → id used in keys
}

// actionKey identifies an entry: source generator plus interned A-side sequence.
type actionKey struct {
	from *Generator
	seq  string
}

// entry is one row of the operation table.
type entry struct {
	from    *Generator
	coeffsA []algebra.Generator
	out     algebra.Element[TensorGenerator]
}

// NewSimpleStructure returns an empty structure over the D-side algebra alg1
// and the A-side algebra alg2.
func NewSimpleStructure(alg1, alg2 algebra.DGA, opts ...Option) *SimpleStructure {
	o := options{ring: ring.F2, side1: ActionLeft, side2: ActionRight}
	for _, opt := range opts {
		opt(&o)
	}
	if o.side1 != ActionLeft || o.side2 != ActionRight {
		panic(fmt.Errorf("%w: got %s/%s", ErrUnsupportedSides, o.side1, o.side2))
	}

	s := &SimpleStructure{
		action:   make(map[actionKey]*entry),
		seqIndex: make(map[algebra.Generator]int),
	}
	s.baseStructure = newBase(s, o.ring, alg1, alg2, o.side1, o.side2)

	return s
}

// Len returns the number of generators.
func (s *SimpleStructure) Len() int { return len(s.generators) }

// Generators lists the generators in registration order.
func (s *SimpleStructure) Generators() []*Generator {
	return append([]*Generator(nil), s.generators...)
}

// NumEntries returns the number of (source, A-side input) keys with nonzero output.
func (s *SimpleStructure) NumEntries() int { return len(s.action) }

// AddGenerator registers g. Adding the same generator again has no effect.
// Panics with ErrWrongParent unless g was created for s.
func (s *SimpleStructure) AddGenerator(g *Generator) {
	if g == nil || g.parent != Structure(s) {
		panic(fmt.Errorf("%w: %v", ErrWrongParent, g))
	}
	if g.index >= 0 {
		return
	}
	g.index = len(s.generators)
	s.generators = append(s.generators, g)
}

// mustOwn panics unless g is a registered generator of s.
func (s *SimpleStructure) mustOwn(g *Generator) {
	if g == nil || g.parent != Structure(s) {
		panic(fmt.Errorf("%w: %v", ErrWrongParent, g))
	}
	if g.index < 0 {
		panic(fmt.Errorf("%w: %v", ErrUnknownGenerator, g))
	}
}

// AddDelta adds ringCoeff · (coeffD ⊗ to) to δ¹(from; coeffsA...).
//
// coeffD must lead from from.Idem1 to to.Idem1, and coeffsA must chain
// from.Idem2 to to.Idem2 (equal idempotents when coeffsA is empty); a
// violation panics with ErrIdempotentMismatch. Contributions to an existing
// entry accumulate in the ring, and an entry that cancels to zero is removed.
func (s *SimpleStructure) AddDelta(from, to *Generator, coeffD algebra.Generator, coeffsA []algebra.Generator, ringCoeff int) {
	s.mustOwn(from)
	s.mustOwn(to)
	if coeffD.RightIdem() != to.idem1 {
		panic(fmt.Errorf("%w: D coefficient %s does not end at %s", ErrIdempotentMismatch, coeffD, to.idem1))
	}
	if coeffD.LeftIdem() != from.idem1 {
		panic(fmt.Errorf("%w: D coefficient %s does not start at %s", ErrIdempotentMismatch, coeffD, from.idem1))
	}
	if len(coeffsA) == 0 {
		if from.idem2 != to.idem2 {
			panic(fmt.Errorf("%w: %s and %s differ on the A side", ErrIdempotentMismatch, from, to))
		}
	} else {
		if from.idem2 != coeffsA[0].LeftIdem() {
			panic(fmt.Errorf("%w: A input %s does not start at %s", ErrIdempotentMismatch, coeffsA[0], from.idem2))
		}
		for i := 0; i+1 < len(coeffsA); i++ {
			if coeffsA[i].RightIdem() != coeffsA[i+1].LeftIdem() {
				panic(fmt.Errorf("%w: A inputs %s then %s", ErrIdempotentMismatch, coeffsA[i], coeffsA[i+1]))
			}
		}
		if last := coeffsA[len(coeffsA)-1]; last.RightIdem() != to.idem2 {
			panic(fmt.Errorf("%w: A input %s does not end at %s", ErrIdempotentMismatch, last, to.idem2))
		}
	}

	key := actionKey{from: from, seq: s.seqKey(coeffsA)}
	e, ok := s.action[key]
	if !ok {
		e = &entry{
			from:    from,
			coeffsA: append([]algebra.Generator(nil), coeffsA...),
			out:     algebra.NewElement[TensorGenerator](s.ring),
		}
		s.action[key] = e
	}
	e.out.Add(TensorGenerator{A: coeffD, M: to}, ringCoeff)
	if e.out.IsZero() {
		delete(s.action, key)
	}
}

// seqKey interns the A-side sequence as a string of stable ids.
func (s *SimpleStructure) seqKey(seq []algebra.Generator) string {
	var sb strings.Builder
	for i, g := range seq {
		id, ok := s.seqIndex[g]
		if !ok {
			id = len(s.seqIndex)
			s.seqIndex[g] = id
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}

	return sb.String()
}

// Delta returns a copy of δ¹(x; coeffsA...), zero when the table has no entry.
func (s *SimpleStructure) Delta(x *Generator, coeffsA []algebra.Generator) algebra.Element[TensorGenerator] {
	for _, g := range coeffsA {
		if _, ok := s.seqIndex[g]; !ok {
			return algebra.NewElement[TensorGenerator](s.ring)
		}
	}
	if e, ok := s.action[actionKey{from: x, seq: s.seqKey(coeffsA)}]; ok {
		return e.out.Clone()
	}

	return algebra.NewElement[TensorGenerator](s.ring)
}

// entries returns the table rows ordered by source slot, then by the rendered A-side input.
func (s *SimpleStructure) entries() []*entry {
	out := make([]*entry, 0, len(s.action))
	for _, e := range s.action {
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].from.index != out[j].from.index {
			return out[i].from.index < out[j].from.index
		}
		if len(out[i].coeffsA) != len(out[j].coeffsA) {
			return len(out[i].coeffsA) < len(out[j].coeffsA)
		}

		return seqString(out[i].coeffsA) < seqString(out[j].coeffsA)
	})

	return out
}

// Arrows lists every nonzero term of δ¹ in a deterministic order.
func (s *SimpleStructure) Arrows() []Arrow {
	var out []Arrow
	for _, e := range s.entries() {
		terms := e.out.Keys()
		sort.SliceStable(terms, func(i, j int) bool { return terms[i].M.index < terms[j].M.index })
		for _, t := range terms {
			out = append(out, Arrow{
				From:    e.from,
				To:      t.M,
				CoeffD:  t.A,
				CoeffsA: append([]algebra.Generator(nil), e.coeffsA...),
				Coeff:   e.out.Coeff(t),
			})
		}
	}

	return out
}

// seqString renders an A-side sequence as "(a1, a2)".
func seqString(seq []algebra.Generator) string {
	parts := make([]string, len(seq))
	for i, g := range seq {
		parts[i] = g.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
