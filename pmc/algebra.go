// SPDX-License-Identifier: MIT

package pmc

import (
	"fmt"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/ring"
)

// Option configures an Algebra before construction.
type Option func(a *Algebra)

// WithIdemSize restricts the algebra to idempotents with k pairs.
// The default is the genus (the middle summand). Panics if k < 0.
func WithIdemSize(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("pmc: WithIdemSize(%d): size must be non-negative", k))
	}

	return func(a *Algebra) { a.idemSize = k }
}

// WithMultOne keeps only multiplicity-one elements: products of higher
// multiplicity vanish and Generators skips them.
func WithMultOne() Option {
	return func(a *Algebra) { a.multOne = true }
}

// Algebra is the strand algebra A(Z) over F2, restricted to idempotents of one size.
//
// Diagrams are interned: Diagram returns the same pointer for the same
// (idempotent, chord), so generators compare with ==.
// An Algebra is not safe for concurrent use; it caches lazily.
type Algebra struct {
	pmc      *PMC
	idemSize int
	multOne  bool
	ring     ring.Ring

	diagrams map[diagramKey]*StrandDiagram
	gens     []algebra.Generator // nil until first Generators call
}

// diagramKey identifies a basis element by left idempotent and rendered moves.
type diagramKey struct {
	left  uint64
	moves string
}

// NewAlgebra returns the strand algebra of z.
// Panics if WithIdemSize exceeds the number of pairs.
func NewAlgebra(z *PMC, opts ...Option) *Algebra {
	a := &Algebra{
		pmc:      z,
		idemSize: z.Genus(),
		ring:     ring.F2,
		diagrams: make(map[diagramKey]*StrandDiagram),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.idemSize > z.NumPairs() {
		panic(fmt.Sprintf("pmc: idempotent size %d exceeds %d pairs", a.idemSize, z.NumPairs()))
	}

	return a
}

// PMC returns the underlying pointed matched circle.
func (a *Algebra) PMC() *PMC { return a.pmc }

// IdemSize returns the number of pairs in every idempotent of the algebra.
func (a *Algebra) IdemSize() int { return a.idemSize }

// Ring returns F2.
func (a *Algebra) Ring() ring.Ring { return a.ring }

// MultOne reports whether only multiplicity-one elements are admitted.
func (a *Algebra) MultOne() bool { return a.multOne }

// Idempotents lists the idempotents of the algebra in lexicographic order.
func (a *Algebra) Idempotents() []algebra.Idempotent {
	idems := a.pmc.Idempotents(a.idemSize)
	out := make([]algebra.Idempotent, len(idems))
	for i, idem := range idems {
		out[i] = idem
	}

	return out
}

// NewDiagram anchors chord s at the left idempotent and returns the interned basis element.
func (a *Algebra) NewDiagram(left Idempotent, s Strands) (*StrandDiagram, error) {
	if left.pmc != a.pmc || s.pmc != a.pmc {
		return nil, fmt.Errorf("%w: foreign circle", ErrIncompatibleIdem)
	}
	if left.Size() != a.idemSize {
		return nil, fmt.Errorf("%w: idempotent %s has size %d, want %d", ErrIncompatibleIdem, left, left.Size(), a.idemSize)
	}
	right, ok := s.propagate(left)
	if !ok {
		return nil, fmt.Errorf("%w: %s at %s", ErrIncompatibleIdem, s, left)
	}

	return a.intern(left, right, s.moves), nil
}

// Diagram is NewDiagram for callers that already checked compatibility; it panics on error.
func (a *Algebra) Diagram(left Idempotent, s Strands) *StrandDiagram {
	d, err := a.NewDiagram(left, s)
	if err != nil {
		panic(err)
	}

	return d
}

// Anchor implements algebra.ChordAlgebra: it materialises a Strands chord at
// a pmc Idempotent. Panics on foreign types or incompatible input.
func (a *Algebra) Anchor(idem algebra.Idempotent, c algebra.Chord) algebra.Generator {
	left, ok := idem.(Idempotent)
	if !ok {
		panic(fmt.Errorf("%w: idempotent %v", algebra.ErrForeignGenerator, idem))
	}
	s, ok := c.(Strands)
	if !ok {
		panic(fmt.Errorf("%w: chord %v", algebra.ErrForeignGenerator, c))
	}

	return a.Diagram(left, s)
}

// IdempotentDiagram returns the identity element at idem.
func (a *Algebra) IdempotentDiagram(idem Idempotent) *StrandDiagram {
	return a.Diagram(idem, Strands{pmc: a.pmc})
}

// intern returns the unique diagram for (left, moves). moves must be sorted by start.
func (a *Algebra) intern(left, right Idempotent, moves []Move) *StrandDiagram {
	key := diagramKey{left: left.mask, moves: movesString(moves)}
	if d, ok := a.diagrams[key]; ok {
		return d
	}
	d := &StrandDiagram{
		parent: a,
		left:   left,
		right:  right,
		moves:  append([]Move(nil), moves...),
		mult:   multiplicity(a.pmc.n, moves),
	}
	a.diagrams[key] = d

	return d
}

// Generators enumerates the basis: for every idempotent, every chord that can start there.
// With WithMultOne only multiplicity-one diagrams are listed. The result is cached.
func (a *Algebra) Generators() []algebra.Generator {
	if a.gens != nil {
		return a.gens
	}
	gens := make([]algebra.Generator, 0)
	for _, left := range a.pmc.Idempotents(a.idemSize) {
		for _, moves := range a.chordsFrom(left) {
			s := Strands{pmc: a.pmc, moves: moves}
			if a.multOne && !s.IsMultOne() {
				continue
			}
			right, ok := s.propagate(left)
			if !ok {
				continue
			}
			gens = append(gens, a.intern(left, right, moves))
		}
	}
	a.gens = gens

	return a.gens
}

// chordsFrom lists every move set whose starts occupy distinct pairs of left,
// in increasing order of start points. The empty chord comes first.
func (a *Algebra) chordsFrom(left Idempotent) [][]Move {
	n := a.pmc.n
	var out [][]Move
	var moves []Move
	usedEnd := make([]bool, n)

	var rec func(p int, startPairs uint64)
	rec = func(p int, startPairs uint64) {
		if p == n {
			out = append(out, append([]Move(nil), moves...))
			return
		}
		// p is not a start.
		rec(p+1, startPairs)

		bit := uint64(1) << uint(a.pmc.pairOf[p])
		if left.mask&bit == 0 || startPairs&bit != 0 {
			return
		}
		for q := p + 1; q < n; q++ {
			if usedEnd[q] {
				continue
			}
			usedEnd[q] = true
			moves = append(moves, Move{Start: p, End: q})
			rec(p+1, startPairs|bit)
			moves = moves[:len(moves)-1]
			usedEnd[q] = false
		}
	}
	rec(0, 0)

	return out
}

// own asserts that g is a diagram of a.
func (a *Algebra) own(g algebra.Generator) *StrandDiagram {
	d, ok := g.(*StrandDiagram)
	if !ok || d.parent != a {
		panic(fmt.Errorf("%w: %v", algebra.ErrForeignGenerator, g))
	}

	return d
}

// Multiply returns x·y. The product is zero unless the right idempotent of x
// equals the left idempotent of y; with MultOne it is also zero when the
// combined multiplicity exceeds one.
func (a *Algebra) Multiply(x, y algebra.Generator) algebra.Element[algebra.Generator] {
	dx, dy := a.own(x), a.own(y)
	out := algebra.NewElement[algebra.Generator](a.ring)
	if dx.right != dy.left {
		return out
	}
	if a.multOne {
		for i := range dx.mult {
			if dx.mult[i]+dy.mult[i] > 1 {
				return out
			}
		}
	}
	switch {
	case dx.IsIdempotent():
		out.Add(dy, 1)
		return out
	case dy.IsIdempotent():
		out.Add(dx, 1)
		return out
	}

	for _, p := range dx.expansion() {
		ip := inversions(p)
		for _, q := range dy.expansion() {
			c, ok := compose(p, q)
			if !ok || inversions(c) != ip+inversions(q) {
				continue
			}
			if d, ok := a.decode(c); ok {
				out.Add(d, 1)
			}
		}
	}

	return out
}

// Diff returns the differential of x: the sum of all single crossing
// resolutions that lower the inversion count by exactly one.
func (a *Algebra) Diff(x algebra.Generator) algebra.Element[algebra.Generator] {
	dx := a.own(x)
	out := algebra.NewElement[algebra.Generator](a.ring)
	if len(dx.moves) == 0 {
		return out
	}

	for _, p := range dx.expansion() {
		ip := inversions(p)
		for i := range p {
			if p[i] < 0 {
				continue
			}
			for j := i + 1; j < len(p); j++ {
				if p[j] < 0 || p[i] <= p[j] {
					continue
				}
				q := append(perm(nil), p...)
				q[i], q[j] = p[j], p[i]
				if inversions(q) != ip-1 {
					continue
				}
				if d, ok := a.decode(q); ok {
					out.Add(d, 1)
				}
			}
		}
	}

	return out
}
