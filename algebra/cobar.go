// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/bordered/ring"
)

// Cobar is the cobar construction of a DGA B.
//
// Its generators are tensor-star sequences (b1*, ..., bn*) of non-idempotent
// generators of B whose idempotents chain, plus one empty sequence per
// idempotent of B. Multiplication is concatenation; the differential is the
// dual of the bar differential of B, i.e. it splits one bi* along the
// differential and along the multiplication of B.
//
// Cobar implements DGA; Generators returns nil since the basis is infinite.
type Cobar struct {
	base DGA

	index map[Generator]int          // base generator → stable index used in keys
	stars map[starKey]*StarGenerator // interned generators

	dualReady bool
	diffDual  map[Generator]Element[Generator] // g → Σ coeff·c over c with g in d(c)
	multDual  map[Generator][]factorization    // g → pairs (b, c) with g in b·c
}

// starKey identifies a StarGenerator: the index sequence plus the idempotent tag of empty sequences.
type starKey struct {
	idem Idempotent
	seq  string
}

// factorization records coeff·g inside left·right.
type factorization struct {
	left, right Generator
	coeff       int
}

// NewCobar returns the cobar algebra of base.
func NewCobar(base DGA) *Cobar {
	c := &Cobar{
		base:  base,
		index: make(map[Generator]int),
		stars: make(map[starKey]*StarGenerator),
	}
	for _, g := range base.Generators() {
		c.indexOf(g)
	}

	return c
}

// Base returns the algebra B the cobar algebra was built from.
func (c *Cobar) Base() DGA { return c.base }

// Ring returns the coefficient ring of B.
func (c *Cobar) Ring() ring.Ring { return c.base.Ring() }

// MultOne mirrors the flag of B.
func (c *Cobar) MultOne() bool { return c.base.MultOne() }

// Generators returns nil: the cobar algebra has no finite basis.
func (c *Cobar) Generators() []Generator { return nil }

// indexOf returns the stable index of g, assigning the next one on first sight.
func (c *Cobar) indexOf(g Generator) int {
	if i, ok := c.index[g]; ok {
		return i
	}
	i := len(c.index)
	c.index[g] = i

	return i
}

// Star interns the tensor-star generator of seq. idem tags the empty
// sequence and is ignored otherwise.
//
// Panics with ErrIdempotentChain if consecutive entries do not chain, and
// with ErrMissingIdempotent if seq is empty and idem is nil.
func (c *Cobar) Star(seq []Generator, idem Idempotent) *StarGenerator {
	if len(seq) == 0 {
		if idem == nil {
			panic(ErrMissingIdempotent)
		}
	} else {
		idem = nil
		for i := 0; i+1 < len(seq); i++ {
			if seq[i].RightIdem() != seq[i+1].LeftIdem() {
				panic(fmt.Errorf("%w: %s then %s", ErrIdempotentChain, seq[i], seq[i+1]))
			}
		}
	}

	var sb strings.Builder
	for i, g := range seq {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c.indexOf(g)))
	}
	key := starKey{idem: idem, seq: sb.String()}
	if s, ok := c.stars[key]; ok {
		return s
	}

	s := &StarGenerator{parent: c, seq: append([]Generator(nil), seq...), idem: idem}
	c.stars[key] = s

	return s
}

// own asserts that g is a StarGenerator of c.
func (c *Cobar) own(g Generator) *StarGenerator {
	s, ok := g.(*StarGenerator)
	if !ok || s.parent != c {
		panic(fmt.Errorf("%w: %v", ErrForeignGenerator, g))
	}

	return s
}

// Multiply concatenates a and b when the right idempotent of a matches the
// left idempotent of b; otherwise the product is zero.
func (c *Cobar) Multiply(a, b Generator) Element[Generator] {
	sa, sb := c.own(a), c.own(b)
	out := NewElement[Generator](c.Ring())
	if sa.RightIdem() != sb.LeftIdem() {
		return out
	}
	switch {
	case len(sa.seq) == 0:
		out.Add(sb, c.Ring().One())
	case len(sb.seq) == 0:
		out.Add(sa, c.Ring().One())
	default:
		seq := make([]Generator, 0, len(sa.seq)+len(sb.seq))
		seq = append(seq, sa.seq...)
		seq = append(seq, sb.seq...)
		out.Add(c.Star(seq, nil), c.Ring().One())
	}

	return out
}

// Diff returns the dual of the bar differential applied to a.
// Empty sequences are cycles.
func (c *Cobar) Diff(a Generator) Element[Generator] {
	s := c.own(a)
	r := c.Ring()
	out := NewElement[Generator](r)
	if len(s.seq) == 0 {
		return out
	}
	c.buildDual()

	for i, g := range s.seq {
		// Replace g by c with g in d(c).
		if dd, ok := c.diffDual[g]; ok {
			for _, src := range dd.Keys() {
				out.Add(c.Star(splice(s.seq, i, src), nil), dd.Coeff(src))
			}
		}
		// Replace g by (b, c) with g in b·c.
		for _, f := range c.multDual[g] {
			out.Add(c.Star(splice(s.seq, i, f.left, f.right), nil), f.coeff)
		}
	}

	return out
}

// buildDual tabulates the transposes of the multiplication and differential
// of B restricted to non-idempotent generators.
func (c *Cobar) buildDual() {
	if c.dualReady {
		return
	}
	r := c.Ring()
	c.diffDual = make(map[Generator]Element[Generator])
	c.multDual = make(map[Generator][]factorization)

	gens := make([]Generator, 0)
	for _, g := range c.base.Generators() {
		if !g.IsIdempotent() {
			gens = append(gens, g)
		}
	}

	for _, src := range gens {
		d := c.base.Diff(src)
		for _, g := range d.Keys() {
			if g.IsIdempotent() {
				continue
			}
			if _, ok := c.diffDual[g]; !ok {
				c.diffDual[g] = NewElement[Generator](r)
			}
			c.diffDual[g].Add(src, d.Coeff(g))
		}
	}

	for _, left := range gens {
		for _, right := range gens {
			if left.RightIdem() != right.LeftIdem() {
				continue
			}
			prod := c.base.Multiply(left, right)
			for _, g := range prod.Keys() {
				c.multDual[g] = append(c.multDual[g], factorization{left: left, right: right, coeff: prod.Coeff(g)})
			}
		}
	}
	c.dualReady = true
}

// splice returns a copy of seq with position i replaced by repl.
func splice(seq []Generator, i int, repl ...Generator) []Generator {
	out := make([]Generator, 0, len(seq)-1+len(repl))
	out = append(out, seq[:i]...)
	out = append(out, repl...)
	out = append(out, seq[i+1:]...)

	return out
}

// StarGenerator is a generator (a1*, ..., an*) of a Cobar algebra.
type StarGenerator struct {
	parent *Cobar
	seq    []Generator
	idem   Idempotent // set only for the empty sequence
}

// Parent returns the cobar algebra owning s.
func (s *StarGenerator) Parent() *Cobar { return s.parent }

// Seq returns a copy of the underlying sequence.
func (s *StarGenerator) Seq() []Generator { return append([]Generator(nil), s.seq...) }

// Len returns the length of the sequence.
func (s *StarGenerator) Len() int { return len(s.seq) }

// LeftIdem returns the left idempotent of the first entry, or the tag of an empty sequence.
func (s *StarGenerator) LeftIdem() Idempotent {
	if len(s.seq) == 0 {
		return s.idem
	}

	return s.seq[0].LeftIdem()
}

// RightIdem returns the right idempotent of the last entry, or the tag of an empty sequence.
func (s *StarGenerator) RightIdem() Idempotent {
	if len(s.seq) == 0 {
		return s.idem
	}

	return s.seq[len(s.seq)-1].RightIdem()
}

// IsIdempotent reports whether s is an empty sequence.
func (s *StarGenerator) IsIdempotent() bool { return len(s.seq) == 0 }

// Multiplicity sums the multiplicity profiles of the entries.
func (s *StarGenerator) Multiplicity() []int {
	n := 0
	rows := make([][]int, 0, len(s.seq))
	for _, g := range s.seq {
		m := g.Multiplicity()
		if len(m) > n {
			n = len(m)
		}
		rows = append(rows, m)
	}

	return SumColumns(rows, n)
}

// IsMultOne reports whether the summed multiplicity never exceeds one.
func (s *StarGenerator) IsMultOne() bool {
	for _, m := range s.Multiplicity() {
		if m > 1 {
			return false
		}
	}

	return true
}

// String renders "(a1*, a2*)", or "1_idem" for an empty sequence.
func (s *StarGenerator) String() string {
	if len(s.seq) == 0 {
		return "1_" + s.idem.String()
	}
	parts := make([]string, len(s.seq))
	for i, g := range s.seq {
		parts[i] = g.String() + "*"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
