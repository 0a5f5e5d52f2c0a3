// SPDX-License-Identifier: MIT

package pmc

import "github.com/katalvlaran/bordered/algebra"

// StrandDiagram is a basis element of a strand algebra: a chord anchored at
// a left idempotent. Pairs of the left idempotent not used by a start carry
// horizontal strands. Obtain diagrams from Algebra.Diagram; they are interned.
type StrandDiagram struct {
	parent      *Algebra
	left, right Idempotent
	moves       []Move
	mult        []int

	sections []perm // lazily built by expansion
}

// Parent returns the algebra the diagram belongs to.
func (d *StrandDiagram) Parent() *Algebra { return d.parent }

// Left returns the left idempotent.
func (d *StrandDiagram) Left() Idempotent { return d.left }

// Right returns the right idempotent.
func (d *StrandDiagram) Right() Idempotent { return d.right }

// LeftIdem implements algebra.Generator.
func (d *StrandDiagram) LeftIdem() algebra.Idempotent { return d.left }

// RightIdem implements algebra.Generator.
func (d *StrandDiagram) RightIdem() algebra.Idempotent { return d.right }

// Strands returns the chord of the diagram.
func (d *StrandDiagram) Strands() Strands { return Strands{pmc: d.parent.pmc, moves: d.Moves()} }

// Moves returns a copy of the moving strands.
func (d *StrandDiagram) Moves() []Move { return append([]Move(nil), d.moves...) }

// IsIdempotent reports whether the diagram has only horizontal strands.
func (d *StrandDiagram) IsIdempotent() bool { return len(d.moves) == 0 }

// Multiplicity returns a copy of the per-interval multiplicity.
func (d *StrandDiagram) Multiplicity() []int { return append([]int(nil), d.mult...) }

// IsMultOne reports whether no interval is covered twice.
func (d *StrandDiagram) IsMultOne() bool { return maxOf(d.mult) <= 1 }

// String renders "I[0]" for idempotents and "[0](0->1)" otherwise.
func (d *StrandDiagram) String() string {
	if len(d.moves) == 0 {
		return "I" + d.left.String()
	}

	return d.left.String() + movesString(d.moves)
}

// horizontals returns the pairs of the left idempotent not used as starts.
func (d *StrandDiagram) horizontals() []int {
	rest := d.left.mask
	for _, m := range d.moves {
		rest &^= uint64(1) << uint(d.parent.pmc.pairOf[m.Start])
	}

	return Idempotent{pmc: d.parent.pmc, mask: rest}.Pairs()
}

// expansion lists the partial permutations of A(n, k) summing to d: one per
// choice of endpoint for every horizontal pair.
func (d *StrandDiagram) expansion() []perm {
	if d.sections != nil {
		return d.sections
	}
	z := d.parent.pmc
	base := make(perm, z.n)
	for i := range base {
		base[i] = -1
	}
	for _, m := range d.moves {
		base[m.Start] = m.End
	}

	hs := d.horizontals()
	out := make([]perm, 0, 1<<uint(len(hs)))
	for choice := 0; choice < 1<<uint(len(hs)); choice++ {
		p := append(perm(nil), base...)
		for k, pr := range hs {
			pt := z.pairs[pr][(choice>>uint(k))&1]
			p[pt] = pt
		}
		out = append(out, p)
	}
	d.sections = out

	return out
}
