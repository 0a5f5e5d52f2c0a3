// SPDX-License-Identifier: MIT

package pmc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/bordered/algebra"
)

// Move is one upward strand of a chord, Start < End.
type Move struct {
	Start, End int
}

// Strands is a chord: a set of upward moves with distinct starts and distinct ends,
// stored sorted by start. It carries no idempotent; Algebra.Diagram anchors it.
type Strands struct {
	pmc   *PMC
	moves []Move
}

// NewStrands validates moves against z and returns the chord.
func NewStrands(z *PMC, moves ...Move) (Strands, error) {
	starts := make(map[int]bool, len(moves))
	ends := make(map[int]bool, len(moves))
	for _, m := range moves {
		if m.Start < 0 || m.Start >= z.n || m.End < 0 || m.End >= z.n {
			return Strands{}, fmt.Errorf("%w: %d->%d", ErrPointOutOfRange, m.Start, m.End)
		}
		if m.Start >= m.End || starts[m.Start] || ends[m.End] {
			return Strands{}, fmt.Errorf("%w: %d->%d", ErrBadMove, m.Start, m.End)
		}
		starts[m.Start], ends[m.End] = true, true
	}
	sorted := append([]Move(nil), moves...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	return Strands{pmc: z, moves: sorted}, nil
}

// MustStrands is NewStrands for literals known to be valid; it panics on error.
func MustStrands(z *PMC, moves ...Move) Strands {
	s, err := NewStrands(z, moves...)
	if err != nil {
		panic(err)
	}

	return s
}

// PMC returns the circle the chord lives on.
func (s Strands) PMC() *PMC { return s.pmc }

// Moves returns a copy of the moves, sorted by start.
func (s Strands) Moves() []Move { return append([]Move(nil), s.moves...) }

// Len returns the number of moves.
func (s Strands) Len() int { return len(s.moves) }

// Multiplicity returns, for each interval [i, i+1], how many moves cover it.
func (s Strands) Multiplicity() []int { return multiplicity(s.pmc.n, s.moves) }

// IsMultOne reports whether no interval is covered twice.
func (s Strands) IsMultOne() bool { return maxOf(s.Multiplicity()) <= 1 }

// PropagateRight returns the right idempotent reached when the chord starts
// at left. The boolean is false when the chord cannot start there: a start
// pair is unoccupied or repeated, an end pair collides, or left is not an
// idempotent of the same circle.
func (s Strands) PropagateRight(left algebra.Idempotent) (algebra.Idempotent, bool) {
	idem, ok := left.(Idempotent)
	if !ok {
		return nil, false
	}
	right, ok := s.propagate(idem)
	if !ok {
		return nil, false
	}

	return right, true
}

// IdemCompatible reports whether the chord leads from left to right.
func (s Strands) IdemCompatible(left, right algebra.Idempotent) bool {
	got, ok := s.PropagateRight(left)

	return ok && got == right
}

// propagate is PropagateRight on concrete idempotents.
func (s Strands) propagate(left Idempotent) (Idempotent, bool) {
	if left.pmc != s.pmc {
		return Idempotent{}, false
	}
	rest := left.mask
	for _, m := range s.moves {
		bit := uint64(1) << uint(s.pmc.pairOf[m.Start])
		if rest&bit == 0 {
			return Idempotent{}, false
		}
		rest &^= bit
	}
	right := rest
	for _, m := range s.moves {
		bit := uint64(1) << uint(s.pmc.pairOf[m.End])
		if right&bit != 0 {
			return Idempotent{}, false
		}
		right |= bit
	}

	return Idempotent{pmc: s.pmc, mask: right}, true
}

// String renders "(0->1, 2->3)".
func (s Strands) String() string { return movesString(s.moves) }

func movesString(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fmt.Sprintf("%d->%d", m.Start, m.End)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// multiplicity counts, per interval [i, i+1] of n points, the moves covering it.
func multiplicity(n int, moves []Move) []int {
	out := make([]int, n-1)
	for _, m := range moves {
		for i := m.Start; i < m.End; i++ {
			out[i]++
		}
	}

	return out
}

func maxOf(xs []int) int {
	best := 0
	for _, x := range xs {
		if x > best {
			best = x
		}
	}

	return best
}
