// SPDX-License-Identifier: MIT

// Package pmc implements pointed matched circles and their strand algebras,
// the combinatorial primitives a type DA structure is built on.
//
// A pointed matched circle Z of genus k has 4k points 0..4k-1 on an oriented
// line, matched in 2k pairs. An idempotent is a set of pairs. A chord
// (Strands) is a set of upward moves (start < end) with distinct starts and
// distinct ends. The strand algebra A(Z) restricted to idempotents of one
// size has as basis the StrandDiagrams: a left idempotent plus a chord whose
// start pairs lie in it; the untouched pairs carry horizontal strands.
//
// Key operations:
//
//	New(n, pairs)             validating constructor (sentinel errors)
//	NewSplit(g), NewAntipodal(g)  built-in families (SplitPMC, AntipodalPMC panic instead)
//	(*PMC).Idempotents(size)  all idempotents of a given size, in lexicographic order
//	Strands.PropagateRight    right idempotent reached from a left one, if any
//	Strands.IdemCompatible    does the chord connect the given idempotents
//	NewAlgebra(z, opts...)    A(Z) with WithIdemSize / WithMultOne
//	(*Algebra).Diagram        materialise a chord at an idempotent (interned)
//
// Multiplication and differential are evaluated in the strands algebra
// A(4k, k): each diagram expands into one partial permutation per section of
// its horizontal pairs, products compose permutations whose inversion counts
// add, differentials resolve crossings that drop the inversion count by one.
// The result is read back on the canonical section (lower point of every
// horizontal pair), which determines each coefficient of A(Z).
//
// Complexity:
//
//   - Multiply: O(2^h1 · 2^h2 · n^2) for h1, h2 horizontal pairs.
//   - Diff:     O(2^h · n^4).
//   - Generators: enumerated once and cached.
//
// Errors:
//
//	ErrBadPointCount     - number of points is not a positive multiple of 4.
//	ErrBadMatching       - pairs do not partition the points.
//	ErrPointOutOfRange   - a point lies outside 0..n-1.
//	ErrTooLarge          - more than 64 pairs (idempotents are bitmasks).
//	ErrBadMove           - a move is not upward, or starts/ends repeat.
//	ErrIncompatibleIdem  - a chord cannot be placed at the given idempotent.
package pmc
