// SPDX-License-Identifier: MIT

// Package algebra holds the contracts that every differential graded algebra
// in bordered satisfies, the sparse linear combinations they act on, and the
// cobar construction used to dualise an algebra into a coalgebra-like object.
//
// What lives here:
//
//	Idempotent   - opaque, comparable attachment label.
//	Generator    - basis element with left/right idempotents and a multiplicity profile.
//	DGA          - generators, multiplication, differential, multiplicity-one flag.
//	Element[K]   - formal linear combination over a ring.Ring; zero terms are never stored.
//	Cobar        - cobar algebra of a DGA; its generators are tensor-star sequences.
//	Chord        - unanchored element; ChordAlgebra.Anchor places it at an idempotent.
//
// Generators are compared with ==. Implementations intern their generators
// (one pointer per basis element) so equal generators are identical values and
// can key maps directly.
//
// Errors:
//
//	ErrForeignGenerator   - a generator from another algebra was passed in.
//	ErrIdempotentChain    - consecutive idempotents of a tensor-star sequence do not match.
//	ErrMissingIdempotent  - an empty tensor-star generator was requested without an idempotent.
//
// These are contract violations and are raised by panic; callers never see
// them as returned errors.
package algebra
