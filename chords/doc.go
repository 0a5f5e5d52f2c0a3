// SPDX-License-Identifier: MIT

// Package chords reads a declarative description of a type DA structure built
// from chords and turns it into a dastructure.SimpleStructure.
//
// Document layout (YAML):
//
//	pmc:
//	  kind: split          # split | antipodal, with genus
//	  genus: 1
//	  # or explicit, never both:  points: 8, pairs: [[0, 2], [1, 3], ...]
//	mult_one: false
//	idem_size: 1           # optional, defaults to the genus
//	generators:            # one per idempotent pair; pair indices of the D and A sides
//	  - {d: [0], a: [0]}
//	  - {d: [1], a: [1]}
//	chords:                # D-side output chord and the list of A-side input chords
//	  - d: [[0, 1]]
//	    a: [[[0, 1]]]
//
// Both sides use the strand algebra of the same circle. Unknown keys are rejected.
//
// Errors:
//
//	ErrUnknownPMC   - neither explicit pairs nor a known kind with positive genus, or both forms at once.
//	ErrMalformed    - a move is not a two-element list.
//	ErrIdemSize     - idem_size exceeds the number of pairs, or a generator idempotent has the wrong size.
//
// Errors from package pmc (bad matching, invalid chord, genus too large) are wrapped with
// the offending position and remain matchable with errors.Is.
package chords
