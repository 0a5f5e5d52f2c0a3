// SPDX-License-Identifier: MIT

// Package dastructure implements type DA structures: a generator together
// with a sequence of A-side algebra elements produces, through δ¹, a weighted
// sum of (D-side algebra element, generator) pairs.
//
// 🚀 What is here?
//
//	Generator        - handle owned by one structure, carrying (idem1, idem2) and a name.
//	Structure        - capability interface: Delta, RMultiply, AtensorM.
//	SimpleStructure  - finite structure stored as a sparse operation table.
//	TensorModule     - A ⊗ M over the D-side algebra, with Leibniz differential.
//	IdentityDA       - identity bimodule of an algebra.
//	AddChord         - test a chord against every generator pair, keep the admissible ones.
//	FromChords       - generators from idempotent pairs, arrows from chord pairs.
//
// Invariants of SimpleStructure, kept after every mutation:
//
//  1. every generator referenced by the table is registered and owned by the structure;
//  2. the D-side coefficient of an arrow x → y starts at x.Idem1 and ends at y.Idem1;
//  3. A-side inputs chain x.Idem2 → ... → y.Idem2 (x.Idem2 == y.Idem2 for no inputs);
//  4. no entry holds the zero combination.
//
// Consistency is verified by translation: TestDelta rewrites the structure as
// a type DD structure over the D-side algebra and the cobar algebra of the
// A-side algebra (package ddstructure) and asks it for its structure equation.
//
// Errors:
//
//	ErrWrongParent         - generator owned by another structure.
//	ErrUnknownGenerator    - generator never registered.
//	ErrIdempotentMismatch  - arrow breaks invariant 2 or 3.
//	ErrUnsupportedSides    - action sides other than left D / right A.
//	ErrNotChordAlgebra     - AddChord on algebras that cannot anchor chords.
//	ErrNotImplemented      - δ¹ of a structure with no concrete table.
//
// All of these signal programmer error and are raised by panic. A chord that
// does not fit a generator pair is not an error; it is skipped silently.
package dastructure
