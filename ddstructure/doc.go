// SPDX-License-Identifier: MIT

// Package ddstructure implements finite type DD structures over a pair of
// DGAs acting on the left, and the check of their structure equation
//
//	(μ1 ⊗ μ2)(δ¹ ∘ δ¹) + (d1 ⊗ 1 + 1 ⊗ d2)(δ¹) = 0.
//
// The package serves as the verification oracle for type DA structures: a DA
// structure is rewritten as a DD structure over its D-side algebra and the
// cobar algebra of its A-side algebra, and checked here.
//
// Contract violations (foreign or unregistered generators, coefficients whose
// idempotents do not match the endpoints) panic with errors wrapping the
// sentinels below. A failed structure equation is not an error: TestDelta
// returns false and Violations lists the offending terms.
//
// Errors:
//
//	ErrWrongParent         - generator owned by another structure.
//	ErrUnknownGenerator    - generator never passed to AddGenerator.
//	ErrIdempotentMismatch  - coefficient idempotents disagree with the endpoints.
package ddstructure
