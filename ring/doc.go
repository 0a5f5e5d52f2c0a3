// SPDX-License-Identifier: MIT

// Package ring defines the coefficient ring contract used by every algebraic
// object in bordered, together with its one production instance: the
// two-element field F2.
//
// Coefficients are carried as plain ints. A Ring owns the arithmetic and the
// reduction to canonical representatives, so a linear combination never has
// to know which ring it lives over:
//
//	r := ring.F2
//	r.Add(1, 1) // 0
//	r.Mul(1, 1) // 1
//	r.IsZero(4) // true
package ring
