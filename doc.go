// SPDX-License-Identifier: MIT

// Package bordered builds type DA structures over strand algebras of pointed
// matched circles and checks their structure equation, as used in bordered
// Heegaard Floer homology.
//
// What is in the box?
//
//	A small, deterministic library over the two-element field:
//		• Strand algebras A(Z): basis enumeration, multiplication, differential
//		• Cobar algebras: tensor-star sequences with the dual bar differential
//		• Type DD structures: sparse δ¹ tables and the DD structure equation
//		• Type DA structures: sparse δ¹ tables, chord builders, identity bimodules
//		• DA → DD translation, so one equation check serves both
//		• YAML chord descriptions and the dastr command-line tool
//
// Packages:
//
//	ring/          - coefficient rings (F2)
//	algebra/       - DGA contracts, linear combinations, cobar construction
//	pmc/           - pointed matched circles, chords, strand algebras
//	ddstructure/   - type DD structures and their structure equation
//	dastructure/   - type DA structures, builders, translation to DD
//	chords/        - YAML chord descriptions decoded into DA structures
//	cmd/dastr/     - command-line front end (cobra, zap)
//
// Quick example, the identity bimodule of the torus algebra:
//
//	alg := pmc.NewAlgebra(pmc.SplitPMC(1))
//	s := dastructure.IdentityDA(alg)
//	fmt.Print(s)          // six arrows, one per non-idempotent generator
//	fmt.Println(s.TestDelta()) // true
//
// Contract violations (foreign generators, idempotents that do not chain)
// panic with wrapped sentinel errors; input errors from files and user
// data are returned.
//
//	go install github.com/katalvlaran/bordered/cmd/dastr@latest
package bordered
