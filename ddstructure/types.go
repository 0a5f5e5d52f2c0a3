// SPDX-License-Identifier: MIT

package ddstructure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bordered/algebra"
)

// Sentinel errors, used as panic values for contract violations.
var (
	// ErrWrongParent indicates a generator that belongs to a different structure.
	ErrWrongParent = errors.New("ddstructure: generator belongs to another structure")

	// ErrUnknownGenerator indicates a generator that was not added to the structure.
	ErrUnknownGenerator = errors.New("ddstructure: generator not registered")

	// ErrIdempotentMismatch indicates an arrow whose coefficients do not match the endpoint idempotents.
	ErrIdempotentMismatch = errors.New("ddstructure: idempotent mismatch")
)

// Generator is a generator of a type DD structure. It is a handle owned by
// exactly one structure; equality is pointer equality.
type Generator struct {
	parent *SimpleStructure
	idem1  algebra.Idempotent // algebra1 side
	idem2  algebra.Idempotent // algebra2 side
	name   string
}

// NewGenerator returns a generator owned by parent. It still has to be
// registered with parent.AddGenerator.
func NewGenerator(parent *SimpleStructure, idem1, idem2 algebra.Idempotent, name string) *Generator {
	return &Generator{parent: parent, idem1: idem1, idem2: idem2, name: name}
}

// Parent returns the owning structure.
func (g *Generator) Parent() *SimpleStructure { return g.parent }

// Idem1 returns the algebra1-side idempotent.
func (g *Generator) Idem1() algebra.Idempotent { return g.idem1 }

// Idem2 returns the algebra2-side idempotent.
func (g *Generator) Idem2() algebra.Idempotent { return g.idem2 }

// Name returns the display name.
func (g *Generator) Name() string { return g.name }

// String renders "name(idem1,idem2)".
func (g *Generator) String() string {
	return fmt.Sprintf("%s(%s,%s)", g.name, g.idem1, g.idem2)
}

// Target is one term of δ¹: a coefficient in each algebra and a target generator.
type Target struct {
	A1 algebra.Generator
	A2 algebra.Generator
	To *Generator
}

// String renders "(a1, a2)*to".
func (t Target) String() string {
	return fmt.Sprintf("(%s, %s)*%s", t.A1, t.A2, t.To)
}

// Violation is a nonzero term of the structure equation evaluated at From.
type Violation struct {
	From  *Generator
	To    *Generator
	A1    algebra.Generator
	A2    algebra.Generator
	Coeff int
}

// String renders the violating term.
func (v Violation) String() string {
	return fmt.Sprintf("%s -> %d*(%s, %s)*%s", v.From, v.Coeff, v.A1, v.A2, v.To)
}
