// SPDX-License-Identifier: MIT
// Package ddstructure_test verifies construction and the structure equation of type DD structures.
package ddstructure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/ddstructure"
	"github.com/katalvlaran/bordered/pmc"
	"github.com/katalvlaran/bordered/ring"
)

// fixture is a DD structure over two copies of the torus algebra.
type fixture struct {
	s      *ddstructure.SimpleStructure
	i0, i1 pmc.Idempotent
	rho    map[string]algebra.Generator
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	z := pmc.SplitPMC(1)
	alg := pmc.NewAlgebra(z)
	i0, err := z.Idempotent(0)
	require.NoError(t, err)
	i1, err := z.Idempotent(1)
	require.NoError(t, err)
	chord := func(left pmc.Idempotent, start, end int) algebra.Generator {
		return alg.Diagram(left, pmc.MustStrands(z, pmc.Move{Start: start, End: end}))
	}

	return fixture{
		s:  ddstructure.NewSimpleStructure(ring.F2, alg, alg),
		i0: i0,
		i1: i1,
		rho: map[string]algebra.Generator{
			"i0":    alg.IdempotentDiagram(i0),
			"rho1":  chord(i0, 0, 1),
			"rho2":  chord(i1, 1, 2),
			"rho12": chord(i0, 0, 2),
		},
	}
}

// add creates and registers a generator.
func (f fixture) add(idem1, idem2 pmc.Idempotent, name string) *ddstructure.Generator {
	g := ddstructure.NewGenerator(f.s, idem1, idem2, name)
	f.s.AddGenerator(g)

	return g
}

// ------------------------------------------------------------------------
// 1. Construction contracts
// ------------------------------------------------------------------------

func TestAddGenerator(t *testing.T) {
	f := newFixture(t)
	x := f.add(f.i0, f.i0, "x")
	f.s.AddGenerator(x)
	assert.Equal(t, 1, f.s.Len())
	assert.Equal(t, []*ddstructure.Generator{x}, f.s.Generators())
	assert.Equal(t, "x([0],[0])", x.String())
	assert.Same(t, f.s, x.Parent())

	other := newFixture(t)
	foreign := ddstructure.NewGenerator(other.s, f.i0, f.i0, "y")
	assert.PanicsWithError(t, ddstructure.ErrWrongParent.Error()+": y([0],[0])", func() { f.s.AddGenerator(foreign) })
}

// TestGenerators_RegistrationOrder VERIFIES that Generators follows AddGenerator
// calls, not NewGenerator calls.
func TestGenerators_RegistrationOrder(t *testing.T) {
	f := newFixture(t)
	first := ddstructure.NewGenerator(f.s, f.i0, f.i0, "a")
	second := ddstructure.NewGenerator(f.s, f.i1, f.i1, "b")
	assert.Zero(t, f.s.Len(), "creating a generator does not register it")

	f.s.AddGenerator(second)
	f.s.AddGenerator(first)
	f.s.AddGenerator(second)
	assert.Equal(t, []*ddstructure.Generator{second, first}, f.s.Generators())
}

// TestAddDelta_Contracts VERIFIES the endpoint and idempotent checks of AddDelta.
// Implementation:
//   - Stage 1: Register x at ([0],[0]) and y at ([1],[1]).
//   - Stage 2: Assert each mismatching or unregistered arrow panics.
//   - Stage 3: Add a valid arrow and assert it is stored under its source only.
//
// Panics:
//   - ddstructure.ErrIdempotentMismatch, ddstructure.ErrUnknownGenerator.
func TestAddDelta_Contracts(t *testing.T) {
	f := newFixture(t)
	x := f.add(f.i0, f.i0, "x")
	y := f.add(f.i1, f.i1, "y")
	loose := ddstructure.NewGenerator(f.s, f.i1, f.i1, "z")

	assert.Panics(t, func() { f.s.AddDelta(x, loose, f.rho["rho1"], f.rho["rho1"], 1) })
	assert.Panics(t, func() { f.s.AddDelta(y, x, f.rho["rho1"], f.rho["rho1"], 1) })
	assert.Panics(t, func() { f.s.AddDelta(x, y, f.rho["rho1"], f.rho["rho12"], 1) })
	assert.Panics(t, func() { f.s.AddDelta(x, x, f.rho["rho1"], f.rho["i0"], 1) })

	require.NotPanics(t, func() { f.s.AddDelta(x, y, f.rho["rho1"], f.rho["rho1"], 1) })
	assert.Equal(t, 1, f.s.Delta(x).Len())
	assert.True(t, f.s.Delta(y).IsZero())
}

func TestAddDelta_Cancellation(t *testing.T) {
	f := newFixture(t)
	x := f.add(f.i0, f.i0, "x")
	y := f.add(f.i1, f.i1, "y")

	f.s.AddDelta(x, y, f.rho["rho1"], f.rho["rho1"], 1)
	f.s.AddDelta(x, y, f.rho["rho1"], f.rho["rho1"], 1)
	assert.True(t, f.s.Delta(x).IsZero())
	assert.Equal(t, "Type DD Structure.\n", f.s.String())

	f.s.AddDelta(x, y, f.rho["rho1"], f.rho["rho1"], 3)
	assert.Equal(t, "Type DD Structure.\nd(x([0],[0])) = ([0](0->1), [0](0->1))*y([1],[1])\n", f.s.String())

	// Delta hands out copies.
	d := f.s.Delta(x)
	d.Add(ddstructure.Target{A1: f.rho["rho1"], A2: f.rho["rho1"], To: y}, 1)
	assert.Equal(t, 1, f.s.Delta(x).Len())
}

// ------------------------------------------------------------------------
// 2. Structure equation
// ------------------------------------------------------------------------

func TestTestDelta_SingleArrow(t *testing.T) {
	f := newFixture(t)
	x := f.add(f.i0, f.i0, "x")
	y := f.add(f.i1, f.i1, "y")
	f.s.AddDelta(x, y, f.rho["rho1"], f.rho["rho1"], 1)

	assert.True(t, f.s.TestDelta())
	assert.Empty(t, f.s.Violations())
}

func TestTestDelta_Violation(t *testing.T) {
	f := newFixture(t)
	x := f.add(f.i0, f.i0, "x")
	y := f.add(f.i1, f.i1, "y")
	w := f.add(f.i0, f.i0, "w")
	f.s.AddDelta(x, y, f.rho["rho1"], f.rho["rho1"], 1)
	f.s.AddDelta(y, w, f.rho["rho2"], f.rho["rho2"], 1)

	require.False(t, f.s.TestDelta())
	violations := f.s.Violations()
	require.Len(t, violations, 1)
	v := violations[0]
	assert.Same(t, x, v.From)
	assert.Same(t, w, v.To)
	assert.Equal(t, f.rho["rho12"], v.A1)
	assert.Equal(t, f.rho["rho12"], v.A2)
	assert.Equal(t, 1, v.Coeff)
	assert.Equal(t, "x([0],[0]) -> 1*([0](0->2), [0](0->2))*w([0],[0])", v.String())

	// A second path through another middle generator cancels the square.
	u := f.add(f.i1, f.i1, "u")
	f.s.AddDelta(x, u, f.rho["rho1"], f.rho["rho1"], 1)
	f.s.AddDelta(u, w, f.rho["rho2"], f.rho["rho2"], 1)
	assert.True(t, f.s.TestDelta())
}
