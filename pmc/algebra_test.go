// SPDX-License-Identifier: MIT
package pmc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/pmc"
)

// torus returns the genus-one strand algebra together with its named generators.
func torus(t *testing.T) (*pmc.Algebra, map[string]*pmc.StrandDiagram) {
	t.Helper()
	z := pmc.SplitPMC(1)
	alg := pmc.NewAlgebra(z)
	i0, err := z.Idempotent(0)
	require.NoError(t, err)
	i1, err := z.Idempotent(1)
	require.NoError(t, err)

	chord := func(left pmc.Idempotent, start, end int) *pmc.StrandDiagram {
		return alg.Diagram(left, pmc.MustStrands(z, pmc.Move{Start: start, End: end}))
	}

	return alg, map[string]*pmc.StrandDiagram{
		"i0":     alg.IdempotentDiagram(i0),
		"i1":     alg.IdempotentDiagram(i1),
		"rho1":   chord(i0, 0, 1),
		"rho2":   chord(i1, 1, 2),
		"rho3":   chord(i0, 2, 3),
		"rho12":  chord(i0, 0, 2),
		"rho23":  chord(i1, 1, 3),
		"rho123": chord(i0, 0, 3),
	}
}

// single wraps one diagram as an element for comparisons.
func single(alg *pmc.Algebra, d *pmc.StrandDiagram) algebra.Element[algebra.Generator] {
	return algebra.Single[algebra.Generator](alg.Ring(), d, 1)
}

// ------------------------------------------------------------------------
// 1. Basis
// ------------------------------------------------------------------------

func TestAlgebra_TorusGenerators(t *testing.T) {
	alg, rho := torus(t)
	gens := alg.Generators()
	require.Len(t, gens, 8)

	for _, d := range rho {
		assert.Contains(t, gens, algebra.Generator(d))
	}
	// Interning: the same (idempotent, chord) is the same pointer.
	again, _ := torus(t)
	assert.NotSame(t, again.Generators()[0], gens[0])
	assert.Same(t, alg.Generators()[0], gens[0])

	assert.Equal(t, "I[0]", rho["i0"].String())
	assert.Equal(t, "[0](0->2)", rho["rho12"].String())
	assert.True(t, rho["i1"].IsIdempotent())
	assert.False(t, rho["rho3"].IsIdempotent())
	assert.Equal(t, []int{1, 1, 1}, rho["rho123"].Multiplicity())
}

func TestAlgebra_GeneratorCounts(t *testing.T) {
	cases := []struct {
		name string
		alg  *pmc.Algebra
		want int
	}{
		{"torus size 0", pmc.NewAlgebra(pmc.SplitPMC(1), pmc.WithIdemSize(0)), 1},
		{"torus size 2", pmc.NewAlgebra(pmc.SplitPMC(1), pmc.WithIdemSize(2)), 7},
		{"split genus 2", pmc.NewAlgebra(pmc.SplitPMC(2)), 238},
		{"split genus 2 mult one", pmc.NewAlgebra(pmc.SplitPMC(2), pmc.WithMultOne()), 154},
		{"antipodal genus 2 mult one", pmc.NewAlgebra(pmc.AntipodalPMC(2), pmc.WithMultOne()), 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.alg.Generators(), tc.want)
		})
	}
}

func TestAlgebra_Options(t *testing.T) {
	assert.Panics(t, func() { pmc.WithIdemSize(-1) })
	assert.Panics(t, func() { pmc.NewAlgebra(pmc.SplitPMC(1), pmc.WithIdemSize(3)) })

	alg := pmc.NewAlgebra(pmc.SplitPMC(2), pmc.WithMultOne())
	assert.True(t, alg.MultOne())
	assert.Equal(t, 2, alg.IdemSize())
	assert.Len(t, alg.Idempotents(), 6)
}

func TestAlgebra_NewDiagramErrors(t *testing.T) {
	z := pmc.SplitPMC(1)
	alg := pmc.NewAlgebra(z)
	i1, _ := z.Idempotent(1)
	both, _ := z.Idempotent(0, 1)
	rho1 := pmc.MustStrands(z, pmc.Move{Start: 0, End: 1})

	_, err := alg.NewDiagram(i1, rho1)
	assert.ErrorIs(t, err, pmc.ErrIncompatibleIdem)

	_, err = alg.NewDiagram(both, rho1)
	assert.ErrorIs(t, err, pmc.ErrIncompatibleIdem)

	other := pmc.SplitPMC(1)
	o0, _ := other.Idempotent(0)
	_, err = alg.NewDiagram(o0, rho1)
	assert.ErrorIs(t, err, pmc.ErrIncompatibleIdem)

	assert.Panics(t, func() { alg.Diagram(i1, rho1) })
}

// ------------------------------------------------------------------------
// 2. Multiplication and differential
// ------------------------------------------------------------------------

func TestAlgebra_TorusProducts(t *testing.T) {
	alg, rho := torus(t)
	zero := algebra.NewElement[algebra.Generator](alg.Ring())

	cases := []struct {
		a, b, want string
	}{
		{"rho1", "rho2", "rho12"},
		{"rho2", "rho3", "rho23"},
		{"rho12", "rho3", "rho123"},
		{"rho1", "rho23", "rho123"},
		{"i0", "rho1", "rho1"},
		{"rho1", "i1", "rho1"},
		{"i0", "i0", "i0"},
	}
	for _, tc := range cases {
		t.Run(tc.a+"*"+tc.b, func(t *testing.T) {
			got := alg.Multiply(rho[tc.a], rho[tc.b])
			assert.True(t, got.Equal(single(alg, rho[tc.want])), "got %s", got)
		})
	}

	for _, pair := range [][2]string{{"rho2", "rho1"}, {"rho3", "rho2"}, {"rho1", "rho1"}, {"i1", "rho1"}, {"rho1", "rho3"}} {
		got := alg.Multiply(rho[pair[0]], rho[pair[1]])
		assert.True(t, got.Equal(zero), "%s*%s = %s", pair[0], pair[1], got)
	}

	for name, d := range rho {
		assert.True(t, alg.Diff(d).IsZero(), "d(%s)", name)
	}
}

func TestAlgebra_CrossingDifferential(t *testing.T) {
	z := pmc.SplitPMC(1)
	alg := pmc.NewAlgebra(z, pmc.WithIdemSize(2))
	both, _ := z.Idempotent(0, 1)

	crossed := alg.Diagram(both, pmc.MustStrands(z, pmc.Move{Start: 0, End: 3}, pmc.Move{Start: 1, End: 2}))
	resolved := alg.Diagram(both, pmc.MustStrands(z, pmc.Move{Start: 0, End: 2}, pmc.Move{Start: 1, End: 3}))

	assert.True(t, alg.Diff(crossed).Equal(single(alg, resolved)))
	assert.True(t, alg.Diff(resolved).IsZero())
}

func TestAlgebra_HorizontalStrands(t *testing.T) {
	z := pmc.SplitPMC(2)
	alg := pmc.NewAlgebra(z)
	i02, _ := z.Idempotent(0, 2)
	i12, _ := z.Idempotent(1, 2)

	a := alg.Diagram(i02, pmc.MustStrands(z, pmc.Move{Start: 0, End: 1}))
	b := alg.Diagram(i12, pmc.MustStrands(z, pmc.Move{Start: 1, End: 2}))
	want := alg.Diagram(i02, pmc.MustStrands(z, pmc.Move{Start: 0, End: 2}))

	assert.Equal(t, i12, a.Right())
	assert.Equal(t, "[0, 2](0->1)", a.String())
	assert.True(t, alg.Multiply(a, b).Equal(single(alg, want)))
}

func TestAlgebra_MultOneKillsProducts(t *testing.T) {
	z := pmc.SplitPMC(1)
	both, _ := z.Idempotent(0, 1)
	upper := pmc.MustStrands(z, pmc.Move{Start: 1, End: 3})
	lower := pmc.MustStrands(z, pmc.Move{Start: 0, End: 2})

	full := pmc.NewAlgebra(z, pmc.WithIdemSize(2))
	want := full.Diagram(both, pmc.MustStrands(z, pmc.Move{Start: 0, End: 2}, pmc.Move{Start: 1, End: 3}))
	assert.True(t, full.Multiply(full.Diagram(both, upper), full.Diagram(both, lower)).Equal(single(full, want)))

	one := pmc.NewAlgebra(z, pmc.WithIdemSize(2), pmc.WithMultOne())
	assert.True(t, one.Multiply(one.Diagram(both, upper), one.Diagram(both, lower)).IsZero())
	assert.Len(t, one.Generators(), 5)
}

func TestAlgebra_ForeignGeneratorPanics(t *testing.T) {
	alg, _ := torus(t)
	_, other := torus(t)

	assert.PanicsWithError(t, algebra.ErrForeignGenerator.Error()+": [0](0->1)", func() {
		alg.Multiply(other["rho1"], other["rho2"])
	})
}

// ------------------------------------------------------------------------
// 3. DGA axioms
// ------------------------------------------------------------------------

// checkDGA verifies d² = 0, the Leibniz rule and, when assoc is set, associativity
// over every composable tuple of generators.
func checkDGA(t *testing.T, alg *pmc.Algebra, assoc bool) {
	t.Helper()
	r := alg.Ring()
	gens := alg.Generators()
	diff := func(e algebra.Element[algebra.Generator]) algebra.Element[algebra.Generator] {
		out := algebra.NewElement[algebra.Generator](r)
		for _, k := range e.Keys() {
			out.AddElement(alg.Diff(k).Scale(e.Coeff(k)))
		}
		return out
	}

	for _, a := range gens {
		require.True(t, diff(alg.Diff(a)).IsZero(), "d²(%s)", a)
	}

	for _, a := range gens {
		for _, b := range gens {
			if a.RightIdem() != b.LeftIdem() {
				continue
			}
			ab := alg.Multiply(a, b)
			lhs := diff(ab)
			lhs.AddElement(algebra.MultiplyElements(alg, alg.Diff(a), single(alg, b.(*pmc.StrandDiagram))))
			lhs.AddElement(algebra.MultiplyElements(alg, single(alg, a.(*pmc.StrandDiagram)), alg.Diff(b)))
			require.True(t, lhs.IsZero(), "Leibniz at %s, %s: %s", a, b, lhs)

			if !assoc {
				continue
			}
			for _, c := range gens {
				if b.RightIdem() != c.LeftIdem() {
					continue
				}
				left := algebra.MultiplyElements(alg, ab, single(alg, c.(*pmc.StrandDiagram)))
				right := algebra.MultiplyElements(alg, single(alg, a.(*pmc.StrandDiagram)), alg.Multiply(b, c))
				require.True(t, left.Equal(right), "(%s %s) %s", a, b, c)
			}
		}
	}
}

func TestAlgebra_DGAAxioms(t *testing.T) {
	cases := []struct {
		name  string
		alg   *pmc.Algebra
		assoc bool
	}{
		{"torus", pmc.NewAlgebra(pmc.SplitPMC(1)), true},
		{"torus size 2", pmc.NewAlgebra(pmc.SplitPMC(1), pmc.WithIdemSize(2)), true},
		{"split genus 2", pmc.NewAlgebra(pmc.SplitPMC(2)), !testing.Short()},
		{"split genus 2 mult one", pmc.NewAlgebra(pmc.SplitPMC(2), pmc.WithMultOne()), !testing.Short()},
		{"antipodal genus 2 mult one", pmc.NewAlgebra(pmc.AntipodalPMC(2), pmc.WithMultOne()), !testing.Short()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkDGA(t, tc.alg, tc.assoc)
		})
	}
}
