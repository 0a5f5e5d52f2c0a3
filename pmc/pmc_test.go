// SPDX-License-Identifier: MIT
// Package pmc_test verifies pointed matched circles, idempotents and chords.
package pmc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bordered/pmc"
)

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		pairs [][2]int
		want  error
	}{
		{"zero points", 0, nil, pmc.ErrBadPointCount},
		{"not multiple of four", 6, [][2]int{{0, 1}, {2, 3}, {4, 5}}, pmc.ErrBadPointCount},
		{"too few pairs", 4, [][2]int{{0, 2}}, pmc.ErrBadMatching},
		{"point out of range", 4, [][2]int{{0, 2}, {1, 4}}, pmc.ErrPointOutOfRange},
		{"negative point", 4, [][2]int{{0, 2}, {-1, 3}}, pmc.ErrPointOutOfRange},
		{"repeated point", 4, [][2]int{{0, 2}, {2, 3}}, pmc.ErrBadMatching},
		{"self pair", 4, [][2]int{{0, 0}, {1, 3}}, pmc.ErrBadMatching},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pmc.New(tc.n, tc.pairs)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_Canonical(t *testing.T) {
	// Pair order and orientation do not matter.
	a, err := pmc.New(4, [][2]int{{3, 1}, {2, 0}})
	require.NoError(t, err)
	b := pmc.SplitPMC(1)

	assert.Equal(t, b.String(), a.String())
	assert.Equal(t, "PMC(4; [0 2] [1 3])", a.String())
	assert.Equal(t, 0, a.PairOf(2))
	assert.Equal(t, 1, a.PairOf(3))
	assert.Equal(t, 2, a.Partner(0))
	assert.Equal(t, 1, a.Partner(3))
	assert.Equal(t, [2]int{1, 3}, a.Pair(1))
}

func TestSplitAndAntipodal(t *testing.T) {
	s := pmc.SplitPMC(2)
	assert.Equal(t, 8, s.NumPoints())
	assert.Equal(t, 4, s.NumPairs())
	assert.Equal(t, 2, s.Genus())
	assert.Equal(t, "PMC(8; [0 2] [1 3] [4 6] [5 7])", s.String())

	a := pmc.AntipodalPMC(2)
	assert.Equal(t, "PMC(8; [0 4] [1 5] [2 6] [3 7])", a.String())

	assert.Panics(t, func() { pmc.SplitPMC(0) })
	assert.Panics(t, func() { pmc.AntipodalPMC(-1) })
}

// TestNewSplit_Errors VERIFIES that the family constructors return sentinels
// for genera outside 1..32 and that the panicking forms wrap the same errors.
// Implementation:
//   - Stage 1: Table of invalid genera for NewSplit and NewAntipodal.
//   - Stage 2: Genus 32 (64 pairs) is the largest accepted.
//   - Stage 3: AntipodalPMC(33) panics with ErrTooLarge.
func TestNewSplit_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func(int) (*pmc.PMC, error)
		genus int
		err   error
	}{
		{"split zero", pmc.NewSplit, 0, pmc.ErrBadPointCount},
		{"antipodal negative", pmc.NewAntipodal, -1, pmc.ErrBadPointCount},
		{"split too large", pmc.NewSplit, 33, pmc.ErrTooLarge},
		{"antipodal too large", pmc.NewAntipodal, 40, pmc.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			z, err := tc.build(tc.genus)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, z)
		})
	}

	// The largest genus whose idempotents still fit in a bitmask.
	z, err := pmc.NewSplit(32)
	require.NoError(t, err)
	assert.Equal(t, 64, z.NumPairs())
	assert.PanicsWithError(t, pmc.ErrTooLarge.Error()+": genus 33", func() { pmc.AntipodalPMC(33) })
}

// ------------------------------------------------------------------------
// 2. Idempotents
// ------------------------------------------------------------------------

func TestIdempotents_Lexicographic(t *testing.T) {
	z := pmc.SplitPMC(2)
	idems := z.Idempotents(2)
	require.Len(t, idems, 6)

	got := make([]string, len(idems))
	for i, idem := range idems {
		got[i] = idem.String()
	}
	assert.Equal(t, []string{"[0, 1]", "[0, 2]", "[0, 3]", "[1, 2]", "[1, 3]", "[2, 3]"}, got)

	assert.Len(t, z.Idempotents(0), 1)
	assert.Empty(t, z.Idempotents(5))
}

func TestIdempotent_Value(t *testing.T) {
	z := pmc.SplitPMC(2)
	a, err := z.Idempotent(2, 0)
	require.NoError(t, err)
	b, err := z.Idempotent(0, 2)
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.Equal(t, []int{0, 2}, a.Pairs())
	assert.Equal(t, 2, a.Size())
	assert.True(t, a.Has(2))
	assert.False(t, a.Has(1))
	assert.Same(t, z, a.PMC())

	_, err = z.Idempotent(4)
	assert.ErrorIs(t, err, pmc.ErrPointOutOfRange)
}

// ------------------------------------------------------------------------
// 3. Strands
// ------------------------------------------------------------------------

func TestNewStrands_Errors(t *testing.T) {
	z := pmc.SplitPMC(1)

	_, err := pmc.NewStrands(z, pmc.Move{Start: 0, End: 4})
	assert.ErrorIs(t, err, pmc.ErrPointOutOfRange)

	_, err = pmc.NewStrands(z, pmc.Move{Start: 2, End: 1})
	assert.ErrorIs(t, err, pmc.ErrBadMove)

	_, err = pmc.NewStrands(z, pmc.Move{Start: 1, End: 1})
	assert.ErrorIs(t, err, pmc.ErrBadMove)

	_, err = pmc.NewStrands(z, pmc.Move{Start: 0, End: 2}, pmc.Move{Start: 1, End: 2})
	assert.ErrorIs(t, err, pmc.ErrBadMove)

	assert.Panics(t, func() { pmc.MustStrands(z, pmc.Move{Start: 0, End: 0}) })
}

func TestStrands_SortedAndMultiplicity(t *testing.T) {
	z := pmc.SplitPMC(1)
	s := pmc.MustStrands(z, pmc.Move{Start: 1, End: 2}, pmc.Move{Start: 0, End: 3})

	assert.Equal(t, "(0->3, 1->2)", s.String())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 2, 1}, s.Multiplicity())
	assert.False(t, s.IsMultOne())

	one := pmc.MustStrands(z, pmc.Move{Start: 0, End: 1}, pmc.Move{Start: 2, End: 3})
	assert.True(t, one.IsMultOne())
	assert.Equal(t, []int{1, 0, 1}, one.Multiplicity())
}

func TestStrands_PropagateRight(t *testing.T) {
	z := pmc.SplitPMC(1)
	i0, _ := z.Idempotent(0)
	i1, _ := z.Idempotent(1)
	rho1 := pmc.MustStrands(z, pmc.Move{Start: 0, End: 1})

	right, ok := rho1.PropagateRight(i0)
	require.True(t, ok)
	assert.Equal(t, i1, right)
	assert.True(t, rho1.IdemCompatible(i0, i1))
	assert.False(t, rho1.IdemCompatible(i0, i0))

	// Start pair not occupied.
	_, ok = rho1.PropagateRight(i1)
	assert.False(t, ok)

	// End pair collides with a horizontal strand.
	g2 := pmc.SplitPMC(2)
	i02, _ := g2.Idempotent(0, 1)
	_, ok = pmc.MustStrands(g2, pmc.Move{Start: 0, End: 1}).PropagateRight(i02)
	assert.False(t, ok)

	// Foreign circle.
	_, ok = rho1.PropagateRight(i02)
	assert.False(t, ok)
}
