// SPDX-License-Identifier: MIT

package pmc

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// maxPairs bounds the number of pairs so an idempotent fits in a uint64.
const maxPairs = 64

// PMC is a pointed matched circle: n points on an oriented line matched in n/2 pairs.
// A PMC is immutable after construction.
type PMC struct {
	n      int
	pairs  [][2]int // pair index → (lower, upper) points
	pairOf []int    // point → pair index
}

// New validates pairs against n points and returns the pointed matched circle.
// Pairs are re-indexed by their lower point so that equal matchings produce equal PMCs.
func New(n int, pairs [][2]int) (*PMC, error) {
	if n <= 0 || n%4 != 0 {
		return nil, ErrBadPointCount
	}
	if n/2 > maxPairs {
		return nil, ErrTooLarge
	}
	if len(pairs) != n/2 {
		return nil, fmt.Errorf("%w: want %d pairs, got %d", ErrBadMatching, n/2, len(pairs))
	}

	pairOf := make([]int, n)
	for i := range pairOf {
		pairOf[i] = -1
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("%w: pair (%d, %d)", ErrPointOutOfRange, a, b)
		}
		if a == b || pairOf[a] != -1 || pairOf[b] != -1 {
			return nil, fmt.Errorf("%w: pair (%d, %d)", ErrBadMatching, a, b)
		}
		if a > b {
			a, b = b, a
		}
		pairOf[a], pairOf[b] = b, a // temporarily store the partner
	}

	z := &PMC{n: n, pairOf: make([]int, n)}
	for p := 0; p < n; p++ {
		partner := pairOf[p]
		if p < partner {
			z.pairOf[p] = len(z.pairs)
			z.pairOf[partner] = len(z.pairs)
			z.pairs = append(z.pairs, [2]int{p, partner})
		}
	}

	return z, nil
}

// NewSplit returns the split pointed matched circle of the given genus:
// genus copies of the torus matching (0,2),(1,3), stacked.
// Returns ErrBadPointCount if genus < 1 and ErrTooLarge if the idempotents
// would not fit in a bitmask.
func NewSplit(genus int) (*PMC, error) {
	if err := checkGenus(genus); err != nil {
		return nil, err
	}
	pairs := make([][2]int, 0, 2*genus)
	for i := 0; i < genus; i++ {
		pairs = append(pairs, [2]int{4 * i, 4*i + 2}, [2]int{4*i + 1, 4*i + 3})
	}

	return New(4*genus, pairs)
}

// NewAntipodal returns the antipodal pointed matched circle: point i is matched with i+2·genus.
// Errors as NewSplit.
func NewAntipodal(genus int) (*PMC, error) {
	if err := checkGenus(genus); err != nil {
		return nil, err
	}
	pairs := make([][2]int, 0, 2*genus)
	for i := 0; i < 2*genus; i++ {
		pairs = append(pairs, [2]int{i, i + 2*genus})
	}

	return New(4*genus, pairs)
}

// checkGenus bounds genus before any slice is sized from it.
func checkGenus(genus int) error {
	if genus < 1 {
		return fmt.Errorf("%w: genus %d", ErrBadPointCount, genus)
	}
	if 2*genus > maxPairs {
		return fmt.Errorf("%w: genus %d", ErrTooLarge, genus)
	}

	return nil
}

// SplitPMC is NewSplit for genera known to be valid. Panics on error.
func SplitPMC(genus int) *PMC {
	z, err := NewSplit(genus)
	if err != nil {
		panic(err)
	}

	return z
}

// AntipodalPMC is NewAntipodal for genera known to be valid. Panics on error.
func AntipodalPMC(genus int) *PMC {
	z, err := NewAntipodal(genus)
	if err != nil {
		panic(err)
	}

	return z
}

// NumPoints returns the number of points.
func (z *PMC) NumPoints() int { return z.n }

// NumPairs returns the number of matched pairs.
func (z *PMC) NumPairs() int { return len(z.pairs) }

// Genus returns n/4.
func (z *PMC) Genus() int { return z.n / 4 }

// PairOf returns the index of the pair containing point p.
func (z *PMC) PairOf(p int) int { return z.pairOf[p] }

// Pair returns the (lower, upper) points of pair i.
func (z *PMC) Pair(i int) [2]int { return z.pairs[i] }

// Partner returns the point matched with p.
func (z *PMC) Partner(p int) int {
	pr := z.pairs[z.pairOf[p]]
	if pr[0] == p {
		return pr[1]
	}

	return pr[0]
}

// Idempotent returns the idempotent occupying the given pairs.
// Returns ErrPointOutOfRange for an unknown pair index.
func (z *PMC) Idempotent(pairs ...int) (Idempotent, error) {
	var mask uint64
	for _, p := range pairs {
		if p < 0 || p >= len(z.pairs) {
			return Idempotent{}, fmt.Errorf("%w: pair %d", ErrPointOutOfRange, p)
		}
		mask |= 1 << uint(p)
	}

	return Idempotent{pmc: z, mask: mask}, nil
}

// Idempotents lists every idempotent with exactly size pairs, in lexicographic order of pair lists.
func (z *PMC) Idempotents(size int) []Idempotent {
	var out []Idempotent
	var rec func(next int, mask uint64, left int)
	rec = func(next int, mask uint64, left int) {
		if left == 0 {
			out = append(out, Idempotent{pmc: z, mask: mask})
			return
		}
		for p := next; p <= len(z.pairs)-left; p++ {
			rec(p+1, mask|1<<uint(p), left-1)
		}
	}
	if size >= 0 && size <= len(z.pairs) {
		rec(0, 0, size)
	}

	return out
}

// String renders the matching, e.g. "PMC(4; [0 2] [1 3])".
func (z *PMC) String() string {
	parts := make([]string, len(z.pairs))
	for i, p := range z.pairs {
		parts[i] = fmt.Sprintf("[%d %d]", p[0], p[1])
	}

	return fmt.Sprintf("PMC(%d; %s)", z.n, strings.Join(parts, " "))
}

// Idempotent is a set of pairs of a PMC. It is a comparable value: == is equality.
type Idempotent struct {
	pmc  *PMC
	mask uint64
}

// PMC returns the pointed matched circle the idempotent lives on.
func (i Idempotent) PMC() *PMC { return i.pmc }

// Has reports whether pair p is occupied.
func (i Idempotent) Has(p int) bool { return i.mask&(1<<uint(p)) != 0 }

// Size returns the number of occupied pairs.
func (i Idempotent) Size() int { return bits.OnesCount64(i.mask) }

// Pairs lists the occupied pairs in increasing order.
func (i Idempotent) Pairs() []int {
	out := make([]int, 0, i.Size())
	for m := i.mask; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}

	return out
}

// String renders the pair list, e.g. "[0, 2]".
func (i Idempotent) String() string {
	ps := i.Pairs()
	parts := make([]string, len(ps))
	for k, p := range ps {
		parts[k] = strconv.Itoa(p)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
