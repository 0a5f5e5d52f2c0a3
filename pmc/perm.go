// SPDX-License-Identifier: MIT

package pmc

// perm is a partial permutation of the points: perm[i] is the end of the
// strand starting at i, i for a horizontal strand, -1 when i is not a start.
type perm []int

// inversions counts crossings: pairs i < j of starts with p[i] > p[j].
func inversions(p perm) int {
	count := 0
	for i := range p {
		if p[i] < 0 {
			continue
		}
		for j := i + 1; j < len(p); j++ {
			if p[j] >= 0 && p[i] > p[j] {
				count++
			}
		}
	}

	return count
}

// compose returns q∘p when the ends of p are exactly the starts of q.
func compose(p, q perm) (perm, bool) {
	ends := 0
	out := make(perm, len(p))
	for i, t := range p {
		out[i] = -1
		if t < 0 {
			continue
		}
		if q[t] < 0 {
			return nil, false
		}
		out[i] = q[t]
		ends++
	}
	starts := 0
	for _, t := range q {
		if t >= 0 {
			starts++
		}
	}

	return out, ends == starts
}

// decode maps an A(n, k) term back onto A(Z). It succeeds only for terms
// whose starts and ends each occupy distinct pairs and whose horizontal
// strands sit on the lower point of their pair; every basis element of A(Z)
// has exactly one such term, so reading these off recovers its coefficient.
func (a *Algebra) decode(p perm) (*StrandDiagram, bool) {
	z := a.pmc
	var left, right uint64
	var moves []Move
	for i, t := range p {
		if t < 0 {
			continue
		}
		lb := uint64(1) << uint(z.pairOf[i])
		rb := uint64(1) << uint(z.pairOf[t])
		if left&lb != 0 || right&rb != 0 {
			return nil, false
		}
		left |= lb
		right |= rb
		if t == i {
			if z.pairs[z.pairOf[i]][0] != i {
				return nil, false
			}
			continue
		}
		moves = append(moves, Move{Start: i, End: t})
	}

	return a.intern(Idempotent{pmc: z, mask: left}, Idempotent{pmc: z, mask: right}, moves), true
}
