// SPDX-License-Identifier: MIT

package dastructure

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bordered/algebra"
)

// String lists every table entry as "m(from; inputs) = output".
func (s *SimpleStructure) String() string {
	return s.render(func(*entry) bool { return true })
}

// StringWithMultA lists only the entries whose A-side inputs have total
// multiplicity exactly mult (componentwise sum over the inputs).
func (s *SimpleStructure) StringWithMultA(mult []int) string {
	return s.render(func(e *entry) bool {
		rows := make([][]int, len(e.coeffsA))
		for i, g := range e.coeffsA {
			rows[i] = g.Multiplicity()
		}
		total := algebra.SumColumns(rows, len(mult))
		for i := range mult {
			if total[i] != mult[i] {
				return false
			}
		}

		return true
	})
}

func (s *SimpleStructure) render(keep func(*entry) bool) string {
	var sb strings.Builder
	sb.WriteString("Type DA Structure.\n")
	for _, e := range s.entries() {
		if keep(e) {
			fmt.Fprintf(&sb, "m(%s; %s) = %s\n", e.from, seqString(e.coeffsA), e.out)
		}
	}

	return sb.String()
}
