// SPDX-License-Identifier: MIT

package ring

// Ring is a commutative coefficient ring with unit.
//
// Every method must accept any int and treat it through Reduce; results are
// always canonical representatives.
type Ring interface {
	// Zero returns the additive identity.
	Zero() int

	// One returns the multiplicative identity.
	One() int

	// Add returns the canonical representative of a+b.
	Add(a, b int) int

	// Mul returns the canonical representative of a*b.
	Mul(a, b int) int

	// IsZero reports whether a represents the additive identity.
	IsZero(a int) bool

	// Reduce maps an arbitrary int onto its canonical representative.
	Reduce(a int) int

	// String names the ring, e.g. "F2".
	String() string
}

// field2 is the two-element field Z/2Z.
type field2 struct{}

// F2 is the two-element field. It is the only ring the structure builders use.
var F2 Ring = field2{}

func (field2) Zero() int { return 0 }

func (field2) One() int { return 1 }

func (f field2) Add(a, b int) int { return f.Reduce(a + b) }

func (f field2) Mul(a, b int) int { return f.Reduce(a * b) }

func (f field2) IsZero(a int) bool { return f.Reduce(a) == 0 }

// Reduce returns a mod 2 in {0, 1}, negative inputs included.
func (field2) Reduce(a int) int {
	if a%2 == 0 {
		return 0
	}

	return 1
}

func (field2) String() string { return "F2" }
