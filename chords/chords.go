// SPDX-License-Identifier: MIT

package chords

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bordered/algebra"
	"github.com/katalvlaran/bordered/dastructure"
	"github.com/katalvlaran/bordered/pmc"
)

var (
	// ErrUnknownPMC is returned when the pmc section names no usable circle.
	ErrUnknownPMC = errors.New("chords: unknown pointed matched circle")

	// ErrMalformed is returned for a move that is not a [start, end] pair.
	ErrMalformed = errors.New("chords: malformed move")

	// ErrIdemSize is returned for an idempotent size that does not fit the circle or the algebra.
	ErrIdemSize = errors.New("chords: bad idempotent size")
)

// PMC kinds accepted in the pmc section.
const (
	KindSplit     = "split"
	KindAntipodal = "antipodal"
)

// Document is the decoded YAML description.
type Document struct {
	PMC        PMCSpec         `yaml:"pmc"`
	MultOne    bool            `yaml:"mult_one"`
	IdemSize   *int            `yaml:"idem_size,omitempty"`
	Generators []GeneratorSpec `yaml:"generators"`
	Chords     []ChordSpec     `yaml:"chords"`
}

// PMCSpec selects a pointed matched circle, by family (kind, genus) or by
// explicit matching (points, pairs). Mixing the two forms is an error.
type PMCSpec struct {
	Kind   string  `yaml:"kind,omitempty"`
	Genus  int     `yaml:"genus,omitempty"`
	Points int     `yaml:"points,omitempty"`
	Pairs  [][]int `yaml:"pairs,omitempty"`
}

// GeneratorSpec lists the pair indices of the D-side and A-side idempotents.
type GeneratorSpec struct {
	D []int `yaml:"d"`
	A []int `yaml:"a"`
}

// ChordSpec is a D-side chord and the sequence of A-side chords, each a list of [start, end] moves.
type ChordSpec struct {
	D [][]int   `yaml:"d"`
	A [][][]int `yaml:"a"`
}

// Load decodes a document from r, rejecting unknown keys.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("chords: decode: %w", err)
	}

	return &doc, nil
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chords: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Circle returns the pointed matched circle described by the pmc section.
func (s PMCSpec) Circle() (*pmc.PMC, error) {
	if len(s.Pairs) > 0 {
		if s.Kind != "" || s.Genus != 0 {
			return nil, fmt.Errorf("%w: pairs given together with kind %q, genus %d", ErrUnknownPMC, s.Kind, s.Genus)
		}
		pairs := make([][2]int, len(s.Pairs))
		for i, p := range s.Pairs {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: pair %d has %d entries", pmc.ErrBadMatching, i, len(p))
			}
			pairs[i] = [2]int{p[0], p[1]}
		}

		return pmc.New(s.Points, pairs)
	}
	if s.Points != 0 {
		return nil, fmt.Errorf("%w: points %d given without pairs", ErrUnknownPMC, s.Points)
	}
	if s.Genus < 1 {
		return nil, fmt.Errorf("%w: genus %d", ErrUnknownPMC, s.Genus)
	}
	switch s.Kind {
	case KindSplit, "":
		return pmc.NewSplit(s.Genus)
	case KindAntipodal:
		return pmc.NewAntipodal(s.Genus)
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrUnknownPMC, s.Kind)
	}
}

// Algebra returns the strand algebra the document works over.
func (d *Document) Algebra() (*pmc.Algebra, error) {
	z, err := d.PMC.Circle()
	if err != nil {
		return nil, err
	}
	var opts []pmc.Option
	if d.IdemSize != nil {
		if *d.IdemSize < 0 || *d.IdemSize > z.NumPairs() {
			return nil, fmt.Errorf("%w: %d for %d pairs", ErrIdemSize, *d.IdemSize, z.NumPairs())
		}
		opts = append(opts, pmc.WithIdemSize(*d.IdemSize))
	}
	if d.MultOne {
		opts = append(opts, pmc.WithMultOne())
	}

	return pmc.NewAlgebra(z, opts...), nil
}

// Build decodes generators and chords against the document's algebra and
// runs dastructure.FromChords.
func (d *Document) Build() (*dastructure.SimpleStructure, error) {
	alg, err := d.Algebra()
	if err != nil {
		return nil, err
	}
	z := alg.PMC()

	idemPairs := make([]dastructure.IdemPair, 0, len(d.Generators))
	for i, g := range d.Generators {
		left, err := idempotent(z, alg.IdemSize(), g.D)
		if err != nil {
			return nil, fmt.Errorf("generator %d, d: %w", i, err)
		}
		right, err := idempotent(z, alg.IdemSize(), g.A)
		if err != nil {
			return nil, fmt.Errorf("generator %d, a: %w", i, err)
		}
		idemPairs = append(idemPairs, dastructure.IdemPair{D: left, A: right})
	}

	chordPairs := make([]dastructure.ChordPair, 0, len(d.Chords))
	for i, c := range d.Chords {
		coeffD, err := strands(z, c.D)
		if err != nil {
			return nil, fmt.Errorf("chord %d, d: %w", i, err)
		}
		coeffsA := make([]algebra.Chord, 0, len(c.A))
		for j, a := range c.A {
			s, err := strands(z, a)
			if err != nil {
				return nil, fmt.Errorf("chord %d, a[%d]: %w", i, j, err)
			}
			coeffsA = append(coeffsA, s)
		}
		chordPairs = append(chordPairs, dastructure.ChordPair{D: coeffD, A: coeffsA})
	}

	return dastructure.FromChords(alg, alg, idemPairs, chordPairs), nil
}

func idempotent(z *pmc.PMC, size int, pairs []int) (pmc.Idempotent, error) {
	idem, err := z.Idempotent(pairs...)
	if err != nil {
		return pmc.Idempotent{}, err
	}
	if idem.Size() != size || len(pairs) != size {
		return pmc.Idempotent{}, fmt.Errorf("%w: %v has size %d, want %d", ErrIdemSize, pairs, idem.Size(), size)
	}

	return idem, nil
}

func strands(z *pmc.PMC, moves [][]int) (pmc.Strands, error) {
	ms := make([]pmc.Move, 0, len(moves))
	for _, m := range moves {
		if len(m) != 2 {
			return pmc.Strands{}, fmt.Errorf("%w: %v", ErrMalformed, m)
		}
		ms = append(ms, pmc.Move{Start: m[0], End: m[1]})
	}

	return pmc.NewStrands(z, ms...)
}
