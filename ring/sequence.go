package ring

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
)

// PolynomialSequence is an immutable ordered sequence of polynomials together
// with their common parent ring. It is the result representation of a
// Groebner basis computation.
type PolynomialSequence struct {
	ring  *Ring
	polys []*Poly
}

// NewPolynomialSequence creates an immutable sequence over the given ring.
// The polynomials are deep-copied so later mutations of the inputs do not
// reach the sequence.
func NewPolynomialSequence(polys []*Poly, r *Ring) *PolynomialSequence {
	cpy := make([]*Poly, len(polys))
	for i, p := range polys {
		cpy[i] = r.PolyFromTerms(p.terms)
	}
	return &PolynomialSequence{ring: r, polys: cpy}
}

// Ring returns the parent ring of the sequence.
func (s *PolynomialSequence) Ring() *Ring {
	return s.ring
}

// Len returns the number of polynomials in the sequence.
func (s *PolynomialSequence) Len() int {
	return len(s.polys)
}

// At returns a copy of the i-th polynomial.
func (s *PolynomialSequence) At(i int) *Poly {
	return s.polys[i].CopyNew()
}

// Polys returns a copy of the polynomials in sequence order.
func (s *PolynomialSequence) Polys() []*Poly {
	out := make([]*Poly, len(s.polys))
	for i, p := range s.polys {
		out[i] = p.CopyNew()
	}
	return out
}

// Digest returns a blake3 hash of the sequence that is invariant under
// reordering of the polynomials, usable to compare two sequences as sets.
func (s *PolynomialSequence) Digest() [32]byte {

	lines := make([]string, len(s.polys))
	for i, p := range s.polys {
		lines[i] = p.String()
	}
	sort.Strings(lines)

	hasher := blake3.New()
	buf := new(bytes.Buffer)
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	hasher.Write(buf.Bytes())

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

func (s *PolynomialSequence) String() string {
	return fmt.Sprintf("Polynomial Sequence with %d Polynomials in %d Variables", len(s.polys), s.ring.NumVars())
}
