package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolynomialSequenceImmutability(t *testing.T) {

	r := testRingQQ(t, "x", "y")
	p := r.Gen(0).Add(r.Gen(1))

	s := NewPolynomialSequence([]*Poly{p}, r)

	// Mutating a retrieved copy does not reach the sequence.
	s.At(0).Terms()[0].Coeff.SetInt64(7)
	require.Equal(t, "x + y", s.At(0).String())
	require.Equal(t, 1, s.Len())
	require.True(t, s.Ring().Equal(r))
}

func TestPolynomialSequenceDigest(t *testing.T) {

	r := testRingQQ(t, "x", "y")
	p := r.Gen(0)
	q := r.Gen(1).Sub(r.One())

	a := NewPolynomialSequence([]*Poly{p, q}, r)
	b := NewPolynomialSequence([]*Poly{q, p}, r)
	c := NewPolynomialSequence([]*Poly{p, q.MulScalar(big.NewRat(2, 1))}, r)

	// The digest identifies sequences as sets.
	require.Equal(t, a.Digest(), b.Digest())
	require.NotEqual(t, a.Digest(), c.Digest())
}

func TestPolynomialSequenceString(t *testing.T) {

	r := testRingQQ(t, "x", "y", "z")
	s := NewPolynomialSequence([]*Poly{r.Gen(0), r.Gen(1)}, r)
	require.Equal(t, "Polynomial Sequence with 2 Polynomials in 3 Variables", s.String())
}
