package ring

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/giac-go/giacgb/utils/sampling"
)

// UniformSampler samples random polynomials of a ring from a PRNG. Seeded
// with a sampling.KeyedPRNG, it produces reproducible sequences.
type UniformSampler struct {
	prng sampling.PRNG
	ring *Ring
}

// NewUniformSampler creates a sampler for the given ring.
func NewUniformSampler(prng sampling.PRNG, r *Ring) *UniformSampler {
	return &UniformSampler{prng: prng, ring: r}
}

// ReadNew samples a random polynomial with the given maximal total degree and
// number of terms. Monomials may collide, so the result can have fewer terms.
func (s *UniformSampler) ReadNew(degree, terms int) *Poly {

	n := s.ring.NumVars()
	sampled := make([]Term, 0, terms)

	for i := 0; i < terms; i++ {

		exp := make([]int, n)
		d := int(s.randUint64() % uint64(degree+1))
		for j := 0; j < d; j++ {
			exp[s.randUint64()%uint64(n)]++
		}

		sampled = append(sampled, Term{Exp: exp, Coeff: s.randCoeff()})
	}

	return s.ring.PolyFromTerms(sampled)
}

func (s *UniformSampler) randCoeff() *big.Rat {

	if p := s.ring.field.Characteristic(); p != 0 {
		return new(big.Rat).SetUint64(1 + s.randUint64()%(p-1))
	}

	num := int64(s.randUint64()%199) - 99
	if num == 0 {
		num = 1
	}
	den := int64(1 + s.randUint64()%9)
	return big.NewRat(num, den)
}

func (s *UniformSampler) randUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(s.prng, b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}
