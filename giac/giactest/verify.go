package giactest

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/giac-go/giacgb/ring"
	"github.com/giac-go/giacgb/utils/sampling"
)

// verificationPrimeBits is the bit-size of the primes drawn for modular
// verification of a rational basis. A single modular check fails to detect a
// wrong basis with probability at most 2^-verificationConfidence.
const (
	verificationPrimeBits  = 31
	verificationConfidence = 30
)

// verificationRounds returns the smallest number of independent modular
// checks whose combined failure probability is at most eps.
func verificationRounds(eps float64) int {

	ln := bigfloat.Log(big.NewFloat(eps))
	ln2 := bigfloat.Log(big.NewFloat(2))
	bits, _ := new(big.Float).Quo(new(big.Float).Neg(ln), ln2).Float64()

	k := int(math.Ceil(bits / verificationConfidence))
	if k < 1 {
		k = 1
	}
	return k
}

// reduceModP maps a rational working polynomial into arithmetic modulo p.
// ok is false when a coefficient is not liftable or vanishes, i.e. when p
// divides a numerator or a denominator; such primes must be resampled.
func reduceModP(f wpoly, p uint64) (g wpoly, ok bool) {

	pb := new(big.Int).SetUint64(p)
	out := make([]ring.Term, 0, len(f.terms))

	for _, t := range f.terms {
		if new(big.Int).Mod(t.Coeff.Denom(), pb).Sign() == 0 {
			return wpoly{}, false
		}
		c := modCoeffs{p: p}.lift(t.Coeff)
		if c == 0 {
			return wpoly{}, false
		}
		out = append(out, ring.Term{Exp: t.Exp, Coeff: rat(c)})
	}

	return wpoly{terms: out}, true
}

// verifyRational checks that basis is a Groebner basis of the ideal spanned
// by gens. With eps = 0 the check is the exact Buchberger criterion over the
// rationals; with eps > 0 it runs modulo enough random 31-bit primes to
// bound the probability of a wrong acceptance by eps.
func (b *basisComputer) verifyRational(basis, gens []wpoly, eps float64, prng sampling.PRNG) bool {

	if eps == 0 {
		return b.verifyOnce(basis, gens)
	}

	for round := 0; round < verificationRounds(eps); round++ {
		if !b.verifyModRandomPrime(basis, gens, prng) {
			return false
		}
	}
	return true
}

func (b *basisComputer) verifyOnce(basis, gens []wpoly) bool {
	if !b.isGroebner(basis) {
		return false
	}
	for _, g := range gens {
		if !b.normalForm(g, basis).isZero() {
			return false
		}
	}
	return true
}

func (b *basisComputer) verifyModRandomPrime(basis, gens []wpoly, prng sampling.PRNG) bool {

	for {
		p, err := ring.RandomPrime(prng, verificationPrimeBits)
		if err != nil {
			panic(err)
		}

		mb := basisComputer{cmp: b.cmp, cf: modCoeffs{p: p}}

		mbasis := make([]wpoly, len(basis))
		ok := true
		for i, f := range basis {
			if mbasis[i], ok = reduceModP(f, p); !ok {
				break
			}
		}
		if !ok {
			continue
		}

		mgens := make([]wpoly, len(gens))
		for i, f := range gens {
			if mgens[i], ok = reduceModP(f, p); !ok {
				break
			}
		}
		if !ok {
			continue
		}

		return mb.verifyOnce(mbasis, mgens)
	}
}
