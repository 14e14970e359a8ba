package ring

import (
	"fmt"
	"math/big"
)

// Ideal is a polynomial ideal presented by a finite set of generators over a
// common ring.
type Ideal struct {
	ring *Ring
	gens []*Poly
}

// NewIdeal creates an ideal from the given generators, which must be
// non-empty and share a common ring.
func NewIdeal(gens ...*Poly) (*Ideal, error) {

	if len(gens) == 0 {
		return nil, fmt.Errorf("an ideal requires at least one generator")
	}

	r := gens[0].Ring()
	for i, g := range gens[1:] {
		if !g.Ring().Equal(r) {
			return nil, fmt.Errorf("generator %d does not belong to %s", i+1, r)
		}
	}

	return &Ideal{ring: r, gens: append([]*Poly{}, gens...)}, nil
}

// Ring returns the common ring of the generators.
func (id *Ideal) Ring() *Ring {
	return id.ring
}

// Gens returns the generators of the ideal.
func (id *Ideal) Gens() []*Poly {
	return append([]*Poly{}, id.gens...)
}

// IsZero returns true if every generator is the zero polynomial.
func (id *Ideal) IsZero() bool {
	for _, g := range id.gens {
		if !g.IsZero() {
			return false
		}
	}
	return true
}

func (id *Ideal) String() string {
	return fmt.Sprintf("Ideal with %d generators of %s", len(id.gens), id.ring)
}

// Cyclic returns the cyclic ideal of the ring: for a ring with n variables,
// the n-1 elementary cyclic sums plus the product of all variables minus one.
func Cyclic(r *Ring) *Ideal {

	n := r.NumVars()
	one := big.NewRat(1, 1)
	gens := make([]*Poly, 0, n)

	for k := 1; k < n; k++ {
		var terms []Term
		for i := 0; i < n; i++ {
			exp := make([]int, n)
			for j := 0; j < k; j++ {
				exp[(i+j)%n]++
			}
			terms = append(terms, Term{Exp: exp, Coeff: one})
		}
		gens = append(gens, r.PolyFromTerms(terms))
	}

	exp := make([]int, n)
	for i := range exp {
		exp[i] = 1
	}
	gens = append(gens, r.PolyFromTerms([]Term{
		{Exp: exp, Coeff: one},
		{Exp: make([]int, n), Coeff: big.NewRat(-1, 1)},
	}))

	id, err := NewIdeal(gens...)
	if err != nil {
		panic(err)
	}
	return id
}

// Katsura returns the Katsura ideal of the ring, the standard benchmark
// family of magnetization equations in n variables.
func Katsura(r *Ring) *Ideal {

	n := r.NumVars()
	one := big.NewRat(1, 1)

	// u maps the symmetric index l to the corresponding variable exponent
	// vector, or to nil outside [-n+1, n-1].
	u := func(l int) []int {
		if l < 0 {
			l = -l
		}
		if l >= n {
			return nil
		}
		exp := make([]int, n)
		exp[l] = 1
		return exp
	}

	gens := make([]*Poly, 0, n)

	for m := 0; m < n-1; m++ {
		var terms []Term
		for l := -n + 1; l < n; l++ {
			el, eml := u(l), u(m-l)
			if el == nil || eml == nil {
				continue
			}
			exp := make([]int, n)
			for i := range exp {
				exp[i] = el[i] + eml[i]
			}
			terms = append(terms, Term{Exp: exp, Coeff: one})
		}
		terms = append(terms, Term{Exp: u(m), Coeff: big.NewRat(-1, 1)})
		gens = append(gens, r.PolyFromTerms(terms))
	}

	var terms []Term
	for l := -n + 1; l < n; l++ {
		terms = append(terms, Term{Exp: u(l), Coeff: one})
	}
	terms = append(terms, Term{Exp: make([]int, n), Coeff: big.NewRat(-1, 1)})
	gens = append(gens, r.PolyFromTerms(terms))

	id, err := NewIdeal(gens...)
	if err != nil {
		panic(err)
	}
	return id
}
