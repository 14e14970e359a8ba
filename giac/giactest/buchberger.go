package giactest

import (
	"fmt"
	"io"
	"sort"

	"github.com/giac-go/giacgb/ring"
)

// wpoly is a polynomial in the computation's working representation: terms
// with distinct monomials and non-zero coefficients, sorted in decreasing
// order under the working term order, which may differ from the order of the
// parent ring.
type wpoly struct {
	terms []ring.Term
}

func (f wpoly) isZero() bool {
	return len(f.terms) == 0
}

func (f wpoly) lt() ring.Term {
	return f.terms[0]
}

// basisComputer runs Buchberger's algorithm under a fixed working order and
// coefficient field.
type basisComputer struct {
	cmp   func(a, b []int) int
	cf    coeffs
	trace io.Writer
}

func (b *basisComputer) fromPoly(p *ring.Poly) wpoly {
	terms := p.Terms()
	sort.Slice(terms, func(i, j int) bool {
		return b.cmp(terms[i].Exp, terms[j].Exp) > 0
	})
	return wpoly{terms: terms}
}

// combine returns f + g, merging the two sorted term lists.
func (b *basisComputer) combine(f, g wpoly) wpoly {

	out := make([]ring.Term, 0, len(f.terms)+len(g.terms))
	i, j := 0, 0

	for i < len(f.terms) && j < len(g.terms) {
		switch b.cmp(f.terms[i].Exp, g.terms[j].Exp) {
		case 1:
			out = append(out, f.terms[i])
			i++
		case -1:
			out = append(out, g.terms[j])
			j++
		default:
			c := b.cf.add(f.terms[i].Coeff, g.terms[j].Coeff)
			if c.Sign() != 0 {
				out = append(out, ring.Term{Exp: f.terms[i].Exp, Coeff: c})
			}
			i++
			j++
		}
	}
	out = append(out, f.terms[i:]...)
	out = append(out, g.terms[j:]...)

	return wpoly{terms: out}
}

// mulTerm returns t*f. Term orders are compatible with multiplication, so
// the term list stays sorted.
func (b *basisComputer) mulTerm(f wpoly, t ring.Term) wpoly {
	out := make([]ring.Term, len(f.terms))
	for i, ft := range f.terms {
		exp := make([]int, len(ft.Exp))
		for j := range exp {
			exp[j] = ft.Exp[j] + t.Exp[j]
		}
		out[i] = ring.Term{Exp: exp, Coeff: b.cf.mul(ft.Coeff, t.Coeff)}
	}
	return wpoly{terms: out}
}

func (b *basisComputer) monic(f wpoly) wpoly {
	if f.isZero() {
		return f
	}
	inv := b.cf.inv(f.lt().Coeff)
	out := make([]ring.Term, len(f.terms))
	for i, t := range f.terms {
		out[i] = ring.Term{Exp: t.Exp, Coeff: b.cf.mul(t.Coeff, inv)}
	}
	return wpoly{terms: out}
}

// quotient returns the term u with u*lt(g) = t.
func (b *basisComputer) quotient(t, g ring.Term) ring.Term {
	exp := make([]int, len(t.Exp))
	for i := range exp {
		exp[i] = t.Exp[i] - g.Exp[i]
	}
	return ring.Term{Exp: exp, Coeff: b.cf.mul(t.Coeff, b.cf.inv(g.Coeff))}
}

func monomialDivides(a, b []int) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

func monomialLCM(a, b []int) []int {
	lcm := make([]int, len(a))
	for i := range a {
		if a[i] > b[i] {
			lcm[i] = a[i]
		} else {
			lcm[i] = b[i]
		}
	}
	return lcm
}

func coprime(a, b []int) bool {
	for i := range a {
		if a[i] > 0 && b[i] > 0 {
			return false
		}
	}
	return true
}

// normalForm fully reduces f modulo G: no term of the result is divisible by
// the leading monomial of any element of G.
func (b *basisComputer) normalForm(f wpoly, G []wpoly) wpoly {

	var out []ring.Term
	h := f

	for !h.isZero() {
		reduced := false
		for _, g := range G {
			if monomialDivides(g.lt().Exp, h.lt().Exp) {
				u := b.quotient(h.lt(), g.lt())
				u.Coeff = b.cf.neg(u.Coeff)
				h = b.combine(h, b.mulTerm(g, u))
				reduced = true
				break
			}
		}
		if !reduced {
			out = append(out, h.lt())
			h = wpoly{terms: h.terms[1:]}
		}
	}

	return wpoly{terms: out}
}

// spoly returns the S-polynomial of f and g, both assumed monic.
func (b *basisComputer) spoly(f, g wpoly) wpoly {
	lcm := monomialLCM(f.lt().Exp, g.lt().Exp)
	uf := b.quotient(ring.Term{Exp: lcm, Coeff: rat(1)}, f.lt())
	ug := b.quotient(ring.Term{Exp: lcm, Coeff: rat(1)}, g.lt())
	ug.Coeff = b.cf.neg(ug.Coeff)
	return b.combine(b.mulTerm(f, uf), b.mulTerm(g, ug))
}

// gbasis computes the reduced Groebner basis of the input polynomials under
// the working order by Buchberger's algorithm.
func (b *basisComputer) gbasis(gens []wpoly) []wpoly {

	var G []wpoly
	for _, g := range gens {
		if !g.isZero() {
			G = append(G, b.monic(g))
		}
	}

	type pair struct{ i, j int }
	var queue []pair
	for i := range G {
		for j := i + 1; j < len(G); j++ {
			queue = append(queue, pair{i, j})
		}
	}

	if b.trace != nil {
		fmt.Fprintf(b.trace, "gbasis: %d generators, %d initial pairs\n", len(G), len(queue))
	}

	for len(queue) > 0 {
		pr := queue[0]
		queue = queue[1:]

		// Buchberger's first criterion.
		if coprime(G[pr.i].lt().Exp, G[pr.j].lt().Exp) {
			continue
		}

		r := b.normalForm(b.spoly(G[pr.i], G[pr.j]), G)
		if r.isZero() {
			continue
		}

		r = b.monic(r)
		for k := range G {
			queue = append(queue, pair{k, len(G)})
		}
		G = append(G, r)

		if b.trace != nil {
			fmt.Fprintf(b.trace, "pair (%d,%d): new basis element %d, %d pairs pending\n", pr.i, pr.j, len(G)-1, len(queue))
		}
	}

	return b.reduce(G)
}

// reduce turns a Groebner basis into the reduced one: minimal leading
// monomials, fully inter-reduced tails, monic elements, sorted in decreasing
// order of their leading monomials.
func (b *basisComputer) reduce(G []wpoly) []wpoly {

	var minimal []wpoly
	for i, g := range G {
		redundant := false
		for j, h := range G {
			if i == j {
				continue
			}
			if monomialDivides(h.lt().Exp, g.lt().Exp) {
				// On equal leading monomials keep the earlier element.
				if b.cmp(h.lt().Exp, g.lt().Exp) == 0 && j > i {
					continue
				}
				redundant = true
				break
			}
		}
		if !redundant {
			minimal = append(minimal, g)
		}
	}

	reduced := make([]wpoly, len(minimal))
	for i, g := range minimal {
		others := make([]wpoly, 0, len(minimal)-1)
		others = append(others, minimal[:i]...)
		others = append(others, minimal[i+1:]...)
		reduced[i] = b.monic(b.normalForm(g, others))
	}

	sort.Slice(reduced, func(i, j int) bool {
		return b.cmp(reduced[i].lt().Exp, reduced[j].lt().Exp) > 0
	})

	return reduced
}

// isGroebner checks the Buchberger criterion: every S-polynomial of the
// basis reduces to zero.
func (b *basisComputer) isGroebner(G []wpoly) bool {
	for i := range G {
		for j := i + 1; j < len(G); j++ {
			if coprime(G[i].lt().Exp, G[j].lt().Exp) {
				continue
			}
			if !b.normalForm(b.spoly(b.monic(G[i]), b.monic(G[j])), G).isZero() {
				return false
			}
		}
	}
	return true
}
