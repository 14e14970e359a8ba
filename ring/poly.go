package ring

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Term is a single monomial with its coefficient. Exp holds one exponent per
// ring variable, Coeff is the coefficient in the base field (elements of a
// prime field are represented as integers in [0, p)).
type Term struct {
	Exp   []int
	Coeff *big.Rat
}

// CopyNew returns a deep copy of the term.
func (t Term) CopyNew() Term {
	return Term{
		Exp:   append([]int{}, t.Exp...),
		Coeff: new(big.Rat).Set(t.Coeff),
	}
}

// TotalDegree returns the sum of the exponents of the term.
func (t Term) TotalDegree() (d int) {
	for _, e := range t.Exp {
		d += e
	}
	return
}

// Divides returns true if the monomial of t divides the monomial of u.
func (t Term) Divides(u Term) bool {
	for i := range t.Exp {
		if t.Exp[i] > u.Exp[i] {
			return false
		}
	}
	return true
}

// Poly is a multivariate polynomial over a Ring, stored as a slice of terms
// with distinct monomials and non-zero coefficients, sorted in decreasing
// order under the ring's term order. The zero polynomial has no terms.
type Poly struct {
	ring  *Ring
	terms []Term
}

// PolyFromTerms creates a polynomial of the ring from the given terms.
// Duplicate monomials are merged, zero coefficients dropped, prime-field
// coefficients reduced into [0, p), and terms sorted under the ring order.
func (r *Ring) PolyFromTerms(terms []Term) *Poly {

	merged := make(map[string]*Term, len(terms))
	for _, t := range terms {
		if len(t.Exp) != len(r.names) {
			panic(fmt.Errorf("term has %d exponents but the ring has %d variables", len(t.Exp), len(r.names)))
		}
		key := expKey(t.Exp)
		if m, ok := merged[key]; ok {
			m.Coeff.Add(m.Coeff, t.Coeff)
		} else {
			tc := t.CopyNew()
			merged[key] = &tc
		}
	}

	p := &Poly{ring: r}
	for _, t := range merged {
		c := r.field.normalize(t.Coeff)
		if c.Sign() == 0 {
			continue
		}
		p.terms = append(p.terms, Term{Exp: t.Exp, Coeff: c})
	}

	sort.Slice(p.terms, func(i, j int) bool {
		return r.order.Compare(p.terms[i].Exp, p.terms[j].Exp) > 0
	})

	return p
}

// normalize maps a rational coefficient into the field: a copy for the
// rationals, the representative in [0, p) for a prime field.
func (f Field) normalize(c *big.Rat) *big.Rat {
	if f.char == 0 {
		return new(big.Rat).Set(c)
	}
	p := new(big.Int).SetUint64(f.char)
	num := new(big.Int).Mod(c.Num(), p)
	if c.IsInt() {
		return new(big.Rat).SetInt(num)
	}
	den := new(big.Int).Mod(c.Denom(), p)
	inv := new(big.Int).ModInverse(den, p)
	if inv == nil {
		panic(fmt.Errorf("coefficient denominator %v is not invertible modulo %d", c.Denom(), f.char))
	}
	num.Mul(num, inv).Mod(num, p)
	return new(big.Rat).SetInt(num)
}

func expKey(exp []int) string {
	var b strings.Builder
	for _, e := range exp {
		fmt.Fprintf(&b, "%d,", e)
	}
	return b.String()
}

// Ring returns the parent ring of the polynomial.
func (p *Poly) Ring() *Ring {
	return p.ring
}

// IsZero returns true if the polynomial has no terms.
func (p *Poly) IsZero() bool {
	return len(p.terms) == 0
}

// Terms returns a deep copy of the terms, in decreasing ring order.
func (p *Poly) Terms() []Term {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.CopyNew()
	}
	return out
}

// NumTerms returns the number of terms of the polynomial.
func (p *Poly) NumTerms() int {
	return len(p.terms)
}

// LeadingTerm returns the largest term under the ring's term order.
// It panics on the zero polynomial.
func (p *Poly) LeadingTerm() Term {
	if p.IsZero() {
		panic("the zero polynomial has no leading term")
	}
	return p.terms[0].CopyNew()
}

// TotalDegree returns the maximal total degree over all terms, -1 for zero.
func (p *Poly) TotalDegree() int {
	d := -1
	for _, t := range p.terms {
		if td := t.TotalDegree(); td > d {
			d = td
		}
	}
	return d
}

// CopyNew returns a deep copy of the polynomial.
func (p *Poly) CopyNew() *Poly {
	return p.ring.PolyFromTerms(p.terms)
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	return p.ring.PolyFromTerms(append(p.Terms(), q.terms...))
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	terms := p.Terms()
	for i := range terms {
		terms[i].Coeff.Neg(terms[i].Coeff)
	}
	return p.ring.PolyFromTerms(terms)
}

// MulScalar returns c*p.
func (p *Poly) MulScalar(c *big.Rat) *Poly {
	terms := p.Terms()
	for i := range terms {
		terms[i].Coeff.Mul(terms[i].Coeff, c)
	}
	return p.ring.PolyFromTerms(terms)
}

// MulTerm returns t*p for a single term t.
func (p *Poly) MulTerm(t Term) *Poly {
	terms := p.Terms()
	for i := range terms {
		for j := range terms[i].Exp {
			terms[i].Exp[j] += t.Exp[j]
		}
		terms[i].Coeff.Mul(terms[i].Coeff, t.Coeff)
	}
	return p.ring.PolyFromTerms(terms)
}

// Mul returns p*q.
func (p *Poly) Mul(q *Poly) *Poly {
	var terms []Term
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			exp := make([]int, len(tp.Exp))
			for i := range exp {
				exp[i] = tp.Exp[i] + tq.Exp[i]
			}
			terms = append(terms, Term{Exp: exp, Coeff: new(big.Rat).Mul(tp.Coeff, tq.Coeff)})
		}
	}
	if terms == nil {
		return p.ring.Zero()
	}
	return p.ring.PolyFromTerms(terms)
}

// Equal compares two polynomials term by term.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].Coeff.Cmp(q.terms[i].Coeff) != 0 {
			return false
		}
		for j := range p.terms[i].Exp {
			if p.terms[i].Exp[j] != q.terms[i].Exp[j] {
				return false
			}
		}
	}
	return true
}

func (p *Poly) String() string {

	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	for i, t := range p.terms {

		c := t.Coeff
		neg := c.Sign() < 0

		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}

		abs := new(big.Rat).Abs(c)
		mono := p.ring.monomialString(t.Exp)

		switch {
		case mono == "":
			b.WriteString(abs.RatString())
		case abs.Cmp(big.NewRat(1, 1)) == 0:
			b.WriteString(mono)
		default:
			b.WriteString(abs.RatString())
			b.WriteString("*")
			b.WriteString(mono)
		}
	}

	return b.String()
}

func (r *Ring) monomialString(exp []int) string {
	var parts []string
	for i, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, r.names[i])
		case e > 1:
			parts = append(parts, fmt.Sprintf("%s^%d", r.names[i], e))
		}
	}
	return strings.Join(parts, "*")
}
