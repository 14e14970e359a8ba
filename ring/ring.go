// Package ring implements the host-side representation of multivariate
// polynomial rings over the rationals and over prime fields: variable sets,
// term orders, polynomials, ideals and immutable polynomial sequences. It is
// the representation the giac adapter converts from and back into.
package ring

import (
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// Ring is a multivariate polynomial ring: an ordered set of variable names
// over a base field, normalized under a term order. A Ring is immutable.
type Ring struct {
	names []string
	field Field
	order TermOrder
}

// NewRing creates a polynomial ring over the given field with the given
// ordered variable names and term order.
func NewRing(field Field, names []string, order TermOrder) (*Ring, error) {

	if len(names) == 0 {
		return nil, fmt.Errorf("a polynomial ring requires at least one variable")
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("empty variable name")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate variable name %q", name)
		}
		seen[name] = true
	}

	if order.IsBlock() {
		var n int
		for _, blk := range order.Blocks() {
			if blk.N < 1 {
				return nil, fmt.Errorf("block order has a block of size %d", blk.N)
			}
			if !knownOrderName(blk.Name) {
				return nil, fmt.Errorf("unknown term order %q", blk.Name)
			}
			n += blk.N
		}
		if n != len(names) {
			return nil, fmt.Errorf("block order covers %d variables but the ring has %d", n, len(names))
		}
	} else if !knownOrderName(order.Name()) {
		return nil, fmt.Errorf("unknown term order %q", order.Name())
	}

	return &Ring{
		names: append([]string{}, names...),
		field: field,
		order: order,
	}, nil
}

// NewRingIndexed creates a ring with n variables named prefix0..prefix{n-1},
// matching the usual x0..x{n-1} naming of generated variable sets.
func NewRingIndexed(field Field, prefix string, n int, order TermOrder) (*Ring, error) {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return NewRing(field, names, order)
}

// NumVars returns the number of variables of the ring.
func (r *Ring) NumVars() int {
	return len(r.names)
}

// VariableNames returns a copy of the ordered variable names.
func (r *Ring) VariableNames() []string {
	return append([]string{}, r.names...)
}

// VariableIndex returns the position of the named variable, or -1.
func (r *Ring) VariableIndex(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Field returns the base field of the ring.
func (r *Ring) Field() Field {
	return r.field
}

// TermOrder returns the term order of the ring.
func (r *Ring) TermOrder() TermOrder {
	return r.order
}

// Equal compares two rings by variable names, base field and term order.
func (r *Ring) Equal(other *Ring) bool {
	if r == other {
		return true
	}
	if other == nil {
		return false
	}
	return r.field == other.field && r.order.Equal(other.order) && cmp.Equal(r.names, other.names)
}

// Zero returns the zero polynomial of the ring.
func (r *Ring) Zero() *Poly {
	return &Poly{ring: r}
}

// One returns the constant polynomial 1.
func (r *Ring) One() *Poly {
	return r.Constant(big.NewRat(1, 1))
}

// Constant returns the constant polynomial with the given coefficient.
func (r *Ring) Constant(c *big.Rat) *Poly {
	return r.PolyFromTerms([]Term{{Exp: make([]int, len(r.names)), Coeff: c}})
}

// Gen returns the i-th ring variable as a polynomial.
func (r *Ring) Gen(i int) *Poly {
	if i < 0 || i >= len(r.names) {
		panic(fmt.Errorf("ring has no generator %d", i))
	}
	exp := make([]int, len(r.names))
	exp[i] = 1
	return r.PolyFromTerms([]Term{{Exp: exp, Coeff: big.NewRat(1, 1)}})
}

func (r *Ring) String() string {
	return fmt.Sprintf("Multivariate Polynomial Ring in %d variables over %s, %s order", len(r.names), r.field, r.order)
}
