// Package giactest provides an in-process reference implementation of the
// giac.Engine capability interface, backed by Buchberger's algorithm. It
// exists so the adapter's behavior can be exercised end to end without the
// external engine: tests and examples compute real reduced Groebner bases
// against it and verify them with the exported Buchberger-criterion checker.
package giactest

import (
	"fmt"
	"io"
	"sync"

	"github.com/giac-go/giacgb/giac"
	"github.com/giac-go/giacgb/ring"
	"github.com/giac-go/giacgb/utils"
	"github.com/giac-go/giacgb/utils/sampling"
)

// Engine is an in-process algebra engine implementing giac.Engine. It owns a
// settings instance, a global symbol table and a trace sink for the debug
// protocol output.
type Engine struct {
	mu       sync.Mutex
	settings *giac.Settings
	bound    map[string]string
	trace    io.Writer
	prng     sampling.PRNG
}

// NewEngine creates an engine with default settings, an empty symbol table
// and a deterministic source of verification primes.
func NewEngine() *Engine {
	prng, err := sampling.NewKeyedPRNG([]byte("giactest"))
	if err != nil {
		panic(err)
	}
	return &Engine{
		settings: giac.NewSettings(),
		bound:    make(map[string]string),
		trace:    io.Discard,
		prng:     prng,
	}
}

// Settings returns the engine's global settings instance.
func (e *Engine) Settings() *giac.Settings {
	return e.settings
}

// SetTrace redirects the debug protocol output, which is emitted whenever
// the debug level is at least 2.
func (e *Engine) SetTrace(w io.Writer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.trace = w
}

// Bind binds an identifier to a value in the engine's global namespace.
func (e *Engine) Bind(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bound[name] = value
}

// ListBoundNames returns the sorted identifiers currently bound to a value.
func (e *Engine) ListBoundNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return utils.GetSortedKeys(e.bound)
}

// Purge clears the binding of the given identifier.
func (e *Engine) Purge(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.bound[name]; !ok {
		return fmt.Errorf("%s is not bound", name)
	}
	delete(e.bound, name)
	return nil
}

// Gbasis computes the reduced Groebner basis of gens under the given order
// keyword over the given variables. A proper subset of the ring variables
// must be a prefix and is interpreted as the leading degrevlex block of a
// two-block order, matching the engine's elimination-style revlex semantics.
func (e *Engine) Gbasis(gens []*ring.Poly, vars []string, order string) ([]*ring.Poly, error) {

	if len(gens) == 0 {
		return nil, fmt.Errorf("gbasis: no generators")
	}
	P := gens[0].Ring()

	cmp, err := e.comparator(P, vars, order)
	if err != nil {
		return nil, err
	}

	b := &basisComputer{cmp: cmp, cf: fieldCoeffs(P.Field())}
	if e.settings.DebugInfoLevel() >= 2 {
		e.mu.Lock()
		b.trace = e.trace
		e.mu.Unlock()
	}

	wgens := make([]wpoly, len(gens))
	for i, g := range gens {
		wgens[i] = b.fromPoly(g)
	}

	basis := b.gbasis(wgens)

	if P.Field().Characteristic() == 0 {
		if !b.verifyRational(basis, wgens, e.settings.ProbaEpsilon(), e.prng) {
			return nil, fmt.Errorf("gbasis: verification failed")
		}
	}

	return toPolys(P, basis), nil
}

// Eliminate computes a Groebner basis of the ideal obtained by eliminating
// the given variables, under a degrevlex order on the remaining ones. The
// working order is the two-block degrevlex order with the eliminated
// variables leading; basis elements still involving them are discarded.
func (e *Engine) Eliminate(gens []*ring.Poly, vars []string) ([]*ring.Poly, error) {

	if len(gens) == 0 {
		return nil, fmt.Errorf("eliminate: no generators")
	}
	P := gens[0].Ring()

	elim := make([]int, 0, len(vars))
	for _, name := range vars {
		idx := P.VariableIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("eliminate: unknown variable %q", name)
		}
		elim = append(elim, idx)
	}
	utils.SortSlice(elim)

	isElim := make([]bool, P.NumVars())
	for _, idx := range elim {
		isElim[idx] = true
	}
	var rest []int
	for i := 0; i < P.NumVars(); i++ {
		if !isElim[i] {
			rest = append(rest, i)
		}
	}

	b := &basisComputer{cmp: positionBlockCompare(elim, rest), cf: fieldCoeffs(P.Field())}
	if e.settings.DebugInfoLevel() >= 2 {
		e.mu.Lock()
		b.trace = e.trace
		e.mu.Unlock()
	}

	wgens := make([]wpoly, len(gens))
	for i, g := range gens {
		wgens[i] = b.fromPoly(g)
	}

	var eliminated []wpoly
	for _, f := range b.gbasis(wgens) {
		free := true
		for _, t := range f.terms {
			for _, idx := range elim {
				if t.Exp[idx] > 0 {
					free = false
				}
			}
		}
		if free {
			eliminated = append(eliminated, f)
		}
	}

	return toPolys(P, eliminated), nil
}

// comparator builds the working-order comparison for an order keyword and
// variable subset.
func (e *Engine) comparator(P *ring.Ring, vars []string, order string) (func(a, b []int) int, error) {

	names := P.VariableNames()
	if len(vars) > len(names) {
		return nil, fmt.Errorf("gbasis: %d variables for a ring with %d", len(vars), len(names))
	}
	for i, name := range vars {
		if names[i] != name {
			return nil, fmt.Errorf("gbasis: variable list must be a prefix of the ring variables, got %q at position %d", name, i)
		}
	}

	if len(vars) < len(names) {
		if order != giac.OrderRevLex {
			return nil, fmt.Errorf("gbasis: a variable subset is only supported with the revlex order, not %q", order)
		}
		blockOrder := ring.BlockOrder(
			ring.Block{Name: ring.DegRevLex, N: len(vars)},
			ring.Block{Name: ring.DegRevLex, N: len(names) - len(vars)},
		)
		return blockOrder.Compare, nil
	}

	switch order {
	case giac.OrderRevLex:
		return ring.NewTermOrder(ring.DegRevLex).Compare, nil
	case giac.OrderPLex:
		return ring.NewTermOrder(ring.Lex).Compare, nil
	case giac.OrderTDeg:
		return ring.NewTermOrder(ring.DegLex).Compare, nil
	default:
		return nil, fmt.Errorf("gbasis: unknown order %q", order)
	}
}

// positionBlockCompare compares exponent vectors under the two-block
// degrevlex order induced by the given variable positions.
func positionBlockCompare(first, second []int) func(a, b []int) int {
	drl := ring.NewTermOrder(ring.DegRevLex)
	return func(a, b []int) int {
		if c := drl.Compare(project(a, first), project(b, first)); c != 0 {
			return c
		}
		return drl.Compare(project(a, second), project(b, second))
	}
}

func project(exp []int, positions []int) []int {
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = exp[p]
	}
	return out
}

func toPolys(P *ring.Ring, basis []wpoly) []*ring.Poly {
	out := make([]*ring.Poly, len(basis))
	for i, f := range basis {
		out[i] = P.PolyFromTerms(f.terms)
	}
	return out
}

// IsGroebner checks the Buchberger criterion for basis under the term order
// of its parent ring.
func IsGroebner(basis []*ring.Poly) bool {

	if len(basis) == 0 {
		return false
	}
	P := basis[0].Ring()

	b := &basisComputer{cmp: P.TermOrder().Compare, cf: fieldCoeffs(P.Field())}
	G := make([]wpoly, 0, len(basis))
	for _, f := range basis {
		if !f.IsZero() {
			G = append(G, b.monic(b.fromPoly(f)))
		}
	}
	if len(G) == 0 {
		// The zero basis spans the zero ideal, which it trivially reduces.
		return true
	}

	return b.isGroebner(G)
}

// NormalForm fully reduces f modulo basis under the term order of its
// parent ring. The result is zero exactly when f lies in the ideal spanned
// by a Groebner basis.
func NormalForm(f *ring.Poly, basis []*ring.Poly) *ring.Poly {

	P := f.Ring()
	b := &basisComputer{cmp: P.TermOrder().Compare, cf: fieldCoeffs(P.Field())}

	G := make([]wpoly, 0, len(basis))
	for _, g := range basis {
		if !g.IsZero() {
			G = append(G, b.fromPoly(g))
		}
	}

	nf := b.normalForm(b.fromPoly(f), G)
	if nf.isZero() {
		return P.Zero()
	}
	return P.PolyFromTerms(nf.terms)
}
