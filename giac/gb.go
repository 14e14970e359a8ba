package giac

import (
	"fmt"

	"github.com/giac-go/giacgb/ring"
	"github.com/giac-go/giacgb/utils"
)

// maxCharacteristic bounds the prime-field characteristics the engine
// implements Groebner bases for.
const maxCharacteristic = 1 << 31

// GeneratorSource is anything a generator set can be extracted from, such as
// a *ring.Ideal or a plain Generators list.
type GeneratorSource interface {
	Gens() []*ring.Poly
}

// Generators is a plain polynomial list usable as a GeneratorSource.
type Generators []*ring.Poly

// Gens returns the list itself.
func (g Generators) Gens() []*ring.Poly {
	return g
}

type options struct {
	probaEpsilon  *float64
	threads       *int
	prot          bool
	elimVariables []string
}

// Option configures a Groebner basis computation.
type Option func(*options)

// WithProbaEpsilon supplies an explicit probability-of-error bound,
// overriding the proof policy. A value of 0 disables probabilistic
// algorithms.
func WithProbaEpsilon(eps float64) Option {
	return func(o *options) {
		o.probaEpsilon = utils.PointyFloat64(eps)
	}
}

// WithThreads overrides the engine's global thread count for this
// computation.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = utils.PointyInt(n)
	}
}

// WithProt raises the engine's debug level for the duration of the
// computation, making it print detailed progress information.
func WithProt() Option {
	return func(o *options) {
		o.prot = true
	}
}

// WithEliminationVariables requests a Groebner basis of the elimination
// ideal with respect to the named variables, computed under a degrevlex
// order regardless of the ring's own term order.
func WithEliminationVariables(names ...string) Option {
	return func(o *options) {
		o.elimVariables = append(o.elimVariables, names...)
	}
}

// GroebnerBasis computes the reduced Groebner basis of the ideal generated
// by gens through the given engine and returns it as an immutable polynomial
// sequence over the original ring.
//
// Generators over the rationals are passed to the engine unchanged;
// generators over a prime field of characteristic p < 2^31 are reduced
// modulo p. Other base fields are not supported. A generator set spanning
// the zero ideal short-circuits to the basis [0] without invoking the
// engine, which cannot handle that degenerate input. The engine's global
// settings are snapshotted before and restored after the call, whatever its
// outcome.
func GroebnerBasis(engine Engine, gens GeneratorSource, opts ...Option) (*ring.PolynomialSequence, error) {

	o := new(options)
	for _, opt := range opts {
		opt(o)
	}

	list := gens.Gens()
	if len(list) == 0 {
		return nil, fmt.Errorf("no generators")
	}

	P := list[0].Ring()
	K := P.Field()
	p := K.Characteristic()

	zero := true
	for _, g := range list {
		if !g.Ring().Equal(P) {
			return nil, fmt.Errorf("generators do not share a common ring")
		}
		zero = zero && g.IsZero()
	}
	if zero {
		return ring.NewPolynomialSequence([]*ring.Poly{P.Zero()}, P), nil
	}

	if err := checkVariableNames(P.VariableNames(), engine.ListBoundNames()); err != nil {
		return nil, err
	}

	// Lift the generators into the engine's representation. Rebuilding
	// through the ring constructor reduces prime-field coefficients into
	// [0, p) before they reach the engine.
	if !K.IsPrimeField() || (p != 0 && p >= maxCharacteristic) {
		return nil, &UnsupportedFieldError{Field: K}
	}
	F := make([]*ring.Poly, len(list))
	for i, g := range list {
		F[i] = P.PolyFromTerms(g.Terms())
	}

	settings := engine.Settings()
	guard := NewSettingsDefaultContext(settings)
	guard.Enter()
	defer guard.Exit()

	if o.probaEpsilon == nil {
		if ProofPolicy() {
			settings.SetProbaEpsilon(0)
		} else {
			settings.SetProbaEpsilon(DefaultProbaEpsilon)
		}
	} else {
		settings.SetProbaEpsilon(*o.probaEpsilon)
	}

	if o.prot {
		settings.SetDebugInfoLevel(2)
	}

	if o.threads != nil {
		settings.SetThreads(*o.threads)
	}

	var basis []*ring.Poly
	var err error

	if len(o.elimVariables) == 0 {

		keyword, vars, errOrder := translateOrder(P.TermOrder(), P.VariableNames())
		if errOrder != nil {
			return nil, errOrder
		}

		basis, err = engine.Gbasis(F, vars, keyword)

	} else {

		elim := utils.GetDistincts(o.elimVariables)
		utils.SortSlice(elim)
		for _, name := range elim {
			if P.VariableIndex(name) < 0 {
				return nil, fmt.Errorf("elimination variable %q is not a variable of %s", name, P)
			}
		}

		basis, err = engine.Eliminate(F, elim)
	}

	if err != nil {
		// Engine failures propagate unmodified; this layer does not
		// interpret them.
		return nil, err
	}

	return ring.NewPolynomialSequence(basis, P), nil
}
