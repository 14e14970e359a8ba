// Package giac orchestrates reduced Groebner basis computations through an
// external computer-algebra engine. It translates the host ring's term order
// into the engine's order vocabulary, guards the engine's process-wide
// settings around each call, and refuses inputs the engine would corrupt or
// crash on: ring variables aliased by the engine's global symbol table, and
// all-zero generator sets.
package giac

import (
	"github.com/giac-go/giacgb/ring"
)

// Engine is the capability surface expected from the external algebra
// engine. The engine owns a process-wide Settings instance and a global
// symbol table; both outlive any single computation.
type Engine interface {

	// Settings returns the engine's global settings. All computations
	// against the engine observe and mutate this single instance.
	Settings() *Settings

	// ListBoundNames returns the identifiers currently bound to a value in
	// the engine's global namespace.
	ListBoundNames() []string

	// Purge clears the binding of the given identifier. It is invoked by
	// callers as remediation for a name conflict, never by this layer.
	Purge(name string) error

	// Gbasis computes the reduced Groebner basis of the lifted generators
	// with respect to the engine order keyword over the given variables.
	Gbasis(gens []*ring.Poly, vars []string, order string) ([]*ring.Poly, error)

	// Eliminate computes a Groebner basis of the elimination ideal obtained
	// by eliminating the given variables, with respect to a degrevlex order
	// on the remaining ones.
	Eliminate(gens []*ring.Poly, vars []string) ([]*ring.Poly, error)
}
