package giac

import (
	"fmt"

	"github.com/giac-go/giacgb/ring"
)

// NameConflictError reports ring variable names that are already bound in
// the engine's global namespace or reserved by the engine. Names is sorted
// lexicographically; Names[0] is the offender named in the remediation hint.
type NameConflictError struct {
	Names []string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("variable names %v conflict in giac; change them or purge them from giac with Purge(%q)", e.Names, e.Names[0])
}

// UnsupportedFieldError reports a base field the engine cannot compute over:
// anything but the rationals or a prime field of cardinality below 2^31.
type UnsupportedFieldError struct {
	Field ring.Field
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("only prime fields of cardinality < 2^31 are implemented in giac for Groebner bases, not %s", e.Field)
}

// UnsupportedOrderError reports a term order with no translation to the
// engine's order vocabulary.
type UnsupportedOrderError struct {
	Order ring.TermOrder
}

func (e *UnsupportedOrderError) Error() string {
	return fmt.Sprintf("%s is not a supported term order for giac Groebner bases", e.Order)
}
