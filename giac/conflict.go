package giac

import (
	"github.com/giac-go/giacgb/utils"
)

// reservedNames are identifiers the engine always interprets as mathematical
// constants, whatever its symbol table currently holds: i is the imaginary
// unit and e^k is expanded to exp(k).
var reservedNames = []string{"i", "e"}

// checkVariableNames returns a NameConflictError if any of the ring variable
// names collides with a currently bound engine identifier or a reserved
// constant. It must run before any generator reaches the engine, since the
// engine silently aliases such variables instead of failing.
func checkVariableNames(names, bound []string) error {

	blacklist := make(map[string]bool, len(bound)+len(reservedNames))
	for _, name := range reservedNames {
		blacklist[name] = true
	}
	for _, name := range bound {
		blacklist[name] = true
	}

	conflicts := make(map[string]bool)
	for _, name := range names {
		if blacklist[name] {
			conflicts[name] = true
		}
	}

	if len(conflicts) == 0 {
		return nil
	}

	return &NameConflictError{Names: utils.GetSortedKeys(conflicts)}
}
