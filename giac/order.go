package giac

import (
	"github.com/giac-go/giacgb/ring"
)

// Engine term order keywords.
const (
	OrderRevLex = "revlex"
	OrderPLex   = "plex"
	OrderTDeg   = "tdeg"
)

// translateOrder maps a ring term order onto the engine's order keyword and
// the variable subset the engine receives:
//
//	degrevlex -> revlex, all variables
//	lex       -> plex, all variables
//	deglex    -> tdeg, all variables
//
// A block order of exactly two degrevlex blocks maps to revlex over the
// variables of the first block only, the engine's analogue of an elimination
// order. Any other shape has no safe translation and is rejected.
func translateOrder(order ring.TermOrder, names []string) (keyword string, vars []string, err error) {

	if !order.IsBlock() {
		switch order.Name() {
		case ring.DegRevLex:
			return OrderRevLex, names, nil
		case ring.Lex:
			return OrderPLex, names, nil
		case ring.DegLex:
			return OrderTDeg, names, nil
		default:
			return "", nil, &UnsupportedOrderError{Order: order}
		}
	}

	blocks := order.Blocks()
	if len(blocks) == 2 && blocks[0].Name == ring.DegRevLex && blocks[1].Name == ring.DegRevLex {
		return OrderRevLex, names[:blocks[0].N], nil
	}

	return "", nil, &UnsupportedOrderError{Order: order}
}
