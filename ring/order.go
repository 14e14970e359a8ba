package ring

import (
	"fmt"
	"strings"
)

// OrderName identifies a named monomial order.
type OrderName string

const (
	// Lex is the pure lexicographic order.
	Lex OrderName = "lex"
	// DegLex is the total-degree order with lexicographic tie-break.
	DegLex OrderName = "deglex"
	// DegRevLex is the total-degree order with reverse-lexicographic tie-break.
	DegRevLex OrderName = "degrevlex"
)

func knownOrderName(name OrderName) bool {
	switch name {
	case Lex, DegLex, DegRevLex:
		return true
	default:
		return false
	}
}

// Block is one block of a block term order, covering n contiguous variables.
type Block struct {
	Name OrderName
	N    int
}

// TermOrder describes the monomial order of a polynomial ring: either a
// single named order over all variables, or a composition of blocks each
// ordering a contiguous group of variables.
type TermOrder struct {
	name   OrderName
	blocks []Block
}

// NewTermOrder returns the single named order over all ring variables.
func NewTermOrder(name OrderName) TermOrder {
	return TermOrder{name: name}
}

// BlockOrder returns the block order composed of the given blocks, applied
// left to right over contiguous groups of variables.
func BlockOrder(blocks ...Block) TermOrder {
	return TermOrder{blocks: append([]Block{}, blocks...)}
}

// IsBlock returns true if the order is a block composition.
func (t TermOrder) IsBlock() bool {
	return len(t.blocks) > 0
}

// Name returns the name of a single order, or the empty name for block orders.
func (t TermOrder) Name() OrderName {
	return t.name
}

// Blocks returns the blocks of a block order, nil for single orders.
func (t TermOrder) Blocks() []Block {
	return append([]Block{}, t.blocks...)
}

// Equal compares two term orders structurally.
func (t TermOrder) Equal(other TermOrder) bool {
	if t.name != other.name || len(t.blocks) != len(other.blocks) {
		return false
	}
	for i := range t.blocks {
		if t.blocks[i] != other.blocks[i] {
			return false
		}
	}
	return true
}

func (t TermOrder) String() string {
	if !t.IsBlock() {
		return string(t.name)
	}
	parts := make([]string, len(t.blocks))
	for i, b := range t.blocks {
		parts[i] = fmt.Sprintf("%s(%d)", b.Name, b.N)
	}
	return strings.Join(parts, ",")
}

// Compare compares the exponent vectors a and b under the term order and
// returns 1 if a is the larger monomial, -1 if b is, and 0 if they are equal.
// Both vectors must span all variables covered by the order.
func (t TermOrder) Compare(a, b []int) int {
	if !t.IsBlock() {
		return compareSingle(t.name, a, b)
	}
	var off int
	for _, blk := range t.blocks {
		if c := compareSingle(blk.Name, a[off:off+blk.N], b[off:off+blk.N]); c != 0 {
			return c
		}
		off += blk.N
	}
	// Variables beyond the declared blocks tie-break as a trailing degrevlex block.
	if off < len(a) {
		return compareSingle(DegRevLex, a[off:], b[off:])
	}
	return 0
}

func compareSingle(name OrderName, a, b []int) int {
	switch name {
	case Lex:
		return compareLex(a, b)
	case DegLex:
		if c := compareDeg(a, b); c != 0 {
			return c
		}
		return compareLex(a, b)
	case DegRevLex:
		if c := compareDeg(a, b); c != 0 {
			return c
		}
		return compareRevLex(a, b)
	default:
		panic(fmt.Errorf("unknown term order %q", name))
	}
}

func compareDeg(a, b []int) int {
	var da, db int
	for i := range a {
		da += a[i]
		db += b[i]
	}
	switch {
	case da > db:
		return 1
	case da < db:
		return -1
	default:
		return 0
	}
}

func compareLex(a, b []int) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}

// compareRevLex breaks a total-degree tie: the monomial with the smaller
// exponent in the last position where the vectors differ is the larger one.
func compareRevLex(a, b []int) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return 1
		case a[i] > b[i]:
			return -1
		}
	}
	return 0
}
