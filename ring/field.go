package ring

import (
	"fmt"
)

// Field represents the coefficient field of a polynomial ring. The zero
// characteristic denotes the rationals; a non-zero characteristic denotes a
// finite field of that characteristic with the given extension degree.
type Field struct {
	char uint64
	ext  int
}

// Q returns the field of rational numbers.
func Q() Field {
	return Field{char: 0, ext: 1}
}

// GF returns the prime field of cardinality p.
func GF(p uint64) (Field, error) {
	if !IsPrime(p) {
		return Field{}, fmt.Errorf("GF: %d is not prime", p)
	}
	return Field{char: p, ext: 1}, nil
}

// ExtField returns the degree-k extension of the prime field of cardinality p.
// Extension fields can parameterize a Ring but are rejected by operations
// that only support prime fields.
func ExtField(p uint64, k int) (Field, error) {
	if !IsPrime(p) {
		return Field{}, fmt.Errorf("ExtField: %d is not prime", p)
	}
	if k < 1 {
		return Field{}, fmt.Errorf("ExtField: extension degree must be positive but is %d", k)
	}
	return Field{char: p, ext: k}, nil
}

// Characteristic returns the characteristic of the field, 0 for the rationals.
func (f Field) Characteristic() uint64 {
	return f.char
}

// IsPrimeField returns true if the field is the rationals or a finite field
// of prime cardinality.
func (f Field) IsPrimeField() bool {
	return f.ext == 1
}

func (f Field) String() string {
	if f.char == 0 {
		return "QQ"
	}
	if f.ext == 1 {
		return fmt.Sprintf("GF(%d)", f.char)
	}
	return fmt.Sprintf("GF(%d^%d)", f.char, f.ext)
}
