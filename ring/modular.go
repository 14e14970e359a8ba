package ring

// Modular arithmetic kernels for prime moduli q < 2^31. Operands are assumed
// reduced, so sums fit in 64 bits without overflow and products fit without a
// wide multiplication.

// CRed reduces a in [0, 2q-1] to [0, q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		a -= q
	}
	return a
}

// AddMod returns x+y mod q.
func AddMod(x, y, q uint64) uint64 {
	return CRed(x+y, q)
}

// SubMod returns x-y mod q.
func SubMod(x, y, q uint64) uint64 {
	return CRed(x+q-y, q)
}

// NegMod returns -x mod q.
func NegMod(x, q uint64) uint64 {
	return CRed(q-x, q)
}

// MulMod returns x*y mod q. Requires q < 2^31 so that the product of two
// reduced operands fits in 64 bits.
func MulMod(x, y, q uint64) uint64 {
	return (x * y) % q
}

// ModExp returns x^e mod q by square and multiply.
func ModExp(x, e, q uint64) (r uint64) {
	r = 1
	x %= q
	for e > 0 {
		if e&1 == 1 {
			r = MulMod(r, x, q)
		}
		x = MulMod(x, x, q)
		e >>= 1
	}
	return
}

// InvMod returns x^-1 mod q for prime q, by Fermat's little theorem.
// It panics on x = 0 mod q.
func InvMod(x, q uint64) uint64 {
	x %= q
	if x == 0 {
		panic("0 has no inverse")
	}
	return ModExp(x, q-2, q)
}
