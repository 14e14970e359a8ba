package giactest

import (
	"math/big"

	"github.com/giac-go/giacgb/ring"
)

// coeffs is the coefficient arithmetic of a basis computation. Values are
// carried as *big.Rat; prime-field implementations keep them as integers in
// [0, p).
type coeffs interface {
	add(a, b *big.Rat) *big.Rat
	sub(a, b *big.Rat) *big.Rat
	mul(a, b *big.Rat) *big.Rat
	inv(a *big.Rat) *big.Rat
	neg(a *big.Rat) *big.Rat
}

// ratCoeffs is exact rational arithmetic, for characteristic 0.
type ratCoeffs struct{}

func (ratCoeffs) add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (ratCoeffs) sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (ratCoeffs) mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (ratCoeffs) inv(a *big.Rat) *big.Rat    { return new(big.Rat).Inv(a) }
func (ratCoeffs) neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }

// modCoeffs is arithmetic modulo a prime p < 2^31, backed by the uint64
// kernels of the ring package.
type modCoeffs struct {
	p uint64
}

func (f modCoeffs) lift(a *big.Rat) uint64 {
	p := new(big.Int).SetUint64(f.p)
	n := new(big.Int).Mod(a.Num(), p)
	if a.IsInt() {
		return n.Uint64()
	}
	d := new(big.Int).Mod(a.Denom(), p)
	inv := new(big.Int).ModInverse(d, p)
	if inv == nil {
		panic("denominator not invertible")
	}
	return n.Mul(n, inv).Mod(n, p).Uint64()
}

func rat(x uint64) *big.Rat {
	return new(big.Rat).SetUint64(x)
}

func (f modCoeffs) add(a, b *big.Rat) *big.Rat {
	return rat(ring.AddMod(f.lift(a), f.lift(b), f.p))
}

func (f modCoeffs) sub(a, b *big.Rat) *big.Rat {
	return rat(ring.SubMod(f.lift(a), f.lift(b), f.p))
}

func (f modCoeffs) mul(a, b *big.Rat) *big.Rat {
	return rat(ring.MulMod(f.lift(a), f.lift(b), f.p))
}

func (f modCoeffs) inv(a *big.Rat) *big.Rat {
	return rat(ring.InvMod(f.lift(a), f.p))
}

func (f modCoeffs) neg(a *big.Rat) *big.Rat {
	return rat(ring.NegMod(f.lift(a), f.p))
}

// fieldCoeffs returns the coefficient arithmetic of the given field.
func fieldCoeffs(f ring.Field) coeffs {
	if p := f.Characteristic(); p != 0 {
		return modCoeffs{p: p}
	}
	return ratCoeffs{}
}
