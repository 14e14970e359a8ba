package ring

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
)

// IsPrime applies the Baillie-PSW test, which is 100% accurate for numbers below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// PreviousPrime returns the largest prime strictly smaller than q.
func PreviousPrime(q uint64) (uint64, error) {
	for q > 2 {
		q--
		if IsPrime(q) {
			return q, nil
		}
	}
	return 0, fmt.Errorf("no prime smaller than %d", q)
}

// NextPrime returns the smallest prime strictly larger than q.
func NextPrime(q uint64) (uint64, error) {
	for {
		q++
		if q == 0 {
			return 0, fmt.Errorf("next prime exceeds 64 bits")
		}
		if IsPrime(q) {
			return q, nil
		}
	}
}

// RandomPrime samples a uniform prime of the given bit-size from the provided
// source of randomness. The bit-size must be between 2 and 62.
func RandomPrime(prng io.Reader, bits int) (uint64, error) {

	if bits < 2 || bits > 62 {
		return 0, fmt.Errorf("prime bit-size must be between 2 and 62 but is %d", bits)
	}

	b := make([]byte, 8)
	lo := uint64(1) << (bits - 1)
	hi := uint64(1) << bits

	for {
		if _, err := io.ReadFull(prng, b); err != nil {
			return 0, err
		}
		candidate := lo + binary.BigEndian.Uint64(b)%(hi-lo)
		if IsPrime(candidate) {
			return candidate, nil
		}
	}
}
