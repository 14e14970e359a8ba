package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModularArithmetic(t *testing.T) {

	const q = uint64(2147483647)

	require.Equal(t, uint64(0), AddMod(q-1, 1, q))
	require.Equal(t, uint64(q-1), SubMod(0, 1, q))
	require.Equal(t, uint64(0), NegMod(0, q))
	require.Equal(t, uint64(1), NegMod(q-1, q))
	require.Equal(t, uint64(4), MulMod(2, 2, q))

	// (q-1)^2 = 1 mod q.
	require.Equal(t, uint64(1), MulMod(q-1, q-1, q))
}

func TestModExp(t *testing.T) {
	require.Equal(t, uint64(1024), ModExp(2, 10, 1000003))
	require.Equal(t, uint64(1), ModExp(5, 0, 7))
	// Fermat: x^(q-1) = 1 mod q.
	require.Equal(t, uint64(1), ModExp(1234567, 2147483646, 2147483647))
}

func TestInvMod(t *testing.T) {

	require.Equal(t, uint64(5), InvMod(3, 7))

	const q = uint64(2147483629)
	for _, x := range []uint64{1, 2, 12345, q - 1} {
		require.Equal(t, uint64(1), MulMod(x, InvMod(x, q), q))
	}

	require.Panics(t, func() { InvMod(0, 7) })
}
