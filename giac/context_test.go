package giac

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings()
	require.Equal(t, DefaultProbaEpsilon, s.ProbaEpsilon())
	require.Equal(t, 1, s.Threads())
	require.Equal(t, 0, s.DebugInfoLevel())
}

func TestSettingsDefaultContextRoundTrip(t *testing.T) {

	s := NewSettings()
	s.SetProbaEpsilon(1e-16)
	s.SetThreads(3)
	s.SetDebugInfoLevel(1)

	c := NewSettingsDefaultContext(s)
	c.Enter()
	s.SetProbaEpsilon(1e-12)
	s.SetThreads(8)
	s.SetDebugInfoLevel(2)
	c.Exit()

	require.Equal(t, 1e-16, s.ProbaEpsilon())
	require.Equal(t, 3, s.Threads())
	require.Equal(t, 1, s.DebugInfoLevel())
}

func TestWithLocalSettingsPassThrough(t *testing.T) {

	s := NewSettings()

	// The wrapped operation's results pass through unchanged, while its
	// settings mutations are reverted.
	got, err := WithLocalSettings(s, func() (int, error) {
		s.SetProbaEpsilon(1e-30)
		s.SetThreads(5)
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, got)
	require.Equal(t, DefaultProbaEpsilon, s.ProbaEpsilon())
	require.Equal(t, 1, s.Threads())
}

func TestWithLocalSettingsRestoresOnError(t *testing.T) {

	s := NewSettings()
	s.SetThreads(2)

	wantErr := fmt.Errorf("engine exploded")
	_, err := WithLocalSettings(s, func() (struct{}, error) {
		s.SetThreads(16)
		s.SetDebugInfoLevel(2)
		return struct{}{}, wantErr
	})
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 2, s.Threads())
	require.Equal(t, 0, s.DebugInfoLevel())
}

func TestWithLocalSettingsRestoresOnPanic(t *testing.T) {

	s := NewSettings()
	s.SetProbaEpsilon(1e-16)

	require.Panics(t, func() {
		WithLocalSettings(s, func() (int, error) {
			s.SetProbaEpsilon(1e-12)
			panic("mid-scope failure")
		})
	})
	require.Equal(t, 1e-16, s.ProbaEpsilon())

	// The scope is released and can be re-entered.
	_, err := WithLocalSettings(s, func() (int, error) { return 0, nil })
	require.NoError(t, err)
}

func TestProofPolicy(t *testing.T) {

	require.True(t, ProofPolicy())

	SetProofPolicy(false)
	require.False(t, ProofPolicy())
	SetProofPolicy(true)
	require.True(t, ProofPolicy())
}
