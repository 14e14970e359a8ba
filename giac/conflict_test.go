package giac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckVariableNamesNoConflict(t *testing.T) {
	require.NoError(t, checkVariableNames([]string{"x0", "x1", "x2"}, nil))
	require.NoError(t, checkVariableNames([]string{"x", "y"}, []string{"a", "b", "z"}))
}

func TestCheckVariableNamesBoundConflict(t *testing.T) {

	err := checkVariableNames([]string{"x0", "x1", "x2", "x3", "x4"}, []string{"x4", "x2"})
	require.Error(t, err)

	var conflict *NameConflictError
	require.True(t, errors.As(err, &conflict))
	require.Equal(t, []string{"x2", "x4"}, conflict.Names)
	require.Contains(t, err.Error(), `Purge("x2")`)
	require.Contains(t, err.Error(), "x4")
}

func TestCheckVariableNamesReserved(t *testing.T) {

	// i and e are reserved whatever the symbol table holds.
	err := checkVariableNames([]string{"e", "i", "x"}, nil)
	require.Error(t, err)

	var conflict *NameConflictError
	require.True(t, errors.As(err, &conflict))
	require.Equal(t, []string{"e", "i"}, conflict.Names)
	require.Contains(t, err.Error(), `Purge("e")`)
}
