package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSortedKeys(t *testing.T) {
	m := map[string]int{"x2": 1, "x0": 3, "x1": 2}
	require.Equal(t, []string{"x0", "x1", "x2"}, GetSortedKeys(m))
}

func TestGetDistincts(t *testing.T) {
	actual := GetDistincts([]string{"x", "y", "x", "x"})
	sort.Strings(actual)
	require.Equal(t, []string{"x", "y"}, actual)
}

func TestSortSlice(t *testing.T) {
	s := []int{3, 1, 2}
	SortSlice(s)
	require.Equal(t, []int{1, 2, 3}, s)
}

func TestIsInSlice(t *testing.T) {
	require.True(t, IsInSlice("y", []string{"x", "y"}))
	require.False(t, IsInSlice("z", []string{"x", "y"}))
}
