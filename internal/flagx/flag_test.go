package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "localhost:6379", "-x", "ignored", "-p", "2"}
	got := FilterArgs(args, []string{"-a", "-p"})
	require.Equal(t, []string{"-a", "localhost:6379", "-p", "2"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--backend=redis", "--other=zzz", "-k=foodItems"}
	got := FilterArgs(args, []string{"--backend", "-k"})
	require.Equal(t, []string{"--backend=redis", "-k=foodItems"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// A bare allowed flag directly followed by another flag keeps no value.
	args := []string{"-v", "-a", "addr"}
	got := FilterArgs(args, []string{"-v"})
	require.Equal(t, []string{"-v"}, got)
}

func TestFilterArgs_NoMatches(t *testing.T) {
	got := FilterArgs([]string{"-x", "1", "-y"}, []string{"-a"})
	require.Empty(t, got)
}
