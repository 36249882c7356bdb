package javadoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNestingCounter_Increment(t *testing.T) {
	var c NestingCounter

	require.False(t, c.IsPositive())

	c.Increment()
	require.True(t, c.IsPositive())

	c.Increment()
	c.DecrementIfPositive()
	require.True(t, c.IsPositive(), "depth 2 minus 1 is still positive")

	c.DecrementIfPositive()
	require.False(t, c.IsPositive())
}

func TestNestingCounter_IncrementIfPositive(t *testing.T) {
	var c NestingCounter

	// a conditional increment on an inactive counter is inert
	c.IncrementIfPositive()
	require.False(t, c.IsPositive())

	c.Increment()
	c.IncrementIfPositive()

	// now two decrements are needed to deactivate it
	c.DecrementIfPositive()
	require.True(t, c.IsPositive())
	c.DecrementIfPositive()
	require.False(t, c.IsPositive())
}

func TestNestingCounter_NeverGoesNegative(t *testing.T) {
	var c NestingCounter

	c.DecrementIfPositive()
	c.DecrementIfPositive()
	require.False(t, c.IsPositive())

	// one increment must be enough to activate it again
	c.Increment()
	require.True(t, c.IsPositive())
}
