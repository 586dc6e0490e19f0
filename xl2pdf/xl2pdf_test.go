package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorParse(t *testing.T) {
	var c Color
	require.NoError(t, c.Parse("e6e6e6"))
	assert.Equal(t, 230, c.Red)
	assert.Equal(t, 230, c.Green)
	assert.Equal(t, 230, c.Blue)

	require.Error(t, c.Parse("zz"))
	require.Error(t, c.Parse("ff"))
	require.Error(t, c.Parse("ffeeddcc"))
}
