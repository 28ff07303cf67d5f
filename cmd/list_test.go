package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEffects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listEffects(&buf))

	out := buf.String()
	for _, name := range []string{"fade-in", "typewriter", "rainbow", "gradient-flow", "shadow-pop"} {
		assert.Contains(t, out, name)
	}
}

func TestListEasing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listEasing(&buf))

	out := buf.String()
	for _, name := range []string{"linear", "ease-in-out", "ease-out-bounce", "ease-in-out-elastic"} {
		assert.Contains(t, out, name)
	}
}

func TestListColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listColors(&buf))

	out := buf.String()
	assert.Contains(t, out, "rebeccapurple")
	assert.Contains(t, out, "#663399")
	assert.Greater(t, strings.Count(out, "\n"), 100, "expected the full color catalog")
}

func TestShowWelcome(t *testing.T) {
	var buf bytes.Buffer
	showWelcome(&buf)

	out := buf.String()
	assert.Contains(t, out, "figlight")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--help")
}
