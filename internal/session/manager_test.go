package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	first, err := generateToken()
	require.NoError(t, err)
	second, err := generateToken()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, tokenPrefix))
	assert.NotEqual(t, first, second)
	assert.Len(t, first, len(tokenPrefix)+48)
}

func TestParseFlash(t *testing.T) {
	flash := parseFlash("success|Thank you for subscribing")
	assert.Equal(t, "success", flash.Kind)
	assert.Equal(t, "Thank you for subscribing", flash.Text)

	// Text containing the separator splits on the first occurrence only.
	flash = parseFlash("error|a|b")
	assert.Equal(t, "error", flash.Kind)
	assert.Equal(t, "a|b", flash.Text)

	// Entries without a kind default to info.
	flash = parseFlash("plain message")
	assert.Equal(t, "info", flash.Kind)
	assert.Equal(t, "plain message", flash.Text)
}
