package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterRequest{
		Username:    "  alice  ",
		Password:    "  pass1234  ",
		DisplayName: " Alice ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "pass1234", req.Password)
	assert.Equal(t, "Alice", req.DisplayName)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := RegisterRequest{
		Username:    "bob",
		Password:    "password123",
		DisplayName: "<script>alert('x')</script>",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.DisplayName, "&lt;script&gt;")
	assert.NotContains(t, req.DisplayName, "<script>")
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"trader_joe",
		"USDT",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"has space",
		"semi;colon",
		"<tag>",
		"quote'",
		"",
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

// --- ParseAmount tests ---

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 1250.50 ")
	require.NoError(t, err)
	assert.Equal(t, "1250.5", d.String())

	_, err = ParseAmount("not-a-number")
	assert.Error(t, err)
}
