package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMismatch(t *testing.T, err error) {
	t.Helper()
	var mismatch *SignatureMismatchError
	require.True(t, errors.As(err, &mismatch), "got %v", err)
}

func TestMatchHeaderAcceptsExactSignature(t *testing.T) {
	h := mustHandler(t, func(a int, b string) []string { return nil }, nil)
	assert.NoError(t, h.MatchHeader([]string{"int", "string", "list<string>"}))
}

func TestMatchHeaderRejectsAnyLengthChange(t *testing.T) {
	h := mustHandler(t, func(a, b int) int { return a + b }, nil)
	for _, tags := range [][]string{
		{},
		{"int", "int"},
		{"int", "int", "int", "int"},
	} {
		requireMismatch(t, h.MatchHeader(tags))
	}
}

func TestMatchHeaderRejectsAnySingleTagMutation(t *testing.T) {
	h := mustHandler(t, func(a, b int) int { return a + b }, nil)
	good := []string{"int", "int", "int"}
	require.NoError(t, h.MatchHeader(good))

	for i := range good {
		tags := append([]string(nil), good...)
		tags[i] = "string"
		requireMismatch(t, h.MatchHeader(tags))
	}
}

func TestMatchHeaderVoidFunctionHasNoExpectedTag(t *testing.T) {
	h := mustHandler(t, func(n int) {}, nil)
	assert.NoError(t, h.MatchHeader([]string{"int"}))
	requireMismatch(t, h.MatchHeader([]string{"int", "string"}))
}

func TestMatchHeaderUsesComparatorExpectedType(t *testing.T) {
	h := mustHandler(t, func(n int) int { return n * 2 },
		func(expected string, actual int) bool { return true })
	assert.NoError(t, h.MatchHeader([]string{"int", "string"}))
	requireMismatch(t, h.MatchHeader([]string{"int", "int"}))
}

func TestHandlerShape(t *testing.T) {
	h := mustHandler(t, func(a, b int) int { return a + b }, nil)
	assert.Equal(t, 2, h.ArgumentCount())
	assert.False(t, h.ExpectedIsVoid())

	v := mustHandler(t, func(n int) {}, nil)
	assert.Equal(t, 1, v.ArgumentCount())
	assert.True(t, v.ExpectedIsVoid())
}
