package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStatic("", "")

	assert.True(t, v.Verify("admin", "password123"))
	assert.False(t, v.Verify("admin", "password"))
	assert.False(t, v.Verify("Admin", "password123"))
	assert.False(t, v.Verify("", ""))
}

func TestStaticVerifierCustomPair(t *testing.T) {
	v := NewStatic("brewer", "s3cret")

	assert.True(t, v.Verify("brewer", "s3cret"))
	assert.False(t, v.Verify("admin", "password123"))
}

func TestVerifierFunc(t *testing.T) {
	var calls int
	var v Verifier = VerifierFunc(func(username, password string) bool {
		calls++
		return username == password
	})

	assert.True(t, v.Verify("x", "x"))
	assert.False(t, v.Verify("x", "y"))
	assert.Equal(t, 2, calls)
}
