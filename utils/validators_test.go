// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	for _, email := range []string{
		"user@example.com",
		"first.last+tag@sub.example.co",
	} {
		assert.True(t, IsValidEmail(email), email)
	}

	for _, email := range []string{
		"",
		"not-an-email",
		"missing@tld",
		"@example.com",
		"spaces in@example.com",
	} {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidPassword(t *testing.T) {
	for _, password := range []string{
		"Secret123",
		"abc123",
		"pass-word",
	} {
		assert.True(t, IsValidPassword(password), password)
	}

	for _, password := range []string{
		"short",
		"alllowercase",
		"123456",
	} {
		assert.False(t, IsValidPassword(password), password)
	}
}
