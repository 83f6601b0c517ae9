package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tulu-g559/talkheal-backend/internal/utils"
)

func TestDetectCrisisKeywords(t *testing.T) {
	testCases := []struct {
		name     string
		message  string
		expected bool
	}{
		{name: "NoKeywords", message: "I had a decent day, just tired.", expected: false},
		{name: "DirectPhrase", message: "sometimes I want to die", expected: true},
		{name: "CaseInsensitive", message: "I can't stop thinking about SUICIDE", expected: true},
		{name: "EmbeddedPhrase", message: "honestly I feel like I can't go on like this", expected: true},
		{name: "Empty", message: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detected, matched := utils.DetectCrisisKeywords(tc.message)
			assert.Equal(t, tc.expected, detected)
			if tc.expected {
				assert.NotEmpty(t, matched)
			} else {
				assert.Empty(t, matched)
			}
		})
	}
}

func TestRefreshTokenHashRoundTrip(t *testing.T) {
	hash := utils.HashRefreshToken("raw-token")

	assert.NotEqual(t, "raw-token", hash)
	assert.True(t, utils.CompareRefreshTokenHash("raw-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash("other-token", hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := utils.GenerateSecureRandomString(32)
	assert.NoError(t, err)
	assert.NotEmpty(t, a)

	b, err := utils.GenerateSecureRandomString(32)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
