package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "simple URL",
			input: "https://example.com",
		},
		{
			name:  "URL with path and query",
			input: "https://example.com/path?q=1&r=2",
		},
		{
			name:  "unicode URL",
			input: "https://example.com/你好世界",
		},
		{
			name:  "long URL",
			input: "https://example.com/" + string(make([]byte, 2000)),
		},
	}

	hexPattern := regexp.MustCompile(`^[0-9a-f]{64}$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HashURL(tt.input)
			assert.True(t, hexPattern.MatchString(result), "hash should be 64 hex characters")
		})
	}
}

func TestHashURL_Consistency(t *testing.T) {
	input := "https://example.com/some/path"

	hash1 := HashURL(input)
	hash2 := HashURL(input)
	hash3 := HashURL(input)

	assert.Equal(t, hash1, hash2, "hash should be consistent")
	assert.Equal(t, hash2, hash3, "hash should be consistent across multiple calls")
}

func TestHashURL_Distribution(t *testing.T) {
	hashes := make(map[string]bool)
	inputs := []string{
		"https://a.com", "https://b.com", "https://a.com/", "https://a.com/x",
		"http://a.com", "https://a.com?q=1", "https://a.com#f", "https://A.com",
	}

	for _, input := range inputs {
		hashes[HashURL(input)] = true
	}

	assert.Equal(t, len(inputs), len(hashes), "distinct URLs should hash differently")
}

func TestHashURL_CaseSensitive(t *testing.T) {
	upper := HashURL("https://example.com/PATH")
	lower := HashURL("https://example.com/path")

	assert.NotEqual(t, upper, lower, "hash should be case sensitive")
}
