package spamfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordFilter_Match(t *testing.T) {
	filter := NewKeywordFilter()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "marketing phrase",
			input:    "Buy Now and save big",
			expected: true,
		},
		{
			name:     "case insensitive",
			input:    "CLICK HERE to win",
			expected: true,
		},
		{
			name:     "phrase inside longer text",
			input:    "this is a limited time offer just for you",
			expected: true,
		},
		{
			name:     "bengali offensive term",
			input:    "এটা খুব অশ্লীল মন্তব্য",
			expected: true,
		},
		{
			name:     "clean greeting",
			input:    "hello, how are you?",
			expected: false,
		},
		{
			name:     "clean price question",
			input:    "what's the price?",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Match(tt.input))
		})
	}
}
