package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageDetector_Detect(t *testing.T) {
	detector := NewLanguageDetector()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "english question",
			input:    "how much does this cost?",
			expected: "en",
		},
		{
			name:     "bengali price question",
			input:    "দাম কত?",
			expected: "bn",
		},
		{
			name:     "bengali sentence",
			input:    "আপনার পণ্য সম্পর্কে জানতে চাই।",
			expected: "bn",
		},
		{
			name:     "russian sentence",
			input:    "сколько это стоит?",
			expected: "ru",
		},
		{
			name:     "empty falls back to working language",
			input:    "",
			expected: "en",
		},
		{
			name:     "whitespace only falls back",
			input:    "   \t ",
			expected: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Detect(tt.input))
		})
	}
}
