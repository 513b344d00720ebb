package spamfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBayesClassifier_IsSpam(t *testing.T) {
	classifier := NewBayesClassifier()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "promotional phrase from corpus",
			input:    "buy now limited time offer",
			expected: true,
		},
		{
			name:     "prize scam",
			input:    "congratulations you won a free gift card",
			expected: true,
		},
		{
			name:     "price question",
			input:    "how much does this cost?",
			expected: false,
		},
		{
			name:     "polite thanks",
			input:    "thanks for the help, nice product",
			expected: false,
		},
		{
			name:     "bengali ham phrase",
			input:    "আপনার পণ্যটি ভালো",
			expected: false,
		},
		{
			name:     "bengali spam phrase",
			input:    "ফ্রি মোবাইল রিচার্জ টাকা পাঠাও",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.IsSpam(tt.input))
		})
	}
}

func TestBayesClassifier_EmptyInputIsHam(t *testing.T) {
	classifier := NewBayesClassifier()

	assert.False(t, classifier.IsSpam(""))
	assert.False(t, classifier.IsSpam("   \t  "))
	assert.False(t, classifier.IsSpam("!!! ??? ..."))
}

func TestBayesClassifier_OutOfVocabularyDoesNotPanic(t *testing.T) {
	classifier := NewBayesClassifier()

	assert.NotPanics(t, func() {
		classifier.IsSpam("zxqv wvutk plmno qrstu")
	})
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "lowercase and split",
			input:    "Buy NOW, please!",
			expected: []string{"buy", "now", "please"},
		},
		{
			name:     "bengali text",
			input:    "দাম কত?",
			expected: []string{"দাম", "কত"},
		},
		{
			name:     "digits kept",
			input:    "earn $1000 daily",
			expected: []string{"earn", "1000", "daily"},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expected == nil {
				assert.Empty(t, tokenize(tt.input))
				return
			}

			assert.Equal(t, tt.expected, tokenize(tt.input))
		})
	}
}
