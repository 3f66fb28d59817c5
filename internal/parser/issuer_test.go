package parser

import "testing"

func TestDetectIssuer(t *testing.T) {
	tests := []struct {
		name     string
		fulltext string
		expected string
	}{
		{
			name:     "detects pnb by name",
			fulltext: "Punjab National Bank\nCredit Card Statement",
			expected: "pnb",
		},
		{
			name:     "detects hdfc",
			fulltext: "HDFC Bank Credit Card",
			expected: "hdfc",
		},
		{
			name:     "detects sbi by full name",
			fulltext: "State Bank of India statement",
			expected: "sbi",
		},
		{
			name:     "bofa keyword maps to lena",
			fulltext: "bankofamerica.com statement services",
			expected: "lena",
		},
		{
			name:     "case insensitive",
			fulltext: "SBI CARD",
			expected: "sbi",
		},
		{
			name:     "unknown issuer",
			fulltext: "Some Regional Bank",
			expected: "",
		},
		{
			name:     "empty text",
			fulltext: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectIssuer(tt.fulltext)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// Declaration order in the issuer table is the tie-break: when keywords
// of several issuers appear in one document, the earliest table entry
// wins no matter where its keyword sits in the text.
func TestDetectIssuerOrderTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		fulltext string
		expected string
	}{
		{
			name:     "pnb beats hdfc",
			fulltext: "HDFC Bank partnered with PNB",
			expected: "pnb",
		},
		{
			name:     "pnb beats hdfc regardless of text order",
			fulltext: "pnb statement issued via hdfc gateway",
			expected: "pnb",
		},
		{
			name:     "lena beats sbi",
			fulltext: "sbi transfer to bofa account",
			expected: "lena",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectIssuer(tt.fulltext)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
