package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace (including newlines) into a
// single space and trims the result. Idempotent.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Context widths for the verification snippets, in bytes either side of
// the match.
const (
	snippetContext = 40
	variantContext = 30
)

// snippetAround returns a normalized window of the page text surrounding
// the byte span [start, end), extended by up to context runes on each
// side and clipped at the page boundaries. Walking runes rather than
// bytes keeps the window from splitting a multibyte character.
func snippetAround(text string, start, end, context int) string {
	lo := start
	for i := 0; i < context && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < context && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return Normalize(text[lo:hi])
}

// ParseAmount converts an extracted balance string like "₹12,345.67" or
// "1,234.56" into a decimal value. It strips the currency sign, grouping
// commas, and whitespace (including non-breaking spaces); the remainder
// must parse as a plain number. The extracted string value itself is
// never altered by this helper.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00A0", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("no digits in amount")
	}
	return decimal.NewFromString(s)
}
