package parser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/insightdelivered/statement-field-extractor/internal/models"
)

// Fixed confidence constants. Confidence signals which matching rule
// produced the value, not a statistical measure, so each rule gets a
// constant rather than anything computed.
const (
	confidenceExact    = 0.95 // label plus a well-shaped value
	confidencePeriod   = 0.9  // period phrase taken verbatim
	confidenceVariant  = 0.85 // product name keyword hit
	confidenceFallback = 0.8  // label matched, value shape did not
)

// notFound is the canonical absent-value result shared by every field.
func notFound() models.Extraction {
	return models.Extraction{Notes: "not found"}
}

// Every extractor below walks the pages in document order and returns on
// the first page that matches; later pages are never examined. Pages are
// reported 1-indexed.

// ExtractLast4 finds the last four digits of the card or account number
// next to one of the known labels ("Card ending in", "Acct.", a masked
// number, ...).
func ExtractLast4(pages []string) models.Extraction {
	for i, text := range pages {
		loc := last4Pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		return models.Extraction{
			Value:      text[loc[2]:loc[3]],
			Page:       i + 1,
			Snippet:    snippetAround(text, loc[0], loc[1], snippetContext),
			Confidence: confidenceExact,
		}
	}
	return notFound()
}

// ExtractDueDate finds the payment due date. The label capture is a loose
// phrase; the value is the first numeric date inside it, or failing that
// the first worded date ("March 5, 2024"). A label hit whose phrase holds
// no recognizable date does not stop the page scan.
func ExtractDueDate(pages []string) models.Extraction {
	for i, text := range pages {
		loc := dueDatePattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		phrase := text[loc[2]:loc[3]]
		date := numericDatePattern.FindString(phrase)
		if date == "" {
			date = wordedDatePattern.FindString(phrase)
		}
		if date == "" {
			continue
		}
		return models.Extraction{
			Value:      Normalize(date),
			Page:       i + 1,
			Snippet:    snippetAround(text, loc[0], loc[1], snippetContext),
			Confidence: confidenceExact,
		}
	}
	return notFound()
}

// ExtractStatementPeriod finds the statement/billing period. The captured
// range phrase is used verbatim after normalization; no date sub-parsing.
func ExtractStatementPeriod(pages []string) models.Extraction {
	for i, text := range pages {
		loc := periodPattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		return models.Extraction{
			Value:      Normalize(text[loc[2]:loc[3]]),
			Page:       i + 1,
			Snippet:    snippetAround(text, loc[0], loc[1], snippetContext),
			Confidence: confidencePeriod,
		}
	}
	return notFound()
}

// ExtractTotalBalance finds the total amount due. When a currency-shaped
// token sits inside the captured phrase it becomes the value as-is at
// full confidence; otherwise the whole normalized phrase is returned at
// reduced confidence.
func ExtractTotalBalance(pages []string) models.Extraction {
	for i, text := range pages {
		loc := totalBalancePattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		captured := text[loc[2]:loc[3]]
		snippet := snippetAround(text, loc[0], loc[1], snippetContext)
		if amount := currencyPattern.FindString(captured); amount != "" {
			return models.Extraction{
				Value:      amount,
				Page:       i + 1,
				Snippet:    snippet,
				Confidence: confidenceExact,
			}
		}
		return models.Extraction{
			Value:      Normalize(captured),
			Page:       i + 1,
			Snippet:    snippet,
			Confidence: confidenceFallback,
		}
	}
	return notFound()
}

// ExtractCardVariant finds the card product name for the detected issuer.
// Without an issuer hint there is no candidate list, so the page scan is
// skipped entirely. With one, each page is checked against the issuer's
// names in declared order: the first listed name present anywhere on a
// page wins, regardless of where other names sit in the text. The value
// is the matched name with each word capitalized.
func ExtractCardVariant(pages []string, issuerHint string) models.Extraction {
	if issuerHint == "" {
		return models.Extraction{Notes: "issuer unknown"}
	}
	names := variantNames(issuerHint)
	title := cases.Title(language.English)

	for i, text := range pages {
		lc := strings.ToLower(text)
		for _, name := range names {
			idx := strings.Index(lc, name)
			if idx < 0 {
				continue
			}
			// Lower-casing maps rune for rune but can change byte
			// lengths, so the byte index into lc is converted to a
			// rune index before windowing the original text.
			runeIdx := utf8.RuneCountInString(lc[:idx])
			runes := []rune(text)
			lo := runeIdx - variantContext
			if lo < 0 {
				lo = 0
			}
			hi := runeIdx + variantContext
			if hi > len(runes) {
				hi = len(runes)
			}
			return models.Extraction{
				Value:      title.String(name),
				Page:       i + 1,
				Snippet:    Normalize(string(runes[lo:hi])),
				Confidence: confidenceVariant,
			}
		}
	}
	return notFound()
}
