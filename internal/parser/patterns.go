package parser

import "regexp"

// Label-anchored field patterns. Compiled once at startup and read-only
// afterwards. Each pattern matches a known label phrase followed by an
// optional separator and a captured value region; the extractors in
// fields.go decide what to do with the capture.
var (
	// "Card ending in 4321", "Card number: 4321", "Acct. 4321",
	// "Account ending in 4321", masked forms like "XXX-XXXX-4321".
	last4Pattern = regexp.MustCompile(
		`(?i)(?:Card(?:\s+ending\s+in| number| no\.?)|Account(?:\s+ending\s+in)|Acct(?:\.)?|ending|XXX-XXXX-)(?:[:\-]?\s*)?(\d{4})`)

	// Numeric date: 04/15/2024, 4-15-24 and similar.
	numericDatePattern = regexp.MustCompile(`(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`)

	// Worded date: March 5, 2024. The month word is capitalized, 3-9 letters.
	wordedDatePattern = regexp.MustCompile(`([A-Z][a-z]{2,8}\s+\d{1,2},\s*\d{4})`)

	// Due-date label plus a free-form date phrase; the phrase is narrowed
	// to an actual date shape by the extractor.
	dueDatePattern = regexp.MustCompile(
		`(?i)(?:Payment Due Date|Due Date|Payment Due On|Pay By Date)\s*(?:[:\-]?\s*)([A-Za-z0-9 ,/\-]+)`)

	// Statement-period label plus a date-range phrase, used verbatim.
	// The class allows an en-dash so "01/01/2024 – 31/01/2024" survives.
	periodPattern = regexp.MustCompile(
		`(?i)(?:Statement Period|Billing Period|Statement Date Range|Account Activity)\s*(?:[:\-]?\s*)([A-Za-z0-9 ,/\-–to]+)`)

	// Balance label plus an amount: optional rupee sign, comma-grouped
	// digits, optional two-digit fraction.
	totalBalancePattern = regexp.MustCompile(
		`(?i)(?:Total Amount Due|Total Outstanding|Total Due|New Balance|Amount Due|Balance Due)\s*(?:[:\-]?\s*)(₹?\s*[,\d]+(?:\.\d{2})?)`)

	// Currency-shaped token, searched for inside the balance capture.
	currencyPattern = regexp.MustCompile(`₹?\s*[,\d]+(?:\.\d{2})?`)
)

// issuerEntry pairs an issuer code with the lowercase substrings that
// identify it. The table is a slice, not a map: when a document mentions
// more than one issuer, the earliest entry wins, so declaration order is
// part of the detection contract.
type issuerEntry struct {
	Code     string
	Keywords []string
}

var issuerTable = []issuerEntry{
	{Code: "pnb", Keywords: []string{"pnb", "punjab national bank"}},
	{Code: "lena", Keywords: []string{"lena", "bofa", "bankofamerica"}},
	{Code: "hdfc", Keywords: []string{"hdfc"}},
	{Code: "sbi", Keywords: []string{"sbi", "state bank of india"}},
}

// variantEntry lists the card product names known for an issuer, in
// priority order. Only issuers listed here produce a card-variant match;
// the name order is the tie-break when several names appear on one page.
type variantEntry struct {
	Issuer string
	Names  []string
}

var variantTable = []variantEntry{
	{Issuer: "chase", Names: []string{"sapphire", "freedom", "ink", "slate"}},
	{Issuer: "amex", Names: []string{"platinum", "gold", "green", "blue"}},
	{Issuer: "citi", Names: []string{"thankyou", "premier", "double cash"}},
	{Issuer: "boa", Names: []string{"cash rewards", "customized cash"}},
	{Issuer: "hsbc", Names: []string{"premier", "advance"}},
	{Issuer: "sbi", Names: []string{"prime", "simplyclick", "elite", "classic"}},
}

// variantNames returns the candidate product names for an issuer code,
// or nil when the issuer has no variant list.
func variantNames(issuer string) []string {
	for _, entry := range variantTable {
		if entry.Issuer == issuer {
			return entry.Names
		}
	}
	return nil
}
