package parser

import "strings"

// DetectIssuer scans the full document text for known issuer keywords and
// returns the code of the first issuer in the table with any keyword
// present, or "" when none match. The whole text is lower-cased once;
// issuer table order decides ties.
func DetectIssuer(fulltext string) string {
	lc := strings.ToLower(fulltext)
	for _, entry := range issuerTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lc, keyword) {
				return entry.Code
			}
		}
	}
	return ""
}
