package extractor

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ErrNoReadableText is returned when the PDF opens fine but none of the
// extraction methods produce readable statement text. Image-only scans
// and custom-font encodings end up here.
var ErrNoReadableText = errors.New("no readable text could be extracted from PDF")

// PDFSource extracts per-page text from PDF statements using the
// ledongthuc/pdf library. It tries row-based extraction first, which
// keeps label/value pairs on the same line, and falls back to plain-text
// extraction per page and then per document.
type PDFSource struct{}

// Pages implements TextSource.
func (PDFSource) Pages(path string) ([]string, error) {
	pages, err := extractPages(path)
	if err != nil {
		return nil, fmt.Errorf("pdf text extraction: %w", err)
	}
	if !isReadableText(pages) {
		return nil, ErrNoReadableText
	}
	return pages, nil
}

func extractPages(path string) (pages []string, err error) {
	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, errors.New("pdf has no pages")
	}

	pages = pagesByRow(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	pages = pagesByPlainText(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	if text := documentPlainText(r); isReadableText([]string{text}) {
		return []string{text}, nil
	}

	return pages, nil
}

// pagesByRow reconstructs each page line by line from the row layout.
// Unreadable pages become empty strings so page numbering stays aligned
// with the document.
func pagesByRow(r *pdf.Reader, numPages int) []string {
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			pages = append(pages, "")
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// pagesByPlainText uses the per-page plain-text path with the page's
// font map, which decodes some encodings the row path cannot.
func pagesByPlainText(r *pdf.Reader, numPages int) []string {
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}
	return pages
}

// documentPlainText extracts the whole document in one pass, losing page
// boundaries. Last resort only.
func documentPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// statementWords appear in virtually every credit-card statement. Text
// containing none of them is treated as garbage from a failed decode.
var statementWords = []string{
	"card", "account", "statement", "balance", "payment", "due",
	"credit", "total", "amount", "period", "date", "bank", "page",
}

// isReadableText checks that the pages hold enough text, that most of it
// is plain readable characters, and that at least one word a statement
// would contain is present. Identity-encoded fonts tend to decode into
// accented garbage, hence the strict ASCII letter check.
func isReadableText(pages []string) bool {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"%&@#!?+=*`, r) ||
				r == '₹' || r == '$' || r == '£' || r == '€' {
				readable++
			}
		}
	}
	if total <= 50 {
		return false
	}
	if float64(readable)/float64(total) <= 0.6 {
		return false
	}
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range statementWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}
