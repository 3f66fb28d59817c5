package parser

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/insightdelivered/statement-field-extractor/internal/models"
)

// maxFieldWorkers bounds the goroutines used for the independent field
// extractors. Each extractor rescans the full page sequence, so on large
// documents running them in parallel pays off.
const maxFieldWorkers = 4

// ParseStatement runs the full extraction pipeline over the per-page
// texts of one document and assembles the record: issuer detection on
// the newline-joined full text, then the four independent field
// extractors, then card variant (which needs the issuer hint). Field
// lookups that find nothing produce not-found Extractions, never errors.
func ParseStatement(pages []string) *models.StatementRecord {
	record := &models.StatementRecord{
		IssuerHint: DetectIssuer(strings.Join(pages, "\n")),
	}

	// The four extractors are independent of each other and of the
	// issuer hint; each writes only its own field.
	var g errgroup.Group
	g.SetLimit(maxFieldWorkers)
	g.Go(func() error {
		record.CardLast4 = ExtractLast4(pages)
		return nil
	})
	g.Go(func() error {
		record.PaymentDueDate = ExtractDueDate(pages)
		return nil
	})
	g.Go(func() error {
		record.StatementPeriod = ExtractStatementPeriod(pages)
		return nil
	})
	g.Go(func() error {
		record.TotalBalance = ExtractTotalBalance(pages)
		return nil
	})
	_ = g.Wait()

	record.CardVariant = ExtractCardVariant(pages, record.IssuerHint)
	return record
}
