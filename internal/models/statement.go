package models

// Extraction is the result of looking up a single field in a statement.
// A field that was not located has an empty Value, zero Confidence, and
// a Notes string explaining why; a located field always carries the
// 1-indexed page it was found on and a context snippet for verification.
type Extraction struct {
	Value      string  `json:"value,omitempty"`
	Page       int     `json:"page,omitempty"`
	Snippet    string  `json:"snippet,omitempty"`
	Confidence float64 `json:"confidence"`
	Notes      string  `json:"notes,omitempty"`
}

// Found reports whether the field was located.
func (e Extraction) Found() bool {
	return e.Value != ""
}

// StatementRecord holds every field extracted from one statement document.
// It is assembled once per document and not modified afterwards.
type StatementRecord struct {
	IssuerHint      string     `json:"issuer_hint,omitempty"`
	CardLast4       Extraction `json:"card_last4"`
	CardVariant     Extraction `json:"card_variant"`
	StatementPeriod Extraction `json:"statement_period"`
	PaymentDueDate  Extraction `json:"payment_due_date"`
	TotalBalance    Extraction `json:"total_balance"`
}
