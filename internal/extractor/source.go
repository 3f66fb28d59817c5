package extractor

// TextSource produces the per-page plain text of a statement document.
// Implementations must return one string per page, preserving page order
// and count; a page with no extractable text yields an empty string.
// Any error means the document itself could not be read and is passed
// through to the caller unchanged.
type TextSource interface {
	Pages(path string) ([]string, error)
}
