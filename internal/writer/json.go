// Package writer serializes statement records for output.
package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"

	"github.com/insightdelivered/statement-field-extractor/internal/models"
)

// JSONWriter writes a StatementRecord as JSON.
type JSONWriter struct {
	Indent bool
}

// WriteToFile writes the record as JSON to a file at the given path.
func (w *JSONWriter) WriteToFile(path string, record *models.StatementRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, record)
}

// Write writes the record as JSON to the given writer, followed by a
// trailing newline.
func (w *JSONWriter) Write(out io.Writer, record *models.StatementRecord) error {
	var (
		data []byte
		err  error
	)
	if w.Indent {
		data, err = sonic.MarshalIndent(record, "", "  ")
	} else {
		data, err = sonic.Marshal(record)
	}
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
