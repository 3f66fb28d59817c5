// Package api exposes the field extractor over HTTP. It is a thin
// adapter: all extraction behavior lives in internal/parser.
package api

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insightdelivered/statement-field-extractor/internal/common"
	"github.com/insightdelivered/statement-field-extractor/internal/extractor"
	"github.com/insightdelivered/statement-field-extractor/internal/models"
	"github.com/insightdelivered/statement-field-extractor/internal/parser"
)

// Version reported by the health endpoint and extraction responses.
const Version = "1.0.0"

// source is the document-text collaborator. Package-level so tests can
// substitute a fake that serves canned page text.
var source extractor.TextSource = extractor.PDFSource{}

// ExtractResponse is the JSON body returned by POST /api/extract.
type ExtractResponse struct {
	Success   bool                    `json:"success"`
	Error     string                  `json:"error,omitempty"`
	RequestID string                  `json:"requestId"`
	Pages     int                     `json:"pages,omitempty"`
	Record    *models.StatementRecord `json:"record,omitempty"`
	// TotalBalanceAmount is the numeric form of the extracted balance,
	// present only when the extracted string parses as an amount.
	TotalBalanceAmount string `json:"totalBalanceAmount,omitempty"`
	Version            string `json:"version,omitempty"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp(cfg *common.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "statement-field-extractor",
		BodyLimit:   cfg.Server.MaxUploadMB << 20,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	app.Get("/api/health", HandleHealth)
	app.Post("/api/extract", HandleExtract)
	return app
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"engine":  "fiber",
	})
}

// HandleExtract accepts a multipart PDF upload in form field "file",
// runs the extraction pipeline, and returns the statement record.
// Fields that were not found come back as not-found extractions with a
// 200 status; only an unreadable document is an error.
func HandleExtract(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, requestID, "No file uploaded. Use form field 'file'.")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, requestID, "Only PDF files are supported.")
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, requestID, "Failed to create temp file.")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return writeError(c, fiber.StatusInternalServerError, requestID, "Failed to save uploaded file.")
	}

	pages, err := source.Pages(tmpPath)
	if err != nil {
		zap.L().Warn("document extraction failed",
			zap.String("requestId", requestID),
			zap.String("file", filepath.Base(fileHeader.Filename)),
			zap.Bool("unreadable", errors.Is(err, extractor.ErrNoReadableText)),
			zap.Error(err))
		return writeError(c, fiber.StatusUnprocessableEntity, requestID, "Document extraction failed: "+err.Error())
	}

	record := parser.ParseStatement(pages)

	resp := ExtractResponse{
		Success:   true,
		RequestID: requestID,
		Pages:     len(pages),
		Record:    record,
		Version:   Version,
	}
	if record.TotalBalance.Found() {
		if amount, err := parser.ParseAmount(record.TotalBalance.Value); err == nil {
			resp.TotalBalanceAmount = amount.String()
		}
	}

	zap.L().Info("statement extracted",
		zap.String("requestId", requestID),
		zap.String("file", filepath.Base(fileHeader.Filename)),
		zap.Int("pages", len(pages)),
		zap.String("issuerHint", record.IssuerHint),
		zap.Bool("last4Found", record.CardLast4.Found()),
		zap.Duration("elapsed", time.Since(start)))

	return c.JSON(resp)
}

func writeError(c *fiber.Ctx, status int, requestID, msg string) error {
	return c.Status(status).JSON(ExtractResponse{
		Success:   false,
		Error:     msg,
		RequestID: requestID,
	})
}
