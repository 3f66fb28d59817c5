package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/statement-field-extractor/internal/common"
	"github.com/insightdelivered/statement-field-extractor/internal/extractor"
)

// fakeSource serves canned page text so handler tests do not need real
// PDF files.
type fakeSource struct {
	pages []string
	err   error
}

func (f fakeSource) Pages(string) ([]string, error) {
	return f.pages, f.err
}

func setupTestApp(t *testing.T, src extractor.TextSource) *fiber.App {
	t.Helper()
	if src != nil {
		orig := source
		source = src
		t.Cleanup(func() { source = orig })
	}
	return NewApp(common.LoadConfig())
}

// multipartUpload builds a multipart body carrying a small fixture file
// under the given name, returning the body and its content type.
func multipartUpload(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("%PDF-1.4 test fixture")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t, nil)

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %q", result["status"])
	}
	if result["engine"] != "fiber" {
		t.Errorf("expected engine=fiber, got %q", result["engine"])
	}
}

func TestExtractRequiresFile(t *testing.T) {
	app := setupTestApp(t, nil)

	req := httptest.NewRequest("POST", "/api/extract", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----test")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for missing file, got %d", resp.StatusCode)
	}
}

func TestExtractRejectsNonPDF(t *testing.T) {
	app := setupTestApp(t, nil)

	buf, contentType := multipartUpload(t, "statement.docx")
	req := httptest.NewRequest("POST", "/api/extract", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for non-pdf upload, got %d", resp.StatusCode)
	}
}

func TestExtractSuccess(t *testing.T) {
	app := setupTestApp(t, fakeSource{pages: []string{
		"SBI Card Statement\nCard ending in 4321",
		"Your SimplyCLICK card\nTotal Amount Due: ₹12,345.67\nPayment Due Date: 04/15/2024",
	}})

	buf, contentType := multipartUpload(t, "statement.pdf")
	req := httptest.NewRequest("POST", "/api/extract", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result ExtractResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.RequestID == "" {
		t.Error("expected a request ID")
	}
	if result.Pages != 2 {
		t.Errorf("pages: got %d, want 2", result.Pages)
	}
	if result.Record == nil {
		t.Fatal("expected a record")
	}
	if result.Record.IssuerHint != "sbi" {
		t.Errorf("issuer: got %q, want sbi", result.Record.IssuerHint)
	}
	if result.Record.CardLast4.Value != "4321" {
		t.Errorf("last4: got %q, want 4321", result.Record.CardLast4.Value)
	}
	if result.Record.CardVariant.Value != "Simplyclick" {
		t.Errorf("variant: got %q, want Simplyclick", result.Record.CardVariant.Value)
	}
	if result.TotalBalanceAmount != "12345.67" {
		t.Errorf("numeric balance: got %q, want 12345.67", result.TotalBalanceAmount)
	}
}

func TestExtractUnreadableDocument(t *testing.T) {
	app := setupTestApp(t, fakeSource{err: extractor.ErrNoReadableText})

	buf, contentType := multipartUpload(t, "scan.pdf")
	req := httptest.NewRequest("POST", "/api/extract", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result ExtractResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Success {
		t.Error("expected success=false")
	}
	if result.Error == "" {
		t.Error("expected an error message")
	}
}
