package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/insightdelivered/statement-field-extractor/internal/api"
	"github.com/insightdelivered/statement-field-extractor/internal/common"
	"github.com/insightdelivered/statement-field-extractor/internal/extractor"
	"github.com/insightdelivered/statement-field-extractor/internal/parser"
	"github.com/insightdelivered/statement-field-extractor/internal/writer"
)

func main() {
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of processing files")
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides EXTRACTOR_ADDR)")
	outputFlag := flag.String("output", "", "Output JSON file path (defaults to input filename with .json extension)")
	compactFlag := flag.Bool("compact", false, "Write compact JSON instead of indented")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Credit Card Statement Field Extractor
by Insight Delivered (QEA AutoLens)

Extracts structured fields (card last-4, payment due date, statement
period, total balance, issuer, card variant) from credit card
statement PDFs and writes them as JSON.

Usage:
  statement-field-extractor [flags] <input.pdf> [input2.pdf ...]
  statement-field-extractor -serve [-addr :8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Extract fields and write statement.json
  statement-field-extractor statement.pdf

  # Custom output path
  statement-field-extractor --output=fields.json statement.pdf

  # Write to stdout
  statement-field-extractor --output=- statement.pdf

  # Run the HTTP API
  statement-field-extractor -serve -addr :9090
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statement-field-extractor v%s\n", api.Version)
		os.Exit(0)
	}

	if *serveFlag {
		serve(*addrFlag)
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	if outputPathConflict(*outputFlag, flag.NArg()) {
		fmt.Fprintf(os.Stderr, "Error: --output=%s with %d inputs would overwrite the same file; use per-file defaults, --output=-, or one input\n", *outputFlag, flag.NArg())
		os.Exit(1)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, *outputFlag, !*compactFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

// outputPathConflict reports whether a fixed output path would be
// overwritten by every input after the first. Stdout ("-") and the
// per-input default (empty) are always safe.
func outputPathConflict(outputPath string, inputs int) bool {
	return outputPath != "" && outputPath != "-" && inputs > 1
}

func serve(addr string) {
	cfg := common.LoadConfig()
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger := newLogger(cfg.Log)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	app := api.NewApp(cfg)
	logger.Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := app.Listen(cfg.Server.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg common.LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = lvl
	}
	var zcfg zap.Config
	if cfg.JSON {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

func processFile(inputPath, outputPath string, indent bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	source := extractor.PDFSource{}
	pages, err := source.Pages(inputPath)
	if err != nil {
		return err
	}
	fmt.Printf("  Extracted text from %d page(s)\n", len(pages))

	record := parser.ParseStatement(pages)

	w := &writer.JSONWriter{Indent: indent}
	if outputPath == "-" {
		if err := w.Write(os.Stdout, record); err != nil {
			return err
		}
	} else {
		outPath := outputPath
		if outPath == "" {
			outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
		}
		if err := w.WriteToFile(outPath, record); err != nil {
			return err
		}
		fmt.Printf("  Output: %s\n", outPath)
	}

	// Print summary
	if record.IssuerHint != "" {
		fmt.Printf("  Issuer: %s\n", record.IssuerHint)
	}
	if record.CardLast4.Found() {
		fmt.Printf("  Card ending: %s (page %d)\n", record.CardLast4.Value, record.CardLast4.Page)
	}
	if record.CardVariant.Found() {
		fmt.Printf("  Card variant: %s\n", record.CardVariant.Value)
	}
	if record.PaymentDueDate.Found() {
		fmt.Printf("  Payment due: %s\n", record.PaymentDueDate.Value)
	}
	if record.StatementPeriod.Found() {
		fmt.Printf("  Period: %s\n", record.StatementPeriod.Value)
	}
	if record.TotalBalance.Found() {
		fmt.Printf("  Total balance: %s\n", record.TotalBalance.Value)
		if amount, err := parser.ParseAmount(record.TotalBalance.Value); err == nil {
			fmt.Printf("  Total balance (numeric): %s\n", amount.String())
		}
	}

	fmt.Println("  Done.")
	return nil
}
