// Package extract turns uploaded PDF and DOCX bytes into raw text. Parsing
// internals are a black box to the rest of the pipeline: canonicalization
// owns all normalization of whatever comes out of here.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/medchain/docanchor/constants"
	"github.com/medchain/docanchor/internal/common"
)

// Result is the raw extraction output handed to the canonicalizer.
type Result struct {
	Text   string
	Pages  int
	Method string // "pdf-text" | "docx-xml"
}

// Extractor is Stage 0 of the pipeline: file bytes -> text.
type Extractor struct {
	cfg    common.ExtractConfig
	runner Runner
	logger *slog.Logger
}

func New(cfg common.ExtractConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = constants.DefaultMaxFileSize
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner overrides the exec runner (used by tests).
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Extract converts file bytes to raw text. The size ceiling is enforced here,
// before any parsing work; unsupported extensions and oversized files are
// InputErrors, unparseable documents are ExtractionErrors.
func (e *Extractor) Extract(ctx context.Context, data []byte, ext string) (Result, error) {
	if int64(len(data)) > e.cfg.MaxFileSize {
		return Result{}, common.NewAppError(common.ErrInput, "FILE_TOO_LARGE",
			fmt.Sprintf("file is %d bytes, ceiling is %d", len(data), e.cfg.MaxFileSize), nil)
	}
	if len(data) == 0 {
		return Result{}, common.NewAppError(common.ErrInput, "EMPTY_FILE", "uploaded file is empty", nil)
	}
	if !constants.IsAllowedExt(ext) {
		return Result{}, common.NewAppError(common.ErrInput, "UNSUPPORTED_FORMAT",
			fmt.Sprintf("extension %q is not supported; upload .pdf or .docx", ext), nil)
	}

	// Parsing gets its own budget; a pathological document must not hold the
	// request open indefinitely.
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	if constants.NormalizeExt(ext) == "pdf" {
		return e.pdfToText(ctx, data)
	}
	return e.docxToText(data)
}

// pdfToText shells out to pdftotext. The tool only reads files, so the bytes
// land in a temp file for the duration of the call.
func (e *Extractor) pdfToText(ctx context.Context, data []byte) (Result, error) {
	tmp, err := os.CreateTemp("", "docanchor-*.pdf")
	if err != nil {
		return Result{}, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil {
			e.logger.Warn("failed to remove temp file", "path", tmp.Name(), "error", err)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return Result{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("close temp file: %w", err)
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", tmp.Name(), "-")
	if err != nil {
		return Result{}, common.NewAppError(common.ErrExtraction, "PDF_PARSE_FAILED",
			"pdftotext could not read the document: "+truncate(string(errb), 512), err)
	}

	text := string(out)
	// A form-feed \f is used as page separator by default.
	pages := 1 + strings.Count(text, "\f")
	return Result{Text: text, Pages: pages, Method: "pdf-text"}, nil
}

// ExtFromFilename pulls the extension used for format dispatch.
func ExtFromFilename(filename string) string {
	return filepath.Ext(filename)
}
