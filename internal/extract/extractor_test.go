package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medchain/docanchor/internal/common"
)

// stubRunner fakes pdftotext without the binary present.
type stubRunner struct {
	stdout      []byte
	stderr      []byte
	err         error
	calls       int
	hadDeadline bool
	deadline    time.Time
}

func (r *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls++
	r.deadline, r.hadDeadline = ctx.Deadline()
	return r.stdout, r.stderr, r.err
}

func newExtractor(maxSize int64) *Extractor {
	return New(common.ExtractConfig{MaxFileSize: maxSize}, nil)
}

func TestExtract_PDF(t *testing.T) {
	runner := &stubRunner{stdout: []byte("page one\fpage two")}
	e := newExtractor(1 << 20).WithRunner(runner)

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4 fake"), ".pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != "page one\fpage two" || res.Pages != 2 || res.Method != "pdf-text" {
		t.Fatalf("unexpected result %+v", res)
	}
	if runner.calls != 1 {
		t.Fatalf("pdftotext invoked %d times", runner.calls)
	}
}

func TestExtract_PDFTimeoutBound(t *testing.T) {
	runner := &stubRunner{stdout: []byte("page")}
	e := New(common.ExtractConfig{MaxFileSize: 1 << 20, Timeout: 45 * time.Second}, nil).WithRunner(runner)

	if _, err := e.Extract(context.Background(), []byte("%PDF-1.4 fake"), ".pdf"); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !runner.hadDeadline {
		t.Fatal("pdftotext ran without a deadline despite a configured timeout")
	}
	if remaining := time.Until(runner.deadline); remaining > 45*time.Second || remaining < 30*time.Second {
		t.Fatalf("deadline %v away, want about 45s", remaining)
	}
}

func TestExtract_PDFFailure(t *testing.T) {
	runner := &stubRunner{stderr: []byte("Syntax Error: broken xref"), err: errors.New("exit status 1")}
	e := newExtractor(1 << 20).WithRunner(runner)

	_, err := e.Extract(context.Background(), []byte("junk"), "pdf")
	if !errors.Is(err, common.ErrExtraction) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestExtract_DOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Patient report</w:t></w:r></w:p>
    <w:p><w:r><w:t>Glucose:</w:t><w:tab/><w:t>110 mg/dl</w:t></w:r></w:p>
    <w:p><w:r><w:t>line one</w:t><w:br/><w:t>line two</w:t></w:r></w:p>
  </w:body>
</w:document>`
	e := newExtractor(1 << 20)

	res, err := e.Extract(context.Background(), buildDOCX(t, docXML), ".DOCX")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Patient report\nGlucose:\t110 mg/dl\nline one\nline two\n"
	if res.Text != want {
		t.Fatalf("text = %q, want %q", res.Text, want)
	}
	if res.Method != "docx-xml" {
		t.Fatalf("method = %q", res.Method)
	}
}

func TestExtract_DOCXCorrupt(t *testing.T) {
	e := newExtractor(1 << 20)

	if _, err := e.Extract(context.Background(), []byte("not a zip at all"), ".docx"); !errors.Is(err, common.ErrExtraction) {
		t.Fatalf("expected ExtractionError for non-zip, got %v", err)
	}

	// a valid zip that is missing word/document.xml
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/other.xml")
	_, _ = w.Write([]byte("<x/>"))
	_ = zw.Close()
	if _, err := e.Extract(context.Background(), buf.Bytes(), ".docx"); !errors.Is(err, common.ErrExtraction) {
		t.Fatalf("expected ExtractionError for missing document.xml, got %v", err)
	}
}

func TestExtract_InputErrors(t *testing.T) {
	e := newExtractor(16)

	if _, err := e.Extract(context.Background(), bytes.Repeat([]byte("x"), 17), ".pdf"); !errors.Is(err, common.ErrInput) {
		t.Fatalf("expected InputError for oversized file, got %v", err)
	}
	if _, err := e.Extract(context.Background(), nil, ".pdf"); !errors.Is(err, common.ErrInput) {
		t.Fatalf("expected InputError for empty file, got %v", err)
	}
	if _, err := e.Extract(context.Background(), []byte("text"), ".txt"); !errors.Is(err, common.ErrInput) {
		t.Fatalf("expected InputError for .txt, got %v", err)
	}
}
