package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/medchain/docanchor/internal/common"
)

// docxToText reads word/document.xml out of the DOCX container and walks its
// runs. Only text content survives: paragraphs become lines, explicit breaks
// and tabs become their whitespace equivalents.
func (e *Extractor) docxToText(data []byte) (Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, common.NewAppError(common.ErrExtraction, "DOCX_PARSE_FAILED",
			"file is not a valid DOCX container", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return Result{}, common.NewAppError(common.ErrExtraction, "DOCX_PARSE_FAILED",
			"DOCX container has no word/document.xml", nil)
	}

	rc, err := doc.Open()
	if err != nil {
		return Result{}, common.NewAppError(common.ErrExtraction, "DOCX_PARSE_FAILED",
			"cannot open word/document.xml", err)
	}
	defer rc.Close()

	text, err := wordXMLToText(rc)
	if err != nil {
		return Result{}, common.NewAppError(common.ErrExtraction, "DOCX_PARSE_FAILED",
			"malformed document XML", err)
	}
	return Result{Text: text, Pages: 1, Method: "docx-xml"}, nil
}

func wordXMLToText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
