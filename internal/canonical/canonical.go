// Package canonical normalizes raw extracted document text into the single
// form that fingerprints and ciphertexts are computed over. The rule order is
// load-bearing: reordering changes the output and therefore every fingerprint.
package canonical

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	blankLines   = regexp.MustCompile(`\n{2,}`)

	// Clinical unit synonyms collapse to one spelling so that trivially
	// reworded lab reports fingerprint identically.
	unitMgPerDl = regexp.MustCompile(`(?i)\bmg\s*per\s*dl\b`)
	unitMgDl    = regexp.MustCompile(`(?i)\bmg\s*dl\b`)
)

// invisible characters stripped after NFKC: zero-width space, zero-width
// non-joiner, zero-width joiner, BOM.
var invisibleReplacer = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
)

// typographic punctuation folded to ASCII.
var punctReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"–", "-", // en dash
	"—", "-", // em dash
	"\u00a0", " ", // no-break space
)

// Canonicalize maps raw extracted text to its canonical form. It is total
// (empty in, empty out) and idempotent: Canonicalize(Canonicalize(x)) ==
// Canonicalize(x).
//
// Case folding is applied: the fingerprint identity of a document is its
// lowercased canonical text.
func Canonicalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := norm.NFKC.String(raw)
	text = invisibleReplacer.Replace(text)
	text = punctReplacer.Replace(text)

	// Line endings to \n, then rejoin words split by end-of-line hyphenation.
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "-\n", "")

	text = horizontalWS.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n")

	text = unitMgPerDl.ReplaceAllString(text, "mg/dl")
	text = unitMgDl.ReplaceAllString(text, "mg/dl")

	return strings.ToLower(strings.TrimSpace(text))
}
