package constants

import "strings"

// AllowedExtensions holds the file extensions the extractor accepts.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
}

// DefaultMaxFileSize is the upload size ceiling enforced before extraction.
const DefaultMaxFileSize = 5 << 20 // 5 MiB

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a (possibly dotted, mixed-case) extension is
// one the pipeline ingests.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
