package constants

import "strings"

// MaxUploadBytes is the ceiling for a single bill image. Anything larger is
// rejected before the OCR provider is called.
const MaxUploadBytes = 20 << 20 // 20 MiB

// AllowedExtensions holds the default allowed file extensions for bill uploads.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
