package constants

import "strings"

// SourceFormats holds the allowed upload formats for extraction requests.
var SourceFormats = []string{"PDF", "IMAGE"}

// AllowedExtensions holds the file extensions accepted for upload.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MediaTypeForExt maps an extension to the media type sent to the vision
// provider. Unknown extensions fall back to octet-stream and are rejected
// upstream by AllowedExtensions.
func MediaTypeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// MapExtToFormat buckets an extension into a source format.
func MapExtToFormat(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return "PDF"
	}
	return "IMAGE"
}
