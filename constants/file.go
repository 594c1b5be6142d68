package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ScanJob.
var FileTypes = []string{"IMAGE"}

const IMAGE = "IMAGE"

// AllowedExtensions holds the default allowed file extensions for document
// and face photos.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
	"heif": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a ScanJob format, or "".
func MapExtToFormat(ext string) string {
	if _, ok := AllowedExtensions[NormalizeExt(ext)]; ok {
		return IMAGE
	}
	return ""
}

// IsHEICExt reports whether the extension needs conversion before OCR.
func IsHEICExt(ext string) bool {
	switch NormalizeExt(ext) {
	case "heic", "heif":
		return true
	}
	return false
}
