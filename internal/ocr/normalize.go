package ocr

import (
	"regexp"
	"strings"
)

var (
	// tesseract box-drawing noise that shows up around document borders
	reBoxNoise     = regexp.MustCompile(`[|_]{2,}|[—=]{3,}`)
	reBlankLines   = regexp.MustCompile(`\n{3,}`)
	reTrailingWS   = regexp.MustCompile(`[ \t]+\n`)
	reControlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
)

// Normalize cleans recognized text without touching its line structure: the
// field extractor's heuristics are line-anchored.
func Normalize(txt string) string {
	txt = strings.ReplaceAll(txt, "\r\n", "\n")
	txt = reControlChars.ReplaceAllString(txt, "")
	txt = reBoxNoise.ReplaceAllString(txt, "")
	txt = reTrailingWS.ReplaceAllString(txt, "\n")
	txt = reBlankLines.ReplaceAllString(txt, "\n\n")
	return strings.TrimSpace(txt)
}
