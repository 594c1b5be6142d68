package docfields

import "regexp"

var (
	reWhitespace  = regexp.MustCompile(`\s+`)
	reDigitRun    = regexp.MustCompile(`\d+`)
	reDottedTaxID = regexp.MustCompile(`\d{3}\.\d{3}\.\d{3}-\d{2}`)
	reNonDigit    = regexp.MustCompile(`\D`)
)

// extractTaxID looks for a run of exactly 11 consecutive digits in the
// whitespace-stripped text, then for the punctuated ddd.ddd.ddd-dd form.
// First match wins. Format only; checksum digits are not verified.
func extractTaxID(text string) string {
	cleaned := reWhitespace.ReplaceAllString(text, "")
	for _, run := range reDigitRun.FindAllString(cleaned, -1) {
		if len(run) == 11 {
			return run
		}
	}
	if m := reDottedTaxID.FindString(text); m != "" {
		return reNonDigit.ReplaceAllString(m, "")
	}
	return ""
}
