package ocr

import (
	"regexp"
	"strings"
)

var (
	reDate       = regexp.MustCompile(`\b\d{2}[/.-]\d{2}[/.-]\d{4}\b`)
	reTaxID      = regexp.MustCompile(`\d{3}\.\d{3}\.\d{3}-\d{2}|\b\d{11}\b`)
	reDocKeyword = regexp.MustCompile(`\b(nascimento|habilita|identidade|registro|filia|cpf|rg)\w*`)
)

func hasDatePattern(s string) bool     { return reDate.MatchString(s) }
func hasTaxIDPattern(s string) bool    { return reTaxID.MatchString(s) }
func hasDocumentKeyword(s string) bool { return reDocKeyword.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// very simple: boost if we see common identity-document artifacts
	// (date-ish, tax-id-ish, label-ish). Each adds ~0.15-0.2.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.2
	}
	if hasTaxIDPattern(txtL) {
		score += 0.15
	}
	if hasDocumentKeyword(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
