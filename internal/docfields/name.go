package docfields

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reTrailingDate   = regexp.MustCompile(`\s+\d{2}/\d{2}/\d{4}.*$`)
	reTrailingDigits = regexp.MustCompile(`\s+\d{8,}.*$`)
	reLeadingDate    = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)
)

var (
	surnameIndicators = []string{"SOBRENONE", "SOBRENOME", "SOBREN"}
	licenseIndicators = []string{"HABILITAÇÃO", "HABILITACAO", "HABILIT"}
)

// nameDenylist holds document boilerplate that disqualifies a line from
// being a person's name in the generic fallback pass.
var nameDenylist = []string{
	"REPÚBLICA", "MINISTÉRIO", "SECRETARIA", "CARTEIRA", "NACIONAL",
	"HABILITAÇÃO", "HABILITACAO", "DRIVER", "LICENSE", "PERMISO", "CONDUCCIÓN",
	"NOME", "SOBRENONE", "SOBRENOME", "DATA", "LOCAL", "UF",
	"NASCIMENTO", "NASC", "EMISSÃO", "EMISSAO", "VALIDADE", "IDENTIDADE", "ÓRG",
	"EMISSOR", "BRASILEIRO", "FILIAÇÃO", "FILIACAO", "NATURALIDADE", "CATEGORIA",
	"REGISTRO", "DOCUMENTO", "CPF", "RG", "PORTADOR", "TITULAR", "TRANSPORTES",
}

// extractName tries three passes in priority order: the CNH layout (name
// label followed by the name on the next line), the RG layout, then a
// generic scan for name-shaped lines. Document-specific anchors win over the
// generic heuristic even when both would match.
func extractName(text string) string {
	lines := nameLines(text)

	// CNH: a header like "NOME E SOBRENOME" or "NOME / 1ª HABILITAÇÃO";
	// the candidate is the following line.
	for i, line := range lines {
		upper := strings.ToUpper(line)
		hasName := strings.Contains(upper, "NOME")
		if !hasName || i+1 >= len(lines) {
			continue
		}
		if containsAny(upper, surnameIndicators) || containsAny(upper, licenseIndicators) {
			if name := cleanNameCandidate(lines[i+1]); name != "" {
				return name
			}
		}
	}

	// RG: "NOME" (but not the parentage block), or "IDENTIDADE"/"RG".
	for i, line := range lines {
		upper := strings.ToUpper(line)
		nameNotFiliation := strings.Contains(upper, "NOME") &&
			!strings.Contains(upper, "FILIAÇÃO") && !strings.Contains(upper, "FILIACAO")
		if !nameNotFiliation && !strings.Contains(upper, "IDENTIDADE") && !strings.Contains(upper, "RG") {
			continue
		}
		if i+1 >= len(lines) {
			continue
		}
		if name := cleanNameCandidate(lines[i+1]); name != "" {
			return name
		}
	}

	// Generic fallback: any line free of boilerplate that looks like a name.
	for _, line := range lines {
		if containsAny(strings.ToUpper(line), nameDenylist) {
			continue
		}
		n := utf8.RuneCountInString(line)
		if n <= 8 || n >= 80 {
			continue
		}
		if startsWithDigit(line) || reLeadingDate.MatchString(line) {
			continue
		}
		if name := cleanNameCandidate(line); name != "" {
			return name
		}
	}

	return ""
}

// nameLines keeps trimmed lines long enough to carry a name or a label.
func nameLines(text string) []string {
	var lines []string
	for _, ln := range splitLines(text) {
		if utf8.RuneCountInString(ln) > 3 {
			lines = append(lines, ln)
		}
	}
	return lines
}

// cleanNameCandidate strips trailing dates and registration numbers, trims
// edge punctuation, collapses whitespace, then accepts the result only if it
// is shaped like a person's name: 2-6 words, letters only, reasonable length.
// Case is preserved.
func cleanNameCandidate(line string) string {
	c := reTrailingDate.ReplaceAllString(line, "")
	c = reTrailingDigits.ReplaceAllString(c, "")
	c = strings.TrimFunc(c, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	c = reWhitespace.ReplaceAllString(c, " ")
	c = strings.TrimSpace(c)

	words := make([]string, 0, 6+1)
	for _, w := range strings.Fields(c) {
		if !allDigits(w) {
			words = append(words, w)
		}
	}
	if len(words) < 2 || len(words) > 6 {
		return ""
	}
	for _, w := range words {
		if !allLetters(w) {
			return ""
		}
	}
	if !lettersAndSpaces(c) {
		return ""
	}
	if n := utf8.RuneCountInString(c); n <= 5 || n >= 80 {
		return ""
	}
	return c
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func lettersAndSpaces(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return s != ""
}

func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r >= '0' && r <= '9'
}
