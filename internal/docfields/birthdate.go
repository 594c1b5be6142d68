package docfields

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSlashDate = regexp.MustCompile(`\b(\d{2})/(\d{2})/(\d{4})\b`)
	reDashDate  = regexp.MustCompile(`\b(\d{2})-(\d{2})-(\d{4})\b`)
	reDotDate   = regexp.MustCompile(`\b(\d{2})\.(\d{2})\.(\d{4})\b`)
)

// birthAnchors are the uppercased labels that mark the birth-date block on
// CNH and RG documents ("DATA, LOCAL E UF DE NASCIMENTO" and variants).
var birthAnchors = []string{"NASCIMENTO", "NASC", "DATA, LOCAL", "DATA LOCAL"}

// extractBirthDate runs two passes: an anchored pass around birth-date
// labels, then a whole-text fallback that keeps the date with the smallest
// year (documents also carry issue and expiry dates, which are later).
func extractBirthDate(text string, currentYear int) string {
	lines := splitLines(text)

	for i, line := range lines {
		if !containsAny(strings.ToUpper(line), birthAnchors) {
			continue
		}
		// The date usually sits on the label line or one of the next two.
		end := i + 3
		if end > len(lines) {
			end = len(lines)
		}
		for j := i; j < end; j++ {
			m := reSlashDate.FindStringSubmatch(lines[j])
			if m == nil || !validDate(m[1], m[2], m[3], currentYear) {
				continue
			}
			// "15/07/1990, SÃO PAULO" -> keep only the date before the comma.
			beforeComma := strings.TrimSpace(strings.SplitN(lines[j], ",", 2)[0])
			if d := reSlashDate.FindString(beforeComma); d != "" {
				return d
			}
			return m[0]
		}
	}

	var best string
	var bestYear int
	for _, re := range []*regexp.Regexp{reSlashDate, reDashDate, reDotDate} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if !validDate(m[1], m[2], m[3], currentYear) {
				continue
			}
			year, _ := strconv.Atoi(m[3])
			if best == "" || year < bestYear {
				best = m[0]
				bestYear = year
			}
		}
	}
	return best
}

// validDate checks day/month ranges and that the year is plausible for a
// birth date. Not a calendar check: 31/02 passes.
func validDate(dayStr, monthStr, yearStr string, currentYear int) bool {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return false
	}
	return year >= 1900 && year <= currentYear
}
