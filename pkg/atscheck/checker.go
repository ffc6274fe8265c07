package atscheck

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mfields/resumegen/pkg/classify"
)

// maxBulletLength is the rune count above which a bullet is flagged.
const maxBulletLength = 200

// allowedSymbols are the non-ASCII characters the generation template is
// told to use; anything else non-alphabetic gets flagged.
//
//nolint:gochecknoglobals // Rule configuration constant
var allowedSymbols = map[rune]bool{
	'•': true, // bullet glyph
	'—': true, // em dash (title/company separator)
	'–': true, // en dash (date ranges)
	'·': true, // middle dot (list separator)
}

// Finding is one rule violation with its location.
type Finding struct {
	Rule   string
	Line   int // 1-based, 0 when the finding is document-wide
	Detail string
}

// Report is the result of checking one resume blob.
type Report struct {
	Score      int // 0-100, weighted across categories
	Structure  int
	Formatting int
	Findings   []Finding
}

// Check classifies the resume text and evaluates every rule against the
// role sequence. It is deterministic: same text, same report.
func Check(text string) (report Report) {
	lines := classify.Classify(text)

	findings := checkStructure(lines)
	findings = append(findings, checkFormatting(text)...)

	report = score(findings)
	return report
}

// checkStructure verifies the document skeleton the classifier found.
func checkStructure(lines []classify.Line) (findings []Finding) {
	counts := map[classify.Role]int{}
	for _, line := range lines {
		counts[line.Role]++
	}

	if counts[classify.Name] == 0 {
		findings = append(findings, Finding{Rule: "MISSING_NAME", Detail: "no name line detected"})
	}
	if counts[classify.ContactLine] == 0 {
		findings = append(findings, Finding{Rule: "MISSING_CONTACT_LINE", Detail: "no contact line detected"})
	}
	if counts[classify.SectionHeader] == 0 {
		findings = append(findings, Finding{Rule: "MISSING_SECTION_HEADERS", Detail: "no section headers detected"})
	}

	// A header followed only by blanks until the next header (or the end)
	// is an empty section.
	lastHeader := -1
	sinceHeader := 0
	for i, line := range lines {
		switch line.Role {
		case classify.SectionHeader:
			if lastHeader >= 0 && sinceHeader == 0 {
				findings = append(findings, Finding{
					Rule:   "EMPTY_SECTION",
					Line:   lastHeader + 1,
					Detail: "section has no content",
				})
			}
			lastHeader = i
			sinceHeader = 0
		case classify.Blank:
			// Blanks don't count as content.
		default:
			sinceHeader++
		}
	}
	if lastHeader >= 0 && sinceHeader == 0 {
		findings = append(findings, Finding{
			Rule:   "EMPTY_SECTION",
			Line:   lastHeader + 1,
			Detail: "section has no content",
		})
	}

	return findings
}

// checkFormatting scans the raw text for characters and shapes that break
// ATS extraction.
func checkFormatting(text string) (findings []Finding) {
	for i, rawLine := range strings.Split(text, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(rawLine)

		if strings.Contains(rawLine, "\t") {
			findings = append(findings, Finding{
				Rule:   "TAB_CHARACTERS",
				Line:   lineNo,
				Detail: "line contains tab characters",
			})
		}

		if symbol, found := disallowedSymbol(trimmed); found {
			findings = append(findings, Finding{
				Rule:   "DISALLOWED_SYMBOLS",
				Line:   lineNo,
				Detail: "line contains disallowed symbol " + string(symbol),
			})
		}

		if strings.HasPrefix(trimmed, "•") && utf8.RuneCountInString(trimmed) > maxBulletLength {
			findings = append(findings, Finding{
				Rule:   "OVERLONG_BULLET",
				Line:   lineNo,
				Detail: "bullet exceeds two rendered lines",
			})
		}
	}

	return findings
}

// disallowedSymbol returns the first non-ASCII, non-letter character
// outside the allowed separator set. Letters pass so accented names are
// never flagged.
func disallowedSymbol(line string) (symbol rune, found bool) {
	for _, r := range line {
		if r <= unicode.MaxASCII || allowedSymbols[r] {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsSpace(r) {
			continue
		}
		symbol = r
		found = true
		return symbol, found
	}
	return symbol, found
}

// score aggregates findings into per-category scores and a weighted
// overall score.
func score(findings []Finding) (report Report) {
	report.Findings = findings
	report.Structure = 100
	report.Formatting = 100

	for _, finding := range findings {
		rule, exists := Rules[finding.Rule]
		if !exists {
			continue
		}

		switch rule.Category {
		case "structure":
			report.Structure -= rule.Weight
		case "formatting":
			report.Formatting -= rule.Weight
		}
	}

	if report.Structure < 0 {
		report.Structure = 0
	}
	if report.Formatting < 0 {
		report.Formatting = 0
	}

	report.Score = int(float64(report.Structure)*CategoryWeights["structure"] +
		float64(report.Formatting)*CategoryWeights["formatting"])

	return report
}
