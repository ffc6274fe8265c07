package atscheck

// Rule represents one ATS-compatibility rule.
type Rule struct {
	Name        string
	Category    string // structure, formatting
	Severity    string // critical, major, minor
	Description string
	Weight      int // Points deducted per finding
}

//nolint:gochecknoglobals // Rule configuration constants
var Rules = map[string]Rule{
	// Structure Rules
	"MISSING_NAME": {
		Name:        "MISSING_NAME",
		Category:    "structure",
		Severity:    "critical",
		Description: "No name line at the top of the document (first line empty or 80+ characters)",
		Weight:      30,
	},
	"MISSING_CONTACT_LINE": {
		Name:        "MISSING_CONTACT_LINE",
		Category:    "structure",
		Severity:    "major",
		Description: "No pipe-separated contact line directly under the name",
		Weight:      15,
	},
	"MISSING_SECTION_HEADERS": {
		Name:        "MISSING_SECTION_HEADERS",
		Category:    "structure",
		Severity:    "critical",
		Description: "No ALL CAPS section headers found; ATS parsers key on them",
		Weight:      25,
	},
	"EMPTY_SECTION": {
		Name:        "EMPTY_SECTION",
		Category:    "structure",
		Severity:    "minor",
		Description: "Section header with no content before the next header",
		Weight:      5,
	},

	// Formatting Rules
	"TAB_CHARACTERS": {
		Name:        "TAB_CHARACTERS",
		Category:    "formatting",
		Severity:    "major",
		Description: "Tab characters confuse ATS column detection",
		Weight:      10,
	},
	"DISALLOWED_SYMBOLS": {
		Name:        "DISALLOWED_SYMBOLS",
		Category:    "formatting",
		Severity:    "minor",
		Description: "Decorative symbols beyond the · — | • set are dropped or mangled by ATS parsers",
		Weight:      5,
	},
	"OVERLONG_BULLET": {
		Name:        "OVERLONG_BULLET",
		Category:    "formatting",
		Severity:    "minor",
		Description: "Bullet longer than two rendered lines reads poorly after ATS extraction",
		Weight:      5,
	},
}

//nolint:gochecknoglobals // Rule configuration constants
var CategoryWeights = map[string]float64{
	"structure":  0.60,
	"formatting": 0.40,
}
