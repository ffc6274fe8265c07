package render

import (
	"github.com/mfields/resumegen/pkg/classify"
)

// Alignment selects horizontal placement of a styled block.
type Alignment string

const (
	// AlignLeft places text against the left margin.
	AlignLeft Alignment = "L"
	// AlignCenter centers text between the margins.
	AlignCenter Alignment = "C"
)

// RGB is a text color.
type RGB struct {
	R int
	G int
	B int
}

// StyleSpec describes the visual treatment of one role: font, color,
// alignment, line height and spacing, all in points. Specs are immutable
// and shared read-only across concurrent renders.
type StyleSpec struct {
	FontFamily  string
	Bold        bool
	Size        float64
	Color       RGB
	Align       Alignment
	Leading     float64
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
}

// Page geometry: US Letter with 0.75 inch margins on all sides, and a
// fixed vertical spacer for blank lines.
const (
	pointsPerInch = 72.0
	pageMargin    = 0.75 * pointsPerInch
	blankSpacer   = 0.08 * pointsPerInch
)

// styleTable maps each role to its style. All visual variation lives in
// this data; the layout loop never branches on role beyond the lookup.
//
//nolint:gochecknoglobals // Style configuration constants
var styleTable = map[classify.Role]StyleSpec{
	classify.Name: {
		FontFamily: "Helvetica",
		Bold:       true,
		Size:       18,
		Align:      AlignCenter,
		Leading:    22,
		SpaceAfter: 4,
	},
	classify.ContactLine: {
		FontFamily: "Helvetica",
		Size:       9,
		Color:      RGB{R: 51, G: 51, B: 51},
		Align:      AlignCenter,
		Leading:    12,
		SpaceAfter: 12,
	},
	classify.SectionHeader: {
		FontFamily:  "Helvetica",
		Bold:        true,
		Size:        11,
		Align:       AlignLeft,
		Leading:     13,
		SpaceBefore: 14,
		SpaceAfter:  8,
	},
	classify.SubHeading: {
		FontFamily:  "Helvetica",
		Bold:        true,
		Size:        10,
		Align:       AlignLeft,
		Leading:     12,
		SpaceBefore: 6,
		SpaceAfter:  2,
	},
	classify.Body: {
		FontFamily: "Helvetica",
		Size:       10,
		Align:      AlignLeft,
		Leading:    12,
		SpaceAfter: 4,
	},
	classify.Bullet: {
		FontFamily: "Helvetica",
		Size:       10,
		Align:      AlignLeft,
		Leading:    12,
		SpaceAfter: 3,
		LeftIndent: 20,
	},
}

// StyleFor returns the style for a role. Unknown roles fall back to Body
// styling, mirroring the classifier's own degradation path.
func StyleFor(role classify.Role) (spec StyleSpec) {
	spec, ok := styleTable[role]
	if !ok {
		spec = styleTable[classify.Body]
	}
	return spec
}
