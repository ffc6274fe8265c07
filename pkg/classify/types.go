package classify

// Role identifies the visual treatment a resume line receives in the
// rendered document. The set is closed: every input line maps to exactly
// one role, and unrecognized formatting degrades to Body rather than
// failing.
type Role int

const (
	// Blank is an empty line, rendered as vertical spacing only.
	Blank Role = iota
	// Name is the candidate name at the top of the document.
	Name
	// ContactLine is the pipe-separated contact line under the name.
	ContactLine
	// SectionHeader is an all-caps section title such as EXPERIENCE.
	SectionHeader
	// SubHeading is a job-title/company line containing an em dash.
	SubHeading
	// Bullet is a line starting with the bullet glyph.
	Bullet
	// Body is plain paragraph text, including date/location lines.
	Body
)

// String returns the role name.
func (r Role) String() (name string) {
	switch r {
	case Blank:
		name = "Blank"
	case Name:
		name = "Name"
	case ContactLine:
		name = "ContactLine"
	case SectionHeader:
		name = "SectionHeader"
	case SubHeading:
		name = "SubHeading"
	case Bullet:
		name = "Bullet"
	case Body:
		name = "Body"
	default:
		name = "Unknown"
	}
	return name
}

// Line is a classified input line: the assigned role plus the
// markup-escaped text to render. Blank lines carry no text.
type Line struct {
	Role Role
	Text string
}

// headerState tracks progress through the document header zone.
// Transitions are one way: awaitingName -> awaitingContact -> steady.
// Once a state is left it is never re-entered for the rest of the
// document.
type headerState int

const (
	// awaitingName holds until the first non-blank line is seen.
	awaitingName headerState = iota
	// awaitingContact holds for the single non-blank line after the name.
	awaitingContact
	// steady is the terminal state for the rest of the document.
	steady
)
