package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/mfields/resumegen/pkg/classify"
	"github.com/pkg/errors"
)

// RenderError reports a failure to finalize the output byte stream. The
// layout loop itself cannot fail; only the sink can.
type RenderError struct {
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() (msg string) {
	msg = "render failed: " + e.Err.Error()
	return msg
}

// Unwrap returns the underlying sink error.
func (e *RenderError) Unwrap() (err error) {
	err = e.Err
	return err
}

// decoder restores the literal characters the classifier escaped. This
// sink draws text verbatim rather than interpreting markup, so entities
// must not reach the page.
//
//nolint:gochecknoglobals // Escape table constant
var decoder = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">")

// Render lays out classified lines as a paged US Letter document and
// returns the PDF bytes. Page breaks are automatic and content driven;
// nothing here places a break by hand. On failure no partial output is
// returned.
func Render(lines []classify.Line) (pdfBytes []byte, err error) {
	doc := newDocument()
	layout(doc, lines)

	var buf bytes.Buffer
	err = doc.Output(&buf)
	if err != nil {
		err = &RenderError{Err: errors.Wrap(err, "failed to finalize PDF output")}
		return pdfBytes, err
	}

	pdfBytes = buf.Bytes()
	return pdfBytes, err
}

// newDocument creates a US Letter document with 0.75 inch margins and
// automatic page breaks at the bottom margin.
func newDocument() (doc *gofpdf.Fpdf) {
	doc = gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()
	return doc
}

// layout appends every line to the document. Blank lines become fixed
// vertical spacing; everything else is a style lookup and a text block.
func layout(doc *gofpdf.Fpdf, lines []classify.Line) {
	// Core fonts are cp1252; the translator maps the bullet, em dash and
	// middle dot glyphs the generator emits.
	translate := doc.UnicodeTranslatorFromDescriptor("")

	for _, line := range lines {
		if line.Role == classify.Blank {
			doc.Ln(blankSpacer)
			continue
		}

		spec := StyleFor(line.Role)
		writeBlock(doc, spec, translate(decoder.Replace(line.Text)))
	}
}

// writeBlock draws one styled text block at the current position.
// Space-before is suppressed at the top of a page, where the frame
// already provides the separation.
func writeBlock(doc *gofpdf.Fpdf, spec StyleSpec, text string) {
	_, topMargin, _, _ := doc.GetMargins()

	if spec.SpaceBefore > 0 && doc.GetY() > topMargin {
		doc.Ln(spec.SpaceBefore)
	}

	style := ""
	if spec.Bold {
		style = "B"
	}
	doc.SetFont(spec.FontFamily, style, spec.Size)
	doc.SetTextColor(spec.Color.R, spec.Color.G, spec.Color.B)

	// Indented blocks shift the left margin so wrapped continuation lines
	// keep the indent, then restore it.
	if spec.LeftIndent > 0 {
		doc.SetLeftMargin(pageMargin + spec.LeftIndent)
		doc.SetX(pageMargin + spec.LeftIndent)
	}

	doc.MultiCell(0, spec.Leading, text, "", string(spec.Align), false)

	if spec.LeftIndent > 0 {
		doc.SetLeftMargin(pageMargin)
	}

	if spec.SpaceAfter > 0 {
		doc.Ln(spec.SpaceAfter)
	}
}
