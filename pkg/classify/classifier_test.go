package classify

import (
	"strings"
	"testing"
)

const sampleResume = "JANE DOE\n" +
	"New York, NY | 555-1234 | jane@x.com\n" +
	"\n" +
	"PROFESSIONAL SUMMARY\n" +
	"Experienced engineer.\n" +
	"\n" +
	"EXPERIENCE\n" +
	"Software Engineer — Acme Corp\n" +
	"NYC | 01/2020 – Present\n" +
	"• Built things\n"

func TestClassifySampleResume(t *testing.T) {
	expected := []Role{
		Name,
		ContactLine,
		Blank,
		SectionHeader,
		Body,
		Blank,
		SectionHeader,
		SubHeading,
		Body,
		Bullet,
		Blank, // trailing newline yields a final empty line
	}

	lines := Classify(sampleResume)

	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d", len(expected), len(lines))
	}

	for i, line := range lines {
		if line.Role != expected[i] {
			t.Errorf("Line %d: expected role %s, got %s", i, expected[i], line.Role)
		}
	}
}

func TestClassifyLineCountMatchesInput(t *testing.T) {
	inputs := []string{
		"",
		"single line",
		"a\nb\nc",
		"\n\n\n",
		sampleResume,
	}

	for _, input := range inputs {
		lines := Classify(input)
		want := len(strings.Split(input, "\n"))
		if len(lines) != want {
			t.Errorf("Input %q: expected %d lines, got %d", input, want, len(lines))
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify(sampleResume)
	second := Classify(sampleResume)

	if len(first) != len(second) {
		t.Fatalf("Repeated calls returned different line counts: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Line %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestClassifyBlankLines(t *testing.T) {
	lines := Classify("JANE DOE\n\n   \n\t\n")

	for i, line := range lines[1:] {
		if line.Role != Blank {
			t.Errorf("Line %d: expected Blank for whitespace-only line, got %s", i+1, line.Role)
		}
		if line.Text != "" {
			t.Errorf("Line %d: blank line should carry no text, got %q", i+1, line.Text)
		}
	}
}

func TestSectionHeaderPrecedesSubHeading(t *testing.T) {
	// Upper-case AND containing an em dash: the header rule wins.
	lines := Classify("JANE DOE\n\nSKILLS — TOOLS")

	if lines[2].Role != SectionHeader {
		t.Errorf("Expected SectionHeader for upper-case line with em dash, got %s", lines[2].Role)
	}
}

func TestBulletWithEmDashIsBullet(t *testing.T) {
	lines := Classify("JANE DOE\n\n• Shipped v2 — twice")

	if lines[2].Role != Bullet {
		t.Errorf("Expected Bullet for bullet line with em dash, got %s", lines[2].Role)
	}
}

func TestNameLengthBoundary(t *testing.T) {
	// A 90-char upper-case first line exceeds the name bound and also the
	// header bound, so it falls all the way through to Body.
	long := strings.Repeat("A", 90)
	lines := Classify(long + "\nSecond line")

	if lines[0].Role != Body {
		t.Errorf("Expected Body for 90-char first line, got %s", lines[0].Role)
	}

	// The name window is gone for good; the second line is not a name and
	// the contact window never opened.
	if lines[1].Role != Body {
		t.Errorf("Expected Body for line after oversized first line, got %s", lines[1].Role)
	}
}

func TestOversizedFirstLineWithinHeaderBound(t *testing.T) {
	// 79 chars is still a name; 80 is not.
	name := strings.Repeat("A", 79)
	lines := Classify(name)
	if lines[0].Role != Name {
		t.Errorf("Expected Name at 79 chars, got %s", lines[0].Role)
	}

	lines = Classify(strings.Repeat("A", 80))
	if lines[0].Role == Name {
		t.Error("Expected 80-char first line to be rejected as name")
	}
}

func TestContactWindowClearsWithoutPipe(t *testing.T) {
	// Second line lacks a pipe: no ContactLine, and the window never
	// re-arms even when a later line contains one.
	lines := Classify("Jane Doe\nSomewhere\nCity | Phone | Mail")

	if lines[1].Role != Body {
		t.Errorf("Expected Body for pipe-less second line, got %s", lines[1].Role)
	}
	if lines[2].Role == ContactLine {
		t.Error("Contact window re-armed after being cleared")
	}
}

func TestBlankLinesDoNotConsumeHeaderZone(t *testing.T) {
	// Leading blanks leave the name window open; a blank between name and
	// contact leaves the contact window open.
	lines := Classify("\n\nJane Doe\n\nNY | 555")

	if lines[2].Role != Name {
		t.Errorf("Expected Name after leading blanks, got %s", lines[2].Role)
	}
	if lines[4].Role != ContactLine {
		t.Errorf("Expected ContactLine after intervening blank, got %s", lines[4].Role)
	}
}

func TestEscaping(t *testing.T) {
	lines := Classify("Jane <b>Doe</b> & Co\nC++ | jane@x.com")

	if lines[0].Text != "Jane &lt;b&gt;Doe&lt;/b&gt; &amp; Co" {
		t.Errorf("Unexpected escaped text: %q", lines[0].Text)
	}

	// Escaping must not affect classification.
	if lines[0].Role != Name {
		t.Errorf("Expected Name, got %s", lines[0].Role)
	}
	if lines[1].Role != ContactLine {
		t.Errorf("Expected ContactLine, got %s", lines[1].Role)
	}
}

func TestSectionHeaderLengthBounds(t *testing.T) {
	// Bounds are exclusive: len > 3 and len < 50.
	lines := Classify("JANE DOE\n\nABC\n\nABCD\n\n" + strings.Repeat("A", 50))

	if lines[2].Role != Body {
		t.Errorf("Expected Body for 3-char upper line, got %s", lines[2].Role)
	}
	if lines[4].Role != SectionHeader {
		t.Errorf("Expected SectionHeader for 4-char upper line, got %s", lines[4].Role)
	}
	if lines[6].Role != Body {
		t.Errorf("Expected Body for 50-char upper line, got %s", lines[6].Role)
	}
}

func TestIsUpper(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"EXPERIENCE", true},
		{"CORE SKILLS", true},
		{"Experience", false},
		{"experience", false},
		{"2023", false},
		{"---", false},
		{"AWS & GCP", true},
		{"", false},
	}

	for _, c := range cases {
		got := isUpper(c.input)
		if got != c.want {
			t.Errorf("isUpper(%q): expected %v, got %v", c.input, c.want, got)
		}
	}
}

func TestDateLocationLineIsBody(t *testing.T) {
	lines := Classify("Jane Doe\nNY | 555\nRemote | 03/2021 – Present")

	if lines[2].Role != Body {
		t.Errorf("Expected Body for date/location line, got %s", lines[2].Role)
	}
}
