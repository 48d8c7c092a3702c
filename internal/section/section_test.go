package section

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
Contact Information
jane@example.org
Education
BSc Computer Science
WORK EXPERIENCE:
Backend developer at Example Oy
Skills
Go, SQL, Linux`

func TestSegmentRoutesLinesToSections(t *testing.T) {
	got := New(nil).SegmentText(sampleResume)

	wantOrder := []string{General, "contact", "education", "experience", "skills"}
	if !reflect.DeepEqual(got.Order, wantOrder) {
		t.Fatalf("order = %v, want %v", got.Order, wantOrder)
	}

	wantLines := map[string][]string{
		General:      {"Jane Doe"},
		"contact":    {"jane@example.org"},
		"education":  {"BSc Computer Science"},
		"experience": {"Backend developer at Example Oy"},
		"skills":     {"Go, SQL, Linux"},
	}
	if !reflect.DeepEqual(got.Lines, wantLines) {
		t.Fatalf("lines = %v, want %v", got.Lines, wantLines)
	}
}

func TestSegmentHeaderMatchIsCaseInsensitive(t *testing.T) {
	got := New(nil).SegmentText("EDUCATION\nMIT")
	if lines := got.Lines["education"]; len(lines) != 1 || lines[0] != "MIT" {
		t.Fatalf("education lines = %v", got.Lines["education"])
	}

	// Mixed case and internal spacing still open the section.
	got = New(nil).SegmentText("Work   EXPERIENCE:\nBackend developer")
	if lines := got.Lines["experience"]; len(lines) != 1 || lines[0] != "Backend developer" {
		t.Fatalf("experience lines = %v", got.Lines["experience"])
	}
}

func TestSegmentLastWins(t *testing.T) {
	got := New(nil).SegmentText("Skills\nGo\nSkills\nSQL")

	if lines := got.Lines["skills"]; !reflect.DeepEqual(lines, []string{"SQL"}) {
		t.Fatalf("skills lines = %v, want [SQL]", lines)
	}
	count := 0
	for _, label := range got.Order {
		if label == "skills" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("skills appears %d times in order", count)
	}
}

func TestSegmentFirstPatternWinsOnOverlap(t *testing.T) {
	// "work address" matches both contact and experience; contact is
	// earlier in the default priority order.
	got := New(nil).SegmentText("work address\n123 Main St")
	if lines := got.Lines["contact"]; !reflect.DeepEqual(lines, []string{"123 Main St"}) {
		t.Fatalf("contact lines = %v", lines)
	}
}

func TestSegmentSkipsBlankLines(t *testing.T) {
	got := New(nil).SegmentText("\n\nSkills\n\n   \nGo\n\n")
	if lines := got.Lines["skills"]; !reflect.DeepEqual(lines, []string{"Go"}) {
		t.Fatalf("skills lines = %v", lines)
	}
	if len(got.Lines[General]) != 0 {
		t.Fatalf("general should hold no lines, got %v", got.Lines[General])
	}
}

func TestSegmentPreSegmentedPassesThrough(t *testing.T) {
	pre := PreSegmented{
		Order: []string{"skills"},
		Lines: map[string][]string{"skills": {"Go"}},
	}
	got := New(nil).Segment(pre)
	if !reflect.DeepEqual(got, SectionedText(pre)) {
		t.Fatalf("pre-segmented input was modified: %v", got)
	}
}

func TestSegmentCustomPatterns(t *testing.T) {
	patterns := []Pattern{
		{Label: "publications", Re: regexp.MustCompile(`publications|papers`)},
	}
	got := New(patterns).SegmentText("Papers\nSome journal article")
	if lines := got.Lines["publications"]; !reflect.DeepEqual(lines, []string{"Some journal article"}) {
		t.Fatalf("publications lines = %v", lines)
	}
}

// Every non-blank line that is not a header must come out in exactly
// one section.
func TestSegmentAccountsForEveryContentLine(t *testing.T) {
	got := New(nil).SegmentText(sampleResume)

	seen := map[string]int{}
	for _, lines := range got.Lines {
		for _, line := range lines {
			seen[line]++
		}
	}
	wantContent := []string{
		"Jane Doe",
		"jane@example.org",
		"BSc Computer Science",
		"Backend developer at Example Oy",
		"Go, SQL, Linux",
	}
	for _, line := range wantContent {
		if seen[line] != 1 {
			t.Errorf("line %q appears %d times, want 1", line, seen[line])
		}
	}
	total := 0
	for _, n := range seen {
		total += n
	}
	if total != len(wantContent) {
		t.Errorf("got %d content lines, want %d", total, len(wantContent))
	}
}

func TestRender(t *testing.T) {
	got := New(nil).SegmentText(sampleResume).Render()

	if !strings.HasPrefix(got, "GENERAL\nJane Doe\n") {
		t.Fatalf("render does not start with general section:\n%s", got)
	}
	for _, header := range []string{"CONTACT", "EDUCATION", "EXPERIENCE", "SKILLS"} {
		if !strings.Contains(got, "\n"+header+"\n") {
			t.Errorf("render missing header %s:\n%s", header, got)
		}
	}

	// Deterministic: same input, same output.
	if again := New(nil).SegmentText(sampleResume).Render(); again != got {
		t.Fatal("render not deterministic")
	}
}

func TestRenderSkipsEmptyGeneral(t *testing.T) {
	got := New(nil).SegmentText("Skills\nGo").Render()
	if strings.Contains(got, "GENERAL") {
		t.Fatalf("empty general section rendered:\n%s", got)
	}
}
