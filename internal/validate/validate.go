package validate

import "strings"

// resumeKeywords are terms whose presence suggests the text is an
// actual resume rather than extraction garbage.
var resumeKeywords = []string{
	"experience", "education", "skills", "work", "employment",
	"university", "college", "degree", "certification", "project",
}

// ResumeText reports whether extracted text plausibly is a resume:
// at least 50 characters and at least two common resume keywords.
// Used for warnings only; a false result never blocks generation.
func ResumeText(text string) bool {
	if len(strings.TrimSpace(text)) < 50 {
		return false
	}
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range resumeKeywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count >= 2
}

// Sections flags which standard resume parts the text appears to
// contain.
type Sections struct {
	HasContact    bool
	HasExperience bool
	HasEducation  bool
	HasSkills     bool
}

// KeySections scans the text for markers of the standard resume
// sections.
func KeySections(text string) Sections {
	lower := strings.ToLower(text)
	containsAny := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
	return Sections{
		HasContact:    containsAny("email", "phone", "linkedin", "@"),
		HasExperience: containsAny("experience", "work", "employment", "job"),
		HasEducation:  containsAny("education", "university", "college", "degree"),
		HasSkills:     containsAny("skills", "technology", "programming", "software"),
	}
}
