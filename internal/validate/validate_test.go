package validate

import "testing"

func TestResumeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{name: "empty", in: "", want: false},
		{name: "too short", in: "experience education", want: false},
		{
			name: "long but keyword-free",
			in:   "The quick brown fox jumps over the lazy dog again and again and again.",
			want: false,
		},
		{
			name: "one keyword only",
			in:   "I have many years of experience doing various interesting things in different places.",
			want: false,
		},
		{
			name: "plausible resume",
			in:   "Work experience: backend developer. Education: BSc from a technical university. Skills: Go.",
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResumeText(tc.in); got != tc.want {
				t.Fatalf("ResumeText = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestKeySections(t *testing.T) {
	s := KeySections("Email: jane@example.org\nWork history\nUniversity of Helsinki\nSkills: Go")
	if !s.HasContact || !s.HasExperience || !s.HasEducation || !s.HasSkills {
		t.Fatalf("sections = %+v, want all true", s)
	}

	s = KeySections("A plain paragraph about nothing in particular.")
	if s.HasContact || s.HasExperience || s.HasEducation || s.HasSkills {
		t.Fatalf("sections = %+v, want all false", s)
	}
}
