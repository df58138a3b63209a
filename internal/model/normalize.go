package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidationError marks a problem with the submitted payload. Handlers map it
// to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Normalize validates the required identity fields and coerces the rest of
// the input into its canonical shape. Pure transformation, no I/O.
func Normalize(in ResumeInput) (*Resume, error) {
	if strings.TrimSpace(in.PersonalInfo.Name) == "" || strings.TrimSpace(in.PersonalInfo.Email) == "" {
		return nil, &ValidationError{Msg: "Name and email are required"}
	}

	out := &Resume{
		PersonalInfo:    in.PersonalInfo,
		Skills:          normalizeSkills(in.Skills),
		CareerObjective: in.CareerObjective,
		Experience:      in.Experience,
		Projects:        in.Projects,
		Education:       in.Education,
	}

	for _, c := range in.Certifications {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		out.Certifications = append(out.Certifications, c)
	}

	for _, a := range in.Achievements {
		if string(a) == "" {
			continue
		}
		out.Achievements = append(out.Achievements, string(a))
	}

	out.Languages = in.Languages
	if out.Languages == nil {
		out.Languages = []Language{{Language: "English", Proficiency: "Fluent"}}
	}

	return out, nil
}

// normalizeSkills trims each skill, drops empties, and upper-cases the first
// rune of every whitespace-delimited word, preserving the rest of the word's
// casing ("c++" -> "C++").
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		words := strings.Fields(s)
		for i, w := range words {
			r, size := utf8.DecodeRuneInString(w)
			words[i] = string(unicode.ToUpper(r)) + w[size:]
		}
		out = append(out, strings.Join(words, " "))
	}
	return out
}
