package model

import (
	"encoding/json"
	"fmt"
)

// ResumeInput is the raw submitted payload for /api/generate-resume. Loosely
// typed fields (certifications, achievements) are resolved into their
// canonical shape during unmarshaling so the rest of the pipeline works with
// plain structs.
type ResumeInput struct {
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	Skills          []string        `json:"skills"`
	CareerObjective string          `json:"careerObjective,omitempty"`
	Experience      []Experience    `json:"experience,omitempty"`
	Projects        []Project       `json:"projects,omitempty"`
	Certifications  []Certification `json:"certifications,omitempty"`
	Achievements    []Achievement   `json:"achievements,omitempty"`
	Education       []Education     `json:"education,omitempty"`
	Languages       []Language      `json:"languages,omitempty"`
}

type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type Experience struct {
	Position         string   `json:"position"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate,omitempty"`
	Responsibilities []string `json:"responsibilities"`

	// EnhancedPoints is filled in after AI enhancement; it is what the
	// template renders as the bullet list for this role.
	EnhancedPoints []string `json:"enhancedPoints,omitempty"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Date         string   `json:"date,omitempty"`

	EnhancedPoints []string `json:"enhancedPoints,omitempty"`
}

// Certification accepts either a bare string ("AWS Cert") or an object with
// a name or title plus optional issuer and date. The sum shape is resolved
// once here instead of through type switches at render time.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

func (c *Certification) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Certification{Name: s}
		return nil
	}

	var obj struct {
		Name   string `json:"name"`
		Title  string `json:"title"`
		Issuer string `json:"issuer"`
		Date   string `json:"date"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("certification must be a string or an object: %w", err)
	}
	name := obj.Name
	if name == "" {
		name = obj.Title
	}
	*c = Certification{Name: name, Issuer: obj.Issuer, Date: obj.Date}
	return nil
}

// Achievement accepts either a bare string or an object carrying a title or
// description; it collapses to the first non-empty of the two.
type Achievement string

func (a *Achievement) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Achievement(s)
		return nil
	}

	var obj struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("achievement must be a string or an object: %w", err)
	}
	if obj.Title != "" {
		*a = Achievement(obj.Title)
	} else {
		*a = Achievement(obj.Description)
	}
	return nil
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Resume is the canonical, normalized shape consumed by rendering. Produced
// only by Normalize.
type Resume struct {
	PersonalInfo    PersonalInfo
	Skills          []string
	CareerObjective string
	Experience      []Experience
	Projects        []Project
	Certifications  []Certification
	Achievements    []string
	Education       []Education
	Languages       []Language
}
