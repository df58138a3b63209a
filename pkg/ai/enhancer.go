package ai

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Category selects the prompt used for an enhancement call.
type Category string

const (
	CategoryExperience Category = "experience"
	CategoryProject    Category = "project"
	CategorySummary    Category = "summary"
)

// PromptContext carries the entry-specific fields referenced by the prompts.
type PromptContext struct {
	Position string
	Company  string
	Title    string
}

var (
	placeholderRe = regexp.MustCompile(`\[.*?\]`)
	hedgeRe       = regexp.MustCompile(`(?i)\b(?:optional|e\.g\.|quantifiable).*?\.`)
	bulletRe      = regexp.MustCompile(`^\s*-\s*`)
)

// Enhancer rewrites user-authored free text into polished resume bullets via
// the completion service. Failures surface as errors; callers decide whether
// to fall back (see Fallback).
type Enhancer struct {
	gen Generator
	log zerolog.Logger
}

func NewEnhancer(gen Generator, log zerolog.Logger) *Enhancer {
	return &Enhancer{gen: gen, log: log}
}

// Enhance makes a single completion call with a category-specific prompt and
// post-processes the result into clean bullet lines.
func (e *Enhancer) Enhance(ctx context.Context, text string, pc PromptContext, cat Category) ([]string, error) {
	raw, err := e.gen.GenerateContent(ctx, buildPrompt(text, pc, cat))
	if err != nil {
		e.log.Warn().Err(err).Str("category", string(cat)).Msg("content generation failed")
		return nil, err
	}

	lines := postProcess(raw)
	if len(lines) == 0 {
		err := fmt.Errorf("completion returned no usable lines")
		e.log.Warn().Str("category", string(cat)).Msg("content generation returned empty output")
		return nil, err
	}
	return lines, nil
}

// Fallback is the guaranteed replacement when enhancement fails: the original
// text split into non-blank lines for bullet categories, or the text verbatim
// for a summary.
func Fallback(text string, cat Category) []string {
	if cat == CategoryExperience || cat == CategoryProject {
		return splitLines(text)
	}
	return []string{text}
}

func buildPrompt(text string, pc PromptContext, cat Category) string {
	switch cat {
	case CategoryExperience:
		return fmt.Sprintf(`Generate 3 concise, professional bullet points for this work experience:
Position: %s at %s
Description: %s

Guidelines:
- Begin each bullet with a strong action verb
- Mention specific tools, technologies, or methodologies used
- Focus on tangible outcomes or contributions
- Do not include placeholders or vague percentages
- Each bullet should be a single, impactful sentence (max 20 words)`, pc.Position, pc.Company, text)
	case CategoryProject:
		return fmt.Sprintf(`Generate exactly 3 professional and effective bullet points for the following project:
Title: %s
Description: %s

Guidelines:
- Clearly state the objective or purpose of the project
- Highlight specific tools, frameworks, or technologies used
- Emphasize key achievements or real-world results
- No placeholders, no vague terms, no speculative language
- Each point should be direct, formal, and suitable for a resume (max 20 words)`, pc.Title, text)
	default:
		return fmt.Sprintf("Rewrite the following text into 2 polished, concise, and professional sentences without placeholders or vague terms: %s", text)
	}
}

func postProcess(raw string) []string {
	cleaned := placeholderRe.ReplaceAllString(raw, "")
	cleaned = hedgeRe.ReplaceAllString(cleaned, "")

	lines := splitLines(cleaned)
	for i, l := range lines {
		lines[i] = strings.TrimSpace(bulletRe.ReplaceAllString(l, ""))
	}
	return lines
}

func splitLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(l))
	}
	return out
}
