package usecase

import (
	"context"
	"fmt"
	"strings"

	"resume-maker/internal/model"
	"resume-maker/pkg/ai"

	"github.com/rs/zerolog"
)

// Renderer converts an HTML document to PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Enhancer is the best-effort content rewriter. A failed call is recovered
// with ai.Fallback, never propagated.
type Enhancer interface {
	Enhance(ctx context.Context, text string, pc ai.PromptContext, cat ai.Category) ([]string, error)
}

// RenderError wraps a PDF conversion failure. Handlers map it to a 500.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "Failed to generate PDF" }
func (e *RenderError) Unwrap() error { return e.Err }

// Processor runs the full generation pipeline: normalize, enhance, render,
// convert, store, prune.
type Processor struct {
	enhancer Enhancer
	renderer Renderer
	store    *FileStore
	log      zerolog.Logger
}

func NewProcessor(e Enhancer, r Renderer, store *FileStore, log zerolog.Logger) *Processor {
	return &Processor{enhancer: e, renderer: r, store: store, log: log}
}

// Generate produces a PDF for the submitted resume and returns its filename.
// A *model.ValidationError means bad input; a *RenderError means the PDF
// conversion failed; enhancement failures never surface.
func (p *Processor) Generate(ctx context.Context, input model.ResumeInput) (string, error) {
	resume, err := model.Normalize(input)
	if err != nil {
		return "", err
	}

	objective := resume.CareerObjective
	if strings.TrimSpace(objective) == "" {
		objective = defaultObjective(resume.Skills)
	}
	resume.CareerObjective = strings.Join(
		p.enhance(ctx, objective, ai.PromptContext{}, ai.CategorySummary), " ")

	for i := range resume.Experience {
		exp := &resume.Experience[i]
		if len(exp.Responsibilities) == 0 {
			continue
		}
		exp.EnhancedPoints = p.enhance(ctx,
			strings.Join(exp.Responsibilities, "\n"),
			ai.PromptContext{Position: exp.Position, Company: exp.Company},
			ai.CategoryExperience)
	}

	for i := range resume.Projects {
		proj := &resume.Projects[i]
		if strings.TrimSpace(proj.Description) == "" {
			continue
		}
		proj.EnhancedPoints = p.enhance(ctx,
			proj.Description,
			ai.PromptContext{Title: proj.Title},
			ai.CategoryProject)
	}

	html, err := RenderHTML(resume)
	if err != nil {
		return "", err
	}

	pdf, err := p.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		p.log.Error().Err(err).Msg("PDF generation failed")
		return "", &RenderError{Err: err}
	}

	filename, err := p.store.Save(resume.PersonalInfo.Name, pdf)
	if err != nil {
		return "", err
	}

	p.store.Prune()

	p.log.Info().Str("file", filename).Msg("resume generated")
	return filename, nil
}

// enhance maps a failed enhancement call to the original-text fallback.
func (p *Processor) enhance(ctx context.Context, text string, pc ai.PromptContext, cat ai.Category) []string {
	points, err := p.enhancer.Enhance(ctx, text, pc, cat)
	if err != nil {
		p.log.Warn().Err(err).Str("category", string(cat)).Msg("enhancement failed, using original text")
		return ai.Fallback(text, cat)
	}
	return points
}

func defaultObjective(skills []string) string {
	top := skills
	if len(top) > 3 {
		top = top[:3]
	}
	return fmt.Sprintf("Computer Science student with %s skills", strings.Join(top, ", "))
}
