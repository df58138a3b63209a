package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	output string
	err    error
	prompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.output, s.err
}

func TestEnhanceCleansBullets(t *testing.T) {
	gen := &stubGenerator{output: "- Built APIs in Go\n\n  - Led a team of 4 [insert team size]\nShipped the v2 release"}
	e := NewEnhancer(gen, zerolog.Nop())

	points, err := e.Enhance(context.Background(), "did stuff", PromptContext{Position: "Engineer", Company: "Acme"}, CategoryExperience)
	require.NoError(t, err)
	assert.Equal(t, []string{"Built APIs in Go", "Led a team of 4", "Shipped the v2 release"}, points)
}

func TestEnhanceStripsHedgeSentences(t *testing.T) {
	gen := &stubGenerator{output: "Improved throughput by 40%. Optional: add quantifiable metrics here.\nDesigned the ingestion pipeline"}
	e := NewEnhancer(gen, zerolog.Nop())

	points, err := e.Enhance(context.Background(), "text", PromptContext{}, CategoryProject)
	require.NoError(t, err)
	for _, p := range points {
		assert.NotContains(t, p, "Optional")
		assert.NotContains(t, p, "quantifiable")
	}
}

func TestEnhancePromptMentionsContext(t *testing.T) {
	gen := &stubGenerator{output: "bullet"}
	e := NewEnhancer(gen, zerolog.Nop())

	_, err := e.Enhance(context.Background(), "text", PromptContext{Position: "SRE", Company: "Initech"}, CategoryExperience)
	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "SRE")
	assert.Contains(t, gen.prompt, "Initech")

	_, err = e.Enhance(context.Background(), "text", PromptContext{Title: "Compiler"}, CategoryProject)
	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "Compiler")

	_, err = e.Enhance(context.Background(), "about me", PromptContext{}, CategorySummary)
	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "about me")
	assert.Contains(t, gen.prompt, "2 polished")
}

func TestEnhanceReturnsErrorOnGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	e := NewEnhancer(gen, zerolog.Nop())

	_, err := e.Enhance(context.Background(), "text", PromptContext{}, CategorySummary)
	assert.Error(t, err)
}

func TestEnhanceRejectsEmptyOutput(t *testing.T) {
	gen := &stubGenerator{output: "\n \n"}
	e := NewEnhancer(gen, zerolog.Nop())

	_, err := e.Enhance(context.Background(), "text", PromptContext{}, CategoryExperience)
	assert.Error(t, err)
}

func TestFallback(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, Fallback("one\n\ntwo\n", CategoryExperience))
	assert.Equal(t, []string{"kept as a single line\nwith breaks"}, Fallback("kept as a single line\nwith breaks", CategorySummary))
}
