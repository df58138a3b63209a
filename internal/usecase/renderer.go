package usecase

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"resume-maker/internal/model"
)

//go:embed templates/resume.html.tmpl
var resumeTemplate string

var resumeTpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"join":  strings.Join,
}).Parse(resumeTemplate))

// RenderHTML turns canonical resume data into the HTML document handed to
// the PDF converter. Deterministic and free of I/O; html/template escapes
// every interpolated user string.
func RenderHTML(r *model.Resume) (string, error) {
	var buf bytes.Buffer
	if err := resumeTpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("rendering resume HTML: %w", err)
	}
	return buf.String(), nil
}
