// Package api is the public entry point for generating the three
// document types: cover letter, academic title page and résumé.
package api

import (
	"fmt"

	"github.com/Zouhir-Harch/site-backend/internal/document"
	"github.com/Zouhir-Harch/site-backend/internal/render/pdf"
)

// Generator is the main API for producing PDF documents
type Generator struct {
	options Options
}

// New creates a new generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new generator with the specified options
func NewWithOptions(options Options, opts ...Option) *Generator {
	for _, opt := range opts {
		opt(&options)
	}
	return &Generator{options: options}
}

// GenerateLetter renders a cover letter PDF from the given data
func (g *Generator) GenerateLetter(data document.LetterData) ([]byte, error) {
	canvas := pdf.NewCanvas(pdf.DocumentInfo{
		Title:   "Lettre de motivation - " + data.FirstName + " " + data.LastName,
		Author:  g.author(data.FirstName + " " + data.LastName),
		Subject: data.Subject,
		Creator: g.options.Creator,
	})
	out, err := document.RenderLetter(canvas, data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate letter: %w", err)
	}
	return out, nil
}

// GenerateTitlePage renders an academic title page PDF from the given data
func (g *Generator) GenerateTitlePage(data document.TitlePageData) ([]byte, error) {
	canvas := pdf.NewCanvas(pdf.DocumentInfo{
		Title:   "Page de garde - " + data.StudentFirstName + " " + data.StudentLastName,
		Author:  g.author(data.StudentFirstName + " " + data.StudentLastName),
		Subject: data.InternshipTitle,
		Creator: g.options.Creator,
	})
	out, err := document.RenderTitlePage(canvas, data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate title page: %w", err)
	}
	return out, nil
}

// GenerateResume renders a résumé PDF from the given data
func (g *Generator) GenerateResume(data document.ResumeData) ([]byte, error) {
	canvas := pdf.NewCanvas(pdf.DocumentInfo{
		Title:   "CV - " + data.FirstName + " " + data.LastName,
		Author:  g.author(data.FirstName + " " + data.LastName),
		Subject: data.ProfessionalTitle,
		Creator: g.options.Creator,
	})
	out, err := document.RenderResume(canvas, data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate resume: %w", err)
	}
	return out, nil
}

func (g *Generator) author(fallback string) string {
	if g.options.Author != "" {
		return g.options.Author
	}
	return fallback
}
