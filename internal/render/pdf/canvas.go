// Package pdf implements the layout Canvas on top of fpdf.
package pdf

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"codeberg.org/go-pdf/fpdf"

	"github.com/Zouhir-Harch/site-backend/internal/layout"
)

// DocumentInfo carries the PDF metadata for one document.
type DocumentInfo struct {
	Title   string
	Author  string
	Subject string
	Creator string
}

// Canvas renders onto an in-memory fpdf document. The layout packages
// use a bottom-left origin; fpdf uses top-left, so y coordinates are
// flipped here and nowhere else.
//
// A Canvas serves exactly one render: abandoning it without Finalize
// releases everything, so error paths simply drop it.
type Canvas struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewCanvas returns a canvas with one A4 portrait page already open.
func NewCanvas(info DocumentInfo) *Canvas {
	p := fpdf.New("P", "pt", "A4", "")
	p.SetAutoPageBreak(false, 0)
	p.SetTitle(info.Title, true)
	p.SetAuthor(info.Author, true)
	p.SetSubject(info.Subject, true)
	p.SetCreator(info.Creator, true)
	p.SetTextColor(0, 0, 0)
	p.AddPage()
	return &Canvas{
		pdf: p,
		// Core fonts are cp1252; accented French text must be
		// translated before measuring or drawing.
		translate: p.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *Canvas) setFont(font layout.FontSpec) {
	c.pdf.SetFont(font.Family, string(font.Style), font.Size)
}

// Measure returns the rendered width of text in points. Glyphs outside
// the core font's range degrade to an approximate width instead of
// failing the render.
func (c *Canvas) Measure(text string, font layout.FontSpec) float64 {
	if text == "" {
		return 0
	}
	c.setFont(font)
	w := c.pdf.GetStringWidth(c.translate(text))
	if w <= 0 {
		w = 0.5 * font.Size * float64(utf8.RuneCountInString(text))
	}
	return w
}

func (c *Canvas) DrawText(x, y float64, text string, font layout.FontSpec) error {
	c.setFont(font)
	c.pdf.Text(x, layout.PageHeight-y, c.translate(text))
	return c.err()
}

func (c *Canvas) DrawCenteredText(centerX, y float64, text string, font layout.FontSpec) error {
	return c.DrawText(centerX-c.Measure(text, font)/2, y, text, font)
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) error {
	c.pdf.Line(x1, layout.PageHeight-y1, x2, layout.PageHeight-y2)
	return c.err()
}

func (c *Canvas) DrawRect(x, y, width, height float64) error {
	c.pdf.Rect(x, layout.PageHeight-y-height, width, height, "D")
	return c.err()
}

func (c *Canvas) NewPage() error {
	c.pdf.AddPage()
	return c.err()
}

// Finalize produces the completed PDF bytes.
func (c *Canvas) Finalize() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to produce PDF output: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Canvas) err() error {
	if c.pdf.Err() {
		return fmt.Errorf("canvas error: %w", c.pdf.Error())
	}
	return nil
}
