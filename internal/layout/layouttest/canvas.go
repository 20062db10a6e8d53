// Package layouttest provides an in-memory Canvas for engine tests.
package layouttest

import (
	"unicode/utf8"

	"github.com/Zouhir-Harch/site-backend/internal/layout"
)

// Text is one recorded text draw.
type Text struct {
	Page     int
	X, Y     float64
	Text     string
	Font     layout.FontSpec
	Centered bool
}

// Line is one recorded line draw.
type Line struct {
	Page           int
	X1, Y1, X2, Y2 float64
}

// Rect is one recorded rectangle draw.
type Rect struct {
	Page          int
	X, Y          float64
	Width, Height float64
}

// Canvas records draw calls instead of painting them. Metrics are
// monospace: every rune measures CharWidth points regardless of font,
// which keeps wrap results exactly predictable in tests.
type Canvas struct {
	CharWidth float64

	Texts []Text
	Lines []Line
	Rects []Rect

	// NewPageErr is returned by NewPage when set, simulating a canvas
	// failure mid-render.
	NewPageErr error
	// DrawErr is returned by every draw call when set.
	DrawErr error

	page int
}

// New returns a Canvas measuring 0.2 cm per character.
func New() *Canvas {
	return &Canvas{CharWidth: 0.2 * layout.Cm}
}

// PageCount returns the number of pages touched so far (at least 1).
func (c *Canvas) PageCount() int {
	return c.page + 1
}

// TextsOnPage returns the recorded text draws for one page.
func (c *Canvas) TextsOnPage(page int) []Text {
	var out []Text
	for _, t := range c.Texts {
		if t.Page == page {
			out = append(out, t)
		}
	}
	return out
}

func (c *Canvas) Measure(text string, font layout.FontSpec) float64 {
	return float64(utf8.RuneCountInString(text)) * c.CharWidth
}

func (c *Canvas) DrawText(x, y float64, text string, font layout.FontSpec) error {
	if c.DrawErr != nil {
		return c.DrawErr
	}
	c.Texts = append(c.Texts, Text{Page: c.page, X: x, Y: y, Text: text, Font: font})
	return nil
}

func (c *Canvas) DrawCenteredText(centerX, y float64, text string, font layout.FontSpec) error {
	if c.DrawErr != nil {
		return c.DrawErr
	}
	c.Texts = append(c.Texts, Text{Page: c.page, X: centerX, Y: y, Text: text, Font: font, Centered: true})
	return nil
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) error {
	if c.DrawErr != nil {
		return c.DrawErr
	}
	c.Lines = append(c.Lines, Line{Page: c.page, X1: x1, Y1: y1, X2: x2, Y2: y2})
	return nil
}

func (c *Canvas) DrawRect(x, y, width, height float64) error {
	if c.DrawErr != nil {
		return c.DrawErr
	}
	c.Rects = append(c.Rects, Rect{Page: c.page, X: x, Y: y, Width: width, Height: height})
	return nil
}

func (c *Canvas) NewPage() error {
	if c.NewPageErr != nil {
		return c.NewPageErr
	}
	c.page++
	return nil
}

func (c *Canvas) Finalize() ([]byte, error) {
	return []byte("%FAKE"), nil
}
