// Package pagination advances a vertical cursor through fixed-size
// pages and drives block sequences against it, forcing page breaks at a
// configured bottom threshold.
package pagination

import (
	"github.com/Zouhir-Harch/site-backend/internal/layout"
)

// Cursor tracks the current page index and writing position of one
// render. It holds no font state; block-drawing code passes its
// FontSpec on every canvas call, so nothing needs re-selecting after a
// break.
type Cursor struct {
	canvas layout.Canvas
	page   int
	y      float64
	top    float64
}

// NewCursor returns a cursor positioned at top on page 0. New pages
// reset the position to the same top value.
func NewCursor(canvas layout.Canvas, top float64) *Cursor {
	return &Cursor{canvas: canvas, y: top, top: top}
}

// Page returns the zero-based index of the current page.
func (c *Cursor) Page() int {
	return c.page
}

// Y returns the current writing position.
func (c *Cursor) Y() float64 {
	return c.y
}

// Advance moves the cursor down by delta. No clamping: callers check
// NeedsBreak before drawing, not after.
func (c *Cursor) Advance(delta float64) {
	c.y -= delta
}

// NeedsBreak reports whether the cursor has dropped below threshold.
func (c *Cursor) NeedsBreak(threshold float64) bool {
	return c.y < threshold
}

// BreakPage starts a new page on the canvas, increments the page index
// and resets the position to the top margin.
func (c *Cursor) BreakPage() error {
	if err := c.canvas.NewPage(); err != nil {
		return err
	}
	c.page++
	c.y = c.top
	return nil
}
