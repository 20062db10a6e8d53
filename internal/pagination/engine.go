package pagination

import (
	"fmt"

	"github.com/Zouhir-Harch/site-backend/internal/layout"
)

// Options configure a Flow for one document render.
type Options struct {
	MarginLeft  float64
	MarginRight float64
	MarginTop   float64
	// BreakThreshold is the distance from the page bottom below which
	// the next line forces a page break. One value governs the whole
	// render so orphan behavior stays consistent across block types.
	BreakThreshold float64
}

// Flow sequences blocks down the page, wrapping text against the
// content width and breaking pages at the configured threshold. It owns
// the Cursor for the duration of one render.
type Flow struct {
	canvas layout.Canvas
	cursor *Cursor
	opts   Options
}

// NewFlow returns a flow whose cursor starts at the top margin of
// page 0.
func NewFlow(canvas layout.Canvas, opts Options) *Flow {
	return &Flow{
		canvas: canvas,
		cursor: NewCursor(canvas, layout.PageHeight-opts.MarginTop),
		opts:   opts,
	}
}

// Cursor exposes the flow's cursor so templates can place absolutely
// positioned content (signatures, footers) relative to the flowed body.
func (f *Flow) Cursor() *Cursor {
	return f.cursor
}

// Left returns the x position of the content's left edge.
func (f *Flow) Left() float64 {
	return f.opts.MarginLeft
}

// ContentWidth returns the usable width between the margins.
func (f *Flow) ContentWidth() float64 {
	return layout.PageWidth - f.opts.MarginLeft - f.opts.MarginRight
}

// Skip advances the cursor without drawing, letting templates align the
// flow with content they drew themselves above it.
func (f *Flow) Skip(delta float64) {
	f.cursor.Advance(delta)
}

// Run draws blocks in order, breaking pages as needed.
func (f *Flow) Run(blocks []layout.Block) error {
	for _, b := range blocks {
		if err := f.Draw(b); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders a single block at the cursor.
func (f *Flow) Draw(block layout.Block) error {
	switch b := block.(type) {
	case layout.Spacer:
		f.cursor.Advance(b.Gap)
		return nil
	case layout.ListEntry:
		return f.listEntry(b)
	case layout.TitleBox:
		// The box never consults the break policy itself; a caller
		// that might run out of room must break the page first.
		return f.titleBox(b)
	}

	if f.cursor.NeedsBreak(f.opts.BreakThreshold) {
		if err := f.cursor.BreakPage(); err != nil {
			return err
		}
	}

	switch b := block.(type) {
	case layout.Heading:
		return f.heading(b)
	case layout.Rule:
		return f.rule(b)
	case layout.Paragraph:
		return f.paragraph(b)
	case layout.KeyValueRow:
		return f.row(b)
	default:
		return fmt.Errorf("pagination: unknown block type %T", block)
	}
}

func (f *Flow) heading(h layout.Heading) error {
	var err error
	if h.Centered {
		err = f.canvas.DrawCenteredText(layout.PageWidth/2, f.cursor.Y(), h.Text, h.Font)
	} else {
		err = f.canvas.DrawText(f.opts.MarginLeft, f.cursor.Y(), h.Text, h.Font)
	}
	if err != nil {
		return err
	}
	f.cursor.Advance(h.Gap)
	if h.Rule {
		y := f.cursor.Y()
		if err := f.canvas.DrawLine(f.opts.MarginLeft, y, layout.PageWidth-f.opts.MarginRight, y); err != nil {
			return err
		}
		f.cursor.Advance(h.RuleGap)
	}
	return nil
}

func (f *Flow) rule(r layout.Rule) error {
	y := f.cursor.Y()
	if err := f.canvas.DrawLine(f.opts.MarginLeft, y, layout.PageWidth-f.opts.MarginRight, y); err != nil {
		return err
	}
	f.cursor.Advance(r.Gap)
	return nil
}

func (f *Flow) paragraph(p layout.Paragraph) error {
	if p.KeepSpace > 0 && f.cursor.NeedsBreak(p.KeepSpace) {
		if err := f.cursor.BreakPage(); err != nil {
			return err
		}
	}
	lines := layout.Wrap(p.Text, p.Font, f.ContentWidth()-p.Indent, f.canvas)
	step := layout.LineStep(p.Font)
	for _, line := range lines {
		// Re-checked per produced line: a long paragraph may split,
		// carrying its overflow lines onto the next page.
		if f.cursor.NeedsBreak(f.opts.BreakThreshold) {
			if err := f.cursor.BreakPage(); err != nil {
				return err
			}
		}
		if err := f.canvas.DrawText(f.opts.MarginLeft+p.Indent, f.cursor.Y(), line, p.Font); err != nil {
			return err
		}
		f.cursor.Advance(step)
	}
	return nil
}

func (f *Flow) row(r layout.KeyValueRow) error {
	left := layout.Wrap(r.Left.Text, r.Left.Font, r.Left.Width, f.canvas)
	right := layout.Wrap(r.Right.Text, r.Right.Font, r.Right.Width, f.canvas)
	top := f.cursor.Y()
	if err := f.drawColumn(r.Left, left, top, r.LineHeight); err != nil {
		return err
	}
	if err := f.drawColumn(r.Right, right, top, r.LineHeight); err != nil {
		return err
	}
	height := layout.RowHeight(len(left), len(right), r.LineHeight)
	if height < r.MinHeight {
		height = r.MinHeight
	}
	f.cursor.Advance(height)
	return nil
}

func (f *Flow) drawColumn(cell layout.RowCell, lines []string, top, lineHeight float64) error {
	x := f.opts.MarginLeft + cell.OffsetX
	for i, line := range lines {
		if err := f.canvas.DrawText(x, top-float64(i)*lineHeight, line, cell.Font); err != nil {
			return err
		}
	}
	return nil
}

// listEntry flattens an entry's blocks into the flow. The entry as a
// whole moves to a fresh page when its measured extent no longer fits
// above the threshold, so a short entry is never split. The extent is
// capped at a full page's capacity: an entry taller than one page
// starts in place and breaks per line once its blocks draw.
func (f *Flow) listEntry(e layout.ListEntry) error {
	extent := e.Extent(f.ContentWidth(), f.canvas)
	if capacity := layout.PageHeight - f.opts.MarginTop - f.opts.BreakThreshold; extent > capacity {
		extent = capacity
	}
	if f.cursor.NeedsBreak(f.opts.BreakThreshold + extent) {
		if err := f.cursor.BreakPage(); err != nil {
			return err
		}
	}
	return f.Run(e.Blocks)
}

func (f *Flow) titleBox(b layout.TitleBox) error {
	lines := layout.Wrap(b.Text, b.Font, b.Width-2*b.Padding, f.canvas)
	height := layout.BoxHeight(len(lines), b.LineHeight, b.Padding)
	x := f.opts.MarginLeft + (f.ContentWidth()-b.Width)/2
	top := f.cursor.Y()
	if err := f.canvas.DrawRect(x, top-height, b.Width, height); err != nil {
		return err
	}
	y := top - b.Padding - b.LineHeight
	for _, line := range lines {
		if err := f.canvas.DrawCenteredText(x+b.Width/2, y, line, b.Font); err != nil {
			return err
		}
		y -= b.LineHeight
	}
	f.cursor.Advance(height + b.TrailingGap)
	return nil
}
