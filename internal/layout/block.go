package layout

// LineHeightFactor converts a font's point size into the vertical step
// reserved per wrapped line. The step depends only on the size, not on
// measured glyph heights, so tight fonts still reserve uniform space.
const LineHeightFactor = 1.4

// LineStep returns the per-line vertical advance for a font.
func LineStep(font FontSpec) float64 {
	return font.Size * LineHeightFactor
}

// Block is one discrete unit of document content sequenced by the flow
// engine. Each variant can compute the vertical space it needs at a
// given content width before being drawn.
type Block interface {
	Extent(width float64, m Measurer) float64
}

// Heading is a single unwrapped line, optionally underlined by a rule
// spanning the content width.
type Heading struct {
	Text     string
	Font     FontSpec
	Centered bool
	// Gap is the vertical advance after the text line.
	Gap  float64
	Rule bool
	// RuleGap is the advance after the rule, when Rule is set.
	RuleGap float64
}

func (h Heading) Extent(width float64, m Measurer) float64 {
	extent := h.Gap
	if h.Rule {
		extent += h.RuleGap
	}
	return extent
}

// Rule is a horizontal line across the content width.
type Rule struct {
	// Gap is the vertical advance after the line.
	Gap float64
}

func (r Rule) Extent(width float64, m Measurer) float64 {
	return r.Gap
}

// Paragraph is wrapped body text drawn line by line at the flow's left
// edge (plus Indent).
type Paragraph struct {
	Text   string
	Font   FontSpec
	Indent float64
	// KeepSpace, when positive, forces a page break before the
	// paragraph if less than this much room remains, keeping short
	// closing paragraphs together.
	KeepSpace float64
}

func (p Paragraph) Extent(width float64, m Measurer) float64 {
	lines := Wrap(p.Text, p.Font, width-p.Indent, m)
	return float64(len(lines)) * LineStep(p.Font)
}

// Spacer advances the cursor without drawing.
type Spacer struct {
	Gap float64
}

func (s Spacer) Extent(width float64, m Measurer) float64 {
	return s.Gap
}

// RowCell is one column of a KeyValueRow: text wrapped independently
// against the column's own width, drawn at OffsetX from the content
// left edge.
type RowCell struct {
	Text    string
	Font    FontSpec
	OffsetX float64
	Width   float64
}

// KeyValueRow lays out two columns starting at the same top y. The
// taller column determines the row height; the shorter column's
// remaining space is left blank.
type KeyValueRow struct {
	Left       RowCell
	Right      RowCell
	LineHeight float64
	// MinHeight floors the row's advance regardless of line count.
	MinHeight float64
}

func (r KeyValueRow) Extent(width float64, m Measurer) float64 {
	left := Wrap(r.Left.Text, r.Left.Font, r.Left.Width, m)
	right := Wrap(r.Right.Text, r.Right.Font, r.Right.Width, m)
	height := RowHeight(len(left), len(right), r.LineHeight)
	if height < r.MinHeight {
		height = r.MinHeight
	}
	return height
}

// ListEntry groups blocks that belong to one repeating item (an
// experience entry, a formation). The flow engine flattens entries into
// the block sequence; an entry whose extent no longer fits above the
// break threshold moves to a new page as a whole, but an oversized
// entry's lines may still break mid-entry once drawing begins.
type ListEntry struct {
	Blocks []Block
}

func (e ListEntry) Extent(width float64, m Measurer) float64 {
	total := 0.0
	for _, b := range e.Blocks {
		total += b.Extent(width, m)
	}
	return total
}

// TitleBox is a bordered box sized to its wrapped content, centered
// within the content width, with each line centered inside the box.
type TitleBox struct {
	Text string
	Font FontSpec
	// Width is the outer box width; text wraps at Width - 2*Padding.
	Width       float64
	Padding     float64
	LineHeight  float64
	TrailingGap float64
}

func (b TitleBox) Extent(width float64, m Measurer) float64 {
	lines := Wrap(b.Text, b.Font, b.Width-2*b.Padding, m)
	return BoxHeight(len(lines), b.LineHeight, b.Padding) + b.TrailingGap
}
