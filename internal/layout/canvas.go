package layout

// All lengths in this package are expressed in PDF points (1/72 inch).
// The coordinate space has its origin at the bottom-left corner of the
// page; y grows upward.

// Cm is the number of points in one centimeter.
const Cm = 28.3464566929

// Fixed A4 portrait page dimensions in points.
const (
	PageWidth  = 595.28
	PageHeight = 841.89
)

// FontStyle selects the face variant within a font family.
type FontStyle string

const (
	StyleRegular FontStyle = ""
	StyleBold    FontStyle = "B"
	StyleItalic  FontStyle = "I"
)

// FontSpec describes how a run of text is measured and painted. It is an
// immutable value; two equal FontSpecs always measure text identically.
type FontSpec struct {
	Family string
	Style  FontStyle
	Size   float64
}

const defaultFamily = "Helvetica"

// Font returns a regular Helvetica spec at the given point size.
func Font(size float64) FontSpec {
	return FontSpec{Family: defaultFamily, Size: size}
}

// Bold returns a bold Helvetica spec at the given point size.
func Bold(size float64) FontSpec {
	return FontSpec{Family: defaultFamily, Style: StyleBold, Size: size}
}

// Italic returns an oblique Helvetica spec at the given point size.
func Italic(size float64) FontSpec {
	return FontSpec{Family: defaultFamily, Style: StyleItalic, Size: size}
}

// Measurer reports the rendered width of text under a font.
//
// Implementations must be deterministic and monotonic: appending to a
// string never shrinks its width. Empty text measures to zero. Unknown
// glyphs degrade to an approximate width instead of failing; a slightly
// misaligned character is preferable to a failed render.
type Measurer interface {
	Measure(text string, font FontSpec) float64
}

// Canvas is the drawing surface the engine paints onto. Coordinates
// follow the package convention (bottom-left origin, y up); text
// coordinates address the baseline of the first line.
//
// Every call carries its full FontSpec: implementations select the font
// per call and the engine assumes no font state survives a page break.
// Draw errors are fatal to the render in progress; callers stop at the
// first failure and must not ship partial output.
type Canvas interface {
	Measurer

	DrawText(x, y float64, text string, font FontSpec) error
	DrawCenteredText(centerX, y float64, text string, font FontSpec) error
	DrawLine(x1, y1, x2, y2 float64) error
	// DrawRect draws an unfilled rectangle whose bottom-left corner is
	// at (x, y).
	DrawRect(x, y, width, height float64) error
	NewPage() error
	// Finalize produces the completed multi-page document. The canvas
	// must not be used afterwards.
	Finalize() ([]byte, error)
}
