package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zouhir-Harch/site-backend/internal/layout"
	"github.com/Zouhir-Harch/site-backend/internal/layout/layouttest"
)

func TestLineStep(t *testing.T) {
	t.Run("Should scale with the font size", func(t *testing.T) {
		assert.InDelta(t, 15.4, layout.LineStep(layout.Font(11)), 1e-9)
		assert.InDelta(t, 12.6, layout.LineStep(layout.Bold(9)), 1e-9)
	})
}

func TestBoxHeight(t *testing.T) {
	t.Run("Should add padding above and below the lines", func(t *testing.T) {
		h := layout.BoxHeight(3, 0.7*layout.Cm, 0.8*layout.Cm)
		assert.InDelta(t, 3*0.7*layout.Cm+2*0.8*layout.Cm, h, 1e-9)
	})

	t.Run("Should grow by one line height per extra line", func(t *testing.T) {
		one := layout.BoxHeight(1, 0.7*layout.Cm, 0.8*layout.Cm)
		two := layout.BoxHeight(2, 0.7*layout.Cm, 0.8*layout.Cm)
		assert.InDelta(t, 0.7*layout.Cm, two-one, 1e-9)
	})
}

func TestRowHeight(t *testing.T) {
	t.Run("Should take the taller column", func(t *testing.T) {
		assert.InDelta(t, 3*0.5*layout.Cm, layout.RowHeight(3, 1, 0.5*layout.Cm), 1e-9)
		assert.InDelta(t, 4*0.5*layout.Cm, layout.RowHeight(2, 4, 0.5*layout.Cm), 1e-9)
	})
}

func TestBlockExtent(t *testing.T) {
	canvas := layouttest.New()
	width := 12 * layout.Cm

	t.Run("Should size a paragraph by its wrapped line count", func(t *testing.T) {
		p := layout.Paragraph{Text: "Lorem ipsum dolor sit amet consectetur adipiscing", Font: layout.Font(11)}
		assert.InDelta(t, layout.LineStep(p.Font), p.Extent(width, canvas), 1e-9)
		assert.InDelta(t, 2*layout.LineStep(p.Font), p.Extent(6*layout.Cm, canvas), 1e-9)
	})

	t.Run("Should reduce a paragraph's wrap width by its indent", func(t *testing.T) {
		p := layout.Paragraph{Text: "Lorem ipsum dolor sit amet consectetur adipiscing", Font: layout.Font(11), Indent: 6 * layout.Cm}
		assert.InDelta(t, 2*layout.LineStep(p.Font), p.Extent(width, canvas), 1e-9)
	})

	t.Run("Should include the rule gap only when a heading has a rule", func(t *testing.T) {
		plain := layout.Heading{Text: "LANGUES", Font: layout.Bold(11), Gap: 10}
		ruled := layout.Heading{Text: "LANGUES", Font: layout.Bold(11), Gap: 10, Rule: true, RuleGap: 5}
		assert.InDelta(t, 10, plain.Extent(width, canvas), 1e-9)
		assert.InDelta(t, 15, ruled.Extent(width, canvas), 1e-9)
	})

	t.Run("Should size a title box from wrapped content plus padding and trailing gap", func(t *testing.T) {
		box := layout.TitleBox{
			Text:        "Lorem ipsum dolor sit amet consectetur adipiscing",
			Font:        layout.Bold(13),
			Width:       7.6 * layout.Cm,
			Padding:     0.8 * layout.Cm,
			LineHeight:  0.7 * layout.Cm,
			TrailingGap: 1.5 * layout.Cm,
		}
		// Inner width is 6 cm, the same split as the paragraph case.
		want := layout.BoxHeight(2, 0.7*layout.Cm, 0.8*layout.Cm) + 1.5*layout.Cm
		assert.InDelta(t, want, box.Extent(width, canvas), 1e-9)
	})

	t.Run("Should size a row by its taller wrapped column", func(t *testing.T) {
		row := layout.KeyValueRow{
			Left:       layout.RowCell{Text: "Réalisé par :", Font: layout.Bold(11), Width: 6 * layout.Cm},
			Right:      layout.RowCell{Text: "Lorem ipsum dolor sit amet consectetur adipiscing", Font: layout.Font(10), Width: 6 * layout.Cm},
			LineHeight: 0.6 * layout.Cm,
		}
		assert.InDelta(t, 2*0.6*layout.Cm, row.Extent(width, canvas), 1e-9)
	})

	t.Run("Should floor a row's extent at its minimum height", func(t *testing.T) {
		row := layout.KeyValueRow{
			Left:       layout.RowCell{Text: "Encadré par :", Font: layout.Bold(11), Width: 6 * layout.Cm},
			Right:      layout.RowCell{Text: "valeur", Font: layout.Font(10), Width: 6 * layout.Cm},
			LineHeight: 0.5 * layout.Cm,
			MinHeight:  0.6 * layout.Cm,
		}
		assert.InDelta(t, 0.6*layout.Cm, row.Extent(width, canvas), 1e-9)
	})

	t.Run("Should sum a list entry's blocks", func(t *testing.T) {
		entry := layout.ListEntry{Blocks: []layout.Block{
			layout.Heading{Text: "Poste", Font: layout.Bold(10), Gap: 11},
			layout.Spacer{Gap: 4},
		}}
		assert.InDelta(t, 15, entry.Extent(width, canvas), 1e-9)
	})
}
