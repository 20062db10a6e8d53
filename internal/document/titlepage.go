package document

import (
	"strings"

	"github.com/Zouhir-Harch/site-backend/internal/layout"
	"github.com/Zouhir-Harch/site-backend/internal/pagination"
)

const titlePageMargin = 2.5 * layout.Cm

// RenderTitlePage lays out an academic title page and returns the
// finished document bytes. The page is single by construction: its
// fixed content always fits above the footer, which is why the title
// box can be drawn without a room check.
func RenderTitlePage(canvas layout.Canvas, data TitlePageData) ([]byte, error) {
	flow := pagination.NewFlow(canvas, pagination.Options{
		MarginLeft:     titlePageMargin,
		MarginRight:    titlePageMargin,
		MarginTop:      titlePageMargin,
		BreakThreshold: 2 * layout.Cm,
	})

	columnWidth := layout.PageWidth/2 - titlePageMargin
	rightOffset := layout.PageWidth/2 + 0.5*layout.Cm + 2.5*layout.Cm - titlePageMargin
	labelRow := func(left, right string) layout.KeyValueRow {
		return layout.KeyValueRow{
			Left:       layout.RowCell{Text: left, Font: layout.Bold(11), OffsetX: 2.5 * layout.Cm, Width: columnWidth},
			Right:      layout.RowCell{Text: right, Font: layout.Bold(11), OffsetX: rightOffset, Width: columnWidth},
			LineHeight: 0.6 * layout.Cm,
		}
	}

	endDate := data.EndDate
	if endDate == "" {
		endDate = "—"
	}
	academicSupervisor := data.AcademicSupervisor
	if academicSupervisor == "" {
		academicSupervisor = "—"
	}

	err := flow.Run([]layout.Block{
		layout.Heading{Text: "Royaume du Maroc", Font: layout.Font(10), Centered: true, Gap: 0.6 * layout.Cm},
		layout.Heading{Text: data.Establishment, Font: layout.Bold(11), Centered: true, Gap: 0.5 * layout.Cm},
		layout.Heading{Text: data.Program, Font: layout.Font(10), Centered: true, Gap: 0.8 * layout.Cm},
		layout.Rule{Gap: 1.2 * layout.Cm},

		layout.Heading{Text: "Mémoire de Projet de Fin d'Étude", Font: layout.Bold(13), Centered: true, Gap: 0.7 * layout.Cm},
		layout.Heading{Text: "Présenté en vue de l'obtention", Font: layout.Font(10), Centered: true, Gap: 0.6 * layout.Cm},
		layout.Heading{Text: "du Diplôme d'Ingénieur d'État", Font: layout.Bold(11), Centered: true, Gap: 0.6 * layout.Cm},
		layout.Heading{Text: "Spécialité : " + data.Program, Font: layout.Font(10), Centered: true, Gap: 0.6 * layout.Cm},
		layout.Heading{Text: "N° : " + strings.ReplaceAll(data.AcademicYear, "-", "/"), Font: layout.Font(9), Centered: true, Gap: 1.2 * layout.Cm},

		layout.Heading{Text: "Sujet :", Font: layout.Bold(11), Centered: true, Gap: 0.8 * layout.Cm},
		layout.TitleBox{
			Text:        data.InternshipTitle,
			Font:        layout.Bold(13),
			Width:       layout.PageWidth - 2*titlePageMargin - 2*layout.Cm,
			Padding:     0.8 * layout.Cm,
			LineHeight:  0.7 * layout.Cm,
			TrailingGap: 1.5 * layout.Cm,
		},

		labelRow("Réalisé par :", "Soutenu le :"),
		layout.KeyValueRow{
			Left:       layout.RowCell{Text: "Mme/M. " + data.StudentFirstName + " " + data.StudentLastName, Font: layout.Font(10), OffsetX: 2.5 * layout.Cm, Width: columnWidth},
			Right:      layout.RowCell{Text: endDate, Font: layout.Font(10), OffsetX: rightOffset, Width: columnWidth},
			LineHeight: 0.6 * layout.Cm,
		},
		layout.Spacer{Gap: 0.4 * layout.Cm},

		labelRow("Membres du Jury :", "Encadré par :"),
		layout.KeyValueRow{
			Left:       layout.RowCell{Text: academicSupervisor, Font: layout.Font(10), OffsetX: 2.5 * layout.Cm, Width: columnWidth},
			Right:      layout.RowCell{Text: "Mme/M. " + data.CompanySupervisor, Font: layout.Font(10), OffsetX: rightOffset, Width: columnWidth},
			LineHeight: 0.5 * layout.Cm,
			MinHeight:  0.6 * layout.Cm,
		},
		layout.Spacer{Gap: 0.4 * layout.Cm},
	})
	if err != nil {
		return nil, err
	}

	companyLine := "(" + data.Company + ")"
	if err := canvas.DrawText(titlePageMargin+rightOffset, flow.Cursor().Y(), companyLine, layout.Font(9)); err != nil {
		return nil, err
	}

	footer := "Année Universitaire : " + data.AcademicYear
	if err := canvas.DrawCenteredText(layout.PageWidth/2, 2*layout.Cm, footer, layout.Bold(11)); err != nil {
		return nil, err
	}

	return canvas.Finalize()
}
