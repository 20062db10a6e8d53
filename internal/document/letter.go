package document

import (
	"fmt"

	"github.com/Zouhir-Harch/site-backend/internal/layout"
	"github.com/Zouhir-Harch/site-backend/internal/pagination"
)

const (
	letterMargin    = 2.5 * layout.Cm
	letterTop       = layout.PageHeight - 2*layout.Cm
	letterThreshold = 4 * layout.Cm
)

// RenderLetter lays out a cover letter and returns the finished
// document bytes. Header blocks (sender, recipient, objet) are placed
// at fixed positions; the body paragraphs flow with page breaks.
func RenderLetter(canvas layout.Canvas, data LetterData) ([]byte, error) {
	contentWidth := layout.PageWidth - 2*letterMargin

	// Sender block, top left.
	y, err := drawLines(canvas, letterMargin, letterTop, 0.5*layout.Cm, layout.Font(10), []string{
		data.FirstName + " " + data.LastName,
		data.Address,
		data.PostalCode + " " + data.City,
		"Tél : " + data.Phone,
		"Email : " + data.Email,
	})
	if err != nil {
		return nil, err
	}
	y -= 1.5 * layout.Cm

	if err := drawRecipient(canvas, data); err != nil {
		return nil, err
	}

	// Place and date of writing.
	date := data.WritingDate
	if date == "" {
		date = "Le [date]"
	}
	if err := canvas.DrawText(letterMargin, y, data.WritingPlace+", "+date, layout.Font(10)); err != nil {
		return nil, err
	}
	y -= 1.5 * layout.Cm

	y, err = drawSubject(canvas, data.Subject, y, contentWidth)
	if err != nil {
		return nil, err
	}

	if data.JobReference != "" {
		if err := canvas.DrawText(letterMargin, y, "Réf. : "+data.JobReference, layout.Font(10)); err != nil {
			return nil, err
		}
		y -= 0.8 * layout.Cm
	} else {
		y -= 0.5 * layout.Cm
	}

	salutation := "Madame, Monsieur,"
	if data.RecipientName != "" {
		salutation = fmt.Sprintf("Madame, Monsieur %s,", data.RecipientName)
	}
	if err := canvas.DrawText(letterMargin, y, salutation, layout.Font(11)); err != nil {
		return nil, err
	}
	y -= 1 * layout.Cm

	flow := pagination.NewFlow(canvas, pagination.Options{
		MarginLeft:     letterMargin,
		MarginRight:    letterMargin,
		MarginTop:      2 * layout.Cm,
		BreakThreshold: letterThreshold,
	})
	flow.Skip(letterTop - y)

	body := layout.Font(11)
	gap := layout.Spacer{Gap: 0.5 * layout.Cm}
	err = flow.Run([]layout.Block{
		layout.Paragraph{Text: data.IntroParagraph, Font: body},
		gap,
		layout.Paragraph{Text: data.SkillsParagraph, Font: body},
		gap,
		layout.Paragraph{Text: data.MotivationParagraph, Font: body},
		gap,
		layout.Paragraph{Text: data.ClosingParagraph, Font: body},
		layout.Spacer{Gap: 1 * layout.Cm},
		layout.Paragraph{
			Text: "Je vous prie d'agréer, Madame, Monsieur, l'expression de mes salutations distinguées.",
			Font: body,
			// Kept together with the signature area.
			KeepSpace: 5 * layout.Cm,
		},
		layout.Spacer{Gap: 1.5 * layout.Cm},
	})
	if err != nil {
		return nil, err
	}

	signatureX := layout.PageWidth - 6*layout.Cm
	name := data.FirstName + " " + data.LastName
	if err := canvas.DrawText(signatureX, flow.Cursor().Y(), name, layout.Font(11)); err != nil {
		return nil, err
	}

	return canvas.Finalize()
}

// drawRecipient draws the recipient block at the right of the header.
func drawRecipient(canvas layout.Canvas, data LetterData) error {
	x := layout.PageWidth - 7*layout.Cm
	y := letterTop

	if data.RecipientName != "" && data.RecipientTitle != "" {
		line := data.RecipientTitle + " " + data.RecipientName
		if err := canvas.DrawText(x, y, line, layout.Font(10)); err != nil {
			return err
		}
		y -= 0.5 * layout.Cm
	}

	if err := canvas.DrawText(x, y, data.Company, layout.Bold(10)); err != nil {
		return err
	}
	y -= 0.5 * layout.Cm

	if data.CompanyAddress != "" {
		lines := layout.Wrap(data.CompanyAddress, layout.Font(10), 6*layout.Cm, canvas)
		if _, err := drawLines(canvas, x, y, 0.5*layout.Cm, layout.Font(10), lines); err != nil {
			return err
		}
	}
	return nil
}

// drawSubject draws the bold "Objet :" prefix with the subject hanging
// off it, continuation lines indented. Returns the y below the block.
func drawSubject(canvas layout.Canvas, subject string, y, contentWidth float64) (float64, error) {
	label := "Objet : "
	labelFont := layout.Bold(11)
	if err := canvas.DrawText(letterMargin, y, label, labelFont); err != nil {
		return 0, err
	}

	labelWidth := canvas.Measure(label, labelFont)
	lines := layout.Wrap(subject, layout.Font(11), contentWidth-labelWidth, canvas)
	for i, line := range lines {
		x := letterMargin + 1.5*layout.Cm
		if i == 0 {
			x = letterMargin + labelWidth
		}
		if err := canvas.DrawText(x, y-float64(i)*0.5*layout.Cm, line, layout.Font(11)); err != nil {
			return 0, err
		}
	}
	return y - float64(len(lines))*0.5*layout.Cm - 0.3*layout.Cm, nil
}

// drawLines draws lines top-down at a fixed step, returning the y of
// the last drawn line.
func drawLines(canvas layout.Canvas, x, y, step float64, font layout.FontSpec, lines []string) (float64, error) {
	for i, line := range lines {
		if i > 0 {
			y -= step
		}
		if err := canvas.DrawText(x, y, line, font); err != nil {
			return 0, err
		}
	}
	return y, nil
}
