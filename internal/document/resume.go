package document

import (
	"strings"

	"github.com/Zouhir-Harch/site-backend/internal/layout"
	"github.com/Zouhir-Harch/site-backend/internal/pagination"
)

const (
	resumeMargin    = 2 * layout.Cm
	resumeThreshold = 3 * layout.Cm
)

// RenderResume lays out a résumé and returns the finished document
// bytes. Sections flow top to bottom; experience and education entries
// start on a fresh page when too close to the bottom.
func RenderResume(canvas layout.Canvas, data ResumeData) ([]byte, error) {
	flow := pagination.NewFlow(canvas, pagination.Options{
		MarginLeft:     resumeMargin,
		MarginRight:    resumeMargin,
		MarginTop:      resumeMargin,
		BreakThreshold: resumeThreshold,
	})

	contact := data.Email + " | " + data.Phone + " | " + data.Address

	// Section titles stay in English: the layout targets ATS parsers,
	// which expect these exact headings.
	blocks := []layout.Block{
		layout.Heading{Text: strings.ToUpper(data.FirstName + " " + data.LastName), Font: layout.Bold(18), Gap: 0.6 * layout.Cm},
		layout.Heading{Text: data.ProfessionalTitle, Font: layout.Font(11), Gap: 0.6 * layout.Cm},
		layout.Heading{Text: contact, Font: layout.Font(9), Gap: 0.8 * layout.Cm},
	}

	blocks = append(blocks, sectionTitle("PROFESSIONAL SUMMARY"))
	blocks = append(blocks,
		layout.Paragraph{Text: data.Profile, Font: layout.Font(9)},
		layout.Spacer{Gap: 0.3 * layout.Cm},
	)

	blocks = append(blocks, sectionTitle("SKILLS"))
	blocks = append(blocks,
		layout.Paragraph{Text: strings.Join(data.TechnicalSkills, ", "), Font: layout.Font(9)},
		layout.Spacer{Gap: 0.3 * layout.Cm},
	)

	blocks = append(blocks, sectionTitle("PROFESSIONAL EXPERIENCE"))
	for _, exp := range data.Experiences {
		blocks = append(blocks, experienceEntry(exp))
	}

	blocks = append(blocks, sectionTitle("EDUCATION"))
	for _, f := range data.Formations {
		blocks = append(blocks, formationEntry(f))
	}

	blocks = append(blocks, sectionTitle("LANGUAGES"))
	blocks = append(blocks,
		layout.Paragraph{Text: strings.Join(data.LanguageSkills, ", "), Font: layout.Font(9)},
		layout.Spacer{Gap: 0.3 * layout.Cm},
	)

	if len(data.Interests) > 0 {
		blocks = append(blocks, sectionTitle("INTERESTS"))
		blocks = append(blocks,
			layout.Paragraph{Text: strings.Join(data.Interests, ", "), Font: layout.Font(9)},
		)
	}

	if err := flow.Run(blocks); err != nil {
		return nil, err
	}
	return canvas.Finalize()
}

// sectionTitle is the underlined header opening every résumé section.
func sectionTitle(title string) layout.Block {
	return layout.Heading{
		Text:    title,
		Font:    layout.Bold(11),
		Gap:     0.4 * layout.Cm,
		Rule:    true,
		RuleGap: 0.4 * layout.Cm,
	}
}

// experienceEntry groups one experience so the flow keeps its header
// lines together when a page break looms.
func experienceEntry(exp Experience) layout.Block {
	entry := layout.ListEntry{Blocks: []layout.Block{
		layout.Heading{Text: exp.Position + " – " + exp.Company, Font: layout.Bold(10), Gap: 0.4 * layout.Cm},
		layout.Heading{Text: exp.StartDate + " – " + exp.EndDate, Font: layout.Italic(9), Gap: 0.4 * layout.Cm},
	}}
	for _, line := range strings.Split(exp.Description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entry.Blocks = append(entry.Blocks, layout.Paragraph{Text: "- " + line, Font: layout.Font(9)})
	}
	entry.Blocks = append(entry.Blocks, layout.Spacer{Gap: 0.2 * layout.Cm})
	return entry
}

func formationEntry(f Formation) layout.Block {
	detail := f.Establishment + " – " + f.Year
	if f.Mention != "" {
		detail += " (" + f.Mention + ")"
	}
	return layout.ListEntry{Blocks: []layout.Block{
		layout.Heading{Text: f.Diploma, Font: layout.Bold(10), Gap: 0.4 * layout.Cm},
		layout.Heading{Text: detail, Font: layout.Font(9), Gap: 0.5 * layout.Cm},
	}}
}
