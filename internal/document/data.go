// Package document renders the three document templates — cover
// letter, academic title page and résumé — through the layout and
// pagination engine. JSON field names keep the original API's French
// wire format.
package document

// LetterData is the request record for a cover letter.
type LetterData struct {
	LastName   string `json:"nom" binding:"required"`
	FirstName  string `json:"prenom" binding:"required"`
	Address    string `json:"adresse" binding:"required"`
	PostalCode string `json:"code_postal" binding:"required"`
	City       string `json:"ville" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"telephone" binding:"required"`

	Company        string `json:"entreprise" binding:"required"`
	RecipientName  string `json:"destinataire_nom"`
	RecipientTitle string `json:"destinataire_titre"`
	CompanyAddress string `json:"adresse_entreprise"`

	// Validated for API compatibility; the letter body text is
	// expected to mention the position itself.
	Position         string `json:"poste" binding:"required"`
	ContractType     string `json:"type_contrat" binding:"required"`
	AvailabilityDate string `json:"date_disponibilite"`

	Subject             string `json:"objet" binding:"required"`
	IntroParagraph      string `json:"paragraphe_intro" binding:"required"`
	SkillsParagraph     string `json:"paragraphe_competences" binding:"required"`
	MotivationParagraph string `json:"paragraphe_motivation" binding:"required"`
	ClosingParagraph    string `json:"paragraphe_conclusion" binding:"required"`

	JobReference string `json:"reference_annonce"`
	WritingPlace string `json:"lieu_redaction" binding:"required"`
	WritingDate  string `json:"date_redaction"`
}

// TitlePageData is the request record for an academic title page. The
// logo fields are accepted for API compatibility but not drawn.
type TitlePageData struct {
	AcademicYear       string `json:"annee_universitaire" binding:"required"`
	ReportType         string `json:"type_rapport" binding:"required"`
	InternshipTitle    string `json:"titre_stage" binding:"required"`
	Company            string `json:"entreprise" binding:"required"`
	CompanyLogo        string `json:"logo_entreprise"`
	StudentLastName    string `json:"etudiant_nom" binding:"required"`
	StudentFirstName   string `json:"etudiant_prenom" binding:"required"`
	Program            string `json:"filiere" binding:"required"`
	CompanySupervisor  string `json:"encadrant_entreprise" binding:"required"`
	AcademicSupervisor string `json:"encadrant_academique" binding:"required"`
	StartDate          string `json:"date_debut" binding:"required"`
	EndDate            string `json:"date_fin" binding:"required"`
	Establishment      string `json:"etablissement" binding:"required"`
	EstablishmentLogo  string `json:"logo_etablissement"`
}

// Experience is one professional experience entry of a résumé.
type Experience struct {
	Position    string `json:"poste" binding:"required"`
	Company     string `json:"entreprise" binding:"required"`
	StartDate   string `json:"date_debut" binding:"required"`
	EndDate     string `json:"date_fin" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Formation is one education entry of a résumé.
type Formation struct {
	Diploma       string `json:"diplome" binding:"required"`
	Establishment string `json:"etablissement" binding:"required"`
	Year          string `json:"annee" binding:"required"`
	Mention       string `json:"mention"`
}

// ResumeData is the request record for a résumé. The photo field is
// accepted for API compatibility but not drawn.
type ResumeData struct {
	LastName          string       `json:"nom" binding:"required"`
	FirstName         string       `json:"prenom" binding:"required"`
	ProfessionalTitle string       `json:"titre_professionnel" binding:"required"`
	Email             string       `json:"email" binding:"required,email"`
	Phone             string       `json:"telephone" binding:"required"`
	Address           string       `json:"adresse" binding:"required"`
	BirthDate         string       `json:"date_naissance"`
	Photo             string       `json:"photo"`
	Profile           string       `json:"profil" binding:"required"`
	Experiences       []Experience `json:"experiences" binding:"required,dive"`
	Formations        []Formation  `json:"formations" binding:"required,dive"`
	TechnicalSkills   []string     `json:"competences_techniques" binding:"required"`
	LanguageSkills    []string     `json:"competences_linguistiques" binding:"required"`
	Interests         []string     `json:"loisirs"`
}
