package models

// Analysis is the JSON object the model is asked to produce. Field names carry
// the exact keys from the prompt schema; anything the model leaves out decodes
// to its zero value and is rendered as a placeholder downstream.
type Analysis struct {
	ContractType       string         `json:"Contract Type"`
	Address            string         `json:"Address"`
	EntryDate          string         `json:"Entry Date"`
	ContractParty      string         `json:"Contract Party"`
	TerminationDate    string         `json:"Termination Date"`
	EndOfContract      string         `json:"End of Contract"`
	ExecutiveSummary   string         `json:"Executive Summary"`
	ScopeOfService     string         `json:"Scope of Service"`
	Responsibilities   string         `json:"Responsibilities for Deliverables"`
	PaymentSchedule    string         `json:"Payment Schedule"`
	TaxCompliance      string         `json:"Tax Compliance"`
	ImportantDates     string         `json:"Important Dates and Deadlines"`
	TerminationClauses string         `json:"Termination Clauses"`
	Confidentiality    string         `json:"Confidentiality and Non-Compete Clause"`
	Clauses            ClausePresence `json:"Clauses Presence"`
}

// ClausePresence holds the "Yes"/"No" clause flags grouped by category. A
// missing category decodes to a nil map, so every lookup defaults to "No".
type ClausePresence struct {
	Commercial map[string]string `json:"Commercial"`
	Legal      map[string]string `json:"Legal"`
}

// Headline is one of the colored key-detail boxes on the result page.
type Headline struct {
	Label string
	Value string
	Color string
}

// Narrative is one of the free-text insight blocks on the result page.
type Narrative struct {
	Label string
	Value string
}

// ClauseFlag is a single disabled checkbox on the result page.
type ClauseFlag struct {
	Label   string
	Checked bool
}

// ClauseGroup is a named group of clause checkboxes.
type ClauseGroup struct {
	Name  string
	Flags []ClauseFlag
}

const placeholder = "N/A"

func orPlaceholder(v string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// Headlines returns the six key contract details with their box colors,
// substituting "N/A" for anything the model omitted.
func (a *Analysis) Headlines() []Headline {
	return []Headline{
		{Label: "Contract Type", Value: orPlaceholder(a.ContractType), Color: "box-red"},
		{Label: "Address", Value: orPlaceholder(a.Address), Color: "box-green"},
		{Label: "Entry Date", Value: orPlaceholder(a.EntryDate), Color: "box-blue"},
		{Label: "Contract Party", Value: orPlaceholder(a.ContractParty), Color: "box-purple"},
		{Label: "Termination Date", Value: orPlaceholder(a.TerminationDate), Color: "box-orange"},
		{Label: "End of Contract", Value: orPlaceholder(a.EndOfContract), Color: "box-pink"},
	}
}

// Narratives returns the eight general-insight blocks, substituting "N/A" for
// anything the model omitted.
func (a *Analysis) Narratives() []Narrative {
	return []Narrative{
		{Label: "Executive Summary", Value: orPlaceholder(a.ExecutiveSummary)},
		{Label: "Scope of Service", Value: orPlaceholder(a.ScopeOfService)},
		{Label: "Responsibilities for Deliverables", Value: orPlaceholder(a.Responsibilities)},
		{Label: "Payment Schedule", Value: orPlaceholder(a.PaymentSchedule)},
		{Label: "Tax Compliance", Value: orPlaceholder(a.TaxCompliance)},
		{Label: "Important Dates and Deadlines", Value: orPlaceholder(a.ImportantDates)},
		{Label: "Termination Clauses", Value: orPlaceholder(a.TerminationClauses)},
		{Label: "Confidentiality and Non-Compete Clause", Value: orPlaceholder(a.Confidentiality)},
	}
}

// ClauseGroups returns the Commercial and Legal checkbox groups. A flag is
// checked only when the model answered exactly "Yes"; missing sub-keys and a
// missing Clauses Presence object both come out unchecked.
func (a *Analysis) ClauseGroups() []ClauseGroup {
	commercial := []struct{ key, label string }{
		{"Payment Terms", "Payment Terms"},
		{"IP", "IP (Intellectual Property)"},
		{"Delivery Time", "Delivery Time"},
		{"Warranty", "Warranty"},
	}
	legal := []struct{ key, label string }{
		{"Indemnification", "Indemnification"},
		{"Termination", "Termination"},
		{"Confidentiality", "Confidentiality"},
		{"Limitation of Liability", "Limitation of Liability"},
	}

	groups := []ClauseGroup{
		{Name: "Commercial"},
		{Name: "Legal"},
	}
	for _, c := range commercial {
		groups[0].Flags = append(groups[0].Flags, ClauseFlag{
			Label:   c.label,
			Checked: a.Clauses.Commercial[c.key] == "Yes",
		})
	}
	for _, l := range legal {
		groups[1].Flags = append(groups[1].Flags, ClauseFlag{
			Label:   l.label,
			Checked: a.Clauses.Legal[l.key] == "Yes",
		})
	}
	return groups
}
