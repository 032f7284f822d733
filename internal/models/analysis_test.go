package models

import (
	"encoding/json"
	"testing"
)

func TestHeadlinesPlaceholders(t *testing.T) {
	a := &Analysis{ContractType: "Service Agreement"}

	headlines := a.Headlines()
	if len(headlines) != 6 {
		t.Fatalf("Expected 6 headlines, got %d", len(headlines))
	}

	if headlines[0].Value != "Service Agreement" {
		t.Errorf("Expected contract type value, got %q", headlines[0].Value)
	}
	if headlines[0].Color != "box-red" {
		t.Errorf("Expected box-red for contract type, got %q", headlines[0].Color)
	}

	for _, h := range headlines[1:] {
		if h.Value != "N/A" {
			t.Errorf("Expected N/A for missing field %q, got %q", h.Label, h.Value)
		}
	}
}

func TestNarrativesPlaceholders(t *testing.T) {
	a := &Analysis{ExecutiveSummary: "A lease between two parties."}

	narratives := a.Narratives()
	if len(narratives) != 8 {
		t.Fatalf("Expected 8 narratives, got %d", len(narratives))
	}

	if narratives[0].Value != "A lease between two parties." {
		t.Errorf("Expected summary value, got %q", narratives[0].Value)
	}
	for _, n := range narratives[1:] {
		if n.Value != "N/A" {
			t.Errorf("Expected N/A for missing field %q, got %q", n.Label, n.Value)
		}
	}
}

func TestClauseGroupsDefaultUnchecked(t *testing.T) {
	// Whole Clauses Presence object absent: every flag must be unchecked.
	a := &Analysis{}

	groups := a.ClauseGroups()
	if len(groups) != 2 {
		t.Fatalf("Expected 2 clause groups, got %d", len(groups))
	}
	if groups[0].Name != "Commercial" || groups[1].Name != "Legal" {
		t.Errorf("Unexpected group names: %s, %s", groups[0].Name, groups[1].Name)
	}

	for _, g := range groups {
		if len(g.Flags) != 4 {
			t.Errorf("Expected 4 flags in %s, got %d", g.Name, len(g.Flags))
		}
		for _, f := range g.Flags {
			if f.Checked {
				t.Errorf("Expected %s/%s unchecked by default", g.Name, f.Label)
			}
		}
	}
}

func TestClauseGroupsYesNoMapping(t *testing.T) {
	a := &Analysis{
		Clauses: ClausePresence{
			Commercial: map[string]string{
				"Payment Terms": "Yes",
				"IP":            "No",
			},
			Legal: map[string]string{
				"Termination": "yes", // not an exact "Yes"
			},
		},
	}

	groups := a.ClauseGroups()

	commercial := groups[0].Flags
	if !commercial[0].Checked {
		t.Error("Expected Payment Terms checked")
	}
	if commercial[1].Label != "IP (Intellectual Property)" {
		t.Errorf("Unexpected IP label: %q", commercial[1].Label)
	}
	if commercial[1].Checked {
		t.Error("Expected IP unchecked")
	}

	legal := groups[1].Flags
	for _, f := range legal {
		if f.Checked {
			t.Errorf("Expected %s unchecked, only exact \"Yes\" counts", f.Label)
		}
	}
}

func TestAnalysisDecodesSchemaKeys(t *testing.T) {
	payload := `{
		"Contract Type": "NDA",
		"Contract Party": "Acme Corp and Globex Inc",
		"Executive Summary": "Mutual non-disclosure.",
		"Clauses Presence": {
			"Legal": {"Confidentiality": "Yes"}
		}
	}`

	var a Analysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		t.Fatalf("Failed to decode analysis: %v", err)
	}

	if a.ContractType != "NDA" {
		t.Errorf("Expected contract type NDA, got %q", a.ContractType)
	}
	if a.ContractParty != "Acme Corp and Globex Inc" {
		t.Errorf("Unexpected contract party: %q", a.ContractParty)
	}
	if a.Clauses.Legal["Confidentiality"] != "Yes" {
		t.Error("Expected Confidentiality flag to decode")
	}
	if a.Clauses.Commercial != nil {
		t.Error("Expected missing Commercial group to stay nil")
	}
	if a.Address != "" {
		t.Errorf("Expected missing Address to stay empty, got %q", a.Address)
	}
}
