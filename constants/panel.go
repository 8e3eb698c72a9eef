package constants

import "strings"

// Panel is the classified grouping of a report's recognized tests.
type Panel string

const (
	PanelHormone    Panel = "HORMONE"
	PanelMetabolic  Panel = "METABOLIC"
	PanelHematology Panel = "HEMATOLOGY"
	PanelImmunology Panel = "IMMUNOLOGY"
	PanelGeneral    Panel = "GENERAL"
)

// Panels holds the allowed values for the panel_type field in LabResult.
var Panels = []string{
	string(PanelHormone),
	string(PanelMetabolic),
	string(PanelHematology),
	string(PanelImmunology),
	string(PanelGeneral),
}

// panelKeywords maps a family to the test-name keywords that place a report
// in that family. Checked in panelPriority order; first family with a hit
// wins.
var panelKeywords = map[Panel][]string{
	PanelHormone:    {"testosterone", "estradiol", "shbg", "tsh", "cortisol", "prolactin", "fsh", "lh"},
	PanelMetabolic:  {"glucose", "cholesterol", "hdl", "ldl", "triglycerides", "creatinine", "urea", "alt", "ast"},
	PanelHematology: {"hemoglobin", "hematocrit", "wbc", "rbc", "platelets", "mcv", "mch"},
	PanelImmunology: {"igg", "iga", "igm", "ige", "crp", "ana"},
}

var panelPriority = []Panel{PanelHormone, PanelMetabolic, PanelHematology, PanelImmunology}

// ClassifyPanel inspects recognized test names and returns the first family
// (in priority order) with a keyword hit, or PanelGeneral.
func ClassifyPanel(testNames []string) Panel {
	lowered := make([]string, len(testNames))
	for i, n := range testNames {
		lowered[i] = strings.ToLower(strings.TrimSpace(n))
	}
	for _, p := range panelPriority {
		for _, kw := range panelKeywords[p] {
			for _, n := range lowered {
				if strings.Contains(n, kw) {
					return p
				}
			}
		}
	}
	return PanelGeneral
}
