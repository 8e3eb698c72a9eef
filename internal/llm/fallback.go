package llm

import (
	"strings"

	"github.com/joseph-ayodele/labreports-tracker/constants"
)

// fallbackTemplates maps a test-name keyword to per-status note templates.
// Used when the generation service produced no usable note for a row. Keep
// every template a single sentence under 25 words.
var fallbackTemplates = map[string]map[constants.RowStatus]string{
	"igg": {
		constants.RowNormal:   "Your IgG antibody level sits comfortably within the reference range.",
		constants.RowLow:      "Your IgG antibody level is below the reference range; this is worth mentioning to your clinician.",
		constants.RowHigh:     "Your IgG antibody level is above the reference range; your clinician can help interpret this.",
		constants.RowCritical: "Your IgG antibody level is far outside the reference range; please discuss this result with your clinician promptly.",
	},
	"testosterone": {
		constants.RowNormal:   "Your testosterone level is within the expected reference range.",
		constants.RowLow:      "Your testosterone level is below the reference range; a clinician can advise on next steps.",
		constants.RowHigh:     "Your testosterone level is above the reference range; consider reviewing it with your clinician.",
		constants.RowCritical: "Your testosterone level is far outside the reference range; please review this result with your clinician promptly.",
	},
	"glucose": {
		constants.RowNormal:   "Your glucose level is within the healthy reference range.",
		constants.RowLow:      "Your glucose level is below the reference range; it may be worth discussing with your clinician.",
		constants.RowHigh:     "Your glucose level is above the reference range; your clinician can advise whether follow-up is needed.",
		constants.RowCritical: "Your glucose level is far outside the reference range; please contact your clinician promptly.",
	},
	"hemoglobin": {
		constants.RowNormal:   "Your hemoglobin level is within the reference range.",
		constants.RowLow:      "Your hemoglobin level is below the reference range; your clinician can help interpret this.",
		constants.RowHigh:     "Your hemoglobin level is above the reference range; consider reviewing it with your clinician.",
		constants.RowCritical: "Your hemoglobin level is far outside the reference range; please discuss it with your clinician promptly.",
	},
}

// genericTemplates covers unrecognized test names.
var genericTemplates = map[constants.RowStatus]string{
	constants.RowNormal:   "This value is within its reference range.",
	constants.RowLow:      "This value is below its reference range; it may be worth discussing with your clinician.",
	constants.RowHigh:     "This value is above its reference range; your clinician can help interpret it.",
	constants.RowCritical: "This value is far outside its reference range; please review it with your clinician promptly.",
}

// FallbackNote returns the deterministic templated note for a row.
func FallbackNote(testName string, status constants.RowStatus) string {
	lowered := strings.ToLower(testName)
	for keyword, byStatus := range fallbackTemplates {
		if strings.Contains(lowered, keyword) {
			if note, ok := byStatus[status]; ok {
				return note
			}
		}
	}
	if note, ok := genericTemplates[status]; ok {
		return note
	}
	return genericTemplates[constants.RowNormal]
}
