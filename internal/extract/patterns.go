package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldPattern recognizes one test family. Each pattern owns its unit and
// range syntax so new test types are added by registering a pattern, not by
// editing the scanner.
type FieldPattern struct {
	Name string // canonical test name stored on the row
	Unit string

	name *regexp.Regexp // matches the test-name line
	rng  *regexp.Regexp // matches the reference-range-with-unit line; captures (min, max)
}

// MatchName reports whether a trimmed line is this pattern's test name.
func (p FieldPattern) MatchName(line string) bool {
	return p.name.MatchString(line)
}

// MatchRange parses a trimmed reference-range line like "(540 - 1822 mg/dL)".
// Returns min, max as strings and ok.
func (p FieldPattern) MatchRange(line string) (string, string, bool) {
	m := p.rng.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

const numberPattern = `(\d+(?:\.\d+)?)`

// NewPattern builds a FieldPattern for a canonical name, its unit, and any
// aliases the name line may use.
func NewPattern(name, unit string, aliases ...string) FieldPattern {
	alts := make([]string, 0, len(aliases)+1)
	alts = append(alts, regexp.QuoteMeta(name))
	for _, a := range aliases {
		alts = append(alts, regexp.QuoteMeta(a))
	}
	nameRe := regexp.MustCompile(`(?i)^(?:` + strings.Join(alts, "|") + `)$`)
	rngRe := regexp.MustCompile(
		fmt.Sprintf(`^\(?\s*%s\s*[-–]\s*%s\s*%s\s*\)?$`,
			numberPattern, numberPattern, regexp.QuoteMeta(unit)))
	return FieldPattern{Name: name, Unit: unit, name: nameRe, rng: rngRe}
}

// valueLine matches a bare numeric literal on its own line.
var valueLine = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)

// DefaultRegistry returns the built-in pattern set. The slice is freshly
// allocated so callers may append their own patterns without affecting
// other parsers.
func DefaultRegistry() []FieldPattern {
	return []FieldPattern{
		// immunology
		NewPattern("IgG", "mg/dL"),
		NewPattern("IgA", "mg/dL"),
		NewPattern("IgM", "mg/dL"),
		NewPattern("CRP", "mg/L", "C-Reactive Protein"),

		// hormones
		NewPattern("Testosterone", "nmol/L", "Total Testosterone"),
		NewPattern("SHBG", "nmol/L", "Sex Hormone Binding Globulin"),
		NewPattern("Estradiol", "pg/mL", "E2"),
		NewPattern("TSH", "mIU/L", "Thyroid Stimulating Hormone"),
		NewPattern("Cortisol", "nmol/L"),
		NewPattern("Prolactin", "ng/mL"),

		// metabolic
		NewPattern("Glucose", "mg/dL", "Fasting Glucose"),
		NewPattern("Cholesterol", "mg/dL", "Total Cholesterol"),
		NewPattern("HDL", "mg/dL", "HDL Cholesterol"),
		NewPattern("LDL", "mg/dL", "LDL Cholesterol"),
		NewPattern("Triglycerides", "mg/dL"),
		NewPattern("Creatinine", "mg/dL"),

		// hematology
		NewPattern("Hemoglobin", "g/dL", "HGB"),
		NewPattern("Hematocrit", "%", "HCT"),
		NewPattern("WBC", "10^3/uL", "White Blood Cells"),
		NewPattern("RBC", "10^6/uL", "Red Blood Cells"),
		NewPattern("Platelets", "10^3/uL", "PLT"),
	}
}
