// Package extract converts raw report text into structured test rows. It is
// pure: no I/O, no shared state between parses.
package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/classify"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

// sectionHeader anchors the lower-confidence fallback scan used when the
// windowed scan recognizes nothing.
var sectionHeader = regexp.MustCompile(`(?i)\bREFERENCE\s+VALUES\b`)

var inlineNumbers = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Parser recognizes test rows from report text using a pattern registry.
type Parser struct {
	patterns []FieldPattern
	logger   *slog.Logger
	now      func() time.Time
}

func NewParser(logger *slog.Logger, patterns []FieldPattern) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if patterns == nil {
		patterns = DefaultRegistry()
	}
	return &Parser{patterns: patterns, logger: logger, now: time.Now}
}

// Parse extracts ordered rows, the report date, and a panel label from text.
// Zero recognized rows is not an error; callers get an empty row list.
func (p *Parser) Parse(text string) entity.Extraction {
	lines := splitLines(text)

	rows := p.windowScan(lines)
	if len(rows) == 0 {
		rows = p.sectionScan(lines)
	}
	if len(rows) == 0 {
		p.logger.Warn("extract.no_rows_recognized", "lines", len(lines))
	}

	reportDate, ok := ExtractReportDate(text)
	if !ok {
		reportDate = p.now().UTC().Truncate(24 * time.Hour)
		p.logger.Warn("extract.report_date_missing", "default", reportDate)
	}

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}

	return entity.Extraction{
		Rows:        rows,
		ReportDate:  reportDate,
		Panel:       constants.ClassifyPanel(names),
		DoctorNotes: ExtractDoctorNotes(text),
	}
}

// windowScan runs the primary 3-line sliding window: test name, then
// reference range with unit, then a bare numeric value. On a hit the window
// jumps past the consumed lines.
func (p *Parser) windowScan(lines []string) []entity.TestRow {
	var rows []entity.TestRow
	for i := 0; i+2 < len(lines); {
		row, ok := p.matchWindow(lines[i], lines[i+1], lines[i+2])
		if !ok {
			i++
			continue
		}
		row.ID = rowID(len(rows))
		rows = append(rows, row)
		i += 3
	}
	return rows
}

func (p *Parser) matchWindow(nameLine, rangeLine, valueLn string) (entity.TestRow, bool) {
	if !valueLine.MatchString(valueLn) {
		return entity.TestRow{}, false
	}
	for _, pat := range p.patterns {
		if !pat.MatchName(nameLine) {
			continue
		}
		minStr, maxStr, ok := pat.MatchRange(rangeLine)
		if !ok {
			continue
		}
		return p.buildRow(pat, valueLn, minStr, maxStr)
	}
	return entity.TestRow{}, false
}

// sectionScan is the fallback path: after a "REFERENCE VALUES" header, each
// line is matched inline (name followed by value, min, max on one line).
func (p *Parser) sectionScan(lines []string) []entity.TestRow {
	start := -1
	for i, l := range lines {
		if sectionHeader.MatchString(l) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var rows []entity.TestRow
	for _, line := range lines[start:] {
		for _, pat := range p.patterns {
			row, ok := p.matchInline(pat, line)
			if !ok {
				continue
			}
			row.ID = rowID(len(rows))
			rows = append(rows, row)
			break
		}
	}
	if len(rows) > 0 {
		p.logger.Debug("extract.section_fallback_used", "rows", len(rows))
	}
	return rows
}

func (p *Parser) matchInline(pat FieldPattern, line string) (entity.TestRow, bool) {
	prefix := strings.ToLower(pat.Name)
	if !strings.HasPrefix(strings.ToLower(line), prefix) {
		return entity.TestRow{}, false
	}
	nums := inlineNumbers.FindAllString(line[len(prefix):], -1)
	if len(nums) < 3 {
		return entity.TestRow{}, false
	}
	// inline order: value, then range bounds
	return p.buildRow(pat, nums[0], nums[1], nums[2])
}

func (p *Parser) buildRow(pat FieldPattern, valueStr, minStr, maxStr string) (entity.TestRow, bool) {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return entity.TestRow{}, false
	}
	refMin, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return entity.TestRow{}, false
	}
	refMax, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return entity.TestRow{}, false
	}
	if refMin > refMax {
		return entity.TestRow{}, false
	}
	return entity.TestRow{
		Name:   pat.Name,
		Value:  value,
		Unit:   pat.Unit,
		RefMin: refMin,
		RefMax: refMax,
		Status: classify.Classify(value, refMin, refMax),
	}, true
}

func rowID(index int) string {
	return fmt.Sprintf("row-%d", index+1)
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
