package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"payslip-processor/internal/domain"
)

// monthAbbrevs is the single table mapping month ordinals to the fixed
// 3-letter codes. monthNames below must resolve to the same codes.
var monthAbbrevs = [12]string{
	"JAN", "FEV", "MAR", "AVR", "MAI", "JUN",
	"JUL", "AOU", "SEP", "OCT", "NOV", "DEC",
}

// French month names, accented and unaccented (OCR often drops accents).
var monthNames = map[string]string{
	"JANVIER": "JAN", "FEVRIER": "FEV", "FÉVRIER": "FEV", "MARS": "MAR",
	"AVRIL": "AVR", "MAI": "MAI", "JUIN": "JUN", "JUILLET": "JUL",
	"AOUT": "AOU", "AOÛT": "AOU", "SEPTEMBRE": "SEP", "OCTOBRE": "OCT",
	"NOVEMBRE": "NOV", "DECEMBRE": "DEC", "DÉCEMBRE": "DEC",
}

// Date-range phrases like "Période du 01/09/25 au 30/09/25". The start
// date's month and year win.
var periodRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)P[ÉE]RIODE\s+DU\s+(\d{2})/(\d{2})/(\d{2,4})\s+AU\s+(\d{2})/(\d{2})/(\d{2,4})`),
	regexp.MustCompile(`(?i)DU\s+(\d{2})/(\d{2})/(\d{2,4})\s+AU\s+(\d{2})/(\d{2})/(\d{2,4})`),
	regexp.MustCompile(`(?i)(\d{2})/(\d{2})/(\d{2,4})\s+À\s+(\d{2})/(\d{2})/(\d{2,4})`),
}

var (
	monthNameRe = regexp.MustCompile(`(?i)(JANVIER|FÉVRIER|FEVRIER|MARS|AVRIL|MAI|JUIN|JUILLET|AOÛT|AOUT|SEPTEMBRE|OCTOBRE|NOVEMBRE|DÉCEMBRE|DECEMBRE)`)
	yearRe      = regexp.MustCompile(`(20\d{2})`)
)

// placeholderYear is used when a bare month name is found without any year.
const placeholderYear = "2025"

// PeriodExtractor parses the pay period out of acquired page text.
// Extract always returns a value; the chain ends at the wall clock.
type PeriodExtractor struct {
	now func() time.Time
}

// NewPeriodExtractor creates a new period extractor
func NewPeriodExtractor() *PeriodExtractor {
	return &PeriodExtractor{now: time.Now}
}

// Extract resolves the pay period with a fallback chain: explicit date range,
// then bare month name paired with any 20xx year, then the current date.
func (e *PeriodExtractor) Extract(text string) domain.PeriodInfo {
	for _, re := range periodRangePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		month, err := strconv.Atoi(m[2])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		return domain.PeriodInfo{MonthAbbrev: monthAbbrevs[month-1], Year: year}
	}

	if m := monthNameRe.FindStringSubmatch(text); m != nil {
		if code, ok := monthNames[strings.ToUpper(m[1])]; ok {
			year := placeholderYear
			if ym := yearRe.FindStringSubmatch(text); ym != nil {
				year = ym[1]
			}
			return domain.PeriodInfo{MonthAbbrev: code, Year: year}
		}
	}

	now := e.now()
	return domain.PeriodInfo{
		MonthAbbrev: monthAbbrevs[int(now.Month())-1],
		Year:        strconv.Itoa(now.Year()),
	}
}
