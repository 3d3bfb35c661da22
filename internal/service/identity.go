package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"payslip-processor/internal/domain"
)

// identityPattern pairs a compiled expression with its capture-group order.
// All patterns capture (lastName, firstName, id) except the ID-first layout,
// which is flagged with idFirst.
type identityPattern struct {
	re      *regexp.Regexp
	idFirst bool
}

// Ordered by priority: first match wins, no scoring across patterns.
// The common payslip layout (surname, given name, 4-5 digit ID) comes first,
// then noisier variants of the same layout, then the ID-before-names layout,
// and last a permissive 1-5 digit fallback.
var identityPatterns = []identityPattern{
	{re: regexp.MustCompile(`([A-Z][A-Z\s-]*[A-Z])\s+([A-Z][A-Z\s-]*[A-Z])\s+(\d{4,5})\b`)},
	{re: regexp.MustCompile(`([A-Z][A-Z\s-]*[A-Z])\s+([A-Z][A-Z\s-]*[A-Z]).*?(\d{4,5})\b`)},
	{re: regexp.MustCompile(`([A-Z]{2,})\s+([A-Z]{2,})\s+(\d{4,5})\b`)},
	{re: regexp.MustCompile(`(\d{1,5})\s+([A-Z][A-Z\s-]*[A-Z])\s+([A-Z][A-Z\s-]*[A-Z])\b`), idFirst: true},
	{re: regexp.MustCompile(`([A-Z][A-Z\s-]*[A-Z])\s+([A-Z][A-Z\s-]*[A-Z])\s+(\d{1,5})\b`)},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// IdentityExtractor parses acquired page text into an employee identity.
type IdentityExtractor struct {
	logger domain.Logger
}

// NewIdentityExtractor creates a new identity extractor
func NewIdentityExtractor(logger domain.Logger) *IdentityExtractor {
	return &IdentityExtractor{logger: logger}
}

// Extract tries the priority-ordered pattern list against the upper-cased
// text and returns the first match, or nil when nothing matched. A nil return
// is an expected outcome, not an error.
func (e *IdentityExtractor) Extract(text string) *domain.IdentityInfo {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	text = strings.ToUpper(text)

	for _, p := range identityPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		var id, lastName, firstName string
		if p.idFirst {
			id, lastName, firstName = m[1], m[2], m[3]
		} else {
			lastName, firstName, id = m[1], m[2], m[3]
		}

		// Parsing through int strips leading zeros ("00423" -> "423").
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			continue
		}

		return &domain.IdentityInfo{
			EmployeeID: strconv.Itoa(n),
			LastName:   normalizeName(lastName),
			FirstName:  normalizeName(firstName),
		}
	}
	return nil
}

// normalizeName upper-cases a captured name and collapses internal
// whitespace runs to single underscores.
func normalizeName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToUpper(strings.TrimSpace(name)), "_")
}

// FallbackIdentity synthesizes a task-unique identity for a page whose text
// yielded no match. The employee ID embeds the wall-clock time and the page
// ordinal, so no two pages of one task ever share a fallback identity.
func FallbackIdentity(pageOrdinal int, now time.Time) *domain.IdentityInfo {
	name := fmt.Sprintf("UNKNOWN_%03d", pageOrdinal)
	return &domain.IdentityInfo{
		EmployeeID: fmt.Sprintf("UNKNOWN_%s_%03d", now.Format("150405"), pageOrdinal),
		LastName:   name,
		FirstName:  name,
		Fallback:   true,
	}
}
