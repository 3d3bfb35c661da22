package domain

// TextSource identifies how the text for a page was obtained.
type TextSource string

const (
	SourceNative TextSource = "native"
	SourceOCR    TextSource = "ocr"
	SourceNone   TextSource = "none"
)

// AcquiredText is the best-effort text for a single page. When no extraction
// strategy produced anything, RawText is empty and Source is SourceNone.
type AcquiredText struct {
	RawText string
	Source  TextSource
}

// PageUnit is one page of the source document, extracted as an independent
// single-page PDF on disk. Index is 1-based and follows source order.
type PageUnit struct {
	Index int
	Path  string
}

// IdentityInfo is the employee identity resolved for a payslip page.
// EmployeeID is numeric with leading zeros stripped; names are upper-cased
// with internal whitespace collapsed to underscores. Fallback is set on
// synthesized identities for pages where no pattern matched.
type IdentityInfo struct {
	EmployeeID string `json:"employee_id"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Fallback   bool   `json:"fallback,omitempty"`
}

// PeriodInfo is the pay period a payslip page covers. MonthAbbrev is always
// one of the 12 fixed 3-letter codes; Year is a 4-digit string.
type PeriodInfo struct {
	MonthAbbrev string `json:"month"`
	Year        string `json:"year"`
}
