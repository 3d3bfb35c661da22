package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"payslip-processor/internal/domain"
)

// PayslipFilename builds the canonical filename for a resolved page:
// {employeeId}_{lastName}_{firstName}_{monthAbbrev}{year}.pdf.
// Fallback identities flow through the same format.
func PayslipFilename(identity *domain.IdentityInfo, period domain.PeriodInfo) string {
	return fmt.Sprintf("%s_%s_%s_%s%s.pdf",
		identity.EmployeeID, identity.LastName, identity.FirstName,
		period.MonthAbbrev, period.Year)
}

// ResolveCollision returns filename unchanged when it is free in dir, else
// the first free variant with _1, _2, ... appended before the extension.
// Deterministic for a given directory state; it never overwrites.
func ResolveCollision(dir, filename string) string {
	if !exists(filepath.Join(dir, filename)) {
		return filename
	}
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
