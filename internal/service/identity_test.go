package service

import (
	"testing"
	"time"
)

func TestIdentityExtractor_CommonLayout(t *testing.T) {
	e := NewIdentityExtractor(newTestLogger())

	info := e.Extract("DUPONT JEAN 12345 some trailing noise")
	if info == nil {
		t.Fatal("expected a match")
	}
	if info.EmployeeID != "12345" {
		t.Errorf("employee id = %q, want %q", info.EmployeeID, "12345")
	}
	if info.LastName != "DUPONT" || info.FirstName != "JEAN" {
		t.Errorf("names = %q %q, want DUPONT JEAN", info.LastName, info.FirstName)
	}
	if info.Fallback {
		t.Error("matched identity should not be flagged as fallback")
	}
}

func TestIdentityExtractor_StripsLeadingZeros(t *testing.T) {
	e := NewIdentityExtractor(newTestLogger())

	tests := []struct {
		text string
		want string
	}{
		{"DUPONT JEAN 00423", "423"},
		{"5 MARTIN PAUL", "5"},
		{"DURAND MARIE 00005", "5"},
	}
	for _, tt := range tests {
		info := e.Extract(tt.text)
		if info == nil {
			t.Fatalf("Extract(%q) = nil, want match", tt.text)
		}
		if info.EmployeeID != tt.want {
			t.Errorf("Extract(%q).EmployeeID = %q, want %q", tt.text, info.EmployeeID, tt.want)
		}
	}
}

func TestIdentityExtractor_LowerCaseInput(t *testing.T) {
	e := NewIdentityExtractor(newTestLogger())

	info := e.Extract("dupont jean 00123")
	if info == nil {
		t.Fatal("expected a match on lower-case input")
	}
	if info.EmployeeID != "123" || info.LastName != "DUPONT" || info.FirstName != "JEAN" {
		t.Errorf("got %+v", info)
	}
}

func TestIdentityExtractor_NameWhitespaceCollapsed(t *testing.T) {
	e := NewIdentityExtractor(newTestLogger())

	info := e.Extract("DE LA TOUR MARIE 45678")
	if info == nil {
		t.Fatal("expected a match")
	}
	if info.LastName != "DE_LA_TOUR" {
		t.Errorf("last name = %q, want DE_LA_TOUR", info.LastName)
	}
	if info.FirstName != "MARIE" {
		t.Errorf("first name = %q, want MARIE", info.FirstName)
	}
}

func TestIdentityExtractor_PatternPriority(t *testing.T) {
	e := NewIdentityExtractor(newTestLogger())

	// Matches both the name-first layout (DURAND ALICE 6789) and the
	// ID-first layout (12345 DURAND ALICE). The name-first pattern has
	// higher priority, so its capture groups win.
	info := e.Extract("12345 DURAND ALICE 6789")
	if info == nil {
		t.Fatal("expected a match")
	}
	if info.EmployeeID != "6789" {
		t.Errorf("employee id = %q, want %q (higher-priority pattern)", info.EmployeeID, "6789")
	}
	if info.LastName != "DURAND" || info.FirstName != "ALICE" {
		t.Errorf("names = %q %q, want DURAND ALICE", info.LastName, info.FirstName)
	}
}

func TestIdentityExtractor_IDFirstLayout(t *testing.T) {
	e := NewIdentityExtractor(newTestLogger())

	// Only the ID-first pattern matches here; its reversed group order must
	// be honored.
	info := e.Extract("423 DUPONT JEAN")
	if info == nil {
		t.Fatal("expected a match")
	}
	if info.EmployeeID != "423" {
		t.Errorf("employee id = %q, want 423", info.EmployeeID)
	}
	if info.LastName != "DUPONT" || info.FirstName != "JEAN" {
		t.Errorf("names = %q %q, want DUPONT JEAN", info.LastName, info.FirstName)
	}
}

func TestIdentityExtractor_NoMatch(t *testing.T) {
	e := NewIdentityExtractor(newTestLogger())

	for _, text := range []string{"", "   ", "1234567890", "a b c"} {
		if info := e.Extract(text); info != nil {
			t.Errorf("Extract(%q) = %+v, want nil", text, info)
		}
	}
}

func TestFallbackIdentity_UniquePerPage(t *testing.T) {
	now := time.Date(2025, 9, 1, 14, 30, 45, 0, time.UTC)

	a := FallbackIdentity(1, now)
	b := FallbackIdentity(2, now)

	if a.EmployeeID == b.EmployeeID {
		t.Errorf("fallback ids for different pages must differ, both %q", a.EmployeeID)
	}
	if a.EmployeeID != "UNKNOWN_143045_001" {
		t.Errorf("employee id = %q, want UNKNOWN_143045_001", a.EmployeeID)
	}
	if a.LastName != "UNKNOWN_001" || a.FirstName != "UNKNOWN_001" {
		t.Errorf("names = %q %q, want UNKNOWN_001", a.LastName, a.FirstName)
	}
	if !a.Fallback {
		t.Error("fallback identity must be flagged")
	}
}
