package service

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writePage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4 test page"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOrganizer_Place(t *testing.T) {
	o := NewOrganizer(newTestLogger())
	work := t.TempDir()
	staging := t.TempDir()

	page := writePage(t, work, "temp_page_001.pdf")
	finalPath, err := o.Place(page, staging, "123", "123_DUPONT_JEAN_SEP2025.pdf")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(staging, "123", "123_DUPONT_JEAN_SEP2025.pdf")
	if finalPath != want {
		t.Errorf("final path = %q, want %q", finalPath, want)
	}
	if _, err := os.Stat(finalPath); err != nil {
		t.Errorf("placed file missing: %v", err)
	}
	if _, err := os.Stat(page); !os.IsNotExist(err) {
		t.Error("source page file should have been moved away")
	}
}

func TestOrganizer_PlaceResolvesCollisions(t *testing.T) {
	o := NewOrganizer(newTestLogger())
	work := t.TempDir()
	staging := t.TempDir()

	first := writePage(t, work, "temp_page_001.pdf")
	second := writePage(t, work, "temp_page_002.pdf")

	if _, err := o.Place(first, staging, "123", "123_DUPONT_JEAN_SEP2025.pdf"); err != nil {
		t.Fatal(err)
	}
	finalPath, err := o.Place(second, staging, "123", "123_DUPONT_JEAN_SEP2025.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(finalPath) != "123_DUPONT_JEAN_SEP2025_1.pdf" {
		t.Errorf("second placement = %q, want suffixed name", filepath.Base(finalPath))
	}
}

func TestOrganizer_PublishAndListing(t *testing.T) {
	o := NewOrganizer(newTestLogger())
	work := t.TempDir()
	staging := filepath.Join(t.TempDir(), "final")
	outputRoot := t.TempDir()

	for i, tc := range []struct{ employee, name string }{
		{"123", "123_DUPONT_JEAN_SEP2025.pdf"},
		{"123", "123_DUPONT_JEAN_OCT2025.pdf"},
		{"456", "456_MARTIN_PAUL_SEP2025.pdf"},
	} {
		page := writePage(t, work, "p"+string(rune('a'+i))+".pdf")
		if _, err := o.Place(page, staging, tc.employee, tc.name); err != nil {
			t.Fatal(err)
		}
	}

	outputDir, err := o.Publish(staging, outputRoot, "task-1")
	if err != nil {
		t.Fatal(err)
	}
	if outputDir != filepath.Join(outputRoot, "processed_payslips_task-1") {
		t.Errorf("output dir = %q", outputDir)
	}

	structure, err := o.Listing(outputDir)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{
		"123": {"123_DUPONT_JEAN_OCT2025.pdf", "123_DUPONT_JEAN_SEP2025.pdf"},
		"456": {"456_MARTIN_PAUL_SEP2025.pdf"},
	}
	if !reflect.DeepEqual(structure, want) {
		t.Errorf("listing = %v, want %v", structure, want)
	}
}

func TestOrganizer_PublishMergesIntoExistingOutput(t *testing.T) {
	o := NewOrganizer(newTestLogger())
	outputRoot := t.TempDir()

	runOnce := func() {
		work := t.TempDir()
		staging := filepath.Join(t.TempDir(), "final")
		page := writePage(t, work, "temp_page_001.pdf")
		if _, err := o.Place(page, staging, "123", "123_DUPONT_JEAN_SEP2025.pdf"); err != nil {
			t.Fatal(err)
		}
		if _, err := o.Publish(staging, outputRoot, "task-1"); err != nil {
			t.Fatal(err)
		}
	}

	// A rerun against the same output root must not fail on the existing
	// directory and must suffix instead of overwrite.
	runOnce()
	runOnce()

	structure, err := o.Listing(filepath.Join(outputRoot, "processed_payslips_task-1"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"123_DUPONT_JEAN_SEP2025.pdf", "123_DUPONT_JEAN_SEP2025_1.pdf"}
	if !reflect.DeepEqual(structure["123"], want) {
		t.Errorf("files = %v, want %v", structure["123"], want)
	}
}
