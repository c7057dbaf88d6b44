package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestExport verifies the report lands on disk in the requested format.
func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")

	if err := fixtureReport().Export(path, FormatJSON); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `"manylinux_2_35_x86_64"`) {
		t.Errorf("exported report missing tags: %s", data)
	}
}

// TestExportBadFormat verifies nothing is written when rendering fails.
func TestExportBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xml")

	if err := fixtureReport().Export(path, "xml"); err == nil {
		t.Fatal("Export() with unknown format should error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should exist after failed export")
	}
}
