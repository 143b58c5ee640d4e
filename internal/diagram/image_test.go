package diagram

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExportDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "mccabe.png")
	if err := ExportDiagram(sampleData(), path); err != nil {
		t.Fatalf("ExportDiagram: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat exported file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported diagram is empty")
	}
}

func TestExportDiagramStripper(t *testing.T) {
	d := sampleData()
	d.IsStripper = true
	path := filepath.Join(t.TempDir(), "stripper.png")
	if err := ExportDiagram(d, path); err != nil {
		t.Fatalf("ExportDiagram: %v", err)
	}
}
