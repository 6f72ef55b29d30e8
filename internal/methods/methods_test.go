package methods

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmptyPathMeansNoCatalog(t *testing.T) {
	catalog, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if catalog != nil {
		t.Errorf("catalog = %+v, want nil", catalog)
	}
	// nil catalog permits everything
	if !catalog.Contains("anything") {
		t.Error("nil catalog rejected a method")
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "methods.yaml")
	content := []byte(`methods:
  - name: chlorine
    label: Chlorine solution
  - name: steam
    label: Steam cleaning
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writefile: %v", err)
	}

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(catalog.Methods) != 2 {
		t.Fatalf("len(methods) = %d, want 2", len(catalog.Methods))
	}

	if !catalog.Contains("chlorine") || !catalog.Contains("steam") {
		t.Error("catalog missing declared methods")
	}
	if catalog.Contains("bleach") {
		t.Error("catalog accepted an undeclared method")
	}
}

func TestLoad_RejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "methods.yaml")
	if err := os.WriteFile(path, []byte("methods: []\n"), 0644); err != nil {
		t.Fatalf("writefile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for a catalog listing no methods")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
