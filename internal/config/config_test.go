package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	want := DefaultConfig()
	want.Nx = 64
	want.Ny = 32
	want.Nu = 0.02
	want.Scenario = "taylor-green-vortex"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", *got, *want)
	}
}

func TestLoadFillsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := writeFile(path, "nx: 16\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Nx != 16 {
		t.Errorf("Nx = %d, want 16", got.Nx)
	}
	if got.Ny != DefaultNy {
		t.Errorf("Ny = %d, want default %d", got.Ny, DefaultNy)
	}
	if got.ExportEvery != DefaultExportEvery {
		t.Errorf("ExportEvery = %d, want default %d", got.ExportEvery, DefaultExportEvery)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
