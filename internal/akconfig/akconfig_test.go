package akconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "ak.config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ModuleRoot != DefaultRoot {
		t.Errorf("ModuleRoot = %q, want %q", cfg.ModuleRoot, DefaultRoot)
	}
}

func TestLoadOverridesModuleRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ak.config.yaml")
	if err := os.WriteFile(path, []byte("module_root: vendor/ak_modules\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ModuleRoot != "vendor/ak_modules" {
		t.Errorf("ModuleRoot = %q, want vendor/ak_modules", cfg.ModuleRoot)
	}
}

func TestLoadEmptyModuleRootFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ak.config.yaml")
	if err := os.WriteFile(path, []byte("module_root: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ModuleRoot != DefaultRoot {
		t.Errorf("ModuleRoot = %q, want default %q", cfg.ModuleRoot, DefaultRoot)
	}
}

func TestLoadMalformedYamlErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ak.config.yaml")
	if err := os.WriteFile(path, []byte("module_root: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
