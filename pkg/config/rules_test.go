package config

import (
	"os"
	"path/filepath"
	"testing"

	"wollokvalidate/pkg/validator"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("unexpected error writing config fixture: %v", err)
	}
	return path
}

func TestLoadParsesDisabledAndLevelOverrides(t *testing.T) {
	path := writeConfig(t, `
rules:
  onlyLastParameterIsVarArg:
    disabled: true
  nameIsPascalCase:
    level: error
`)
	overrides, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !overrides["onlyLastParameterIsVarArg"].Disabled {
		t.Fatalf("expected onlyLastParameterIsVarArg to be disabled")
	}
	if overrides["nameIsPascalCase"].Level != validator.Error {
		t.Fatalf("expected nameIsPascalCase to be re-leveled to error, got %q", overrides["nameIsPascalCase"].Level)
	}
}

func TestLoadLeavesLevelUnsetWhenOmitted(t *testing.T) {
	path := writeConfig(t, `
rules:
  hasCatchOrAlways:
    disabled: true
`)
	overrides, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overrides["hasCatchOrAlways"].Level != "" {
		t.Fatalf("expected an omitted level to stay empty, got %q", overrides["hasCatchOrAlways"].Level)
	}
}

func TestLoadRejectsUnsupportedLevel(t *testing.T) {
	path := writeConfig(t, `
rules:
  nameIsCamelCase:
    level: critical
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an unsupported level to fail validation")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
rules:
  nameIsCamelCase:
    severity: high
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an unknown field to fail strict decoding")
	}
}

func TestLoadEmptyFileYieldsNoOverrides(t *testing.T) {
	path := writeConfig(t, "")
	overrides, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error on an empty file: %v", err)
	}
	if len(overrides) != 0 {
		t.Fatalf("expected no overrides from an empty file, got %v", overrides)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
