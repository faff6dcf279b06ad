package main

import (
	"path/filepath"
	"testing"
)

// TestBuildEngineDefaults tests that buildEngine works with no config files
func TestBuildEngineDefaults(t *testing.T) {
	engine, err := buildEngine("", "")
	if err != nil {
		t.Fatalf("buildEngine failed: %v", err)
	}
	if engine == nil {
		t.Fatal("Expected non-nil engine")
	}
}

// TestBuildEngineWithConfig tests that buildEngine loads YAML overrides
func TestBuildEngineWithConfig(t *testing.T) {
	lexicon := "../../pkg/menuscan/config/testdata/lexicon.yaml"
	filter := "../../pkg/menuscan/config/testdata/filter.yaml"

	engine, err := buildEngine(lexicon, filter)
	if err != nil {
		t.Fatalf("buildEngine failed: %v", err)
	}
	if engine == nil {
		t.Fatal("Expected non-nil engine")
	}
}

// TestBuildEngineMissingLexicon tests that buildEngine fails on a bad path
func TestBuildEngineMissingLexicon(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent.yaml")
	if _, err := buildEngine(missing, ""); err == nil {
		t.Error("buildEngine should fail with non-existent lexicon")
	}
}
