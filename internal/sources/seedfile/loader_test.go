package seedfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := writeSeed(t, `
dev:
  - title: Go Blog
    url: https://go.dev/blog
  - title: Go Spec
    url: https://go.dev/ref/spec
cooking:
  - title: Recipe Box
    url: https://example.com/recipes
`)

	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg) != 2 {
		t.Fatalf("got %d categories, want 2", len(cfg))
	}
	if len(cfg["dev"]) != 2 {
		t.Errorf("dev has %d entries, want 2", len(cfg["dev"]))
	}
	if cfg["cooking"][0].Title != "Recipe Box" {
		t.Errorf("cooking[0].Title = %q, want Recipe Box", cfg["cooking"][0].Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "absent.yml")).Load(); err == nil {
		t.Fatal("Load() on a missing file should fail")
	}
}

func TestLoadMalformedYaml(t *testing.T) {
	path := writeSeed(t, "dev: [title: broken")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Fatal("Load() on malformed yaml should fail")
	}
}
