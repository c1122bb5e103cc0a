package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLetterheadProvider(t *testing.T) {
	t.Run("reads the configured file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logo.png")
		want := []byte("\x89PNG fake payload")
		if err := os.WriteFile(path, want, 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		p := NewFileLetterheadProviderWithPath(path)
		got, err := p.Letterhead()
		if err != nil {
			t.Fatalf("Letterhead() error: %v", err)
		}
		if string(got) != string(want) {
			t.Fatalf("Letterhead() = %q, want %q", got, want)
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		p := NewFileLetterheadProviderWithPath(filepath.Join(t.TempDir(), "absent.png"))
		if _, err := p.Letterhead(); err == nil {
			t.Fatal("expected an error for a missing file")
		}
	})

	t.Run("empty file errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.png")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		p := NewFileLetterheadProviderWithPath(path)
		if _, err := p.Letterhead(); err == nil {
			t.Fatal("expected an error for an empty file")
		}
	})

	t.Run("env var overrides the default path", func(t *testing.T) {
		t.Setenv("LETTERHEAD_PATH", "/custom/logo.png")
		p := NewFileLetterheadProvider()
		if p.path != "/custom/logo.png" {
			t.Fatalf("path = %q, want /custom/logo.png", p.path)
		}
	})
}
