package transcripts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLabelFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"simple", "/tmp/tesseract.txt", "Tesseract"},
		{"underscores", "ocr_engine_output.txt", "Ocr Engine Output"},
		{"hyphens and dots", "/data/easy-ocr.v2.txt", "Easy Ocr V2"},
		{"empty", "", "Unknown Source"},
		{"punctuation only", "___.txt", "Unknown Source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelFromPath(tt.path); got != tt.want {
				t.Errorf("LabelFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine-one.txt")
	if err := os.WriteFile(path, []byte("This is a test."), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load([]string{path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 transcript, got %d", len(loaded))
	}
	if loaded[0].Label != "Engine One" {
		t.Errorf("Label = %q, want %q", loaded[0].Label, "Engine One")
	}
	if loaded[0].Text != "This is a test." {
		t.Errorf("Text = %q", loaded[0].Text)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load([]string{filepath.Join(t.TempDir(), "absent.txt")}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b-second.txt": "second",
		"a-first.txt":  "first",
		"ignored.md":   "not a transcript",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 transcripts, got %d", len(loaded))
	}
	if loaded[0].Text != "first" || loaded[1].Text != "second" {
		t.Errorf("unexpected order: %q then %q", loaded[0].Text, loaded[1].Text)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Fatal("expected error for directory without transcripts")
	}
}
