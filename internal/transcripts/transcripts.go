// Package transcripts loads transcript files from disk and derives display
// labels from their filenames.
package transcripts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"quorum/internal/reconcile"
)

// Load reads each path into a transcript labeled from its filename. Paths
// keep their given order.
func Load(paths []string) ([]reconcile.Transcript, error) {
	transcripts := make([]reconcile.Transcript, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read transcript %s: %w", path, err)
		}
		transcripts = append(transcripts, reconcile.Transcript{
			Label: LabelFromPath(path),
			Text:  string(data),
		})
	}
	return transcripts, nil
}

// LoadDir loads every .txt file in dir, sorted by filename.
func LoadDir(dir string) ([]reconcile.Transcript, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read transcript directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .txt transcripts in %s", dir)
	}
	return Load(paths)
}

// LabelFromPath turns a file path into a display label: the base name
// without extension, separators collapsed to spaces, title-cased. An
// unusable path yields "Unknown Source".
func LabelFromPath(path string) string {
	if path == "" {
		return "Unknown Source"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	label := strings.TrimSpace(cleaned.String())
	if label == "" {
		return "Unknown Source"
	}
	return cases.Title(language.Und).String(label)
}
