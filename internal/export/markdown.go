// Package export writes persisted books as markdown notes with YAML
// frontmatter.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/libra/internal/catalog"
)

// frontmatter is the YAML header of an exported note. Field order is
// the serialization order.
type frontmatter struct {
	Title     string   `yaml:"title"`
	Author    string   `yaml:"author"`
	BirthYear string   `yaml:"birth_year"`
	DeathYear string   `yaml:"death_year"`
	Downloads string   `yaml:"downloads"`
	Language  string   `yaml:"language"`
	Tags      []string `yaml:"tags"`
}

// WriteNotes writes one markdown note per book into outputDir. Existing
// notes are skipped unless overwrite is set. It returns the number of
// notes written.
func WriteNotes(books []catalog.Book, outputDir string, overwrite bool) (int, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := 0
	for _, book := range books {
		path := filepath.Join(outputDir, NoteFilename(book.Title))
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				slog.Debug("Note already exists, skipping", "path", path)
				continue
			}
		}

		content, err := RenderNote(book)
		if err != nil {
			return written, fmt.Errorf("failed to render note for %q: %w", book.Title, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write note %q: %w", path, err)
		}
		written++
	}
	return written, nil
}

// RenderNote renders one book as a markdown document with YAML
// frontmatter.
func RenderNote(book catalog.Book) (string, error) {
	fm := frontmatter{
		Title:     book.Title,
		Author:    book.Author,
		BirthYear: book.BirthYear,
		DeathYear: book.DeathYear,
		Downloads: book.DownloadCount,
		Language:  book.Language,
		Tags:      []string{"book", "gutendex"},
	}

	header, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(header)
	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "# %s\n\n", book.Title)
	fmt.Fprintf(&sb, "By %s.\n", book.Author)
	return sb.String(), nil
}

// NoteFilename derives a filesystem-safe note name from a book title.
func NoteFilename(title string) string {
	name := title
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, c, "-")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "untitled"
	}
	return name + ".md"
}
