package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lepinkainen/libra/internal/catalog"
)

// ParseChoice parses a menu selection. Anything that is not an integer
// between 0 and 5 is an error.
func ParseChoice(input string) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", input)
	}
	if choice < 0 || choice > 5 {
		return 0, fmt.Errorf("option %d out of range", choice)
	}
	return choice, nil
}

// ParseYear parses the year prompt input.
func ParseYear(input string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("not a year: %q", input)
	}
	return year, nil
}

// RenderBooks formats a list of books as display cards. The empty
// message is shown when there is nothing to list.
func RenderBooks(books []catalog.Book, empty string) string {
	if len(books) == 0 {
		return empty
	}

	var sb strings.Builder
	for i, b := range books {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Title: %s\n", b.Title)
		fmt.Fprintf(&sb, "Author: %s\n", b.Author)
		fmt.Fprintf(&sb, "Language: %s\n", b.Language)
		fmt.Fprintf(&sb, "Downloads: %s\n", b.DownloadCount)
	}
	return sb.String()
}

// RenderAuthors formats a plain list of author names.
func RenderAuthors(authors []string) string {
	if len(authors) == 0 {
		return "No authors registered yet."
	}
	return strings.Join(authors, "\n")
}

// RenderAuthorsAlive lists the authors alive in the given year, with
// one representative record per author for the dates and a title.
func RenderAuthorsAlive(books []catalog.Book, year int) string {
	authors := catalog.AuthorsAliveIn(books, year)
	if len(authors) == 0 {
		return fmt.Sprintf("No authors were alive in %d.", year)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Authors alive in %d:\n", year)
	for _, author := range authors {
		book, ok := catalog.FirstByAuthor(books, author)
		if !ok {
			continue
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Author: %s\n", author)
		fmt.Fprintf(&sb, "Born: %s\n", book.BirthYear)
		fmt.Fprintf(&sb, "Died: %s\n", book.DeathYear)
		fmt.Fprintf(&sb, "Known title: %s\n", book.Title)
	}
	return sb.String()
}

// RenderBooksByLanguage lists the stored books whose language matches
// the given code, case-insensitively.
func RenderBooksByLanguage(books []catalog.Book, language string) string {
	matches := catalog.FilterByLanguage(books, language)
	return RenderBooks(matches, fmt.Sprintf("No books found for language %q.", language))
}
