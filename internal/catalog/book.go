// Package catalog holds the normalized book record, the placeholder
// normalizer and the fetch/persist/query service built on top of the
// Gutendex client and the local store.
package catalog

import (
	"strconv"

	"github.com/lepinkainen/libra/internal/gutendex"
)

// Placeholder values substituted for missing remote fields. These are
// the exact strings the legacy catalog stored, so existing databases
// keep matching.
const (
	UnknownTitle         = "Título desconocido"
	UnknownAuthor        = "Autor desconocido"
	BirthYearUnavailable = "Fecha de nacimiento no disponible"
	DeathYearUnavailable = "Fecha de fallecimiento no disponible"
)

// Book is the locally persisted, normalized representation of a book.
// Year and download fields are text on purpose: placeholder strings and
// numeric years share the same column.
type Book struct {
	ID            int64  `json:"-"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	DeathYear     string `json:"deathYear"`
	BirthYear     string `json:"birthYear"`
	DownloadCount string `json:"downloadCount"`
	Language      string `json:"language"`
}

// Normalize maps a raw API record into a Book. It never fails: every
// missing field resolves to its placeholder, so even an empty input
// produces a complete record.
func Normalize(r gutendex.BookResult) Book {
	return Book{
		Title:         normalizeTitle(r.Title),
		Author:        normalizeAuthor(r.Authors),
		BirthYear:     normalizeYear(firstBirthYear(r.Authors), BirthYearUnavailable),
		DeathYear:     normalizeYear(firstDeathYear(r.Authors), DeathYearUnavailable),
		DownloadCount: normalizeDownloads(r.DownloadCount),
		Language:      normalizeLanguage(r.Languages),
	}
}

// NormalizeAll maps every API record in order.
func NormalizeAll(results []gutendex.BookResult) []Book {
	books := make([]Book, 0, len(results))
	for _, r := range results {
		books = append(books, Normalize(r))
	}
	return books
}

func normalizeTitle(title *string) string {
	if title == nil {
		return UnknownTitle
	}
	return *title
}

func normalizeAuthor(authors []gutendex.Author) string {
	if len(authors) == 0 {
		return UnknownAuthor
	}
	return authors[0].Name
}

func firstBirthYear(authors []gutendex.Author) *int {
	if len(authors) == 0 {
		return nil
	}
	return authors[0].BirthYear
}

func firstDeathYear(authors []gutendex.Author) *int {
	if len(authors) == 0 {
		return nil
	}
	return authors[0].DeathYear
}

func normalizeYear(year *int, placeholder string) string {
	if year == nil {
		return placeholder
	}
	return strconv.Itoa(*year)
}

func normalizeDownloads(count *int) string {
	if count == nil {
		return "0"
	}
	return strconv.Itoa(*count)
}

func normalizeLanguage(languages []string) string {
	if len(languages) == 0 {
		return "en"
	}
	return languages[0]
}
