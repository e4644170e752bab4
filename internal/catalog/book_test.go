package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lepinkainen/libra/internal/gutendex"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestNormalizeCompleteRecord(t *testing.T) {
	result := gutendex.BookResult{
		Title: strPtr("Dune"),
		Authors: []gutendex.Author{
			{Name: "Frank Herbert", BirthYear: intPtr(1920), DeathYear: intPtr(1986)},
		},
		DownloadCount: intPtr(500),
		Languages:     []string{"en"},
	}

	book := Normalize(result)

	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Equal(t, "1920", book.BirthYear)
	assert.Equal(t, "1986", book.DeathYear)
	assert.Equal(t, "500", book.DownloadCount)
	assert.Equal(t, "en", book.Language)
}

func TestNormalizeMissingFields(t *testing.T) {
	result := gutendex.BookResult{
		Title:   strPtr("Mystery"),
		Authors: []gutendex.Author{},
	}

	book := Normalize(result)

	assert.Equal(t, "Mystery", book.Title)
	assert.Equal(t, UnknownAuthor, book.Author)
	assert.Equal(t, BirthYearUnavailable, book.BirthYear)
	assert.Equal(t, DeathYearUnavailable, book.DeathYear)
	assert.Equal(t, "0", book.DownloadCount)
	assert.Equal(t, "en", book.Language)
}

func TestNormalizeEmptyRecord(t *testing.T) {
	book := Normalize(gutendex.BookResult{})

	assert.Equal(t, UnknownTitle, book.Title)
	assert.Equal(t, UnknownAuthor, book.Author)
	assert.Equal(t, BirthYearUnavailable, book.BirthYear)
	assert.Equal(t, DeathYearUnavailable, book.DeathYear)
	assert.Equal(t, "0", book.DownloadCount)
	assert.Equal(t, "en", book.Language)

	// No field may stay empty; placeholders cover every gap.
	for _, field := range []string{book.Title, book.Author, book.BirthYear, book.DeathYear, book.DownloadCount, book.Language} {
		assert.NotEmpty(t, field)
	}
}

func TestNormalizeUsesFirstAuthorAndLanguage(t *testing.T) {
	result := gutendex.BookResult{
		Title: strPtr("Collected Works"),
		Authors: []gutendex.Author{
			{Name: "First Author", BirthYear: intPtr(1800)},
			{Name: "Second Author", BirthYear: intPtr(1900), DeathYear: intPtr(1990)},
		},
		Languages: []string{"fi", "sv"},
	}

	book := Normalize(result)

	assert.Equal(t, "First Author", book.Author)
	assert.Equal(t, "1800", book.BirthYear)
	assert.Equal(t, DeathYearUnavailable, book.DeathYear)
	assert.Equal(t, "fi", book.Language)
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	results := []gutendex.BookResult{
		{Title: strPtr("B")},
		{Title: strPtr("A")},
	}

	books := NormalizeAll(results)

	assert.Len(t, books, 2)
	assert.Equal(t, "B", books[0].Title)
	assert.Equal(t, "A", books[1].Title)
}
