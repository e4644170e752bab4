package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctAuthorsSorted(t *testing.T) {
	books := []Book{
		{Author: "Melville, Herman"},
		{Author: "Austen, Jane"},
		{Author: "Melville, Herman"},
		{Author: "Dickens, Charles"},
	}

	authors := DistinctAuthors(books)

	assert.Equal(t, []string{"Austen, Jane", "Dickens, Charles", "Melville, Herman"}, authors)
}

func TestAuthorsAliveInBoundaries(t *testing.T) {
	books := []Book{
		{Author: "Shelley, Mary", BirthYear: "1800", DeathYear: "1850"},
	}

	for _, year := range []int{1800, 1825, 1850} {
		assert.Equal(t, []string{"Shelley, Mary"}, AuthorsAliveIn(books, year), "year %d", year)
	}
	for _, year := range []int{1799, 1851} {
		assert.Empty(t, AuthorsAliveIn(books, year), "year %d", year)
	}
}

func TestAuthorsAliveInSkipsPlaceholderYears(t *testing.T) {
	books := []Book{
		{Author: "Unknown Dates", BirthYear: "1800", DeathYear: DeathYearUnavailable},
		{Author: "No Birth", BirthYear: BirthYearUnavailable, DeathYear: "1900"},
	}

	for _, year := range []int{1700, 1800, 1850, 1900, 2000} {
		assert.Empty(t, AuthorsAliveIn(books, year), "year %d", year)
	}
}

func TestAuthorsAliveInDistinctAndSorted(t *testing.T) {
	books := []Book{
		{Author: "B Author", BirthYear: "1900", DeathYear: "1980", Title: "Second"},
		{Author: "A Author", BirthYear: "1890", DeathYear: "1970", Title: "First"},
		{Author: "B Author", BirthYear: "1900", DeathYear: "1980", Title: "Third"},
	}

	assert.Equal(t, []string{"A Author", "B Author"}, AuthorsAliveIn(books, 1950))
}

func TestFirstByAuthor(t *testing.T) {
	books := []Book{
		{Author: "A Author", Title: "First"},
		{Author: "A Author", Title: "Second"},
	}

	book, ok := FirstByAuthor(books, "A Author")
	assert.True(t, ok)
	assert.Equal(t, "First", book.Title)

	_, ok = FirstByAuthor(books, "Nobody")
	assert.False(t, ok)
}

func TestFilterByLanguageCaseInsensitiveSubstring(t *testing.T) {
	books := []Book{
		{Title: "English Book", Language: "en"},
		{Title: "French Book", Language: "fr"},
	}

	assert.Len(t, FilterByLanguage(books, "EN"), 1)
	assert.Len(t, FilterByLanguage(books, "e"), 1)
	assert.Equal(t, "English Book", FilterByLanguage(books, "e")[0].Title)
	assert.Len(t, FilterByLanguage(books, "fr"), 1)
	assert.Empty(t, FilterByLanguage(books, "de"))
}
