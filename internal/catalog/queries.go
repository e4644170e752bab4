package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// DistinctAuthors returns the distinct author names of the given books,
// sorted lexicographically.
func DistinctAuthors(books []Book) []string {
	seen := make(map[string]bool, len(books))
	var authors []string
	for _, b := range books {
		if !seen[b.Author] {
			seen[b.Author] = true
			authors = append(authors, b.Author)
		}
	}
	sort.Strings(authors)
	return authors
}

// AuthorsAliveIn returns the distinct, sorted authors whose birth and
// death years both parse as integers and bracket the given year
// (inclusive on both ends). Records carrying placeholder year strings
// never match.
func AuthorsAliveIn(books []Book, year int) []string {
	var alive []Book
	for _, b := range books {
		birth, err := strconv.Atoi(b.BirthYear)
		if err != nil {
			continue
		}
		death, err := strconv.Atoi(b.DeathYear)
		if err != nil {
			continue
		}
		if birth <= year && year <= death {
			alive = append(alive, b)
		}
	}
	return DistinctAuthors(alive)
}

// FirstByAuthor returns the first book by the given author, used to
// show one representative record (dates, a title) per author.
func FirstByAuthor(books []Book, author string) (Book, bool) {
	for _, b := range books {
		if b.Author == author {
			return b, true
		}
	}
	return Book{}, false
}

// FilterByLanguage keeps books whose language field contains the given
// code, case-insensitively.
func FilterByLanguage(books []Book, language string) []Book {
	language = strings.ToLower(language)
	var matches []Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Language), language) {
			matches = append(matches, b)
		}
	}
	return matches
}
