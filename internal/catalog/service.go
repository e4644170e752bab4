package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lepinkainen/libra/internal/gutendex"
)

// Store is the persistence surface the service needs. The SQLite
// implementation lives in internal/datastore.
type Store interface {
	// ExistsByTitle reports whether a book with exactly this title is
	// already persisted. The match is case-sensitive.
	ExistsByTitle(title string) (bool, error)

	// Save inserts a new book and assigns its ID. It performs no
	// duplicate check of its own; callers gate on ExistsByTitle first.
	Save(book *Book) error

	// FindAll returns every persisted book in storage order.
	FindAll() ([]Book, error)
}

// Service orchestrates fetch, normalize, dedupe-persist and the local
// queries. Fetch failures never propagate to the front ends: they are
// logged and turned into an empty result.
type Service struct {
	client *gutendex.Client
	store  Store
}

// NewService creates a catalog service over the given client and store.
func NewService(client *gutendex.Client, store Store) *Service {
	return &Service{client: client, store: store}
}

// FetchAll fetches the first catalog page, persists every new title and
// returns the full normalized list. Titles already in the store are
// still part of the returned list; the dedupe gates the write only.
func (s *Service) FetchAll(ctx context.Context) []Book {
	results, err := s.client.Books(ctx)
	if err != nil {
		slog.Error("Failed to fetch books from Gutendex", "error", err)
		return []Book{}
	}

	books := NormalizeAll(results)
	s.persist(books)
	return books
}

// Search fetches the first page of results for the term, persists every
// new title and returns the normalized list for that search only. A
// blank term behaves exactly like FetchAll.
func (s *Service) Search(ctx context.Context, term string) []Book {
	if strings.TrimSpace(term) == "" {
		return s.FetchAll(ctx)
	}

	results, err := s.client.Search(ctx, term)
	if err != nil {
		slog.Error("Failed to search books on Gutendex", "term", term, "error", err)
		return []Book{}
	}

	books := NormalizeAll(results)
	s.persist(books)
	return books
}

// ListPersisted returns every book in the local store, with no network
// call. Storage faults degrade to an empty list.
func (s *Service) ListPersisted() []Book {
	books, err := s.store.FindAll()
	if err != nil {
		slog.Error("Failed to list persisted books", "error", err)
		return []Book{}
	}
	return books
}

// persist saves each book whose title is not yet in the store. Failures
// are per-record: one bad record is logged and dropped, the rest of the
// batch continues.
func (s *Service) persist(books []Book) {
	for _, book := range books {
		exists, err := s.store.ExistsByTitle(book.Title)
		if err != nil {
			slog.Error("Failed to check for existing book", "title", book.Title, "error", err)
			continue
		}
		if exists {
			continue
		}

		if err := s.store.Save(&book); err != nil {
			slog.Error("Failed to save book", "title", book.Title, "error", err)
			continue
		}
		slog.Info("Book saved", "title", book.Title)
	}
}
