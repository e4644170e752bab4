// Package datastore implements the local SQLite book store.
package datastore

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lepinkainen/libra/internal/catalog"
)

// booksSchema keeps the legacy column names so databases written by the
// original catalog keep working.
const booksSchema = `CREATE TABLE IF NOT EXISTS libros (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	titulo TEXT,
	autor TEXT,
	fechaFallecimiento TEXT,
	fechaNacimiento TEXT,
	numeroDescargas TEXT,
	idioma TEXT
)`

// SQLiteStore implements catalog.Store on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLiteStore instance. Connect must be
// called before use.
func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{
		dbPath: dbPath,
	}
}

// Connect opens the database and ensures the books table exists.
func (s *SQLiteStore) Connect() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		return errors.Join(fmt.Errorf("failed to connect to database: %w", err), closeErr)
	}

	if _, err := db.Exec(booksSchema); err != nil {
		closeErr := db.Close()
		return errors.Join(fmt.Errorf("failed to create books table: %w", err), closeErr)
	}

	s.db = db
	return nil
}

// ExistsByTitle reports whether a book with exactly this title has been
// persisted. The comparison is case-sensitive.
func (s *SQLiteStore) ExistsByTitle(title string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM libros WHERE titulo = ?)", title,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check title existence: %w", err)
	}
	return exists, nil
}

// Save inserts a book and assigns the auto-increment id to book.ID.
// Insert-only: rows are never updated or deleted.
func (s *SQLiteStore) Save(book *catalog.Book) error {
	result, err := s.db.Exec(
		`INSERT INTO libros (titulo, autor, fechaFallecimiento, fechaNacimiento, numeroDescargas, idioma)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		book.Title, book.Author, book.DeathYear, book.BirthYear, book.DownloadCount, book.Language,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	book.ID = id
	return nil
}

// FindAll returns every persisted book ordered by id, which is
// insertion order in practice.
func (s *SQLiteStore) FindAll() ([]catalog.Book, error) {
	rows, err := s.db.Query(
		"SELECT id, titulo, autor, fechaFallecimiento, fechaNacimiento, numeroDescargas, idioma FROM libros ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var books []catalog.Book
	for rows.Next() {
		var b catalog.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.DeathYear, &b.BirthYear, &b.DownloadCount, &b.Language); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
