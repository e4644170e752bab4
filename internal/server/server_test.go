package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/libra/internal/catalog"
	"github.com/lepinkainen/libra/internal/datastore"
	"github.com/lepinkainen/libra/internal/gutendex"
)

func newTestServer(t *testing.T, remote http.HandlerFunc) *Server {
	t.Helper()

	upstream := httptest.NewServer(remote)
	t.Cleanup(upstream.Close)

	store := datastore.NewSQLiteStore(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, store.Connect())
	t.Cleanup(func() { _ = store.Close() })

	client := gutendex.NewClient(
		gutendex.WithBaseURL(upstream.URL),
		gutendex.WithHTTPClient(upstream.Client()),
	)
	return New(catalog.NewService(client, store), ":0")
}

func TestGetBooksFetchesWithoutTerm(t *testing.T) {
	var rawQuery string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"results":[{"title":"Dune","authors":[{"name":"Frank Herbert","birth_year":1920,"death_year":1986}],"download_count":500,"languages":["en"]}]}`))
	})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rawQuery)

	var books []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 1)

	// The wire shape of a book object.
	for _, key := range []string{"title", "author", "deathYear", "birthYear", "downloadCount", "language"} {
		assert.Contains(t, books[0], key)
	}
	assert.Equal(t, "Dune", books[0]["title"])
	assert.Equal(t, "1986", books[0]["deathYear"])
}

func TestGetBooksDelegatesSearchTerm(t *testing.T) {
	var rawQuery string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books?search=dune", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "search=dune", rawQuery)
}

func TestGetBooksFailureYieldsEmptyArray(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))

	// Upstream faults degrade to 200 with an empty list.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
