// Package catalog loads the embedded book and music datasets and exposes the
// per-mood scoring weight table.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/maya/wellspring/internal/schemas"
	"github.com/maya/wellspring/internal/types"
)

//go:embed data/books.json
var booksJSON string

//go:embed data/music.json
var musicJSON string

// BooksSchema is the JSON Schema for book catalog documents.
//
//go:embed schema/books.schema.json
var BooksSchema string

// MusicSchema is the JSON Schema for music catalog documents.
//
//go:embed schema/music.schema.json
var MusicSchema string

var validate = validator.New()

// Catalog holds the loaded datasets. It is a read-only input to the
// recommendation engine; nothing mutates it after Load.
type Catalog struct {
	Books []types.Book
	Music []types.Track
}

// Load parses and validates the embedded datasets. The document as a whole
// must match its JSON Schema; individual entries that fail range validation
// are dropped and logged rather than failing the load.
func Load() (*Catalog, error) {
	books, err := ParseBooks(booksJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded book catalog: %w", err)
	}

	music, err := ParseTracks(musicJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded music catalog: %w", err)
	}

	return &Catalog{Books: books, Music: music}, nil
}

// MustLoad is Load for initialization paths where the embedded data is the
// only input and a failure means a broken build.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded catalog: %v", err))
	}
	return c
}

// ParseBooks parses a book catalog document, validating it against
// BooksSchema and dropping entries whose emotional profile is out of range.
func ParseBooks(doc string) ([]types.Book, error) {
	if err := schemas.ValidateJSONString(BooksSchema, doc); err != nil {
		return nil, err
	}

	var raw []types.Book
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse book catalog: %w", err)
	}

	books := make([]types.Book, 0, len(raw))
	for _, b := range raw {
		if err := validate.Struct(b); err != nil {
			log.Printf("catalog: dropping book %q: %v", b.ID, err)
			continue
		}
		books = append(books, b)
	}
	return books, nil
}

// ParseTracks parses a music catalog document, validating it against
// MusicSchema and dropping entries whose profile or ratings are out of range.
func ParseTracks(doc string) ([]types.Track, error) {
	if err := schemas.ValidateJSONString(MusicSchema, doc); err != nil {
		return nil, err
	}

	var raw []types.Track
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse music catalog: %w", err)
	}

	tracks := make([]types.Track, 0, len(raw))
	for _, t := range raw {
		if err := validate.Struct(t); err != nil {
			log.Printf("catalog: dropping track %q: %v", t.ID, err)
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// MergeBooks appends extra books to the base list, skipping any whose ID is
// already present. Base entries always win.
func MergeBooks(base, extra []types.Book) []types.Book {
	seen := make(map[string]bool, len(base))
	merged := make([]types.Book, 0, len(base)+len(extra))
	for _, b := range base {
		seen[b.ID] = true
		merged = append(merged, b)
	}
	for _, b := range extra {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		merged = append(merged, b)
	}
	return merged
}

// MergeTracks appends extra tracks to the base list, skipping any whose ID is
// already present. Base entries always win, so externally sourced tracks can
// never shadow curated ones.
func MergeTracks(base, extra []types.Track) []types.Track {
	seen := make(map[string]bool, len(base))
	merged := make([]types.Track, 0, len(base)+len(extra))
	for _, t := range base {
		seen[t.ID] = true
		merged = append(merged, t)
	}
	for _, t := range extra {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		merged = append(merged, t)
	}
	return merged
}
