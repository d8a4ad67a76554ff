package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maya/wellspring/internal/catalog"
	"github.com/maya/wellspring/internal/schemas"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate external catalog files against their schemas",
	Long:  "Validate book and music catalog JSON files against the catalog schemas before using them as overlays.",
	RunE:  runValidateCatalog,
}

var (
	validateBooksFile string
	validateMusicFile string
)

func init() {
	validateCatalogCmd.Flags().StringVar(&validateBooksFile, "books", "", "Path to a book catalog JSON file")
	validateCatalogCmd.Flags().StringVar(&validateMusicFile, "music", "", "Path to a music catalog JSON file")
	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(_ *cobra.Command, _ []string) error {
	if validateBooksFile == "" && validateMusicFile == "" {
		return fmt.Errorf("must provide --books and/or --music")
	}

	if validateBooksFile != "" {
		if err := validateCatalogFile(validateBooksFile, catalog.BooksSchema); err != nil {
			return err
		}
		raw, err := os.ReadFile(validateBooksFile)
		if err != nil {
			return fmt.Errorf("failed to read book catalog: %w", err)
		}
		books, err := catalog.ParseBooks(string(raw))
		if err != nil {
			return fmt.Errorf("book catalog: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Book catalog OK: %d valid entries (%s)\n", len(books), validateBooksFile)
	}

	if validateMusicFile != "" {
		if err := validateCatalogFile(validateMusicFile, catalog.MusicSchema); err != nil {
			return err
		}
		raw, err := os.ReadFile(validateMusicFile)
		if err != nil {
			return fmt.Errorf("failed to read music catalog: %w", err)
		}
		tracks, err := catalog.ParseTracks(string(raw))
		if err != nil {
			return fmt.Errorf("music catalog: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Music catalog OK: %d valid entries (%s)\n", len(tracks), validateMusicFile)
	}

	return nil
}

// validateCatalogFile checks one file against a schema, printing per-field
// failures when the document does not conform.
func validateCatalogFile(path, schema string) error {
	err := schemas.ValidateJSONFile(schema, path)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(os.Stderr, "Validation failed for %s:\n", path)
		for _, fieldErr := range validationErr.Errors {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("catalog file does not validate against schema: %s", path)
	}

	var schemaLoadErr *schemas.SchemaLoadError
	if errors.As(err, &schemaLoadErr) {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	return err
}
