package ports

import "shootlist/internal/domain"

// CatalogLoader defines the interface for reading the article catalog
// from its source workbook
type CatalogLoader interface {
	// Load parses the workbook and returns the catalog in row order.
	// Returns *application.LoadError when the file is missing or the
	// required header row cannot be found.
	Load(path string) (*domain.Catalog, error)
}
