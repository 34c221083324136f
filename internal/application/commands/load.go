package commands

import (
	"context"
	"fmt"

	"shootlist/internal/application"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// LoadCatalogResult contains the result of loading the catalog
type LoadCatalogResult struct {
	Catalog *domain.Catalog
	Message string
}

// LoadCatalogCommand loads the article catalog from a workbook
type LoadCatalogCommand struct {
	loader ports.CatalogLoader
	Path   string
}

// NewLoadCatalogCommand creates a new LoadCatalogCommand
func NewLoadCatalogCommand(loader ports.CatalogLoader, path string) *LoadCatalogCommand {
	return &LoadCatalogCommand{loader: loader, Path: path}
}

// Validate checks if the load operation is valid
func (c *LoadCatalogCommand) Validate() error {
	return application.ValidateRequired("workbookPath", c.Path)
}

// Execute runs the load catalog command
func (c *LoadCatalogCommand) Execute(ctx context.Context) (*LoadCatalogResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	catalog, err := c.loader.Load(c.Path)
	if err != nil {
		return nil, err
	}

	return &LoadCatalogResult{
		Catalog: catalog,
		Message: fmt.Sprintf("Loaded %d articles (%d variations) from %s",
			catalog.Articles(), catalog.Len(), c.Path),
	}, nil
}
