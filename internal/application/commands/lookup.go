package commands

import (
	"context"
	"fmt"

	"shootlist/internal/application"
	"shootlist/internal/domain"
)

// LookupArticleCommand finds all variations of one article by number
type LookupArticleCommand struct {
	catalog   *domain.Catalog
	ArticleNo string
}

// NewLookupArticleCommand creates a new LookupArticleCommand
func NewLookupArticleCommand(catalog *domain.Catalog, articleNo string) *LookupArticleCommand {
	return &LookupArticleCommand{catalog: catalog, ArticleNo: articleNo}
}

// Validate checks if the lookup is valid
func (c *LookupArticleCommand) Validate() error {
	return application.ValidateRequired("articleNo", c.ArticleNo)
}

// Execute runs the lookup command
func (c *LookupArticleCommand) Execute(ctx context.Context) ([]domain.Variation, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	variations := c.catalog.Lookup(c.ArticleNo)
	if len(variations) == 0 {
		return nil, fmt.Errorf("article %q: %w", c.ArticleNo, application.ErrArticleNotFound)
	}
	return variations, nil
}
