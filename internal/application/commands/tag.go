package commands

import (
	"context"
	"fmt"

	"shootlist/internal/application"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// TagPhotoResult contains the result of a metadata write
type TagPhotoResult struct {
	Message string
}

// TagPhotoCommand embeds a variation's IPTC fields into a photo file
type TagPhotoCommand struct {
	writer    ports.MetadataWriter
	FilePath  string
	Variation domain.Variation
}

// NewTagPhotoCommand creates a new TagPhotoCommand
func NewTagPhotoCommand(writer ports.MetadataWriter, filePath string, v domain.Variation) *TagPhotoCommand {
	return &TagPhotoCommand{writer: writer, FilePath: filePath, Variation: v}
}

// Validate checks if the tag operation is valid
func (c *TagPhotoCommand) Validate() error {
	if err := application.ValidateRequired("filePath", c.FilePath); err != nil {
		return err
	}
	return application.ValidateRequired("articleNo", c.Variation.Number)
}

// Execute runs the tag command
func (c *TagPhotoCommand) Execute(ctx context.Context) (*TagPhotoResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.writer.Write(ctx, c.FilePath, c.Variation.MetadataFields()); err != nil {
		// Attach the article number for operator context
		if metaErr, ok := err.(*application.MetadataError); ok && metaErr.ArticleNo == "" {
			metaErr.ArticleNo = c.Variation.Number
		}
		return nil, err
	}

	return &TagPhotoResult{
		Message: fmt.Sprintf("Tagged %s with article %s (%s)",
			c.FilePath, c.Variation.Number, c.Variation.PositionLabel()),
	}, nil
}
