package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"shootlist/internal/application"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// PublishNameResult contains the published file name
type PublishNameResult struct {
	FileName string
	Message  string
}

// PublishNameCommand computes the target file name for a variation and
// puts it on the clipboard. The name is made unique against the watch
// directory so a retake never overwrites an earlier photo.
type PublishNameCommand struct {
	publisher ports.Publisher
	Variation domain.Variation
	WatchDir  string

	// exists overrides the file-existence probe in tests
	exists func(name string) bool
}

// NewPublishNameCommand creates a new PublishNameCommand
func NewPublishNameCommand(publisher ports.Publisher, v domain.Variation, watchDir string) *PublishNameCommand {
	return &PublishNameCommand{publisher: publisher, Variation: v, WatchDir: watchDir}
}

// Validate checks if the publish operation is valid
func (c *PublishNameCommand) Validate() error {
	if err := application.ValidateRequired("articleNo", c.Variation.Number); err != nil {
		return err
	}
	return application.ValidateRequired("watchDir", c.WatchDir)
}

// Execute runs the publish command
func (c *PublishNameCommand) Execute(ctx context.Context) (*PublishNameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	exists := c.exists
	if exists == nil {
		exists = func(name string) bool {
			_, err := os.Stat(filepath.Join(c.WatchDir, name))
			return err == nil
		}
	}

	name := domain.UniqueFileName(c.Variation.FileName(), exists)
	if err := c.publisher.Publish(name); err != nil {
		return nil, err
	}

	return &PublishNameResult{
		FileName: name,
		Message:  fmt.Sprintf("Copied %q to the clipboard", name),
	}, nil
}
