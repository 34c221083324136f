package clipboard

import (
	"github.com/atotto/clipboard"

	"shootlist/internal/application"
	"shootlist/internal/ports"
)

// Publisher implements ports.Publisher over the system clipboard
type Publisher struct{}

// Ensure Publisher implements the port
var _ ports.Publisher = (*Publisher)(nil)

// NewPublisher creates a clipboard publisher
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish replaces the clipboard content with text
func (p *Publisher) Publish(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return &application.ClipboardError{Err: err}
	}
	return nil
}

// Available reports whether the platform clipboard can be used
func (p *Publisher) Available() bool {
	return !clipboard.Unsupported
}
