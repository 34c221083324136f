package commands

import (
	"context"

	"shootlist/internal/application"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// SessionHistoryCommand lists recent journaled sessions
type SessionHistoryCommand struct {
	journal ports.Journal
	Limit   int
}

// NewSessionHistoryCommand creates a new SessionHistoryCommand
func NewSessionHistoryCommand(journal ports.Journal, limit int) *SessionHistoryCommand {
	return &SessionHistoryCommand{journal: journal, Limit: limit}
}

// Execute runs the history command
func (c *SessionHistoryCommand) Execute(ctx context.Context) ([]domain.SessionRecord, error) {
	return c.journal.ListSessions(c.Limit)
}

// SessionPhotosCommand lists the tagged photos of one session
type SessionPhotosCommand struct {
	journal   ports.Journal
	SessionID string
}

// NewSessionPhotosCommand creates a new SessionPhotosCommand
func NewSessionPhotosCommand(journal ports.Journal, sessionID string) *SessionPhotosCommand {
	return &SessionPhotosCommand{journal: journal, SessionID: sessionID}
}

// Validate checks if the query is valid
func (c *SessionPhotosCommand) Validate() error {
	return application.ValidateRequired("sessionID", c.SessionID)
}

// Execute runs the photos command
func (c *SessionPhotosCommand) Execute(ctx context.Context) ([]domain.PhotoRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.journal.ListPhotos(c.SessionID)
}
