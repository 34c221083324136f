package ports

import "shootlist/internal/domain"

// Journal provides persistent session history. Append-only: sessions
// are opened, photos recorded, sessions closed; nothing is rewritten.
type Journal interface {
	// Lifecycle
	Open(path string) error
	Close() error

	// BeginSession opens a session row and returns its ID
	BeginSession(workbookPath, watchDir string) (string, error)

	// RecordPhoto appends a tagged photo to a session
	RecordPhoto(sessionID string, v domain.Variation, filePath string) error

	// EndSession stamps the session as finished
	EndSession(sessionID string) error

	// Queries
	ListSessions(limit int) ([]domain.SessionRecord, error)
	ListPhotos(sessionID string) ([]domain.PhotoRecord, error)
}
