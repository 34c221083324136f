package ports

// Publisher defines the interface for putting a computed file name on
// the system clipboard
type Publisher interface {
	// Publish replaces the clipboard content with text. Idempotent:
	// publishing the same text twice is observably the same as once.
	// Returns *application.ClipboardError when the platform clipboard
	// is unavailable.
	Publish(text string) error
}
