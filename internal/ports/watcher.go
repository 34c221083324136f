package ports

import "shootlist/internal/domain"

// FolderWatcher defines the interface for observing the photo transfer
// directory. Events arrive on the returned channel from the watcher's
// background goroutine; consumers must never share session state with
// it directly.
type FolderWatcher interface {
	// Start begins monitoring dir and returns the event channel. Fires
	// once per newly created file matching the image-extension filter;
	// never for modifications or deletions. Returns
	// *application.WatchError when dir cannot be observed.
	Start(dir string) (<-chan domain.PhotoEvent, error)

	// Stop releases the OS watch handle and closes the event channel.
	// Safe to call more than once.
	Stop() error
}
