package ports

import "os/exec"

// ViewerOpener defines the interface for opening a photo in an external
// image viewer
type ViewerOpener interface {
	// OpenFile opens the photo in the operator's preferred viewer.
	// It uses $VIEWER, falling back to the platform opener.
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening the photo. Useful for
	// integrating with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
