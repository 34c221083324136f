package viewer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"shootlist/internal/ports"
)

// Opener implements ports.ViewerOpener
type Opener struct{}

// Ensure Opener implements the port
var _ ports.ViewerOpener = (*Opener)(nil)

// NewOpener creates a new viewer opener
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens a photo in the operator's preferred image viewer
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a photo in the viewer
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	viewer := o.findViewer()
	if viewer == "" {
		return nil, fmt.Errorf("no image viewer found: set $VIEWER environment variable")
	}
	return exec.Command(viewer, path), nil
}

// findViewer returns the viewer to use
func (o *Opener) findViewer() string {
	// Check $VIEWER first
	if viewer := os.Getenv("VIEWER"); viewer != "" {
		return viewer
	}

	// Fall back to the platform opener
	candidates := []string{"xdg-open"}
	if runtime.GOOS == "darwin" {
		candidates = []string{"open"}
	}
	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}

	return ""
}
