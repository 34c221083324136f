package exiftool

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"shootlist/internal/application"
	"shootlist/internal/ports"
)

// Writer implements ports.MetadataWriter by shelling out to exiftool.
// A single invocation is atomic from our point of view: on failure the
// target file keeps its previous metadata.
type Writer struct {
	binary string
}

// Ensure Writer implements the port
var _ ports.MetadataWriter = (*Writer)(nil)

// NewWriter creates a metadata writer invoking the given binary
// ("exiftool" unless configured otherwise)
func NewWriter(binary string) *Writer {
	if binary == "" {
		binary = "exiftool"
	}
	return &Writer{binary: binary}
}

// Available reports whether the exiftool binary can be invoked
func (w *Writer) Available() bool {
	_, err := exec.LookPath(w.binary)
	return err == nil
}

// Write applies the fields to the file at path. Field keys are full tag
// names (e.g. "IPTC:ObjectName"); values are written verbatim.
func (w *Writer) Write(ctx context.Context, path string, fields map[string]string) error {
	if !w.Available() {
		return &application.MetadataError{
			Path:   path,
			Reason: fmt.Sprintf("binary %q not found", w.binary),
			Err:    application.ErrToolUnavailable,
		}
	}
	if _, err := os.Stat(path); err != nil {
		return &application.MetadataError{Path: path, Reason: "file not found", Err: err}
	}

	// -overwrite_original keeps the tether folder free of _original
	// backup copies
	args := []string{"-overwrite_original"}
	for _, tag := range sortedTags(fields) {
		args = append(args, fmt.Sprintf("-%s=%s", tag, fields[tag]))
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, w.binary, args...)
	if output, err := cmd.Output(); err != nil {
		reason := strings.TrimSpace(string(output))
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			reason = strings.TrimSpace(string(exitErr.Stderr))
		}
		if reason == "" {
			reason = err.Error()
		}
		return &application.MetadataError{Path: path, Reason: reason, Err: err}
	}
	return nil
}

func sortedTags(fields map[string]string) []string {
	tags := make([]string, 0, len(fields))
	for tag := range fields {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
