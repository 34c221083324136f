package ports

import "context"

// MetadataWriter defines the interface for embedding IPTC fields into a
// photo file via an external tool
type MetadataWriter interface {
	// Write applies fields to the file at path. Returns
	// *application.MetadataError when the tool is unavailable, the
	// invocation fails, or the file is not a supported image. On
	// failure the file keeps its pre-call metadata.
	Write(ctx context.Context, path string, fields map[string]string) error

	// Available reports whether the external tool can be invoked
	Available() bool
}
