package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrExhausted       = errors.New("catalog exhausted")
	ErrArticleNotFound = errors.New("article not found")
	ErrToolUnavailable = errors.New("external tool unavailable")
)

// LoadError represents a catalog load failure (missing workbook,
// unreadable sheet, absent header row). Fatal at startup.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load catalog %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ClipboardError represents a platform clipboard failure. Retryable.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard unavailable: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

// WatchError represents a failure to observe the watch directory.
// Fatal at startup.
type WatchError struct {
	Dir string
	Err error
}

func (e *WatchError) Error() string {
	return fmt.Sprintf("cannot watch %s: %v", e.Dir, e.Err)
}

func (e *WatchError) Unwrap() error { return e.Err }

// MetadataError represents an exiftool failure for one photo. Retryable;
// the target file keeps its pre-call metadata.
type MetadataError struct {
	Path      string
	ArticleNo string
	Reason    string
	Err       error
}

func (e *MetadataError) Error() string {
	if e.ArticleNo != "" {
		return fmt.Sprintf("cannot tag %s (article %s): %s", e.Path, e.ArticleNo, e.Reason)
	}
	return fmt.Sprintf("cannot tag %s: %s", e.Path, e.Reason)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
