package domain

import "time"

// SessionRecord is one journaled shooting session
type SessionRecord struct {
	ID           string // uuid
	StartedAt    time.Time
	FinishedAt   time.Time // zero while the session is still open
	WorkbookPath string
	WatchDir     string
	Photos       int // tagged photos in this session
}

// PhotoRecord is one tagged photo within a session
type PhotoRecord struct {
	SessionID string
	ArticleNo string
	Position  string
	FilePath  string
	TaggedAt  time.Time
}
