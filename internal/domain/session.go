package domain

import (
	"fmt"
	"time"
)

// Phase is the session state machine position
type Phase int

const (
	PhaseAwaitingArticle Phase = iota
	PhaseArticleReady
	PhaseAwaitingPhoto
	PhasePhotoDetected
	PhaseMetadataApplied
	PhaseExhausted
)

// String returns the phase name for console output
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingArticle:
		return "awaiting article"
	case PhaseArticleReady:
		return "article ready"
	case PhaseAwaitingPhoto:
		return "awaiting photo"
	case PhasePhotoDetected:
		return "photo detected"
	case PhaseMetadataApplied:
		return "metadata applied"
	case PhaseExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PhotoEvent is the watcher's notification of a newly created file
type PhotoEvent struct {
	Path       string
	DetectedAt time.Time
}

// Session is the mutable state of one shooting session. It is owned and
// mutated by the session controller only; the watcher hands events over
// on a channel instead of touching it.
type Session struct {
	Phase     Phase
	WatchDir  string
	Current   Variation // valid only between ArticleReady and MetadataApplied
	Expecting string    // published file name the controller waits for
	Processed int       // photos tagged so far
	LastFile  string    // most recently tagged file
	LastError string    // most recent component failure, empty when none
}

// NewSession returns a session in the initial phase
func NewSession(watchDir string) *Session {
	return &Session{Phase: PhaseAwaitingArticle, WatchDir: watchDir}
}

func (s *Session) transition(from, to Phase) error {
	if s.Phase != from {
		return fmt.Errorf("cannot enter %q from %q", to, s.Phase)
	}
	s.Phase = to
	return nil
}

// ArticleReady records the next variation to shoot
func (s *Session) ArticleReady(v Variation) error {
	if err := s.transition(PhaseAwaitingArticle, PhaseArticleReady); err != nil {
		return err
	}
	s.Current = v
	s.Expecting = ""
	return nil
}

// NamePublished records that fileName is on the clipboard and the
// session now waits for that file to land in the watch dir
func (s *Session) NamePublished(fileName string) error {
	if err := s.transition(PhaseArticleReady, PhaseAwaitingPhoto); err != nil {
		return err
	}
	s.Expecting = fileName
	return nil
}

// PhotoDetected records that the expected photo arrived
func (s *Session) PhotoDetected() error {
	return s.transition(PhaseAwaitingPhoto, PhasePhotoDetected)
}

// MetadataApplied records a successful metadata write and loops the
// machine back to AwaitingArticle for the next variation
func (s *Session) MetadataApplied(filePath string) error {
	if err := s.transition(PhasePhotoDetected, PhaseMetadataApplied); err != nil {
		return err
	}
	s.Processed++
	s.LastFile = filePath
	s.LastError = ""
	s.Phase = PhaseAwaitingArticle
	return nil
}

// Exhaust marks the catalog as fully worked through. Only reachable
// between articles.
func (s *Session) Exhaust() error {
	return s.transition(PhaseAwaitingArticle, PhaseExhausted)
}

// Fail records a component failure without leaving the current phase,
// so the operator can retry the same transition
func (s *Session) Fail(err error) {
	s.LastError = err.Error()
}

// Skip abandons the current variation and returns the machine to
// AwaitingArticle without counting a photo. No-op once exhausted.
func (s *Session) Skip() {
	if s.Phase == PhaseExhausted {
		return
	}
	s.Phase = PhaseAwaitingArticle
	s.Expecting = ""
	s.LastError = ""
}
