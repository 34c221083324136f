package domain

import (
	"errors"
	"testing"
)

func TestSession_FullCycle(t *testing.T) {
	s := NewSession("/tmp/photos")
	v := Variation{Article: Article{Number: "A100", ColorCode: "410", Description: "Jacke"}, Position: PositionFront}

	if err := s.ArticleReady(v); err != nil {
		t.Fatalf("ArticleReady: %v", err)
	}
	if s.Phase != PhaseArticleReady {
		t.Fatalf("phase = %v", s.Phase)
	}

	if err := s.NamePublished("A100-v-410-Jacke.jpg"); err != nil {
		t.Fatalf("NamePublished: %v", err)
	}
	if s.Expecting != "A100-v-410-Jacke.jpg" {
		t.Errorf("Expecting = %q", s.Expecting)
	}

	if err := s.PhotoDetected(); err != nil {
		t.Fatalf("PhotoDetected: %v", err)
	}

	if err := s.MetadataApplied("/tmp/photos/A100-v-410-Jacke.jpg"); err != nil {
		t.Fatalf("MetadataApplied: %v", err)
	}

	// The machine loops back for the next article
	if s.Phase != PhaseAwaitingArticle {
		t.Errorf("phase after apply = %v, want awaiting article", s.Phase)
	}
	if s.Processed != 1 {
		t.Errorf("Processed = %d, want 1", s.Processed)
	}
	if s.LastFile != "/tmp/photos/A100-v-410-Jacke.jpg" {
		t.Errorf("LastFile = %q", s.LastFile)
	}
}

func TestSession_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Session) error
	}{
		{"publish before article", func(s *Session) error { return s.NamePublished("x.jpg") }},
		{"detect before publish", func(s *Session) error { return s.PhotoDetected() }},
		{"apply before detect", func(s *Session) error { return s.MetadataApplied("x.jpg") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("/tmp/photos")
			if err := tt.run(s); err == nil {
				t.Error("expected transition error, got nil")
			}
		})
	}
}

func TestSession_Exhaust(t *testing.T) {
	s := NewSession("/tmp/photos")
	if err := s.Exhaust(); err != nil {
		t.Fatalf("Exhaust: %v", err)
	}
	if s.Phase != PhaseExhausted {
		t.Errorf("phase = %v", s.Phase)
	}

	// Terminal: no way forward
	if err := s.ArticleReady(Variation{}); err == nil {
		t.Error("ArticleReady after Exhaust should fail")
	}
}

func TestSession_Skip(t *testing.T) {
	s := NewSession("/tmp/photos")
	if err := s.ArticleReady(Variation{Article: Article{Number: "A100"}, Position: PositionFront}); err != nil {
		t.Fatal(err)
	}
	if err := s.NamePublished("a.jpg"); err != nil {
		t.Fatal(err)
	}
	s.Fail(errors.New("no photo coming"))

	s.Skip()

	if s.Phase != PhaseAwaitingArticle {
		t.Errorf("phase after skip = %v", s.Phase)
	}
	if s.Processed != 0 {
		t.Errorf("skip counted a photo: Processed = %d", s.Processed)
	}
	if s.Expecting != "" || s.LastError != "" {
		t.Errorf("skip did not clear state: Expecting=%q LastError=%q", s.Expecting, s.LastError)
	}

	// Exhausted is terminal; skip does not resurrect the session
	if err := s.Exhaust(); err != nil {
		t.Fatal(err)
	}
	s.Skip()
	if s.Phase != PhaseExhausted {
		t.Errorf("skip left exhausted: phase = %v", s.Phase)
	}
}

func TestSession_FailKeepsPhase(t *testing.T) {
	s := NewSession("/tmp/photos")
	if err := s.ArticleReady(Variation{Article: Article{Number: "A100"}, Position: PositionFront}); err != nil {
		t.Fatal(err)
	}
	if err := s.NamePublished("a.jpg"); err != nil {
		t.Fatal(err)
	}
	if err := s.PhotoDetected(); err != nil {
		t.Fatal(err)
	}

	s.Fail(errors.New("exiftool not found"))

	if s.Phase != PhasePhotoDetected {
		t.Errorf("Fail moved phase to %v", s.Phase)
	}
	if s.LastError != "exiftool not found" {
		t.Errorf("LastError = %q", s.LastError)
	}

	// Retry succeeds and clears the error
	if err := s.MetadataApplied("/tmp/photos/a.jpg"); err != nil {
		t.Fatalf("retry MetadataApplied: %v", err)
	}
	if s.LastError != "" {
		t.Errorf("LastError not cleared: %q", s.LastError)
	}
}
