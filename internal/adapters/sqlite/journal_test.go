package sqlite

import (
	"path/filepath"
	"testing"

	"shootlist/internal/domain"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j := NewJournal()
	if err := j.Open(filepath.Join(t.TempDir(), "journal.db")); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_SessionLifecycle(t *testing.T) {
	j := openTestJournal(t)

	id, err := j.BeginSession("/data/articles.xlsx", "/mnt/tether")
	if err != nil {
		t.Fatalf("BeginSession: %v", err)
	}
	if id == "" {
		t.Fatal("empty session ID")
	}

	v := domain.Variation{
		Article:  domain.Article{Number: "A100", Description: "Jacke", ColorCode: "410"},
		Position: domain.PositionFront,
	}
	if err := j.RecordPhoto(id, v, "/mnt/tether/A100-v-410-Jacke.jpg"); err != nil {
		t.Fatalf("RecordPhoto: %v", err)
	}

	sessions, err := j.ListSessions(10)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	rec := sessions[0]
	if rec.ID != id || rec.WorkbookPath != "/data/articles.xlsx" || rec.WatchDir != "/mnt/tether" {
		t.Errorf("session record = %+v", rec)
	}
	if rec.Photos != 1 {
		t.Errorf("Photos = %d, want 1", rec.Photos)
	}
	if !rec.FinishedAt.IsZero() {
		t.Error("open session should have zero FinishedAt")
	}

	if err := j.EndSession(id); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	sessions, _ = j.ListSessions(10)
	if sessions[0].FinishedAt.IsZero() {
		t.Error("ended session should have FinishedAt set")
	}
}

func TestJournal_ListPhotosInTagOrder(t *testing.T) {
	j := openTestJournal(t)
	id, err := j.BeginSession("/data/articles.xlsx", "/mnt/tether")
	if err != nil {
		t.Fatal(err)
	}

	for _, pos := range []string{domain.PositionFront, domain.PositionBack} {
		v := domain.Variation{Article: domain.Article{Number: "A100"}, Position: pos}
		if err := j.RecordPhoto(id, v, "/mnt/tether/A100-"+pos+".jpg"); err != nil {
			t.Fatal(err)
		}
	}

	photos, err := j.ListPhotos(id)
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(photos))
	}
	if photos[0].Position != domain.PositionFront || photos[1].Position != domain.PositionBack {
		t.Errorf("photos out of tag order: %+v", photos)
	}
	if photos[0].ArticleNo != "A100" {
		t.Errorf("ArticleNo = %q", photos[0].ArticleNo)
	}
}

func TestJournal_ListSessionsNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	first, err := j.BeginSession("/a.xlsx", "/w")
	if err != nil {
		t.Fatal(err)
	}
	// Same wall-clock second is fine; ordering below only checks that
	// both rows come back
	second, err := j.BeginSession("/b.xlsx", "/w")
	if err != nil {
		t.Fatal(err)
	}

	sessions, err := j.ListSessions(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	ids := map[string]bool{sessions[0].ID: true, sessions[1].ID: true}
	if !ids[first] || !ids[second] {
		t.Errorf("missing sessions: %+v", sessions)
	}
}

func TestJournal_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.db")

	j := NewJournal()
	if err := j.Open(path); err != nil {
		t.Fatal(err)
	}
	id, err := j.BeginSession("/a.xlsx", "/w")
	if err != nil {
		t.Fatal(err)
	}
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}

	j2 := NewJournal()
	if err := j2.Open(path); err != nil {
		t.Fatal(err)
	}
	defer j2.Close()

	sessions, err := j2.ListSessions(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || sessions[0].ID != id {
		t.Errorf("reopened journal lost data: %+v", sessions)
	}
}
