package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"shootlist/internal/config"
	"shootlist/internal/domain"
	"shootlist/internal/ports"

	_ "modernc.org/sqlite"
)

// Journal implements ports.Journal using SQLite
type Journal struct {
	db     *sql.DB
	dbPath string
}

// Ensure Journal implements the port
var _ ports.Journal = (*Journal)(nil)

// NewJournal creates a new SQLite journal
func NewJournal() *Journal {
	return &Journal{}
}

// Open initializes the journal database at path, creating parent
// directories and the schema as needed
func (j *Journal) Open(path string) error {
	j.dbPath = config.ExpandHome(path)

	if err := os.MkdirAll(filepath.Dir(j.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", j.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	j.db = db

	// Pragmas + schema in a single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			finished_at INTEGER,
			workbook_path TEXT NOT NULL,
			watch_dir TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS photos (
			session_id TEXT NOT NULL REFERENCES sessions(id),
			article_no TEXT NOT NULL,
			position TEXT NOT NULL,
			file_path TEXT NOT NULL,
			tagged_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_photos_session ON photos(session_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup journal schema: %w", err)
	}
	return nil
}

// Close releases the database handle
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// BeginSession opens a session row and returns its ID
func (j *Journal) BeginSession(workbookPath, watchDir string) (string, error) {
	id := uuid.NewString()
	_, err := j.db.Exec(
		`INSERT INTO sessions (id, started_at, workbook_path, watch_dir) VALUES (?, ?, ?, ?)`,
		id, time.Now().Unix(), workbookPath, watchDir,
	)
	if err != nil {
		return "", fmt.Errorf("failed to begin session: %w", err)
	}
	return id, nil
}

// RecordPhoto appends a tagged photo to a session
func (j *Journal) RecordPhoto(sessionID string, v domain.Variation, filePath string) error {
	_, err := j.db.Exec(
		`INSERT INTO photos (session_id, article_no, position, file_path, tagged_at) VALUES (?, ?, ?, ?, ?)`,
		sessionID, v.Number, v.Position, filePath, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record photo: %w", err)
	}
	return nil
}

// EndSession stamps the session as finished
func (j *Journal) EndSession(sessionID string) error {
	_, err := j.db.Exec(
		`UPDATE sessions SET finished_at = ? WHERE id = ?`,
		time.Now().Unix(), sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// ListSessions returns the most recent sessions, newest first
func (j *Journal) ListSessions(limit int) ([]domain.SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.Query(`
		SELECT s.id, s.started_at, COALESCE(s.finished_at, 0), s.workbook_path, s.watch_dir,
		       (SELECT COUNT(*) FROM photos p WHERE p.session_id = s.id)
		FROM sessions s
		ORDER BY s.started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.SessionRecord
	for rows.Next() {
		var rec domain.SessionRecord
		var started, finished int64
		if err := rows.Scan(&rec.ID, &started, &finished, &rec.WorkbookPath, &rec.WatchDir, &rec.Photos); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		rec.StartedAt = time.Unix(started, 0)
		if finished > 0 {
			rec.FinishedAt = time.Unix(finished, 0)
		}
		sessions = append(sessions, rec)
	}
	return sessions, rows.Err()
}

// ListPhotos returns a session's tagged photos in tag order
func (j *Journal) ListPhotos(sessionID string) ([]domain.PhotoRecord, error) {
	rows, err := j.db.Query(`
		SELECT session_id, article_no, position, file_path, tagged_at
		FROM photos
		WHERE session_id = ?
		ORDER BY tagged_at, rowid`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []domain.PhotoRecord
	for rows.Next() {
		var rec domain.PhotoRecord
		var tagged int64
		if err := rows.Scan(&rec.SessionID, &rec.ArticleNo, &rec.Position, &rec.FilePath, &tagged); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		rec.TaggedAt = time.Unix(tagged, 0)
		photos = append(photos, rec)
	}
	return photos, rows.Err()
}
