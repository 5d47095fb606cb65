package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/readlit/internal/logger"
	"github.com/julianstephens/readlit/internal/models"
)

// SQLiteStore persists the tracker state in a SQLite database. The whole
// state is written in one transaction per save, matching the blob semantics
// of the JSON store.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	author       TEXT NOT NULL,
	total_pages  INTEGER NOT NULL,
	current_page INTEGER NOT NULL,
	status       TEXT NOT NULL,
	started_at   TEXT NOT NULL,
	target_date  TEXT NOT NULL DEFAULT '',
	notes        TEXT NOT NULL DEFAULT '',
	position     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	book_id    TEXT NOT NULL,
	date       TEXT NOT NULL,
	pages_read INTEGER NOT NULL,
	minutes    INTEGER NOT NULL,
	note       TEXT NOT NULL DEFAULT '',
	position   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.Save(models.DefaultState())
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	s.db = db
	return nil
}

// Load reads the full state. Unreadable rows are treated as a recoverable
// condition: the default state is returned and a warning logged.
func (s *SQLiteStore) Load() (models.TrackerState, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.DefaultState(), nil
	}

	if err := s.open(); err != nil {
		return models.DefaultState(), err
	}

	state := models.DefaultState()

	books, err := s.loadBooks()
	if err != nil {
		logger.Warn("Stored books unreadable, falling back to default state", "path", s.path, "error", err)
		return models.DefaultState(), nil
	}
	sessions, err := s.loadSessions()
	if err != nil {
		logger.Warn("Stored sessions unreadable, falling back to default state", "path", s.path, "error", err)
		return models.DefaultState(), nil
	}
	prefs, err := s.loadPreferences()
	if err != nil {
		logger.Warn("Stored preferences unreadable, using defaults", "path", s.path, "error", err)
		prefs = models.DefaultPreferences()
	}

	state.Books = books
	state.Sessions = sessions
	state.Preferences = prefs
	state.Normalize()
	return state, nil
}

func (s *SQLiteStore) loadBooks() ([]models.Book, error) {
	rows, err := s.db.Query(`
		SELECT id, title, author, total_pages, current_page, status, started_at, target_date, notes
		FROM books ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.TotalPages, &b.CurrentPage,
			&b.Status, &b.StartedAt, &b.TargetDate, &b.Notes); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (s *SQLiteStore) loadSessions() ([]models.ReadingSession, error) {
	rows, err := s.db.Query(`
		SELECT id, book_id, date, pages_read, minutes, note
		FROM sessions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []models.ReadingSession{}
	for rows.Next() {
		var sess models.ReadingSession
		if err := rows.Scan(&sess.ID, &sess.BookID, &sess.Date, &sess.PagesRead,
			&sess.Minutes, &sess.Note); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) loadPreferences() (models.Preferences, error) {
	rows, err := s.db.Query("SELECT key, value FROM preferences")
	if err != nil {
		return models.Preferences{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Preferences{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Preferences{}, err
	}

	return models.MapToPreferences(data), nil
}

func (s *SQLiteStore) Save(state models.TrackerState) error {
	if err := s.open(); err != nil {
		return err
	}
	state.Normalize()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"books", "sessions", "preferences"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	bookStmt, err := tx.Prepare(`
		INSERT INTO books (id, title, author, total_pages, current_page, status, started_at, target_date, notes, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer bookStmt.Close()
	for i, b := range state.Books {
		if _, err := bookStmt.Exec(b.ID, b.Title, b.Author, b.TotalPages, b.CurrentPage,
			string(b.Status), b.StartedAt, b.TargetDate, b.Notes, i); err != nil {
			return err
		}
	}

	sessStmt, err := tx.Prepare(`
		INSERT INTO sessions (id, book_id, date, pages_read, minutes, note, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer sessStmt.Close()
	for i, sess := range state.Sessions {
		if _, err := sessStmt.Exec(sess.ID, sess.BookID, sess.Date, sess.PagesRead,
			sess.Minutes, sess.Note, i); err != nil {
			return err
		}
	}

	prefStmt, err := tx.Prepare("INSERT OR REPLACE INTO preferences (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer prefStmt.Close()
	for key, value := range models.PreferencesToMap(state.Preferences) {
		if _, err := prefStmt.Exec(key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
