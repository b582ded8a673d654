package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/arcs-survey/internal/model"
)

// ErrScaleMismatch means the database was created under a different score
// scale than the one configured. Mixing scales in one history is a
// configuration error; delta and correlation results would be meaningless.
var ErrScaleMismatch = errors.New("score scale does not match the database")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	scale   model.Scale
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path. The
// scale is pinned into the database on first open; reopening with a
// different scale fails with ErrScaleMismatch.
func NewSQLiteStore(dbPath string, scale model.Scale) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		scale:   scale,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.pinScale(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Scale returns the scale this store was opened with.
func (s *SQLiteStore) Scale() model.Scale {
	return s.scale
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id           TEXT PRIMARY KEY,
		identity     TEXT NOT NULL,
		name         TEXT NOT NULL DEFAULT '',
		user_id      TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		attention    REAL NOT NULL,
		relevance    REAL NOT NULL,
		confidence   REAL NOT NULL,
		satisfaction REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_identity ON submissions(identity, created_at);
	CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at);

	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) pinScale() error {
	var stored string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'scale_max'`).Scan(&stored)
	if err == sql.ErrNoRows {
		_, err = s.db.Exec(`INSERT INTO meta (key, value) VALUES ('scale_max', ?)`,
			fmt.Sprintf("%g", s.scale.Max))
		if err != nil {
			return fmt.Errorf("pin scale: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read scale: %w", err)
	}
	if stored != fmt.Sprintf("%g", s.scale.Max) {
		return fmt.Errorf("database records a 1-%s scale, configured 1-%g: %w",
			stored, s.scale.Max, ErrScaleMismatch)
	}
	return nil
}

func (s *SQLiteStore) Append(ctx context.Context, sub model.Submission) (*model.Submission, error) {
	if err := sub.Validate(s.scale); err != nil {
		return nil, err
	}

	if sub.ID == "" {
		sub.ID = s.newID()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, identity, name, user_id, created_at, attention, relevance, confidence, satisfaction)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.IdentityKey(), sub.Name, sub.UserID,
		sub.CreatedAt.UTC().Format(time.RFC3339Nano),
		sub.Attention, sub.Relevance, sub.Confidence, sub.Satisfaction)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}

	return &sub, nil
}

func (s *SQLiteStore) Query(ctx context.Context, identity string) ([]model.Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, user_id, created_at, attention, relevance, confidence, satisfaction
		 FROM submissions WHERE identity = ? ORDER BY created_at`, identity)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row scanner) (model.Submission, error) {
	var sub model.Submission
	var createdAt string

	err := row.Scan(&sub.ID, &sub.Name, &sub.UserID, &createdAt,
		&sub.Attention, &sub.Relevance, &sub.Confidence, &sub.Satisfaction)
	if err != nil {
		return sub, err
	}

	sub.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return sub, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return sub, nil
}
