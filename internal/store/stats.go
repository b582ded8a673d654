package store

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string  `json:"db_path"`
	DBSizeBytes int64   `json:"db_size_bytes"`
	Submissions int     `json:"submissions"`
	Identities  int     `json:"identities"`
	ScaleMin    float64 `json:"scale_min"`
	ScaleMax    float64 `json:"scale_max"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, ScaleMin: s.scale.Min, ScaleMax: s.scale.Max}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&st.Submissions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT identity) FROM submissions`).Scan(&st.Identities)

	return st, nil
}

// Identities returns the per-identity roll-up, most recently active first.
func (s *SQLiteStore) Identities(ctx context.Context) ([]IdentityStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT identity, MAX(name) as name, COUNT(*) as cnt,
		       MIN(created_at) as first_at, MAX(created_at) as last_at
		FROM submissions
		GROUP BY identity ORDER BY last_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	defer rows.Close()

	var out []IdentityStats
	for rows.Next() {
		var is IdentityStats
		var firstAt, lastAt string
		if err := rows.Scan(&is.Identity, &is.Name, &is.Count, &firstAt, &lastAt); err != nil {
			return nil, err
		}
		is.FirstAt, _ = time.Parse(time.RFC3339, firstAt)
		is.LastAt, _ = time.Parse(time.RFC3339, lastAt)
		out = append(out, is)
	}
	return out, rows.Err()
}
