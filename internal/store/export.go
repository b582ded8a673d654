package store

import (
	"context"
	"fmt"

	"github.com/rcliao/arcs-survey/internal/model"
)

// ExportAll returns every submission, grouped by identity and ordered by
// timestamp within each group.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, user_id, created_at, attention, relevance, confidence, satisfaction
		 FROM submissions ORDER BY identity, created_at`)
	if err != nil {
		return nil, fmt.Errorf("export submissions: %w", err)
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

// Import appends submissions from an export. IDs are regenerated so an
// export can be imported into a fresh database; original timestamps are
// kept.
func (s *SQLiteStore) Import(ctx context.Context, subs []model.Submission) (int, error) {
	imported := 0
	for _, sub := range subs {
		sub.ID = ""
		if _, err := s.Append(ctx, sub); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
