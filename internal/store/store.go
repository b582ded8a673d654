// Package store provides the submission storage interface and SQLite
// implementation. The store is append-only: submissions are written once and
// never updated or deleted.
package store

import (
	"context"
	"time"

	"github.com/rcliao/arcs-survey/internal/model"
)

// IdentityStats is the roll-up for one identity.
type IdentityStats struct {
	Identity string    `json:"identity"`
	Name     string    `json:"name,omitempty"`
	Count    int       `json:"count"`
	FirstAt  time.Time `json:"first_at"`
	LastAt   time.Time `json:"last_at"`
}

// Store defines the submission storage interface.
type Store interface {
	// Append validates and stores a submission. Returns the stored copy
	// with ID and timestamp filled in.
	Append(ctx context.Context, sub model.Submission) (*model.Submission, error)

	// Query returns all submissions for one identity key, in no guaranteed
	// order. Callers sort by timestamp themselves.
	Query(ctx context.Context, identity string) ([]model.Submission, error)

	// ExportAll returns every submission, grouped by identity and ordered
	// by timestamp within each group.
	ExportAll(ctx context.Context) ([]model.Submission, error)

	// Identities returns the per-identity roll-up.
	Identities(ctx context.Context) ([]IdentityStats, error)

	// Close closes the store.
	Close() error
}
