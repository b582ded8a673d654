// Package report assembles the survey report handed to renderers.
package report

import (
	"sort"

	"github.com/rcliao/arcs-survey/internal/advice"
	"github.com/rcliao/arcs-survey/internal/model"
	"github.com/rcliao/arcs-survey/internal/trend"
)

// Assemble composes advice and trend analysis into a Report. The current
// submission is validated first; advice compares against the most recent
// history entry strictly before current (current itself is excluded when the
// history already contains it), and trend analysis runs over the full
// history including current. Pure composition, no side effects.
func Assemble(scale model.Scale, identity string, current model.Submission, history []model.Submission) (*model.Report, error) {
	if err := current.Validate(scale); err != nil {
		return nil, err
	}

	full := withCurrent(current, history)
	ts := trend.Summarize(full)

	return &model.Report{
		Identity:   identity,
		Current:    current,
		Advice:     advice.Derive(scale, current, previousOf(current, history)),
		Statements: ts.Statements,
		Series:     ts.Series,
		History:    full,
	}, nil
}

// previousOf finds the latest submission strictly before current. Entries
// sharing current's ID are skipped so a history that already contains the
// just-appended submission does not compare it against itself.
func previousOf(current model.Submission, history []model.Submission) *model.Submission {
	var prev *model.Submission
	for i := range history {
		h := &history[i]
		if current.ID != "" && h.ID == current.ID {
			continue
		}
		if !h.CreatedAt.Before(current.CreatedAt) {
			continue
		}
		if prev == nil || h.CreatedAt.After(prev.CreatedAt) {
			prev = h
		}
	}
	return prev
}

// withCurrent returns the history sorted by timestamp, with current appended
// when not already present.
func withCurrent(current model.Submission, history []model.Submission) []model.Submission {
	full := make([]model.Submission, 0, len(history)+1)
	seen := false
	for _, h := range history {
		if current.ID != "" && h.ID == current.ID {
			seen = true
		}
		full = append(full, h)
	}
	if !seen {
		full = append(full, current)
	}
	sort.SliceStable(full, func(i, j int) bool {
		return full[i].CreatedAt.Before(full[j].CreatedAt)
	})
	return full
}
