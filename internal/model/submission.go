// Package model defines the core survey data types.
package model

import "time"

// Factor is one of the four ARCS motivation dimensions.
type Factor string

const (
	Attention    Factor = "attention"
	Relevance    Factor = "relevance"
	Confidence   Factor = "confidence"
	Satisfaction Factor = "satisfaction"
)

// Factors is the fixed display order. Advice and chart output iterate it.
var Factors = []Factor{Attention, Relevance, Confidence, Satisfaction}

// Label returns the display name of the factor.
func (f Factor) Label() string {
	switch f {
	case Attention:
		return "Attention"
	case Relevance:
		return "Relevance"
	case Confidence:
		return "Confidence"
	case Satisfaction:
		return "Satisfaction"
	}
	return string(f)
}

// Submission is one completed check-in for one identity at one point in time.
// Submissions are append-only: created once, never mutated.
type Submission struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Attention    float64   `json:"attention"`
	Relevance    float64   `json:"relevance"`
	Confidence   float64   `json:"confidence"`
	Satisfaction float64   `json:"satisfaction"`
}

// Score returns the value recorded for the given factor.
func (s Submission) Score(f Factor) float64 {
	switch f {
	case Attention:
		return s.Attention
	case Relevance:
		return s.Relevance
	case Confidence:
		return s.Confidence
	case Satisfaction:
		return s.Satisfaction
	}
	return 0
}

// SetScore records a value for the given factor.
func (s *Submission) SetScore(f Factor, v float64) {
	switch f {
	case Attention:
		s.Attention = v
	case Relevance:
		s.Relevance = v
	case Confidence:
		s.Confidence = v
	case Satisfaction:
		s.Satisfaction = v
	}
}

// IdentityKey is the key submissions are grouped under: the user ID when
// present, the name otherwise.
func (s Submission) IdentityKey() string {
	if s.UserID != "" {
		return s.UserID
	}
	return s.Name
}
