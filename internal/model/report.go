package model

import "time"

// Advice item kinds.
const (
	AdviceLow      = "low"
	AdviceDeclined = "declined"
	AdviceImproved = "improved"
	AdviceHealthy  = "healthy"
)

// AdviceItem is one piece of advice derived from the current submission.
// Immutable once produced.
type AdviceItem struct {
	Factor    Factor `json:"factor,omitempty"`
	Kind      string `json:"kind"`
	Question  string `json:"question,omitempty"`
	Message   string `json:"message"`
	SelfCheck string `json:"self_check,omitempty"`
}

// SummaryStatement is one qualitative trend statement. Pair names the factor
// pair that triggered it ("confidence-satisfaction"); empty for the
// insufficient-data and no-trend fallbacks.
type SummaryStatement struct {
	Pair string `json:"pair,omitempty"`
	Text string `json:"text"`
}

// TrendPoint is one charted value for one factor.
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TrendSummary is the output of trend analysis over a history: qualitative
// statements plus the per-factor series handed to the chart renderer.
type TrendSummary struct {
	Statements []SummaryStatement      `json:"statements"`
	Series     map[Factor][]TrendPoint `json:"series,omitempty"`
}

// Report is the full result of one check-in, handed to renderers. It is
// recomputed fresh from (identity, current, history) every time and never
// persisted.
type Report struct {
	Identity   string                  `json:"identity"`
	Current    Submission              `json:"current"`
	Advice     []AdviceItem            `json:"advice"`
	Statements []SummaryStatement      `json:"statements"`
	Series     map[Factor][]TrendPoint `json:"series,omitempty"`
	History    []Submission            `json:"history,omitempty"`
}
