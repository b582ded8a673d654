// Package trend computes correlation summaries and chart series over a
// submission history.
package trend

import (
	"math"
	"sort"

	"github.com/rcliao/arcs-survey/internal/model"
)

// MinHistory is the number of submissions required before correlation is
// computed. Below it, Summarize returns the insufficient-data statement only.
const MinHistory = 5

// CorrelationThreshold is the Pearson coefficient a watched pair must exceed
// to produce a statement.
const CorrelationThreshold = 0.6

const insufficientText = "Not enough history for trend analysis yet. Trends appear after five check-ins; keep recording."

const noTrendText = "No strong trend yet. Keep recording and patterns will emerge."

// watched are the factor pairs that produce a statement when strongly
// correlated.
var watched = []struct {
	a, b model.Factor
	text string
}{
	{model.Confidence, model.Satisfaction,
		"In your record, higher confidence comes with higher satisfaction. Building confidence first may be your best lever."},
	{model.Attention, model.Confidence,
		"When your attention rises, your confidence tends to rise with it. Sparking your interest looks like a good way in."},
	{model.Relevance, model.Confidence,
		"Feeling the material is relevant tends to lift your confidence. Connecting lessons to your own goals may pay off twice."},
}

// Summarize analyzes one identity's history. The input may arrive in any
// order; it is sorted by timestamp here, not trusted. The per-factor chart
// series is produced for any non-empty history; correlation statements only
// once MinHistory submissions exist.
func Summarize(history []model.Submission) model.TrendSummary {
	sorted := make([]model.Submission, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	sum := model.TrendSummary{Series: series(sorted)}

	if len(sorted) < MinHistory {
		sum.Statements = []model.SummaryStatement{{Text: insufficientText}}
		return sum
	}

	cols := make(map[model.Factor][]float64, len(model.Factors))
	for _, s := range sorted {
		for _, f := range model.Factors {
			cols[f] = append(cols[f], s.Score(f))
		}
	}

	for _, w := range watched {
		r, ok := pearson(cols[w.a], cols[w.b])
		if ok && r > CorrelationThreshold {
			sum.Statements = append(sum.Statements, model.SummaryStatement{
				Pair: string(w.a) + "-" + string(w.b),
				Text: w.text,
			})
		}
	}

	if len(sum.Statements) == 0 {
		sum.Statements = []model.SummaryStatement{{Text: noTrendText}}
	}

	return sum
}

func series(sorted []model.Submission) map[model.Factor][]model.TrendPoint {
	if len(sorted) == 0 {
		return nil
	}
	out := make(map[model.Factor][]model.TrendPoint, len(model.Factors))
	for _, f := range model.Factors {
		pts := make([]model.TrendPoint, 0, len(sorted))
		for _, s := range sorted {
			pts = append(pts, model.TrendPoint{Timestamp: s.CreatedAt, Value: s.Score(f)})
		}
		out[f] = pts
	}
	return out
}

// pearson returns the Pearson correlation coefficient of two equal-length
// series. ok is false when either series has zero variance, where the
// coefficient is undefined; callers treat that as no correlation.
func pearson(xs, ys []float64) (r float64, ok bool) {
	n := float64(len(xs))
	if len(xs) != len(ys) || len(xs) == 0 {
		return 0, false
	}

	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}

	return cov / (math.Sqrt(varX) * math.Sqrt(varY)), true
}
