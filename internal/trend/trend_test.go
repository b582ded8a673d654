package trend

import (
	"math"
	"testing"
	"time"

	"github.com/rcliao/arcs-survey/internal/model"
)

func historyOf(t *testing.T, rows [][4]float64) []model.Submission {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	subs := make([]model.Submission, 0, len(rows))
	for i, r := range rows {
		subs = append(subs, model.Submission{
			Name:         "aki",
			CreatedAt:    base.Add(time.Duration(i) * 24 * time.Hour),
			Attention:    r[0],
			Relevance:    r[1],
			Confidence:   r[2],
			Satisfaction: r[3],
		})
	}
	return subs
}

func TestInsufficientHistoryGate(t *testing.T) {
	for n := 0; n < MinHistory; n++ {
		rows := make([][4]float64, n)
		for i := range rows {
			rows[i] = [4]float64{50, 50, 50, 50}
		}
		sum := Summarize(historyOf(t, rows))
		if len(sum.Statements) != 1 {
			t.Errorf("history of %d: expected exactly 1 statement, got %d", n, len(sum.Statements))
			continue
		}
		if sum.Statements[0].Pair != "" {
			t.Errorf("history of %d: gate statement should carry no pair", n)
		}
	}
}

func TestSeriesProducedUnderGate(t *testing.T) {
	sum := Summarize(historyOf(t, [][4]float64{{10, 20, 30, 40}, {50, 60, 70, 80}}))
	for _, f := range model.Factors {
		if len(sum.Series[f]) != 2 {
			t.Errorf("expected 2 points for %s, got %d", f, len(sum.Series[f]))
		}
	}
	if Summarize(nil).Series != nil {
		t.Error("expected nil series for empty history")
	}
}

func TestStrongPairStatements(t *testing.T) {
	// Confidence and satisfaction move in lockstep; attention and relevance
	// move against them and each other, keeping the other watched pairs weak.
	sum := Summarize(historyOf(t, [][4]float64{
		{90, 10, 10, 12},
		{10, 90, 30, 31},
		{85, 20, 50, 52},
		{20, 80, 70, 69},
		{80, 15, 90, 88},
	}))

	var pairs []string
	for _, st := range sum.Statements {
		pairs = append(pairs, st.Pair)
	}
	if len(pairs) != 1 || pairs[0] != "confidence-satisfaction" {
		t.Errorf("expected only confidence-satisfaction, got %v", pairs)
	}
}

func TestNoTrendFallback(t *testing.T) {
	// Confidence moves orthogonally to the alternating pattern of the other
	// three factors, keeping every watched correlation at or below zero.
	sum := Summarize(historyOf(t, [][4]float64{
		{10, 90, 40, 90},
		{90, 10, 60, 10},
		{10, 90, 60, 90},
		{90, 10, 40, 15},
		{12, 88, 50, 85},
	}))

	if len(sum.Statements) != 1 {
		t.Fatalf("expected 1 fallback statement, got %d: %+v", len(sum.Statements), sum.Statements)
	}
	if sum.Statements[0].Pair != "" {
		t.Errorf("fallback should carry no pair, got %q", sum.Statements[0].Pair)
	}
}

func TestReorderInvariance(t *testing.T) {
	rows := [][4]float64{
		{10, 20, 10, 12},
		{30, 25, 30, 33},
		{50, 40, 50, 48},
		{70, 35, 70, 72},
		{90, 45, 90, 88},
		{60, 30, 60, 61},
	}
	history := historyOf(t, rows)

	want := Summarize(history)

	shuffled := make([]model.Submission, len(history))
	copy(shuffled, history)
	shuffled[0], shuffled[3] = shuffled[3], shuffled[0]
	shuffled[1], shuffled[5] = shuffled[5], shuffled[1]
	got := Summarize(shuffled)

	if len(got.Statements) != len(want.Statements) {
		t.Fatalf("statement count changed after shuffle: %d vs %d", len(got.Statements), len(want.Statements))
	}
	for i := range want.Statements {
		if got.Statements[i] != want.Statements[i] {
			t.Errorf("statement %d changed after shuffle: %+v vs %+v", i, got.Statements[i], want.Statements[i])
		}
	}
	for _, f := range model.Factors {
		for i := range want.Series[f] {
			if got.Series[f][i] != want.Series[f][i] {
				t.Errorf("series %s point %d changed after shuffle", f, i)
			}
		}
	}
}

func TestZeroVarianceColumn(t *testing.T) {
	// Constant confidence: every confidence-paired correlation is undefined
	// and must be treated as not exceeding the threshold.
	sum := Summarize(historyOf(t, [][4]float64{
		{10, 12, 50, 11},
		{30, 28, 50, 33},
		{50, 52, 50, 48},
		{70, 68, 50, 72},
		{90, 88, 50, 90},
	}))

	for _, st := range sum.Statements {
		if st.Pair != "" {
			t.Errorf("no pair statement should fire with constant confidence, got %q", st.Pair)
		}
	}
	if len(sum.Statements) != 1 {
		t.Errorf("expected only the fallback statement, got %+v", sum.Statements)
	}
}

func TestPearson(t *testing.T) {
	r, ok := pearson([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10})
	if !ok || math.Abs(r-1) > 1e-9 {
		t.Errorf("expected r=1, got %v ok=%v", r, ok)
	}

	r, ok = pearson([]float64{1, 2, 3, 4, 5}, []float64{10, 8, 6, 4, 2})
	if !ok || math.Abs(r+1) > 1e-9 {
		t.Errorf("expected r=-1, got %v ok=%v", r, ok)
	}

	if _, ok = pearson([]float64{3, 3, 3}, []float64{1, 2, 3}); ok {
		t.Error("expected ok=false for zero variance")
	}
	if _, ok = pearson(nil, nil); ok {
		t.Error("expected ok=false for empty input")
	}
}
