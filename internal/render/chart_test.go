package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/arcs-survey/internal/model"
)

func testSeries(n int) map[model.Factor][]model.TrendPoint {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	out := make(map[model.Factor][]model.TrendPoint)
	for fi, f := range model.Factors {
		for i := 0; i < n; i++ {
			out[f] = append(out[f], model.TrendPoint{
				Timestamp: base.Add(time.Duration(i) * 24 * time.Hour),
				Value:     float64(10 + 10*fi + 5*i),
			})
		}
	}
	return out
}

func TestChartProducesImage(t *testing.T) {
	img, err := Chart(testSeries(6), model.Scale100, DefaultChartOptions())
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 800 || b.Dy() != 400 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestChartSinglePoint(t *testing.T) {
	if _, err := Chart(testSeries(1), model.Scale100, DefaultChartOptions()); err != nil {
		t.Fatalf("single point chart: %v", err)
	}
}

func TestChartEmptySeries(t *testing.T) {
	if _, err := Chart(nil, model.Scale100, DefaultChartOptions()); err == nil {
		t.Error("expected error for empty series")
	}
	if _, err := Chart(map[model.Factor][]model.TrendPoint{}, model.Scale100, DefaultChartOptions()); err == nil {
		t.Error("expected error for empty map")
	}
}

func TestSaveChartPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trend.png")
	opts := DefaultChartOptions()
	opts.Title = "aki's motivation over time"

	if err := SaveChartPNG(path, testSeries(5), model.Scale100, opts); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PNG")
	}
}
