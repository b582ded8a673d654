package advice

import (
	"testing"

	"github.com/rcliao/arcs-survey/internal/model"
)

func sub(a, r, c, s float64) model.Submission {
	return model.Submission{Name: "aki", Attention: a, Relevance: r, Confidence: c, Satisfaction: s}
}

func TestSingleLowFactor(t *testing.T) {
	items := Derive(model.Scale100, sub(20, 80, 80, 80), nil)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Factor != model.Attention || items[0].Kind != model.AdviceLow {
		t.Errorf("expected attention low item, got %+v", items[0])
	}
}

func TestHealthyFallback(t *testing.T) {
	items := Derive(model.Scale100, sub(90, 90, 90, 90), nil)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Kind != model.AdviceHealthy {
		t.Errorf("expected healthy item, got %+v", items[0])
	}
}

func TestNoFallbackWithPrevious(t *testing.T) {
	prev := sub(90, 90, 90, 90)
	items := Derive(model.Scale100, sub(90, 90, 90, 90), &prev)

	// All scores healthy and unchanged: no low items, no delta items, and
	// the healthy fallback does not fire because a previous record exists.
	if len(items) != 0 {
		t.Errorf("expected no items, got %+v", items)
	}
}

func TestDeltaDeclined(t *testing.T) {
	prev := sub(60, 80, 80, 80)
	items := Derive(model.Scale100, sub(40, 80, 80, 80), &prev)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Factor != model.Attention || items[0].Kind != model.AdviceDeclined {
		t.Errorf("expected attention declined item, got %+v", items[0])
	}
}

func TestDeltaImproved(t *testing.T) {
	prev := sub(80, 80, 40, 80)
	items := Derive(model.Scale100, sub(80, 80, 70, 80), &prev)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Factor != model.Confidence || items[0].Kind != model.AdviceImproved {
		t.Errorf("expected confidence improved item, got %+v", items[0])
	}
}

func TestLowAndDeltaCombine(t *testing.T) {
	prev := sub(50, 80, 80, 80)
	items := Derive(model.Scale100, sub(20, 80, 80, 80), &prev)

	// Attention fires both the low rule and the declined delta rule.
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Kind != model.AdviceLow || items[1].Kind != model.AdviceDeclined {
		t.Errorf("expected low then declined, got %+v", items)
	}
}

func TestOrderingLowThenDelta(t *testing.T) {
	prev := sub(80, 80, 80, 10)
	items := Derive(model.Scale100, sub(10, 10, 80, 90), &prev)

	// Low items in factor order first, then delta items in factor order.
	wantKinds := []string{model.AdviceLow, model.AdviceLow, model.AdviceDeclined, model.AdviceDeclined, model.AdviceImproved}
	wantFactors := []model.Factor{model.Attention, model.Relevance, model.Attention, model.Relevance, model.Satisfaction}
	if len(items) != len(wantKinds) {
		t.Fatalf("expected %d items, got %d: %+v", len(wantKinds), len(items), items)
	}
	for i := range items {
		if items[i].Kind != wantKinds[i] || items[i].Factor != wantFactors[i] {
			t.Errorf("item %d = (%s, %s), want (%s, %s)",
				i, items[i].Factor, items[i].Kind, wantFactors[i], wantKinds[i])
		}
	}
}

func TestLikertScaleCutoff(t *testing.T) {
	low := model.Submission{Name: "aki", Attention: 3, Relevance: 5, Confidence: 5, Satisfaction: 5}
	items := Derive(model.Scale7, low, nil)
	if len(items) != 1 || items[0].Factor != model.Attention {
		t.Fatalf("expected attention low on 1-7 scale, got %+v", items)
	}

	ok := model.Submission{Name: "aki", Attention: 4, Relevance: 5, Confidence: 5, Satisfaction: 5}
	items = Derive(model.Scale7, ok, nil)
	if len(items) != 1 || items[0].Kind != model.AdviceHealthy {
		t.Fatalf("expected healthy at 4 on 1-7 scale, got %+v", items)
	}
}
