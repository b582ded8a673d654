package render

import (
	"strings"
	"testing"
	"time"

	"github.com/rcliao/arcs-survey/internal/model"
)

func TestWriteHTML(t *testing.T) {
	rep := &model.Report{
		Identity: "s1234",
		Current: model.Submission{
			Name: "Aki", UserID: "s1234",
			CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			Attention: 20, Relevance: 80, Confidence: 75, Satisfaction: 70,
		},
		Advice: []model.AdviceItem{
			{
				Factor:    model.Attention,
				Kind:      model.AdviceLow,
				Question:  "Does studying this subject or assignment feel exciting to you?",
				Message:   "Try reorganizing your notes with color.",
				SelfCheck: "Mark down whether the content was easier to recall.",
			},
		},
		Statements: []model.SummaryStatement{
			{Text: "Not enough history for trend analysis yet."},
		},
		History: []model.Submission{{Name: "Aki"}},
	}

	var sb strings.Builder
	if err := WriteHTML(&sb, rep); err != nil {
		t.Fatalf("write html: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"Aki",
		"2026-03-01 09:30",
		"Attention: 20",
		"Satisfaction: 70",
		"Try reorganizing your notes with color.",
		"Mark down whether the content was easier to recall.",
		"Not enough history for trend analysis yet.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteHTMLEscapes(t *testing.T) {
	rep := &model.Report{
		Identity: "x",
		Current:  model.Submission{Name: "<script>alert(1)</script>"},
	}

	var sb strings.Builder
	if err := WriteHTML(&sb, rep); err != nil {
		t.Fatalf("write html: %v", err)
	}
	if strings.Contains(sb.String(), "<script>alert(1)</script>") {
		t.Error("name was not escaped")
	}
}
