// Package advice derives textual advice from survey scores.
package advice

import "github.com/rcliao/arcs-survey/internal/model"

// rule pairs a factor with its advice texts. Rules are applied in order, one
// per factor; adding a factor or rewording a message is a data change here,
// not a new branch.
type rule struct {
	factor    model.Factor
	question  string
	lowAdvice string
	selfCheck string
	declined  string
	improved  string
}

var rules = []rule{
	{
		factor:    model.Attention,
		question:  "Does studying this subject or assignment feel exciting to you?",
		lowAdvice: "If the material has felt dull lately, change how you meet it: reorganize your notes with color, or turn what you are learning into quiz questions and test yourself.",
		selfCheck: "After your next session, mark down whether the content was easier to recall and whether you looked forward to the next topic.",
		declined:  "Your attention score dropped since your last check-in. Notice what changed about how you study.",
		improved:  "Your attention score rose since your last check-in. Whatever caught your interest, keep doing it.",
	},
	{
		factor:    model.Relevance,
		question:  "Does what you are learning here feel relevant to you?",
		lowAdvice: "If the material feels disconnected from your life, look up how this knowledge and these skills get used in practice, and write down a few concrete examples.",
		selfCheck: "After collecting examples, note whether the connection to your own goals now feels convincing to you.",
		declined:  "Your relevance score dropped since your last check-in. Revisit what this subject is for, in your own terms.",
		improved:  "Your relevance score rose since your last check-in. The material is connecting; build on that.",
	},
	{
		factor:    model.Confidence,
		question:  "Are you confident you can see this subject or assignment through?",
		lowAdvice: "If it looks too hard, shrink the first step: start with the easiest piece, or set a five-minute timer and just begin. Break the work into small slices and take them in order.",
		selfCheck: "After trying a small slice, record whether it turned out more doable than you expected.",
		declined:  "Your confidence score dropped since your last check-in. Smaller steps may help you regain footing.",
		improved:  "Your confidence score rose since your last check-in. Your footing is improving; stretch a little further.",
	},
	{
		factor:    model.Satisfaction,
		question:  "Are you satisfied with what you have learned so far?",
		lowAdvice: "Put what you learned into words: summarize it in one sentence, tell a friend or family member, or write it in a journal. Saying it out loud makes the progress feel real.",
		selfCheck: "Afterwards, check whether your mood lifted and whether the work feels meaningful looking back.",
		declined:  "Your satisfaction score dropped since your last check-in. Take a moment to credit what you did finish.",
		improved:  "Your satisfaction score rose since your last check-in. The payoff is showing; keep recording it.",
	},
}

var healthy = model.AdviceItem{
	Kind:      model.AdviceHealthy,
	Question:  "Overall",
	Message:   "Your motivation looks healthy right now. Keep up the current pace.",
	SelfCheck: "Record a check-in regularly so you can spot changes early.",
}

// Derive applies the rule table to the current submission. Low-score items
// come first in factor order, then delta items in factor order. When no
// factor is low and there is no previous submission to compare against, a
// single healthy item stands in for the empty list.
func Derive(scale model.Scale, current model.Submission, previous *model.Submission) []model.AdviceItem {
	var items []model.AdviceItem

	for _, r := range rules {
		if scale.IsLow(current.Score(r.factor)) {
			items = append(items, model.AdviceItem{
				Factor:    r.factor,
				Kind:      model.AdviceLow,
				Question:  r.question,
				Message:   r.lowAdvice,
				SelfCheck: r.selfCheck,
			})
		}
	}

	if len(items) == 0 && previous == nil {
		items = append(items, healthy)
	}

	if previous != nil {
		for _, r := range rules {
			delta := current.Score(r.factor) - previous.Score(r.factor)
			switch {
			case delta < 0:
				items = append(items, model.AdviceItem{
					Factor:  r.factor,
					Kind:    model.AdviceDeclined,
					Message: r.declined,
				})
			case delta > 0:
				items = append(items, model.AdviceItem{
					Factor:  r.factor,
					Kind:    model.AdviceImproved,
					Message: r.improved,
				})
			}
		}
	}

	return items
}
