package model

import "fmt"

// Scale is the score range a deployment records answers on. One deployment
// uses exactly one scale; mixing scales within a stored history makes delta
// and correlation results meaningless, so the store rejects it.
type Scale struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	// LowCutoff is the raw score below which a factor counts as low and
	// triggers advice. The compare is exclusive: score < LowCutoff.
	LowCutoff float64 `json:"low_cutoff"`
}

var (
	// Scale100 is the 1-100 slider scale. Scores under 30 count as low.
	Scale100 = Scale{Min: 1, Max: 100, LowCutoff: 30}
	// Scale7 is the 1-7 Likert scale. Scores of 3 and under count as low.
	Scale7 = Scale{Min: 1, Max: 7, LowCutoff: 4}
)

// ScaleByMax resolves a configured scale by its maximum value.
func ScaleByMax(max int) (Scale, error) {
	switch max {
	case 100:
		return Scale100, nil
	case 7:
		return Scale7, nil
	}
	return Scale{}, fmt.Errorf("unsupported scale max %d (use 100 or 7)", max)
}

// Normalize maps a raw score to the unit interval: Min maps to 0, Max to 1.
// Out-of-range scores are rejected, never clamped.
func (sc Scale) Normalize(raw float64) (float64, error) {
	if raw < sc.Min || raw > sc.Max {
		return 0, &ValidationError{
			Field:  "score",
			Reason: fmt.Sprintf("%g is outside the %g-%g scale", raw, sc.Min, sc.Max),
		}
	}
	return (raw - sc.Min) / (sc.Max - sc.Min), nil
}

// IsLow reports whether a raw score falls below the advice cutoff.
func (sc Scale) IsLow(raw float64) bool {
	return raw < sc.LowCutoff
}

// ValidationError reports rejected input: an empty identity or a score
// outside the configured scale. Nothing is stored when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
