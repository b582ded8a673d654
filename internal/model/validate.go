package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// identity carries the fields the identity rule applies to: at least one of
// name and user ID must be set.
type identity struct {
	Name   string `validate:"required_without=UserID"`
	UserID string `validate:"required_without=Name"`
}

// Validate checks a submission against the deployment scale. It returns a
// *ValidationError on empty identity or any out-of-range score, before
// anything downstream sees the submission.
func (s Submission) Validate(sc Scale) error {
	if err := validate.Struct(identity{Name: s.Name, UserID: s.UserID}); err != nil {
		return &ValidationError{
			Field:  "identity",
			Reason: "name or user ID is required",
		}
	}

	rangeTag := fmt.Sprintf("gte=%g,lte=%g", sc.Min, sc.Max)
	for _, f := range Factors {
		if err := validate.Var(s.Score(f), rangeTag); err != nil {
			return &ValidationError{
				Field:  string(f),
				Reason: fmt.Sprintf("%g is outside the %g-%g scale", s.Score(f), sc.Min, sc.Max),
			}
		}
	}
	return nil
}
